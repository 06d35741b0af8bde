package api

import (
	"database/sql"
	"errors"
	"net/http"

	db "github.com/aalug/go-job-board/internal/db/sqlc"
	"github.com/gin-gonic/gin"
)

var resumeInUseError = errors.New("resume is referenced by existing job applications")

type deleteResumeRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// @Schemes
// @Summary Delete resume
// @Description Delete the resume with the given id. A resume that is still
// @Description referenced by job applications cannot be deleted.
// @Tags resumes
// @param id path integer true "Resume ID"
// @Security bearerToken
// @Success 204 {null} null
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 403 {object} ErrorResponse "Resume does not belong to this user"
// @Failure 404 {object} ErrorResponse "Resume not found"
// @Failure 409 {object} ErrorResponse "Resume referenced by applications"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /resumes/{id} [delete]
// deleteResume handles deleting a resume
func (server *Server) deleteResume(ctx *gin.Context) {
	var request deleteResumeRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authUser, err := server.authUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	resume, err := server.store.GetResume(ctx, request.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if resume.CandidateID != authUser.ID && authUser.Role != db.UserRoleAdmin {
		ctx.JSON(http.StatusForbidden, errorResponse(resumeOwnershipError))
		return
	}

	count, err := server.store.CountJobApplicationsForResume(ctx, resume.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if count > 0 {
		ctx.JSON(http.StatusConflict, errorResponse(resumeInUseError))
		return
	}

	err = server.store.DeleteResume(ctx, resume.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
