package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/aalug/go-job-board/internal/appstatus"
	db "github.com/aalug/go-job-board/internal/db/sqlc"
	"github.com/aalug/go-job-board/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	jobNotActiveError          = errors.New("job is no longer accepting applications")
	resumeOwnershipError       = errors.New("resume does not belong to this user")
	applicationAccessError     = errors.New("not allowed to view applications for this job")
	statusChangeForbiddenError = errors.New("not allowed to set this application status")
	terminalStatusError        = errors.New("application is already in a terminal status")
)

type applyForJobUriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type applyForJobRequest struct {
	ResumeID    int32  `json:"resume_id" binding:"required,min=1"`
	CoverLetter string `json:"cover_letter"`
}

// @Schemes
// @Summary Apply for job
// @Description Create a job application for the job with the given id.
// @Description A candidate can apply for a given job only once.
// @Tags applications
// @Accept json
// @Produce json
// @param id path integer true "Job ID"
// @param ApplyForJobRequest body applyForJobRequest true "Application details"
// @Security bearerToken
// @Success 201 {object} db.JobApplication
// @Failure 400 {object} ErrorResponse "Invalid request body, id or inactive job"
// @Failure 403 {object} ErrorResponse "Only candidates can apply, resume ownership"
// @Failure 404 {object} ErrorResponse "Job or resume not found"
// @Failure 409 {object} ErrorResponse "Candidate already applied for this job"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /applications/apply/{id} [post]
// applyForJob handles creating a job application
func (server *Server) applyForJob(ctx *gin.Context) {
	var uriRequest applyForJobUriRequest
	if err := ctx.ShouldBindUri(&uriRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var request applyForJobRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if request.CoverLetter != "" {
		if err := validation.ValidateStringLength(request.CoverLetter, 1, 5000); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	authUser, err := server.authUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if authUser.Role != db.UserRoleCandidate {
		ctx.JSON(http.StatusForbidden, errorResponse(onlyCandidatesAccessError))
		return
	}

	job, err := server.store.GetJob(ctx, uriRequest.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if !job.Active {
		ctx.JSON(http.StatusBadRequest, errorResponse(jobNotActiveError))
		return
	}

	resume, err := server.store.GetResume(ctx, request.ResumeID)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if resume.CandidateID != authUser.ID {
		ctx.JSON(http.StatusForbidden, errorResponse(resumeOwnershipError))
		return
	}

	params := db.CreateJobApplicationTxParams{
		CreateJobApplicationParams: db.CreateJobApplicationParams{
			JobID:       job.ID,
			CandidateID: authUser.ID,
			ResumeID:    resume.ID,
			CoverLetter: sql.NullString{
				String: request.CoverLetter,
				Valid:  len(request.CoverLetter) > 0,
			},
		},
		AfterCreate: func(jobApplication db.JobApplication) error {
			server.invalidateApplicationCache(ctx, jobApplication.JobID)
			return nil
		},
	}

	result, err := server.store.CreateJobApplicationTx(ctx, params)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateApplication) {
			ctx.JSON(http.StatusConflict, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, result.JobApplication)
}

type changeApplicationStatusUriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type changeApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Schemes
// @Summary Change application status
// @Description Move the application with the given id to a new status.
// @Description Admins and the job poster can set any status, the candidate
// @Description can only withdraw (set REJECTED). Terminal statuses cannot
// @Description be left.
// @Tags applications
// @Accept json
// @Produce json
// @param id path integer true "Application ID"
// @param ChangeApplicationStatusRequest body changeApplicationStatusRequest true "New status"
// @Security bearerToken
// @Success 200 {object} db.JobApplication
// @Failure 400 {object} ErrorResponse "Invalid request body, id or status value"
// @Failure 403 {object} ErrorResponse "Not allowed to set this status"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 409 {object} ErrorResponse "Application already in a terminal status"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /applications/{id}/status [patch]
// changeApplicationStatus handles moving a job application to a new status
func (server *Server) changeApplicationStatus(ctx *gin.Context) {
	var uriRequest changeApplicationStatusUriRequest
	if err := ctx.ShouldBindUri(&uriRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var request changeApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	newStatus, err := appstatus.ParseStatus(request.Status)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authUser, err := server.authUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	application, err := server.store.GetJobApplication(ctx, uriRequest.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	job, err := server.store.GetJob(ctx, application.JobID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if appstatus.IsTerminal(appstatus.Status(application.Status)) {
		ctx.JSON(http.StatusConflict, errorResponse(terminalStatusError))
		return
	}

	actor := appstatus.Actor{
		UserID: authUser.ID,
		Role:   appstatus.Role(authUser.Role),
	}
	facts := appstatus.Application{
		CandidateID: application.CandidateID,
		PosterID:    job.PosterID,
		Status:      appstatus.Status(application.Status),
	}
	if !appstatus.CanTransition(actor, facts, newStatus) {
		ctx.JSON(http.StatusForbidden, errorResponse(statusChangeForbiddenError))
		return
	}

	params := db.UpdateJobApplicationStatusParams{
		ID:     application.ID,
		Status: db.ApplicationStatus(newStatus),
	}
	err = server.store.UpdateJobApplicationStatus(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	server.invalidateApplicationCache(ctx, application.JobID)

	application.Status = db.ApplicationStatus(newStatus)
	ctx.JSON(http.StatusOK, application)
}

type listApplicationsForJobUriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type listApplicationsForJobRequest struct {
	Page     int32 `form:"page" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=20"`
}

// @Schemes
// @Summary List applications for job
// @Description List the applications for the job with the given id.
// @Description Only the job poster and admins can list applications.
// @Tags applications
// @Produce json
// @param id path integer true "Job ID"
// @param page query integer true "Page number"
// @param page_size query integer true "Page size"
// @Security bearerToken
// @Success 200 {array} db.JobApplication
// @Failure 400 {object} ErrorResponse "Invalid id or query parameters"
// @Failure 403 {object} ErrorResponse "Not the poster of this job"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /applications/job/{id} [get]
// listApplicationsForJob handles listing the applications submitted for a job
func (server *Server) listApplicationsForJob(ctx *gin.Context) {
	var uriRequest listApplicationsForJobUriRequest
	if err := ctx.ShouldBindUri(&uriRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var request listApplicationsForJobRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authUser, err := server.authUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	job, err := server.store.GetJob(ctx, uriRequest.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if job.PosterID != authUser.ID && authUser.Role != db.UserRoleAdmin {
		ctx.JSON(http.StatusForbidden, errorResponse(applicationAccessError))
		return
	}

	cached, ok, err := server.applicationCache.GetJobApplications(
		ctx, job.ID, int(request.Page), int(request.PageSize))
	if err != nil {
		// a broken cache never fails the read, it only loses the shortcut
		log.Warn().Err(err).Int32("job_id", job.ID).Msg("application cache read failed")
	}
	if ok {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	params := db.ListJobApplicationsForJobParams{
		JobID:  job.ID,
		Limit:  request.PageSize,
		Offset: (request.Page - 1) * request.PageSize,
	}
	applications, err := server.store.ListJobApplicationsForJob(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	err = server.applicationCache.SetJobApplications(
		ctx, job.ID, int(request.Page), int(request.PageSize), applications)
	if err != nil {
		log.Warn().Err(err).Int32("job_id", job.ID).Msg("application cache write failed")
	}

	ctx.JSON(http.StatusOK, applications)
}

// invalidateApplicationCache drops all cached application pages of the job
func (server *Server) invalidateApplicationCache(ctx *gin.Context, jobID int32) {
	if err := server.applicationCache.InvalidateJob(ctx, jobID); err != nil {
		log.Warn().Err(err).Int32("job_id", jobID).
			Msg("failed to invalidate application cache")
	}
}
