package api

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	db "github.com/aalug/go-job-board/internal/db/sqlc"
	"github.com/aalug/go-job-board/internal/esearch"
	"github.com/aalug/go-job-board/internal/worker"
	"github.com/aalug/go-job-board/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

var (
	onlyEmployersAccessError  = errors.New("only employers can access this endpoint")
	onlyCandidatesAccessError = errors.New("only candidates can access this endpoint")
	jobOwnershipError         = errors.New("job does not belong to this user")
)

// authUser loads the user making the request, based on the email stored in
// the verified token payload
func (server *Server) authUser(ctx *gin.Context) (db.User, error) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	return server.store.GetUserByEmail(ctx, authPayload.Email)
}

// publishSyncJob enqueues a search-index sync event for the job. Enqueueing
// is best-effort: on failure the event is logged and dropped, the database
// write stays committed and the index catches up on the next event or the
// next startup reconciliation.
func (server *Server) publishSyncJob(ctx *gin.Context, jobID int32, action string) {
	payload := &worker.PayloadSyncJob{
		JobID:  jobID,
		Action: action,
	}
	opts := []asynq.Option{
		asynq.MaxRetry(10),
		asynq.Queue(worker.QueueCritical),
	}
	err := server.taskDistributor.DistributeTaskSyncJob(ctx, payload, opts...)
	if err != nil {
		log.Warn().Err(err).Int32("job_id", jobID).Str("action", action).
			Msg("failed to enqueue sync event")
	}
}

type createJobRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	CompanyID   int32     `json:"company_id" binding:"required,min=1"`
	Location    string    `json:"location" binding:"required"`
	Salary      float64   `json:"salary" binding:"required,min=0"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

// @Schemes
// @Summary Create job
// @Description Create a new job posting
// @Tags jobs
// @Accept json
// @Produce json
// @param CreateJobRequest body createJobRequest true "Job details"
// @Security bearerToken
// @Success 201 {object} db.Job
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Only employers can post jobs"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /jobs [post]
// createJob handles creating a job posting
func (server *Server) createJob(ctx *gin.Context) {
	var request createJobRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authUser, err := server.authUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if authUser.Role != db.UserRoleEmployer && authUser.Role != db.UserRoleAdmin {
		ctx.JSON(http.StatusForbidden, errorResponse(onlyEmployersAccessError))
		return
	}

	params := db.CreateJobParams{
		Title:       request.Title,
		Description: request.Description,
		CompanyID:   request.CompanyID,
		Location:    request.Location,
		Salary:      request.Salary,
		Deadline:    request.Deadline,
		PosterID:    authUser.ID,
	}

	job, err := server.store.CreateJob(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	server.publishSyncJob(ctx, job.ID, worker.SyncActionUpsert)

	ctx.JSON(http.StatusCreated, job)
}

type updateJobUriRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type updateJobRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Salary      float64   `json:"salary" binding:"required,min=0"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

// @Schemes
// @Summary Update job
// @Description Replace all details of the job with the given id
// @Tags jobs
// @Accept json
// @Produce json
// @param id path integer true "Job ID"
// @param UpdateJobRequest body updateJobRequest true "Full new job details"
// @Security bearerToken
// @Success 200 {object} db.Job
// @Failure 400 {object} ErrorResponse "Invalid request body or id"
// @Failure 403 {object} ErrorResponse "Job does not belong to this user"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /jobs/{id} [put]
// updateJob handles a full replace of a job posting
func (server *Server) updateJob(ctx *gin.Context) {
	var uriRequest updateJobUriRequest
	if err := ctx.ShouldBindUri(&uriRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var request updateJobRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
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
		ctx.JSON(http.StatusForbidden, errorResponse(jobOwnershipError))
		return
	}

	params := db.UpdateJobParams{
		ID:          job.ID,
		Title:       request.Title,
		Description: request.Description,
		Location:    request.Location,
		Salary:      request.Salary,
		Deadline:    request.Deadline,
	}

	updatedJob, err := server.store.UpdateJob(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	server.publishSyncJob(ctx, updatedJob.ID, worker.SyncActionUpsert)

	ctx.JSON(http.StatusOK, updatedJob)
}

type deactivateJobRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// @Schemes
// @Summary Deactivate job
// @Description Deactivate the job with the given id. The job stays in the
// @Description database but stops being served by search.
// @Tags jobs
// @param id path integer true "Job ID"
// @Security bearerToken
// @Success 204 {null} null
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 403 {object} ErrorResponse "Job does not belong to this user"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /jobs/{id} [delete]
// deactivateJob handles soft-deleting a job posting
func (server *Server) deactivateJob(ctx *gin.Context) {
	var request deactivateJobRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authUser, err := server.authUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	job, err := server.store.GetJob(ctx, request.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if job.PosterID != authUser.ID && authUser.Role != db.UserRoleAdmin {
		ctx.JSON(http.StatusForbidden, errorResponse(jobOwnershipError))
		return
	}

	err = server.store.DeactivateJob(ctx, job.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	server.publishSyncJob(ctx, job.ID, worker.SyncActionUpsert)

	ctx.Status(http.StatusNoContent)
}

type searchJobsRequest struct {
	Query    string `form:"query"`
	Location string `form:"location"`
	Company  string `form:"company"`
	Page     int32  `form:"page" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=20"`
}

type searchJobsResponse struct {
	Total   int64                  `json:"total"`
	Results []*esearch.JobDocument `json:"results"`
}

// @Schemes
// @Summary Search jobs
// @Description Full-text search of active job postings. The query matches
// @Description title and description with typo tolerance; location and
// @Description company are exact-match filters.
// @Tags jobs
// @Produce json
// @param query query string false "Free text query"
// @param location query string false "Exact location filter"
// @param company query string false "Exact company name filter"
// @param page query integer true "Page number"
// @param page_size query integer true "Page size"
// @Success 200 {object} searchJobsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 500 {object} ErrorResponse "Any other error"
// @Router /jobs/search [get]
// searchJobs handles searching the job documents in the search index
func (server *Server) searchJobs(ctx *gin.Context) {
	var request searchJobsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	params := esearch.SearchJobsParams{
		Query:    request.Query,
		Location: request.Location,
		Company:  request.Company,
		Page:     request.Page,
		PageSize: request.PageSize,
	}

	jobs, total, err := server.esClient.SearchJobs(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, searchJobsResponse{
		Total:   total,
		Results: jobs,
	})
}
