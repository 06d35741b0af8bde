package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockcache "github.com/aalug/go-job-board/internal/cache/mock"
	mockdb "github.com/aalug/go-job-board/internal/db/mock"
	db "github.com/aalug/go-job-board/internal/db/sqlc"
	mockesearch "github.com/aalug/go-job-board/internal/esearch/mock"
	mockwk "github.com/aalug/go-job-board/internal/worker/mock"
	"github.com/aalug/go-job-board/pkg/token"
	"github.com/aalug/go-job-board/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func generateRandomResume(candidateID int32) db.Resume {
	return db.Resume{
		ID:          utils.RandomInt(1, 1000),
		CandidateID: candidateID,
		FileKey:     utils.RandomString(10),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func generateRandomApplication(jobID, candidateID, resumeID int32) db.JobApplication {
	return db.JobApplication{
		ID:          utils.RandomInt(1, 1000),
		JobID:       jobID,
		CandidateID: candidateID,
		ResumeID:    resumeID,
		Status:      db.ApplicationStatusAPPLIED,
		AppliedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestApplyForJobAPI(t *testing.T) {
	employer := generateRandomUser(db.UserRoleEmployer)
	candidate := generateRandomUser(db.UserRoleCandidate)
	job := generateRandomJob(employer.ID)
	resume := generateRandomResume(candidate.ID)
	application := generateRandomApplication(job.ID, candidate.ID, resume.ID)

	inactiveJob := generateRandomJob(employer.ID)
	inactiveJob.Active = false

	otherResume := generateRandomResume(utils.RandomInt(1001, 2000))

	requestBody := gin.H{
		"resume_id": resume.ID,
	}

	testCases := []struct {
		name          string
		jobID         int32
		body          gin.H
		setupAuth     func(t *testing.T, r *http.Request, maker token.Maker)
		buildStubs    func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			jobID: job.ID,
			body:  requestBody,
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, candidate.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(candidate.Email)).
					Times(1).
					Return(candidate, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					GetResume(gomock.Any(), gomock.Eq(resume.ID)).
					Times(1).
					Return(resume, nil)
				store.EXPECT().
					CreateJobApplicationTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.CreateJobApplicationTxParams) (db.CreateJobApplicationTxResult, error) {
						require.Equal(t, job.ID, arg.JobID)
						require.Equal(t, candidate.ID, arg.CandidateID)
						require.Equal(t, resume.ID, arg.ResumeID)
						err := arg.AfterCreate(application)
						return db.CreateJobApplicationTxResult{JobApplication: application}, err
					})
				appCache.EXPECT().
					InvalidateJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				data, err := io.ReadAll(recorder.Body)
				require.NoError(t, err)

				var gotApplication db.JobApplication
				err = json.Unmarshal(data, &gotApplication)
				require.NoError(t, err)
				require.Equal(t, application, gotApplication)
			},
		},
		{
			name:  "Conflict Duplicate Application",
			jobID: job.ID,
			body:  requestBody,
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, candidate.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(candidate.Email)).
					Times(1).
					Return(candidate, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					GetResume(gomock.Any(), gomock.Eq(resume.ID)).
					Times(1).
					Return(resume, nil)
				store.EXPECT().
					CreateJobApplicationTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.CreateJobApplicationTxResult{}, db.ErrDuplicateApplication)
				appCache.EXPECT().
					InvalidateJob(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:  "Forbidden For Employers",
			jobID: job.ID,
			body:  requestBody,
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					CreateJobApplicationTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:  "Bad Request Inactive Job",
			jobID: inactiveJob.ID,
			body:  requestBody,
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, candidate.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(candidate.Email)).
					Times(1).
					Return(candidate, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(inactiveJob.ID)).
					Times(1).
					Return(inactiveJob, nil)
				store.EXPECT().
					CreateJobApplicationTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "Not Found Job",
			jobID: job.ID,
			body:  requestBody,
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, candidate.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(candidate.Email)).
					Times(1).
					Return(candidate, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(db.Job{}, sql.ErrNoRows)
				store.EXPECT().
					CreateJobApplicationTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:  "Forbidden Foreign Resume",
			jobID: job.ID,
			body:  gin.H{"resume_id": otherResume.ID},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, candidate.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(candidate.Email)).
					Times(1).
					Return(candidate, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					GetResume(gomock.Any(), gomock.Eq(otherResume.ID)).
					Times(1).
					Return(otherResume, nil)
				store.EXPECT().
					CreateJobApplicationTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			client := mockesearch.NewMockESearchClient(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			appCache := mockcache.NewMockApplicationCache(ctrl)
			tc.buildStubs(store, appCache)

			server := newTestServer(t, store, client, distributor, appCache)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("%s/applications/apply/%d", baseUrl, tc.jobID)
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestChangeApplicationStatusAPI(t *testing.T) {
	employer := generateRandomUser(db.UserRoleEmployer)
	candidate := generateRandomUser(db.UserRoleCandidate)
	stranger := generateRandomUser(db.UserRoleCandidate)
	job := generateRandomJob(employer.ID)
	resume := generateRandomResume(candidate.ID)
	application := generateRandomApplication(job.ID, candidate.ID, resume.ID)

	acceptedApplication := application
	acceptedApplication.ID = utils.RandomInt(1001, 2000)
	acceptedApplication.Status = db.ApplicationStatusACCEPTED

	testCases := []struct {
		name          string
		applicationID int32
		body          gin.H
		setupAuth     func(t *testing.T, r *http.Request, maker token.Maker)
		buildStubs    func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:          "OK Poster Moves To Under Review",
			applicationID: application.ID,
			body:          gin.H{"status": "UNDER_REVIEW"},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					GetJobApplication(gomock.Any(), gomock.Eq(application.ID)).
					Times(1).
					Return(application, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				params := db.UpdateJobApplicationStatusParams{
					ID:     application.ID,
					Status: db.ApplicationStatusUNDERREVIEW,
				}
				store.EXPECT().
					UpdateJobApplicationStatus(gomock.Any(), gomock.Eq(params)).
					Times(1).
					Return(nil)
				appCache.EXPECT().
					InvalidateJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				data, err := io.ReadAll(recorder.Body)
				require.NoError(t, err)

				var gotApplication db.JobApplication
				err = json.Unmarshal(data, &gotApplication)
				require.NoError(t, err)
				require.Equal(t, db.ApplicationStatusUNDERREVIEW, gotApplication.Status)
			},
		},
		{
			name:          "OK Candidate Withdraws",
			applicationID: application.ID,
			body:          gin.H{"status": "REJECTED"},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, candidate.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(candidate.Email)).
					Times(1).
					Return(candidate, nil)
				store.EXPECT().
					GetJobApplication(gomock.Any(), gomock.Eq(application.ID)).
					Times(1).
					Return(application, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				params := db.UpdateJobApplicationStatusParams{
					ID:     application.ID,
					Status: db.ApplicationStatusREJECTED,
				}
				store.EXPECT().
					UpdateJobApplicationStatus(gomock.Any(), gomock.Eq(params)).
					Times(1).
					Return(nil)
				appCache.EXPECT().
					InvalidateJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:          "Forbidden Candidate Accepts Own Application",
			applicationID: application.ID,
			body:          gin.H{"status": "ACCEPTED"},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, candidate.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(candidate.Email)).
					Times(1).
					Return(candidate, nil)
				store.EXPECT().
					GetJobApplication(gomock.Any(), gomock.Eq(application.ID)).
					Times(1).
					Return(application, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					UpdateJobApplicationStatus(gomock.Any(), gomock.Any()).
					Times(0)
				appCache.EXPECT().
					InvalidateJob(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:          "Forbidden Stranger",
			applicationID: application.ID,
			body:          gin.H{"status": "UNDER_REVIEW"},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, stranger.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(stranger.Email)).
					Times(1).
					Return(stranger, nil)
				store.EXPECT().
					GetJobApplication(gomock.Any(), gomock.Eq(application.ID)).
					Times(1).
					Return(application, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					UpdateJobApplicationStatus(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:          "Conflict Terminal Status",
			applicationID: acceptedApplication.ID,
			body:          gin.H{"status": "UNDER_REVIEW"},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					GetJobApplication(gomock.Any(), gomock.Eq(acceptedApplication.ID)).
					Times(1).
					Return(acceptedApplication, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				store.EXPECT().
					UpdateJobApplicationStatus(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:          "Invalid Status Value",
			applicationID: application.ID,
			body:          gin.H{"status": "HIRED"},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetJobApplication(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:          "Not Found",
			applicationID: application.ID,
			body:          gin.H{"status": "UNDER_REVIEW"},
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					GetJobApplication(gomock.Any(), gomock.Eq(application.ID)).
					Times(1).
					Return(db.JobApplication{}, sql.ErrNoRows)
				store.EXPECT().
					UpdateJobApplicationStatus(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			client := mockesearch.NewMockESearchClient(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			appCache := mockcache.NewMockApplicationCache(ctrl)
			tc.buildStubs(store, appCache)

			server := newTestServer(t, store, client, distributor, appCache)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("%s/applications/%d/status", baseUrl, tc.applicationID)
			request, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestListApplicationsForJobAPI(t *testing.T) {
	employer := generateRandomUser(db.UserRoleEmployer)
	otherEmployer := generateRandomUser(db.UserRoleEmployer)
	admin := generateRandomUser(db.UserRoleAdmin)
	job := generateRandomJob(employer.ID)

	var applications []db.JobApplication
	for i := 0; i < 3; i++ {
		candidate := generateRandomUser(db.UserRoleCandidate)
		resume := generateRandomResume(candidate.ID)
		applications = append(applications, generateRandomApplication(job.ID, candidate.ID, resume.ID))
	}

	page := 1
	pageSize := 10

	testCases := []struct {
		name          string
		setupAuth     func(t *testing.T, r *http.Request, maker token.Maker)
		buildStubs    func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK Cache Miss",
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				appCache.EXPECT().
					GetJobApplications(gomock.Any(), gomock.Eq(job.ID), gomock.Eq(page), gomock.Eq(pageSize)).
					Times(1).
					Return(nil, false, nil)
				params := db.ListJobApplicationsForJobParams{
					JobID:  job.ID,
					Limit:  int32(pageSize),
					Offset: 0,
				}
				store.EXPECT().
					ListJobApplicationsForJob(gomock.Any(), gomock.Eq(params)).
					Times(1).
					Return(applications, nil)
				appCache.EXPECT().
					SetJobApplications(gomock.Any(), gomock.Eq(job.ID), gomock.Eq(page), gomock.Eq(pageSize), gomock.Eq(applications)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				data, err := io.ReadAll(recorder.Body)
				require.NoError(t, err)

				var gotApplications []db.JobApplication
				err = json.Unmarshal(data, &gotApplications)
				require.NoError(t, err)
				require.Equal(t, applications, gotApplications)
			},
		},
		{
			name: "OK Cache Hit",
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, employer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(employer.Email)).
					Times(1).
					Return(employer, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				appCache.EXPECT().
					GetJobApplications(gomock.Any(), gomock.Eq(job.ID), gomock.Eq(page), gomock.Eq(pageSize)).
					Times(1).
					Return(applications, true, nil)
				store.EXPECT().
					ListJobApplicationsForJob(gomock.Any(), gomock.Any()).
					Times(0)
				appCache.EXPECT().
					SetJobApplications(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				data, err := io.ReadAll(recorder.Body)
				require.NoError(t, err)

				var gotApplications []db.JobApplication
				err = json.Unmarshal(data, &gotApplications)
				require.NoError(t, err)
				require.Equal(t, applications, gotApplications)
			},
		},
		{
			name: "OK Admin",
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, admin.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(admin.Email)).
					Times(1).
					Return(admin, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				appCache.EXPECT().
					GetJobApplications(gomock.Any(), gomock.Eq(job.ID), gomock.Eq(page), gomock.Eq(pageSize)).
					Times(1).
					Return(applications, true, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "Forbidden Not The Poster",
			setupAuth: func(t *testing.T, r *http.Request, maker token.Maker) {
				addAuthorization(t, r, maker, authorizationTypeBearer, otherEmployer.Email, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, appCache *mockcache.MockApplicationCache) {
				store.EXPECT().
					GetUserByEmail(gomock.Any(), gomock.Eq(otherEmployer.Email)).
					Times(1).
					Return(otherEmployer, nil)
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(job.ID)).
					Times(1).
					Return(job, nil)
				appCache.EXPECT().
					GetJobApplications(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
				store.EXPECT().
					ListJobApplicationsForJob(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			client := mockesearch.NewMockESearchClient(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			appCache := mockcache.NewMockApplicationCache(ctrl)
			tc.buildStubs(store, appCache)

			server := newTestServer(t, store, client, distributor, appCache)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("%s/applications/job/%d?page=%d&page_size=%d",
				baseUrl, job.ID, page, pageSize)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}
