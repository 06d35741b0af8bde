package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/aalug/go-job-board/pkg/utils"
	"github.com/stretchr/testify/require"
)

// createRandomResume create and return a random resume for the candidate
func createRandomResume(t *testing.T, candidateID int32) Resume {
	params := CreateResumeParams{
		CandidateID: candidateID,
		FileKey:     utils.RandomString(12),
	}

	resume, err := testQueries.CreateResume(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, resume)
	require.Equal(t, params.CandidateID, resume.CandidateID)
	require.NotZero(t, resume.ID)

	return resume
}

// createRandomJobApplication create and return a random job application
func createRandomJobApplication(t *testing.T, jobID int32) JobApplication {
	candidate := createRandomUser(t, UserRoleCandidate)
	resume := createRandomResume(t, candidate.ID)
	if jobID == 0 {
		jobID = createRandomJob(t, nil, nil).ID
	}

	params := CreateJobApplicationParams{
		JobID:       jobID,
		CandidateID: candidate.ID,
		ResumeID:    resume.ID,
		CoverLetter: sql.NullString{
			String: utils.RandomString(30),
			Valid:  true,
		},
	}

	jobApplication, err := testQueries.CreateJobApplication(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, jobApplication)
	require.Equal(t, params.JobID, jobApplication.JobID)
	require.Equal(t, params.CandidateID, jobApplication.CandidateID)
	require.Equal(t, params.ResumeID, jobApplication.ResumeID)
	require.Equal(t, params.CoverLetter.String, jobApplication.CoverLetter.String)
	require.Equal(t, ApplicationStatusAPPLIED, jobApplication.Status)
	require.NotZero(t, jobApplication.ID)
	require.NotZero(t, jobApplication.AppliedAt)

	return jobApplication
}

func TestQueries_CreateJobApplication(t *testing.T) {
	createRandomJobApplication(t, 0)
}

func TestQueries_GetJobApplication(t *testing.T) {
	jobApplication1 := createRandomJobApplication(t, 0)
	jobApplication2, err := testQueries.GetJobApplication(context.Background(), jobApplication1.ID)
	require.NoError(t, err)
	require.NotEmpty(t, jobApplication2)
	require.Equal(t, jobApplication1.ID, jobApplication2.ID)
	require.Equal(t, jobApplication1.JobID, jobApplication2.JobID)
	require.Equal(t, jobApplication1.CandidateID, jobApplication2.CandidateID)
	require.Equal(t, jobApplication1.Status, jobApplication2.Status)
}

func TestQueries_GetJobApplicationByJobAndCandidate(t *testing.T) {
	jobApplication1 := createRandomJobApplication(t, 0)

	params := GetJobApplicationByJobAndCandidateParams{
		JobID:       jobApplication1.JobID,
		CandidateID: jobApplication1.CandidateID,
	}
	jobApplication2, err := testQueries.GetJobApplicationByJobAndCandidate(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, jobApplication1.ID, jobApplication2.ID)

	// unknown pair
	params.CandidateID = -1
	_, err = testQueries.GetJobApplicationByJobAndCandidate(context.Background(), params)
	require.Error(t, err)
	require.EqualError(t, err, sql.ErrNoRows.Error())
}

func TestQueries_UpdateJobApplicationStatus(t *testing.T) {
	jobApplication := createRandomJobApplication(t, 0)

	err := testQueries.UpdateJobApplicationStatus(context.Background(), UpdateJobApplicationStatusParams{
		ID:     jobApplication.ID,
		Status: ApplicationStatusUNDERREVIEW,
	})
	require.NoError(t, err)

	updated, err := testQueries.GetJobApplication(context.Background(), jobApplication.ID)
	require.NoError(t, err)
	require.Equal(t, ApplicationStatusUNDERREVIEW, updated.Status)
}

func TestQueries_ListJobApplicationsForJob(t *testing.T) {
	job := createRandomJob(t, nil, nil)
	for i := 0; i < 5; i++ {
		createRandomJobApplication(t, job.ID)
	}

	params := ListJobApplicationsForJobParams{
		JobID:  job.ID,
		Limit:  5,
		Offset: 0,
	}

	jobApplications, err := testQueries.ListJobApplicationsForJob(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, jobApplications, 5)
	for _, jobApplication := range jobApplications {
		require.NotEmpty(t, jobApplication)
		require.Equal(t, job.ID, jobApplication.JobID)
	}
}

func TestQueries_CountJobApplicationsForResume(t *testing.T) {
	jobApplication := createRandomJobApplication(t, 0)

	count, err := testQueries.CountJobApplicationsForResume(context.Background(), jobApplication.ResumeID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
