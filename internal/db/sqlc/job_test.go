package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/aalug/go-job-board/pkg/utils"
	"github.com/stretchr/testify/require"
)

// createRandomUser create and return a random user with the given role
func createRandomUser(t *testing.T, role UserRole) User {
	params := CreateUserParams{
		Email:    utils.RandomEmail(),
		FullName: utils.RandomString(8),
		Role:     role,
	}

	user, err := testQueries.CreateUser(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, user)
	require.Equal(t, params.Email, user.Email)
	require.Equal(t, params.Role, user.Role)
	require.NotZero(t, user.ID)

	return user
}

// createRandomCompany create and return a random company
func createRandomCompany(t *testing.T) Company {
	name := utils.RandomString(6)
	company, err := testQueries.CreateCompany(context.Background(), name)
	require.NoError(t, err)
	require.NotEmpty(t, company)
	require.Equal(t, name, company.Name)
	require.NotZero(t, company.ID)

	return company
}

// createRandomJob create and return a random job
func createRandomJob(t *testing.T, company *Company, poster *User) Job {
	if company == nil {
		c := createRandomCompany(t)
		company = &c
	}
	if poster == nil {
		p := createRandomUser(t, UserRoleEmployer)
		poster = &p
	}

	params := CreateJobParams{
		Title:       utils.RandomString(8),
		Description: utils.RandomString(20),
		CompanyID:   company.ID,
		Location:    utils.RandomString(5),
		Salary:      utils.RandomFloat(3000, 10000),
		Deadline:    time.Now().AddDate(0, 1, 0).UTC(),
		PosterID:    poster.ID,
	}

	job, err := testQueries.CreateJob(context.Background(), params)
	require.NoError(t, err)
	require.NotEmpty(t, job)
	require.Equal(t, params.Title, job.Title)
	require.Equal(t, params.CompanyID, job.CompanyID)
	require.Equal(t, params.PosterID, job.PosterID)
	require.True(t, job.Active)
	require.NotZero(t, job.ID)
	require.NotZero(t, job.CreatedAt)

	return job
}

func TestQueries_CreateJob(t *testing.T) {
	createRandomJob(t, nil, nil)
}

func TestQueries_GetJob(t *testing.T) {
	job1 := createRandomJob(t, nil, nil)
	job2, err := testQueries.GetJob(context.Background(), job1.ID)
	require.NoError(t, err)
	require.NotEmpty(t, job2)
	require.Equal(t, job1.ID, job2.ID)
	require.Equal(t, job1.Title, job2.Title)
	require.Equal(t, job1.Description, job2.Description)
	require.Equal(t, job1.Salary, job2.Salary)
	require.Equal(t, job1.Active, job2.Active)
}

func TestQueries_GetJobForSearch(t *testing.T) {
	company := createRandomCompany(t)
	job := createRandomJob(t, &company, nil)

	row, err := testQueries.GetJobForSearch(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, job.ID, row.ID)
	require.Equal(t, job.Title, row.Title)
	require.Equal(t, company.Name, row.CompanyName)
	require.True(t, row.Active)
}

func TestQueries_UpdateJob(t *testing.T) {
	job := createRandomJob(t, nil, nil)

	params := UpdateJobParams{
		ID:          job.ID,
		Title:       utils.RandomString(8),
		Description: utils.RandomString(20),
		Location:    utils.RandomString(5),
		Salary:      utils.RandomFloat(3000, 10000),
		Deadline:    job.Deadline,
	}

	updated, err := testQueries.UpdateJob(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, job.ID, updated.ID)
	require.Equal(t, params.Title, updated.Title)
	require.Equal(t, params.Description, updated.Description)
	require.Equal(t, job.CompanyID, updated.CompanyID)
	require.True(t, updated.UpdatedAt.After(job.UpdatedAt))
}

func TestQueries_DeactivateJob(t *testing.T) {
	job := createRandomJob(t, nil, nil)
	require.True(t, job.Active)

	err := testQueries.DeactivateJob(context.Background(), job.ID)
	require.NoError(t, err)

	job2, err := testQueries.GetJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.False(t, job2.Active)
}

func TestQueries_ListActiveJobsForSearch(t *testing.T) {
	job1 := createRandomJob(t, nil, nil)
	job2 := createRandomJob(t, nil, nil)
	err := testQueries.DeactivateJob(context.Background(), job2.ID)
	require.NoError(t, err)

	rows, err := testQueries.ListActiveJobsForSearch(context.Background())
	require.NoError(t, err)

	ids := make(map[int32]bool)
	for _, row := range rows {
		require.True(t, row.Active)
		ids[row.ID] = true
	}
	require.True(t, ids[job1.ID])
	require.False(t, ids[job2.ID])
}

func TestQueries_GetJobNotFound(t *testing.T) {
	_, err := testQueries.GetJob(context.Background(), -1)
	require.Error(t, err)
	require.EqualError(t, err, sql.ErrNoRows.Error())
}
