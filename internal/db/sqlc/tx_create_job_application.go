package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateApplication is returned when the candidate already has an
// application for the job, no matter whether the duplicate was caught by the
// in-transaction lookup or by the (job_id, candidate_id) unique constraint.
var ErrDuplicateApplication = errors.New("candidate has already applied for this job")

type CreateJobApplicationTxParams struct {
	CreateJobApplicationParams
	AfterCreate func(jobApplication JobApplication) error
}

type CreateJobApplicationTxResult struct {
	JobApplication JobApplication
}

// CreateJobApplicationTx creates a job application after checking that the
// candidate has no existing application for the job. The check runs inside the
// same transaction as the insert; the unique constraint on
// (job_id, candidate_id) is the enforcer when two submissions race past the
// check concurrently.
func (store *SQLStore) CreateJobApplicationTx(ctx context.Context, arg CreateJobApplicationTxParams) (CreateJobApplicationTxResult, error) {
	var result CreateJobApplicationTxResult

	err := store.ExecTx(ctx, func(q *Queries) error {
		var err error

		_, err = q.GetJobApplicationByJobAndCandidate(ctx, GetJobApplicationByJobAndCandidateParams{
			JobID:       arg.JobID,
			CandidateID: arg.CandidateID,
		})
		if err == nil {
			return ErrDuplicateApplication
		}
		if err != sql.ErrNoRows {
			return err
		}

		result.JobApplication, err = q.CreateJobApplication(ctx, arg.CreateJobApplicationParams)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
				return ErrDuplicateApplication
			}
			return err
		}

		if arg.AfterCreate != nil {
			return arg.AfterCreate(result.JobApplication)
		}
		return nil
	})

	return result, err
}
