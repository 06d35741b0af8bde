package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aalug/go-job-board/internal/esearch"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const TaskSyncJob = "task:sync_job"

// Sync actions carried by the task payload.
const (
	SyncActionUpsert = "UPSERT"
	SyncActionDelete = "DELETE"
)

type PayloadSyncJob struct {
	JobID  int32  `json:"jobId"`
	Action string `json:"action"`
}

// DistributeTaskSyncJob enqueues a search-index sync task for the job.
// Callers treat a failed enqueue as best-effort: they log and proceed,
// the job mutation itself is never rolled back.
func (distributor *RedisTaskDistributor) DistributeTaskSyncJob(
	ctx context.Context,
	payload *PayloadSyncJob,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskSyncJob, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("enqueued task")

	return nil
}

// ProcessTaskSyncJob reconciles the search index with the current state of
// the referenced job. Delivery is at-least-once, so processing is idempotent:
// UPSERT re-reads the job row and either replaces the document or removes it,
// DELETE removes the document unconditionally.
func (processor *RedisTaskProcessor) ProcessTaskSyncJob(ctx context.Context, task *asynq.Task) error {
	var payload PayloadSyncJob
	err := json.Unmarshal(task.Payload(), &payload)
	if err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	switch payload.Action {
	case SyncActionDelete:
		err = processor.esClient.DeleteJobDocument(ctx, payload.JobID)
		if err != nil {
			return fmt.Errorf("failed to delete document %d: %w", payload.JobID, err)
		}

	case SyncActionUpsert:
		job, err := processor.store.GetJobForSearch(ctx, payload.JobID)
		if err != nil {
			if err == sql.ErrNoRows {
				// the job was deleted or never committed - not retryable
				log.Warn().Int32("job_id", payload.JobID).
					Msg("job not found, dropping sync event")
				return nil
			}
			return fmt.Errorf("failed to get job %d: %w", payload.JobID, err)
		}

		if !job.Active {
			err = processor.esClient.DeleteJobDocument(ctx, payload.JobID)
			if err != nil {
				return fmt.Errorf("failed to delete document %d: %w", payload.JobID, err)
			}
			break
		}

		document := esearch.JobDocument{
			ID:          job.ID,
			Title:       job.Title,
			Description: job.Description,
			Company:     job.CompanyName,
			Location:    job.Location,
			Salary:      job.Salary,
			Active:      job.Active,
		}
		err = processor.esClient.UpsertJobDocument(ctx, document)
		if err != nil {
			return fmt.Errorf("failed to upsert document %d: %w", payload.JobID, err)
		}

	default:
		return fmt.Errorf("unknown sync action %q: %w", payload.Action, asynq.SkipRetry)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Msg("processed task")

	return nil
}
