package worker

import (
	"context"
	"fmt"

	"github.com/aalug/go-job-board/internal/esearch"
	"github.com/rs/zerolog/log"
)

// ReconcileSearchIndex backfills the search index from the jobs table on
// startup. The backfill only runs when the index is empty; a populated index
// is left alone so that restarts do not trigger a full re-index.
func (processor *RedisTaskProcessor) ReconcileSearchIndex(ctx context.Context) error {
	count, err := processor.esClient.CountJobDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}
	if count > 0 {
		log.Debug().Int64("documents", count).Msg("search index populated, skipping backfill")
		return nil
	}

	jobs, err := processor.store.ListActiveJobsForSearch(ctx)
	if err != nil {
		return fmt.Errorf("failed to list jobs for backfill: %w", err)
	}
	if len(jobs) == 0 {
		return nil
	}

	documents := make([]esearch.JobDocument, 0, len(jobs))
	for _, job := range jobs {
		documents = append(documents, esearch.JobDocument{
			ID:          job.ID,
			Title:       job.Title,
			Description: job.Description,
			Company:     job.CompanyName,
			Location:    job.Location,
			Salary:      job.Salary,
			Active:      job.Active,
		})
	}

	err = processor.esClient.BulkIndexJobDocuments(ctx, documents)
	if err != nil {
		return fmt.Errorf("failed to bulk index jobs: %w", err)
	}

	log.Info().Int("jobs", len(documents)).Msg("search index backfilled")
	return nil
}
