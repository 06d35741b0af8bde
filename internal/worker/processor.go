package worker

import (
	"context"

	db "github.com/aalug/go-job-board/internal/db/sqlc"
	"github.com/aalug/go-job-board/internal/esearch"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type TaskProcessor interface {
	Start() error
	Shutdown()
	ProcessTaskSyncJob(ctx context.Context, task *asynq.Task) error
	ReconcileSearchIndex(ctx context.Context) error
}

type RedisTaskProcessor struct {
	server   *asynq.Server
	store    db.Store
	esClient esearch.ESearchClient
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store, esClient esearch.ESearchClient) TaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(
				func(ctx context.Context, task *asynq.Task, err error) {
					// log error and let asynq retry until MaxRetry is
					// reached; a poison event must not stall the queue
					log.Error().Err(err).Str("type", task.Type()).
						Bytes("payload", task.Payload()).
						Msg("process task failed")
				}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server:   server,
		store:    store,
		esClient: esClient,
	}
}

// Start starts the processor
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskSyncJob, processor.ProcessTaskSyncJob)

	return processor.server.Start(mux)
}

// Shutdown stops the processor, waiting for in-flight tasks to finish
func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
