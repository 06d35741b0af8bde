package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/aalug/go-job-board/internal/api"
	"github.com/aalug/go-job-board/internal/cache"
	"github.com/aalug/go-job-board/internal/config"
	db "github.com/aalug/go-job-board/internal/db/sqlc"
	"github.com/aalug/go-job-board/internal/esearch"
	"github.com/aalug/go-job-board/internal/worker"
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	// === config, env file ===
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load env file: ", err)
	}

	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// === database ===
	conn, err := sql.Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		log.Fatal("cannot connect to the db: ", err)
	}

	store := db.NewStore(conn)

	// === Elasticsearch ===
	newClient, err := esearch.ConnectWithElasticsearch(cfg.ElasticSearchAddress)
	if err != nil {
		log.Fatal("cannot connect to the elasticsearch: ", err)
	}
	esClient := esearch.NewClient(newClient)

	// === Redis: task queue and application cache ===
	redisOpt := asynq.RedisClientOpt{
		Addr: cfg.RedisAddress,
	}
	taskDistributor := worker.NewRedisTaskDistributor(redisOpt)

	ctx := context.Background()
	redisClient, err := cache.ConnectWithRedis(ctx, cfg.RedisAddress)
	if err != nil {
		log.Fatal("cannot connect to redis: ", err)
	}
	applicationCache := cache.NewRedisApplicationCache(redisClient)

	go runTaskProcessor(ctx, redisOpt, store, esClient)

	// === HTTP server ===
	server, err := api.NewServer(cfg, store, esClient, taskDistributor, applicationCache)
	if err != nil {
		log.Fatal("cannot create server: ", err)
	}

	err = server.Start(cfg.ServerAddress)
	if err != nil {
		log.Fatal("cannot start the server:", err)
	}
}

// runTaskProcessor backfills the search index when it is empty and then
// starts consuming sync tasks
func runTaskProcessor(ctx context.Context, redisOpt asynq.RedisClientOpt, store db.Store, esClient esearch.ESearchClient) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, esClient)

	err := taskProcessor.ReconcileSearchIndex(ctx)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to reconcile the search index")
	}

	zlog.Info().Msg("starting task processor")
	err = taskProcessor.Start()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to start task processor")
	}
}
