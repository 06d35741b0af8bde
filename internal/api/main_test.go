package api

import (
	"os"
	"testing"
	"time"

	"github.com/aalug/go-job-board/internal/cache"
	"github.com/aalug/go-job-board/internal/config"
	db "github.com/aalug/go-job-board/internal/db/sqlc"
	"github.com/aalug/go-job-board/internal/esearch"
	"github.com/aalug/go-job-board/internal/worker"
	"github.com/aalug/go-job-board/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestServer(
	t *testing.T,
	store db.Store,
	esClient esearch.ESearchClient,
	taskDistributor worker.TaskDistributor,
	applicationCache cache.ApplicationCache,
) *Server {
	cfg := config.Config{
		TokenSymmetricKey:   utils.RandomString(32),
		AccessTokenDuration: time.Minute,
	}

	server, err := NewServer(cfg, store, esClient, taskDistributor, applicationCache)
	require.NoError(t, err)

	return server
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}
