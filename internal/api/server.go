package api

import (
	"fmt"

	"github.com/aalug/go-job-board/docs"
	"github.com/aalug/go-job-board/internal/cache"
	"github.com/aalug/go-job-board/internal/config"
	db "github.com/aalug/go-job-board/internal/db/sqlc"
	"github.com/aalug/go-job-board/internal/esearch"
	"github.com/aalug/go-job-board/internal/worker"
	"github.com/aalug/go-job-board/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const baseUrl = "/api/v1"

// Server serves HTTP requests for the service
type Server struct {
	config           config.Config
	store            db.Store
	tokenMaker       token.Maker
	router           *gin.Engine
	esClient         esearch.ESearchClient
	taskDistributor  worker.TaskDistributor
	applicationCache cache.ApplicationCache
}

// NewServer creates a new HTTP server and setups routing
func NewServer(
	config config.Config,
	store db.Store,
	esClient esearch.ESearchClient,
	taskDistributor worker.TaskDistributor,
	applicationCache cache.ApplicationCache,
) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:           config,
		store:            store,
		tokenMaker:       tokenMaker,
		esClient:         esClient,
		taskDistributor:  taskDistributor,
		applicationCache: applicationCache,
	}

	server.setupRouter()

	return server, nil
}

// setupRouter sets up the HTTP routing
func (server *Server) setupRouter() {
	router := gin.Default()

	routerV1 := router.Group(baseUrl)

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	docs.SwaggerInfo.BasePath = baseUrl

	// === jobs ===
	routerV1.GET("/jobs/search", server.searchJobs)

	// ===== routes that require authentication =====
	authRoutesV1 := routerV1.Group("/").Use(authMiddleware(server.tokenMaker))

	// === jobs ===
	authRoutesV1.POST("/jobs", server.createJob)
	authRoutesV1.PUT("/jobs/:id", server.updateJob)
	authRoutesV1.DELETE("/jobs/:id", server.deactivateJob)

	// === job applications ===
	authRoutesV1.POST("/applications/apply/:id", server.applyForJob)
	authRoutesV1.PATCH("/applications/:id/status", server.changeApplicationStatus)
	authRoutesV1.GET("/applications/job/:id", server.listApplicationsForJob)

	// === resumes ===
	authRoutesV1.DELETE("/resumes/:id", server.deleteResume)

	server.router = router
}

// Start runs the HTTP server on a given address
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}
