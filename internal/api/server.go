package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"feedwatch-go/internal/api/handlers"
	"feedwatch-go/internal/api/middleware"
	"feedwatch-go/internal/config"
	"feedwatch-go/internal/services"
)

type Server struct {
	config *config.Config
	router *gin.Engine
	server *http.Server

	systemHandler   *handlers.SystemHandler
	cameraHandler   *handlers.CameraHandler
	filterHandler   *handlers.FilterHandler
	activityHandler *handlers.ActivityHandler
}

func NewServer(cfg *config.Config, container *services.ServiceContainer) *Server {
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		config:          cfg,
		router:          gin.New(),
		systemHandler:   handlers.NewSystemHandler(cfg, container.Cameras, container.Filters, container.Evaluator != nil),
		cameraHandler:   handlers.NewCameraHandler(container.Cameras, container.Frames),
		filterHandler:   handlers.NewFilterHandler(container.Filters),
		activityHandler: handlers.NewActivityHandler(container.Activity),
	}
}

func (s *Server) Setup() {
	s.setupMiddleware()
	s.setupRoutes()
	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
	}
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.Logger())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestID())
}

func (s *Server) Start() error {
	log.Info().Int("port", s.config.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the gin engine, used by handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
