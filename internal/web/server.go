package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mfreitas/ecopontos/internal/service"
)

type Server struct {
	catalog *service.CatalogService
	points  *service.PointService
	engine  *gin.Engine
	logger  *slog.Logger
}

func NewServer(catalog *service.CatalogService, points *service.PointService, uploadsDir string, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		catalog: catalog,
		points:  points,
		engine:  gin.New(),
		logger:  logger,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(requestID())
	s.engine.Use(requestLogger(logger))
	// The browser front end runs on a different origin.
	s.engine.Use(cors.Default())

	s.registerRoutes(uploadsDir)
	return s
}

func (s *Server) registerRoutes(uploadsDir string) {
	s.engine.GET("/items", s.handleListItems)
	s.engine.GET("/points", s.handleFindPoints)
	s.engine.GET("/points/:id", s.handleGetPoint)
	s.engine.POST("/points", s.handleCreatePoint)
	s.engine.Static("/uploads", uploadsDir)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
