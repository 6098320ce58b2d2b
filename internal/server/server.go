// Package server is the HTTP shell around the ingestion engine. It decodes
// requests, hands plain data to the engine, and appends results to the
// caller-owned store; all decision logic lives in the engine packages.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pocketledger/internal/importer"
	"pocketledger/internal/logging"
	"pocketledger/internal/store"
)

// Server wires the engine to the HTTP routes.
type Server struct {
	store    store.TransactionStore
	importer *importer.Importer
	logger   logging.Logger
}

// New creates a Server over the given store and importer.
func New(st store.TransactionStore, imp *importer.Importer, logger logging.Logger) *Server {
	return &Server{store: st, importer: imp, logger: logger}
}

// Router builds the gin engine with CORS and all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", s.healthCheck)
	r.GET("/api/transactions", s.listTransactions)
	r.POST("/api/transactions", s.addTransaction)
	r.POST("/api/import", s.importCSV)
	r.GET("/api/summary", s.getSummary)
	r.GET("/api/insights", s.getInsights)
	r.POST("/api/reset", s.resetStore)

	return r
}

// Run starts the HTTP server on the given port.
func (s *Server) Run(port string) error {
	s.logger.Info("Server starting", logging.Field{Key: logging.FieldPort, Value: port})
	return s.Router().Run(":" + port)
}
