package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pocketledger/internal/importer"
	"pocketledger/internal/logging"
	"pocketledger/internal/summary"
)

// manualEntryRequest is the manual entry payload. The amount is already
// signed by the caller; no sign inference is applied on this path.
type manualEntryRequest struct {
	Date   string          `json:"date" binding:"required"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pocketledger",
	})
}

func (s *Server) listTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.List())
}

func (s *Server) addTransaction(c *gin.Context) {
	var req manualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := importer.BuildManual(req.Date, req.Name, req.Amount)
	s.store.Add(tx)

	c.JSON(http.StatusCreated, tx)
}

func (s *Server) importCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing multipart field 'file'"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close upload")
		}
	}()

	body, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := s.importer.ImportCSV(string(body))
	if err != nil {
		var docErr *importer.InvalidDocumentError
		if errors.As(err, &docErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": docErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.store.AddAll(result.Transactions)
	s.logger.Info("Appended imported transactions",
		logging.Field{Key: logging.FieldCount, Value: result.Imported},
		logging.Field{Key: logging.FieldFile, Value: fileHeader.Filename})

	c.JSON(http.StatusOK, result)
}

func (s *Server) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, summary.Summarize(s.store.List()))
}

func (s *Server) getInsights(c *gin.Context) {
	c.JSON(http.StatusOK, summary.BuildReport(summary.Summarize(s.store.List())))
}

func (s *Server) resetStore(c *gin.Context) {
	s.store.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "collection reset"})
}
