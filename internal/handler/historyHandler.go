package handler

import (
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"mbg-project/internal/models"

	"github.com/gin-gonic/gin"
)

// HistoryReader is the read side of the riwayat store.
//
//go:generate mockery --name=HistoryReader --output=./mocks --case=underscore
type HistoryReader interface {
	List(ctx context.Context) ([]models.HistoricalPayment, error)
}

// ActivityReader serves the recent-activity feed.
//
//go:generate mockery --name=ActivityReader --output=./mocks --case=underscore
type ActivityReader interface {
	Recent(ctx context.Context) []models.ActivityEvent
}

type HistoryHandler struct {
	history  HistoryReader
	activity ActivityReader
}

func NewHistoryHandler(history HistoryReader, activity ActivityReader) *HistoryHandler {
	return &HistoryHandler{history: history, activity: activity}
}

func (h *HistoryHandler) ListHistory(c *gin.Context) {
	records, err := h.history.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []models.HistoricalPayment{}
	}
	c.JSON(http.StatusOK, records)
}

// ExportHistory streams the riwayat list as CSV, the download offered on the
// history page.
func (h *HistoryHandler) ExportHistory(c *gin.Context) {
	records, err := h.history.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="riwayat-pembayaran.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"ID", "ID Pelanggan", "Nama Pelanggan", "Tanggal", "Tanggal Selesai", "Total Bayar", "Status"})
	for _, rec := range records {
		_ = w.Write([]string{
			rec.ID,
			rec.CustomerID,
			rec.CustomerName,
			rec.Date.Format(time.RFC3339),
			rec.CompletedAt.Format(time.RFC3339),
			strconv.Itoa(rec.Total),
			rec.Status,
		})
	}
	w.Flush()
}

func (h *HistoryHandler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.activity.Recent(c.Request.Context()))
}
