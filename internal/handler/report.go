package handler

import (
	"net/http"
	"time"

	"crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ReportHandler struct {
	svc service.InvoiceService
	log zerolog.Logger
}

func NewReportHandler(svc service.InvoiceService, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log}
}

// DailySales handles GET /api/sales?start_date=&end_date=. Without a range it
// reports the last 7 days.
func (h *ReportHandler) DailySales(c *gin.Context) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	end := time.Now()
	start := end.AddDate(0, 0, -6)

	if startStr != "" && endStr != "" {
		parsedStart, err1 := time.Parse("2006-01-02", startStr)
		parsedEnd, err2 := time.Parse("2006-01-02", endStr)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range, expected YYYY-MM-DD"})
			return
		}
		start = parsedStart
		end = parsedEnd
	}
	// Include the whole end day
	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	rows, err := h.svc.SalesByDay(c.Request.Context(), start, end)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to aggregate sales")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching data"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
