package handler

import (
	"net/http"

	"crm-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type CompanyHandler struct {
	repo repository.CompanyRepository
	log  zerolog.Logger
}

func NewCompanyHandler(repo repository.CompanyRepository, log zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{repo: repo, log: log}
}

// Get handles GET /company: the profile rows as an array.
func (h *CompanyHandler) Get(c *gin.Context) {
	rows, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch company info")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching data"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
