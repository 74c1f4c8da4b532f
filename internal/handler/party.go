package handler

import (
	"net/http"

	"crm-backend/internal/models"
	"crm-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type PartyHandler struct {
	repo repository.PartyRepository
	log  zerolog.Logger
}

func NewPartyHandler(repo repository.PartyRepository, log zerolog.Logger) *PartyHandler {
	return &PartyHandler{repo: repo, log: log}
}

// CreatePartyRequest mirrors the POST /api/venders payload; every field is
// required by the original contract.
type CreatePartyRequest struct {
	Name         string `json:"Name"`
	Phone        string `json:"phone"`
	Email        string `json:"Email"`
	Gstin        string `json:"Gstin"`
	CompanyName  string `json:"CompanyName"`
	Address      string `json:"Address"`
	City         string `json:"City"`
	State        string `json:"State"`
	Pin          string `json:"Pin"`
	Country      string `json:"Country"`
	CustomerType string `json:"CustomerType"`
}

func (h *PartyHandler) Create(c *gin.Context) {
	var req CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Name == "" || req.Phone == "" || req.Email == "" || req.Gstin == "" ||
		req.CompanyName == "" || req.Address == "" || req.City == "" ||
		req.State == "" || req.Pin == "" || req.Country == "" || req.CustomerType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	party := models.Party{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Gstin:        req.Gstin,
		CompanyName:  req.CompanyName,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Pin:          req.Pin,
		Country:      req.Country,
		CustomerType: req.CustomerType,
	}

	if err := h.repo.Create(c.Request.Context(), &party); err != nil {
		h.log.Error().Err(err).Msg("failed to create party")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding vendor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Party added successfully", "id": party.Sl})
}

func (h *PartyHandler) List(c *gin.Context) {
	parties, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list parties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching data"})
		return
	}
	c.JSON(http.StatusOK, parties)
}
