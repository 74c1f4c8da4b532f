package handler

import (
	"errors"
	"net/http"
	"strconv"

	"crm-backend/internal/models"
	"crm-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	repo repository.ProductRepository
	log  zerolog.Logger
}

func NewProductHandler(repo repository.ProductRepository, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{repo: repo, log: log}
}

// ProductRequest mirrors the POST/PUT /data payload. Numeric fields default
// to zero when omitted.
type ProductRequest struct {
	ProductName       string          `json:"ProductName"`
	Description       string          `json:"Description"`
	Category          string          `json:"Category"`
	HsnCode           string          `json:"HsnCode"`
	Quantity          int             `json:"Quantity"`
	ManufacturePrice  decimal.Decimal `json:"ManufacturePrice"`
	Cgst              decimal.Decimal `json:"Cgst"`
	Sgst              decimal.Decimal `json:"Sgst"`
	Igst              decimal.Decimal `json:"Igst"`
	TotalGst          decimal.Decimal `json:"TotalGst"`
	Expiry            string          `json:"Expiry"`
	MinSellPrice      decimal.Decimal `json:"MinSellPrice"`
	WholeSaleQuantity int             `json:"WholeSaleQuantity"`
	WholeSalePrice    decimal.Decimal `json:"WholeSalePrice"`
	StoreLocation     string          `json:"StoreLocation"`
	BaseUnit          string          `json:"BaseUnit"`
	BaseUnitPrice     decimal.Decimal `json:"BaseUnitPrice"`
}

func (req *ProductRequest) validate() bool {
	return req.ProductName != "" && req.Description != "" && req.Category != "" &&
		req.HsnCode != "" && req.Expiry != "" && req.StoreLocation != "" && req.BaseUnit != ""
}

func (req *ProductRequest) toModel() models.Product {
	return models.Product{
		ProductName:       req.ProductName,
		Description:       req.Description,
		Category:          req.Category,
		HsnCode:           req.HsnCode,
		Quantity:          req.Quantity,
		ManufacturePrice:  req.ManufacturePrice,
		Cgst:              req.Cgst,
		Sgst:              req.Sgst,
		Igst:              req.Igst,
		TotalGst:          req.TotalGst,
		Expiry:            req.Expiry,
		MinSellPrice:      req.MinSellPrice,
		WholeSaleQuantity: req.WholeSaleQuantity,
		WholeSalePrice:    req.WholeSalePrice,
		StoreLocation:     req.StoreLocation,
		BaseUnit:          req.BaseUnit,
		BaseUnitPrice:     req.BaseUnitPrice,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching data"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !req.validate() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	product := req.toModel()
	if err := h.repo.Create(c.Request.Context(), &product); err != nil {
		h.log.Error().Err(err).Msg("failed to create product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product added successfully", "id": product.Sl})
}

// Update handles PUT /data/:sl as an idempotent full replace of the row.
func (h *ProductHandler) Update(c *gin.Context) {
	sl, err := strconv.ParseUint(c.Param("sl"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !req.validate() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	product := req.toModel()
	product.Sl = uint(sl)
	if err := h.repo.Update(c.Request.Context(), &product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.log.Error().Err(err).Uint64("sl", sl).Msg("failed to update product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	sl, err := strconv.ParseUint(c.Param("sl"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), uint(sl)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.log.Error().Err(err).Uint64("sl", sl).Msg("failed to delete product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
