package handler

import (
	"errors"
	"net/http"
	"strconv"

	"crm-backend/internal/repository"
	"crm-backend/internal/service"
	"crm-backend/pkg/pdf"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type InvoiceHandler struct {
	svc         service.InvoiceService
	companyRepo repository.CompanyRepository
	log         zerolog.Logger
}

func NewInvoiceHandler(svc service.InvoiceService, companyRepo repository.CompanyRepository, log zerolog.Logger) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, companyRepo: companyRepo, log: log}
}

// Create handles POST /api/create_invoice.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.log.Error().Err(err).Msg("failed to create invoice")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Invoice created successfully",
		"invoiceId": id,
	})
}

// List handles GET /api/invoices: latest 100 headers, newest date first.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.svc.ListLatest(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list invoices")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// Get handles GET /api/invoices/:id: one header with its items merged in.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice id"})
		return
	}

	inv, err := h.svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		h.log.Error().Err(err).Uint64("invoice_id", id).Msg("failed to fetch invoice")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoice"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// ListAll handles GET /api/customer/transection (legacy alias).
func (h *InvoiceHandler) ListAll(c *gin.Context) {
	invoices, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching data"})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// ListAllItems handles GET /api/customer/invoice/items (legacy alias).
func (h *InvoiceHandler) ListAllItems(c *gin.Context) {
	items, err := h.svc.ListAllItems(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list invoice items")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching data"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// RenderPDF handles GET /api/invoices/:id/pdf.
func (h *InvoiceHandler) RenderPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice id"})
		return
	}

	inv, err := h.svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		h.log.Error().Err(err).Uint64("invoice_id", id).Msg("failed to fetch invoice for pdf")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoice"})
		return
	}

	company, err := h.companyRepo.First(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to fetch company info for pdf")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
		return
	}

	data, err := pdf.RenderInvoice(inv, company)
	if err != nil {
		h.log.Error().Err(err).Uint64("invoice_id", id).Msg("failed to render invoice pdf")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
		return
	}

	c.Header("Content-Disposition", `inline; filename="invoice_`+c.Param("id")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
