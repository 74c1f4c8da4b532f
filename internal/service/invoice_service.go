package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"crm-backend/internal/models"
	"crm-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// invoiceListLimit caps the /api/invoices read; there is no further pagination.
const invoiceListLimit = 100

const dateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidationError carries a client-facing message for a rejected payload.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// InvoiceItemRequest is one line of a create-invoice payload. Required fields
// are pointers so a missing key is distinguishable from a supplied zero.
type InvoiceItemRequest struct {
	ProductName         *string          `json:"productName"`
	Category            *string          `json:"category"`
	Quantity            *int             `json:"quantity"`
	SalePrice           *decimal.Decimal `json:"salePrice"`
	Total               *decimal.Decimal `json:"total"`
	TotalDiscountAmount decimal.Decimal  `json:"totalDiscountAmount"`
}

// CreateInvoiceRequest mirrors the wire payload of POST /api/create_invoice.
type CreateInvoiceRequest struct {
	CustomerName      *string              `json:"customerName"`
	Phone             *string              `json:"phone"`
	Email             *string              `json:"email"`
	Address           string               `json:"address"`
	City              string               `json:"city"`
	State             string               `json:"state"`
	Pin               string               `json:"pin"`
	Country           string               `json:"country"`
	CompanyName       string               `json:"companyName"`
	GstNo             string               `json:"gstNo"`
	Date              *string              `json:"date"`
	DiscountAmount    decimal.Decimal      `json:"discountAmount"`
	Cgst              decimal.Decimal      `json:"cgst"`
	Sgst              decimal.Decimal      `json:"sgst"`
	Igst              decimal.Decimal      `json:"igst"`
	TotalGst          decimal.Decimal      `json:"totalGst"`
	TotalAmount       *decimal.Decimal     `json:"totalAmount"`
	PaidAmount        decimal.Decimal      `json:"paidAmount"`
	BalanceAmount     decimal.Decimal      `json:"balanceAmount"`
	TransactionType   *string              `json:"transactionType"`
	TransactionStatus string               `json:"transactionStatus"`
	PaymentType       string               `json:"paymentType"`
	BillerName        string               `json:"billerName"`
	Items             []InvoiceItemRequest `json:"items"`
}

// InvoiceService validates sale payloads and persists invoices atomically.
type InvoiceService interface {
	// Create validates the payload and persists header + items in one
	// transaction, returning the assigned invoice id.
	Create(ctx context.Context, req *CreateInvoiceRequest) (uint, error)

	// Get returns one invoice with its items.
	Get(ctx context.Context, id uint) (*models.Invoice, error)

	// ListLatest returns the most recent invoices, capped at 100.
	ListLatest(ctx context.Context) ([]models.Invoice, error)

	// ListAll returns every invoice header (legacy transaction listing).
	ListAll(ctx context.Context) ([]models.Invoice, error)

	// ListAllItems returns every invoice line item (legacy listing).
	ListAllItems(ctx context.Context) ([]models.InvoiceItem, error)

	// SalesByDay aggregates per-day sale/revenue totals over a date range.
	SalesByDay(ctx context.Context, start, end time.Time) ([]repository.DailySales, error)
}

type invoiceService struct {
	repo repository.InvoiceRepository
}

func NewInvoiceService(repo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

func (s *invoiceService) Create(ctx context.Context, req *CreateInvoiceRequest) (uint, error) {
	date, err := validateCreateRequest(req)
	if err != nil {
		return 0, err
	}

	inv := models.Invoice{
		CustomerName:      *req.CustomerName,
		Phone:             *req.Phone,
		Email:             *req.Email,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		Pin:               req.Pin,
		Country:           req.Country,
		CompanyName:       req.CompanyName,
		Gstin:             req.GstNo,
		Date:              date,
		DiscountAmount:    req.DiscountAmount,
		Cgst:              req.Cgst,
		Sgst:              req.Sgst,
		Igst:              req.Igst,
		TotalGst:          req.TotalGst,
		TotalAmount:       *req.TotalAmount,
		PaidAmount:        req.PaidAmount,
		BalanceAmount:     req.BalanceAmount,
		TransectionType:   *req.TransactionType,
		TransectionStatus: defaultString(req.TransactionStatus, "Pending"),
		PaymentType:       defaultString(req.PaymentType, "Cash"),
		BillerName:        defaultString(req.BillerName, "Admin"),
	}

	items := make([]models.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		total := decimal.NewFromInt(int64(*it.Quantity)).Mul(*it.SalePrice)
		if it.Total != nil {
			total = *it.Total
		}
		items = append(items, models.InvoiceItem{
			ProductName:         *it.ProductName,
			Category:            *it.Category,
			Quantity:            *it.Quantity,
			SalePrice:           *it.SalePrice,
			Total:               total,
			TotalDiscountAmount: it.TotalDiscountAmount,
			TransectionType:     *req.TransactionType,
		})
	}

	if err := s.repo.CreateWithItems(ctx, &inv, items); err != nil {
		return 0, err
	}
	return inv.InvoiceID, nil
}

// validateCreateRequest applies the contract checks in order, failing on the
// first violation: required top-level fields, phone format, items list shape,
// then per-item fields. Returns the parsed invoice date.
func validateCreateRequest(req *CreateInvoiceRequest) (time.Time, error) {
	var missing []string
	if req.CustomerName == nil || *req.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if req.Phone == nil || *req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.Email == nil || *req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Date == nil || *req.Date == "" {
		missing = append(missing, "date")
	}
	if req.TotalAmount == nil {
		missing = append(missing, "totalAmount")
	}
	if req.TransactionType == nil || *req.TransactionType == "" {
		missing = append(missing, "transactionType")
	}
	if req.Items == nil {
		missing = append(missing, "items")
	}
	if len(missing) > 0 {
		return time.Time{}, validationErrorf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	if !phonePattern.MatchString(*req.Phone) {
		return time.Time{}, validationErrorf("Invalid phone number format")
	}

	if len(req.Items) == 0 {
		return time.Time{}, validationErrorf("Invalid items array")
	}

	for i, it := range req.Items {
		if it.ProductName == nil || *it.ProductName == "" ||
			it.Category == nil || *it.Category == "" ||
			it.Quantity == nil || it.SalePrice == nil {
			return time.Time{}, validationErrorf("Item %d missing required fields", i+1)
		}
		if *it.Quantity <= 0 || it.SalePrice.IsNegative() || it.SalePrice.IsZero() {
			return time.Time{}, validationErrorf("Item %d has invalid quantity or price", i+1)
		}
	}

	date, err := time.Parse(dateLayout, *req.Date)
	if err != nil {
		return time.Time{}, validationErrorf("Invalid date format, expected YYYY-MM-DD")
	}
	return date, nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func (s *invoiceService) Get(ctx context.Context, id uint) (*models.Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *invoiceService) ListLatest(ctx context.Context) ([]models.Invoice, error) {
	return s.repo.ListLatest(ctx, invoiceListLimit)
}

func (s *invoiceService) ListAll(ctx context.Context) ([]models.Invoice, error) {
	return s.repo.ListAll(ctx)
}

func (s *invoiceService) ListAllItems(ctx context.Context) ([]models.InvoiceItem, error) {
	return s.repo.ListAllItems(ctx)
}

func (s *invoiceService) SalesByDay(ctx context.Context, start, end time.Time) ([]repository.DailySales, error) {
	return s.repo.SalesByDay(ctx, start, end)
}
