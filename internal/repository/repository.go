package repository

import (
	"context"
	"errors"
	"time"

	"crm-backend/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// DailySales is one row of the per-day sales aggregation.
type DailySales struct {
	Date    string          `json:"date"`
	Sales   decimal.Decimal `json:"sales"`
	Revenue decimal.Decimal `json:"revenue"`
}

// InvoiceRepository manages invoice header + line item persistence.
type InvoiceRepository interface {
	// CreateWithItems inserts the header and all items in one transaction.
	// On return the header carries its assigned invoiceID.
	CreateWithItems(ctx context.Context, inv *models.Invoice, items []models.InvoiceItem) error
	GetByID(ctx context.Context, id uint) (*models.Invoice, error)
	ListLatest(ctx context.Context, limit int) ([]models.Invoice, error)
	ListAll(ctx context.Context) ([]models.Invoice, error)
	ListAllItems(ctx context.Context) ([]models.InvoiceItem, error)
	SalesByDay(ctx context.Context, start, end time.Time) ([]DailySales, error)
}

// PartyRepository manages customer/vendor contact records.
type PartyRepository interface {
	Create(ctx context.Context, party *models.Party) error
	List(ctx context.Context) ([]models.Party, error)
}

// ProductRepository manages the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, sl uint) error
}

// CompanyRepository reads the company profile.
type CompanyRepository interface {
	List(ctx context.Context) ([]models.CompanyInfo, error)
	First(ctx context.Context) (*models.CompanyInfo, error)
}
