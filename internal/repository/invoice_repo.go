package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-backend/internal/models"

	"gorm.io/gorm"
)

// InvoiceRepo is the MySQL implementation of InvoiceRepository.
type InvoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// CreateWithItems inserts the header, then all items in a single multi-row
// insert, inside one transaction. Any failure rolls both back; no invoice can
// exist without its items and no item without its committed header.
func (r *InvoiceRepo) CreateWithItems(ctx context.Context, inv *models.Invoice, items []models.InvoiceItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inv).Error; err != nil {
			return fmt.Errorf("failed to insert invoice header: %w", err)
		}
		for i := range items {
			items[i].InvoiceID = inv.InvoiceID
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to insert invoice items: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an invoice header with its items preloaded.
func (r *InvoiceRepo) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := r.db.WithContext(ctx).Preload("Items").First(&inv, "invoiceID = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return &inv, nil
}

// ListLatest returns up to limit headers, most recent date first.
func (r *InvoiceRepo) ListLatest(ctx context.Context, limit int) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	if err := r.db.WithContext(ctx).Order("Date desc").Limit(limit).Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (r *InvoiceRepo) ListAll(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	if err := r.db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (r *InvoiceRepo) ListAllItems(ctx context.Context) ([]models.InvoiceItem, error) {
	items := []models.InvoiceItem{}
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}
	return items, nil
}

// SalesByDay sums TotalAmount per calendar day over [start, end], split into
// sales vs revenue by transaction type.
func (r *InvoiceRepo) SalesByDay(ctx context.Context, start, end time.Time) ([]DailySales, error) {
	rows := []DailySales{}
	query := `
		SELECT
			DATE_FORMAT(Date, '%Y-%m-%d') AS date,
			SUM(CASE WHEN TransectionType = 'Sale' THEN TotalAmount ELSE 0 END) AS sales,
			SUM(CASE WHEN TransectionType = 'Revenue' THEN TotalAmount ELSE 0 END) AS revenue
		FROM tbl_invoice
		WHERE Date BETWEEN ? AND ?
		GROUP BY DATE(Date)
		ORDER BY DATE(Date)
	`
	if err := r.db.WithContext(ctx).Raw(query, start, end).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	return rows, nil
}
