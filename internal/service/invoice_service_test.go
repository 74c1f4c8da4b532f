package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"crm-backend/internal/models"
	"crm-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// mock implementation
type mockInvoiceRepo struct {
	createdHeader *models.Invoice
	createdItems  []models.InvoiceItem
	createErr     error
	latestLimit   int
	nextID        uint
}

func (m *mockInvoiceRepo) CreateWithItems(ctx context.Context, inv *models.Invoice, items []models.InvoiceItem) error {
	if m.createErr != nil {
		return m.createErr
	}
	inv.InvoiceID = m.nextID
	for i := range items {
		items[i].InvoiceID = inv.InvoiceID
	}
	m.createdHeader = inv
	m.createdItems = items
	return nil
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	if m.createdHeader != nil && m.createdHeader.InvoiceID == id {
		inv := *m.createdHeader
		inv.Items = m.createdItems
		return &inv, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockInvoiceRepo) ListLatest(ctx context.Context, limit int) ([]models.Invoice, error) {
	m.latestLimit = limit
	return []models.Invoice{}, nil
}

func (m *mockInvoiceRepo) ListAll(ctx context.Context) ([]models.Invoice, error) {
	return []models.Invoice{}, nil
}

func (m *mockInvoiceRepo) ListAllItems(ctx context.Context) ([]models.InvoiceItem, error) {
	return []models.InvoiceItem{}, nil
}

func (m *mockInvoiceRepo) SalesByDay(ctx context.Context, start, end time.Time) ([]repository.DailySales, error) {
	return []repository.DailySales{}, nil
}

func strPtr(s string) *string                   { return &s }
func intPtr(i int) *int                         { return &i }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func validRequest() *CreateInvoiceRequest {
	return &CreateInvoiceRequest{
		CustomerName:    strPtr("Asha Traders"),
		Phone:           strPtr("9876543210"),
		Email:           strPtr("asha@example.com"),
		Date:            strPtr("2026-03-15"),
		TotalAmount:     decPtr(decimal.NewFromInt(100)),
		TransactionType: strPtr("Sale"),
		Items: []InvoiceItemRequest{
			{
				ProductName: strPtr("Widget"),
				Category:    strPtr("Tools"),
				Quantity:    intPtr(2),
				SalePrice:   decPtr(decimal.NewFromInt(50)),
			},
		},
	}
}

func TestCreateInvoice_Success(t *testing.T) {
	repo := &mockInvoiceRepo{nextID: 42}
	svc := NewInvoiceService(repo)

	id, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("expected invoice id 42, got %d", id)
	}
	if repo.createdHeader == nil {
		t.Fatal("header was not persisted")
	}
	if len(repo.createdItems) != 1 {
		t.Fatalf("expected 1 item, got %d", len(repo.createdItems))
	}

	item := repo.createdItems[0]
	if item.InvoiceID != 42 {
		t.Errorf("item not linked to header: invoiceID=%d", item.InvoiceID)
	}
	if !item.Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected line total 100 (2*50), got %s", item.Total)
	}
	if item.TransectionType != "Sale" {
		t.Errorf("item should copy the parent transaction type, got %q", item.TransectionType)
	}
}

func TestCreateInvoice_Defaults(t *testing.T) {
	repo := &mockInvoiceRepo{nextID: 1}
	svc := NewInvoiceService(repo)

	if _, err := svc.Create(context.Background(), validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := repo.createdHeader
	if h.TransectionStatus != "Pending" {
		t.Errorf("expected status Pending, got %q", h.TransectionStatus)
	}
	if h.PaymentType != "Cash" {
		t.Errorf("expected payment type Cash, got %q", h.PaymentType)
	}
	if h.BillerName != "Admin" {
		t.Errorf("expected biller Admin, got %q", h.BillerName)
	}
}

func TestCreateInvoice_ExplicitItemTotalWins(t *testing.T) {
	repo := &mockInvoiceRepo{nextID: 1}
	svc := NewInvoiceService(repo)

	req := validRequest()
	req.Items[0].Total = decPtr(decimal.NewFromInt(90)) // discounted override

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.createdItems[0].Total.Equal(decimal.NewFromInt(90)) {
		t.Errorf("client-supplied total should win, got %s", repo.createdItems[0].Total)
	}
}

func TestCreateInvoice_MissingFields(t *testing.T) {
	repo := &mockInvoiceRepo{nextID: 1}
	svc := NewInvoiceService(repo)

	req := validRequest()
	req.Phone = nil
	req.TotalAmount = nil

	_, err := svc.Create(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := "Missing required fields: phone, totalAmount"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if repo.createdHeader != nil {
		t.Error("nothing should be written on validation failure")
	}
}

func TestCreateInvoice_PhoneFormat(t *testing.T) {
	cases := []string{"12345", "12345678901", "abcdefghij", "98765 4321"}
	for _, phone := range cases {
		repo := &mockInvoiceRepo{nextID: 1}
		svc := NewInvoiceService(repo)

		req := validRequest()
		req.Phone = strPtr(phone)

		_, err := svc.Create(context.Background(), req)
		if err == nil || err.Error() != "Invalid phone number format" {
			t.Errorf("phone %q: expected format error, got %v", phone, err)
		}
		if repo.createdHeader != nil {
			t.Errorf("phone %q: nothing should be written", phone)
		}
	}
}

func TestCreateInvoice_EmptyItems(t *testing.T) {
	svc := NewInvoiceService(&mockInvoiceRepo{nextID: 1})

	req := validRequest()
	req.Items = []InvoiceItemRequest{}

	_, err := svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Invalid items array" {
		t.Errorf("expected items array error, got %v", err)
	}
}

func TestCreateInvoice_ItemMissingFields(t *testing.T) {
	svc := NewInvoiceService(&mockInvoiceRepo{nextID: 1})

	req := validRequest()
	req.Items = append(req.Items, InvoiceItemRequest{
		ProductName: strPtr("Bolt"),
		Category:    strPtr("Tools"),
		Quantity:    intPtr(3),
		// salePrice absent
	})

	_, err := svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Item 2 missing required fields" {
		t.Errorf("expected item 2 error, got %v", err)
	}
}

func TestCreateInvoice_ZeroQuantityRejected(t *testing.T) {
	svc := NewInvoiceService(&mockInvoiceRepo{nextID: 1})

	req := validRequest()
	req.Items[0].Quantity = intPtr(0)

	_, err := svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Item 1 has invalid quantity or price" {
		t.Errorf("expected zero quantity rejection, got %v", err)
	}
}

func TestCreateInvoice_ZeroPriceRejected(t *testing.T) {
	svc := NewInvoiceService(&mockInvoiceRepo{nextID: 1})

	req := validRequest()
	req.Items[0].SalePrice = decPtr(decimal.Zero)

	_, err := svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Item 1 has invalid quantity or price" {
		t.Errorf("expected zero price rejection, got %v", err)
	}
}

func TestCreateInvoice_BadDate(t *testing.T) {
	svc := NewInvoiceService(&mockInvoiceRepo{nextID: 1})

	req := validRequest()
	req.Date = strPtr("15/03/2026")

	_, err := svc.Create(context.Background(), req)
	if err == nil || !strings.Contains(err.Error(), "Invalid date format") {
		t.Errorf("expected date format error, got %v", err)
	}
}

func TestCreateInvoice_RepoErrorPassthrough(t *testing.T) {
	repoErr := errors.New("deadlock found")
	svc := NewInvoiceService(&mockInvoiceRepo{createErr: repoErr})

	_, err := svc.Create(context.Background(), validRequest())
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error passthrough, got %v", err)
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Error("persistence failure must not look like a validation error")
	}
}

func TestCreateInvoice_RoundTrip(t *testing.T) {
	repo := &mockInvoiceRepo{nextID: 7}
	svc := NewInvoiceService(repo)

	id, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inv.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(inv.Items))
	}
	if !inv.Items[0].Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected item total 100, got %s", inv.Items[0].Total)
	}
}

func TestListLatest_CapsAt100(t *testing.T) {
	repo := &mockInvoiceRepo{}
	svc := NewInvoiceService(repo)

	if _, err := svc.ListLatest(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.latestLimit != 100 {
		t.Errorf("expected limit 100, got %d", repo.latestLimit)
	}
}
