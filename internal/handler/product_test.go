package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"crm-backend/internal/logger"
	"crm-backend/internal/models"
	"crm-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type mockProductRepo struct {
	products []models.Product
	deleted  []uint
	missing  bool
}

func (m *mockProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.Sl = uint(len(m.products) + 1)
	m.products = append(m.products, *product)
	return nil
}

func (m *mockProductRepo) List(ctx context.Context) ([]models.Product, error) {
	return m.products, nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *models.Product) error {
	if m.missing {
		return repository.ErrNotFound
	}
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, sl uint) error {
	if m.missing {
		return repository.ErrNotFound
	}
	m.deleted = append(m.deleted, sl)
	return nil
}

func newProductRouter(repo repository.ProductRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewWithWriter(bytes.NewBuffer(nil))
	h := NewProductHandler(repo, log)

	r := gin.New()
	r.GET("/data", h.List)
	r.POST("/data", h.Create)
	r.PUT("/data/:sl", h.Update)
	r.DELETE("/data/:sl", h.Delete)
	return r
}

func validProduct() gin.H {
	return gin.H{
		"ProductName":   "Widget",
		"Description":   "A widget",
		"Category":      "Tools",
		"HsnCode":       "8205",
		"Expiry":        "2027-01-01",
		"StoreLocation": "Rack 4",
		"BaseUnit":      "pcs",
		"Quantity":      10,
		"MinSellPrice":  45.50,
	}
}

func TestCreateProduct_Success(t *testing.T) {
	repo := &mockProductRepo{}
	r := newProductRouter(repo)

	w := performJSON(t, r, http.MethodPost, "/data", validProduct())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "Product added successfully" || resp.ID != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestCreateProduct_MissingFields(t *testing.T) {
	r := newProductRouter(&mockProductRepo{})

	body := validProduct()
	delete(body, "HsnCode")

	w := performJSON(t, r, http.MethodPost, "/data", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	r := newProductRouter(&mockProductRepo{missing: true})

	w := performJSON(t, r, http.MethodPut, "/data/99", validProduct())
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	r := newProductRouter(&mockProductRepo{missing: true})

	w := performJSON(t, r, http.MethodDelete, "/data/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteProduct_Success(t *testing.T) {
	repo := &mockProductRepo{}
	r := newProductRouter(repo)

	w := performJSON(t, r, http.MethodDelete, "/data/3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 3 {
		t.Errorf("expected sl 3 deleted, got %v", repo.deleted)
	}
}
