package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"lavka/internal/repository"
	"lavka/internal/service"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	db, err := repository.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := repository.NewSQLStore(context.Background(), db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	customersSvc := service.NewCustomerService(store)
	productsSvc := service.NewProductService(store)
	ordersSvc := service.NewOrderService(store)
	return NewServer(customersSvc, productsSvc, ordersSvc)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestCustomerFlow(t *testing.T) {
	s := setupServer(t)
	// register
	w := doJSON(t, s, http.MethodPost, "/api/v1/customers", map[string]any{
		"name": "Ann", "email": "a@b.co", "phone": "+1 555-123-4567", "address": "Main St",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register code %v: %s", w.Code, w.Body.String())
	}
	// bad shape rejected
	w = doJSON(t, s, http.MethodPost, "/api/v1/customers", map[string]any{
		"name": "Ann", "email": "not-an-email", "phone": "+1 555-123-4567",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid customer code %v", w.Code)
	}
}

func TestOrderFlow(t *testing.T) {
	s := setupServer(t)
	// prepare customer and product
	w := doJSON(t, s, http.MethodPost, "/api/v1/customers", map[string]any{
		"name": "Ann", "email": "a@b.co", "phone": "+1 555-123-4567", "address": "Main St",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register code %v", w.Code)
	}
	w = doJSON(t, s, http.MethodPost, "/api/v1/products", map[string]any{
		"name": "Tea", "price": 9.5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("product code %v", w.Code)
	}

	// place order
	w = doJSON(t, s, http.MethodPost, "/api/v1/orders", map[string]any{
		"customer_email": "a@b.co",
		"products":       []map[string]any{{"name": "Tea", "price": 9.5}},
		"date":           "2026-08-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("order code %v: %s", w.Code, w.Body.String())
	}

	// unknown customer -> 404
	w = doJSON(t, s, http.MethodPost, "/api/v1/orders", map[string]any{
		"customer_email": "nobody@b.co",
		"products":       []map[string]any{{"name": "Tea", "price": 9.5}},
		"date":           "2026-08-01",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown customer code %v", w.Code)
	}

	// report reflects the single placed order
	w = doJSON(t, s, http.MethodGet, "/api/v1/reports/orders-by-date", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("report code %v", w.Code)
	}
	var counts []repository.DateCount
	if err := json.Unmarshal(w.Body.Bytes(), &counts); err != nil {
		t.Fatalf("report body: %v", err)
	}
	if len(counts) != 1 || counts[0].Date != "2026-08-01" || counts[0].Count != 1 {
		t.Fatalf("report rows: %+v", counts)
	}
}

func TestReportEmpty(t *testing.T) {
	s := setupServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/v1/reports/orders-by-date", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("report code %v", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Fatalf("empty report body: %s", got)
	}
}
