package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"lavka/internal/domain"
	"lavka/internal/repository"
)

func setup(t *testing.T) (*CustomerService, *ProductService, *OrderService, *repository.SQLStore) {
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
	return NewCustomerService(store), NewProductService(store), NewOrderService(store), store
}

func TestRegisterCustomer(t *testing.T) {
	ctx := context.Background()
	cs, _, _, store := setup(t)

	c, err := cs.Register(ctx, domain.Customer{
		Name: "Ann", Email: "a@b.co", Phone: "+1 555-123-4567", Address: "Main St",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.ID == 0 {
		t.Fatalf("no id")
	}

	id, err := store.CustomerIDByEmail(ctx, "a@b.co")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if id != c.ID {
		t.Fatalf("id mismatch: %d != %d", id, c.ID)
	}
}

func TestRegisterCustomer_Invalid(t *testing.T) {
	ctx := context.Background()
	cs, _, _, store := setup(t)

	_, err := cs.Register(ctx, domain.Customer{Name: "Ann", Email: "not-an-email", Phone: "+1 555-123-4567"})
	if !errors.Is(err, ErrInvalidCustomer) {
		t.Fatalf("expected invalid customer, got %v", err)
	}

	// при непрошедшей валидации хранилище не трогается
	if _, err := store.CustomerIDByEmail(ctx, "not-an-email"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected empty storage, got %v", err)
	}
}

func TestCreateProduct_Invalid(t *testing.T) {
	_, ps, _, _ := setup(t)

	if _, err := ps.Create(context.Background(), domain.Product{Name: "", Price: 1}); err != ErrInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := ps.Create(context.Background(), domain.Product{Name: "Tea", Price: -1}); err != ErrInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
