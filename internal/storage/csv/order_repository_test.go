package csv_test

import (
	"testing"
	"time"

	"github.com/vladislavdragonenkov/ims/internal/domain"
	csvstore "github.com/vladislavdragonenkov/ims/internal/storage/csv"
)

func newOrder(id string) domain.Order {
	return domain.Order{
		ID:             id,
		SupplierID:     "SUP001",
		SKU:            "A1",
		Quantity:       10,
		UnitCostMinor:  250,
		TotalCostMinor: 2500,
		CreatedAt:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := csvstore.NewOrderRepository(store)

	seed := []domain.Order{newOrder("ORD001"), newOrder("ORD002")}
	for _, o := range seed {
		if err := repo.Create(o); err != nil {
			t.Fatalf("create %s failed: %v", o.ID, err)
		}
	}

	orders, err := csvstore.NewOrderRepository(store).List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != len(seed) {
		t.Fatalf("expected %d orders, got %d", len(seed), len(orders))
	}
	for i, want := range seed {
		got := orders[i]
		if got.ID != want.ID || got.SupplierID != want.SupplierID || got.SKU != want.SKU {
			t.Errorf("row %d: expected %+v, got %+v", i, want, got)
		}
		if got.TotalCostMinor != want.TotalCostMinor {
			t.Errorf("row %d: expected total %d, got %d", i, want.TotalCostMinor, got.TotalCostMinor)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("row %d: expected timestamp %v, got %v", i, want.CreatedAt, got.CreatedAt)
		}
	}
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	repo := csvstore.NewOrderRepository(newTestStore(t))
	if _, err := repo.Get("ORD042"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderRepository_Delete(t *testing.T) {
	repo := csvstore.NewOrderRepository(newTestStore(t))
	if err := repo.Create(newOrder("ORD001")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Delete("ORD001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete("ORD001"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSaleRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := csvstore.NewSaleRepository(store)
	sale := domain.Sale{
		ID:         "SALE001",
		SKU:        "A1",
		Quantity:   3,
		PriceMinor: 499,
		CreatedAt:  time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(sale); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sales, err := csvstore.NewSaleRepository(store).List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected 1 sale, got %d", len(sales))
	}
	got := sales[0]
	if got.ID != sale.ID || got.SKU != sale.SKU || got.Quantity != sale.Quantity || got.PriceMinor != sale.PriceMinor {
		t.Fatalf("expected %+v, got %+v", sale, got)
	}
	if !got.CreatedAt.Equal(sale.CreatedAt) {
		t.Fatalf("expected timestamp %v, got %v", sale.CreatedAt, got.CreatedAt)
	}
}

func TestSaleRepository_NextID(t *testing.T) {
	repo := csvstore.NewSaleRepository(newTestStore(t))
	id, err := repo.NextID()
	if err != nil {
		t.Fatalf("next id failed: %v", err)
	}
	if id != "SALE001" {
		t.Fatalf("expected SALE001, got %s", id)
	}
}

func TestProductRepository_UpdateStock(t *testing.T) {
	repo := csvstore.NewProductRepository(newTestStore(t))
	product := domain.Product{SKU: "A1", Name: "Widget", MOQ: 10, CostMinor: 250, Stock: 5, Threshold: 10}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	product.Stock = 15
	if err := repo.Update(product); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := repo.Get("A1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Stock != 15 {
		t.Fatalf("expected stock 15, got %d", stored.Stock)
	}
}
