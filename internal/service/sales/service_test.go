package sales_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ims/internal/domain"
	"github.com/vladislavdragonenkov/ims/internal/service/orders"
	"github.com/vladislavdragonenkov/ims/internal/service/sales"
	"github.com/vladislavdragonenkov/ims/internal/storage/memory"
)

type fixture struct {
	sales    domain.SaleRepository
	products domain.ProductRepository
	svc      *sales.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		sales:    memory.NewSaleRepository(),
		products: memory.NewProductRepository(),
	}
	f.svc = sales.NewService(f.sales, f.products, nil)

	require.NoError(t, f.products.Create(domain.Product{SKU: "A1", Name: "Widget", MOQ: 10, CostMinor: 250, Stock: 5, Threshold: 10}))
	return f
}

func stock(t *testing.T, f *fixture, sku string) int {
	t.Helper()
	p, err := f.products.Get(sku)
	require.NoError(t, err)
	return p.Stock
}

func TestRecord_DecreasesStock(t *testing.T) {
	f := newFixture(t)

	sale, low, err := f.svc.Record("A1", 3, 499)
	require.NoError(t, err)
	require.Equal(t, "SALE001", sale.ID)
	require.True(t, low, "stock 2 is below threshold 10")
	require.Equal(t, 2, stock(t, f, "A1"))
}

func TestRecord_InsufficientStockLeavesStockUnchanged(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Record("A1", 6, 499)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Equal(t, 5, stock(t, f, "A1"))

	recorded, err := f.svc.Sales()
	require.NoError(t, err)
	require.Empty(t, recorded)
}

func TestRecord_UnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Record("ZZ", 1, 499)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecord_NoLowStockFlagAboveThreshold(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.products.Create(domain.Product{SKU: "B2", Name: "Gadget", MOQ: 1, CostMinor: 100, Stock: 100, Threshold: 10}))

	_, low, err := f.svc.Record("B2", 5, 199)
	require.NoError(t, err)
	require.False(t, low)
}

// Сценарий из постановки: MOQ 10, остаток 5; приход 10 единиц, затем
// продажа 20 отклоняется, продажа 15 обнуляет остаток.
func TestOrderThenSaleScenario(t *testing.T) {
	f := newFixture(t)
	suppliers := memory.NewSupplierRepository()
	require.NoError(t, suppliers.Create(domain.Supplier{ID: "SUP001", Name: "Acme", Contact: "sales@acme.com"}))
	orderSvc := orders.NewService(memory.NewOrderRepository(), suppliers, f.products, nil)

	_, err := orderSvc.Place("SUP001", "A1", 10, 250)
	require.NoError(t, err)
	require.Equal(t, 15, stock(t, f, "A1"))

	_, _, err = f.svc.Record("A1", 20, 499)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Equal(t, 15, stock(t, f, "A1"))

	_, low, err := f.svc.Record("A1", 15, 499)
	require.NoError(t, err)
	require.True(t, low)
	require.Equal(t, 0, stock(t, f, "A1"))
}

func TestBySKU(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.products.Create(domain.Product{SKU: "B2", Name: "Gadget", MOQ: 1, CostMinor: 100, Stock: 100, Threshold: 10}))

	_, _, err := f.svc.Record("A1", 1, 499)
	require.NoError(t, err)
	_, _, err = f.svc.Record("B2", 2, 199)
	require.NoError(t, err)
	_, _, err = f.svc.Record("A1", 1, 450)
	require.NoError(t, err)

	matched, err := f.svc.BySKU("A1")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	for _, sale := range matched {
		require.Equal(t, "A1", sale.SKU)
	}
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.products.Create(domain.Product{SKU: "B2", Name: "Gadget", MOQ: 1, CostMinor: 100, Stock: 100, Threshold: 10}))

	_, _, err := f.svc.Record("A1", 2, 500)
	require.NoError(t, err)
	_, _, err = f.svc.Record("A1", 3, 400)
	require.NoError(t, err)
	_, _, err = f.svc.Record("B2", 1, 199)
	require.NoError(t, err)

	summary, err := f.svc.Summary()
	require.NoError(t, err)
	require.Equal(t, []sales.ProductSales{
		{SKU: "A1", Name: "Widget", Units: 5, RevenueMinor: 2200},
		{SKU: "B2", Name: "Gadget", Units: 1, RevenueMinor: 199},
	}, summary)
}
