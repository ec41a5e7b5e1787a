package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ims/internal/domain"
	"github.com/vladislavdragonenkov/ims/internal/report"
	"github.com/vladislavdragonenkov/ims/internal/service/catalog"
	"github.com/vladislavdragonenkov/ims/internal/service/orders"
	"github.com/vladislavdragonenkov/ims/internal/service/sales"
	"github.com/vladislavdragonenkov/ims/internal/storage/memory"
)

func newGenerator(t *testing.T, dir string) *report.Generator {
	t.Helper()

	suppliers := memory.NewSupplierRepository()
	products := memory.NewProductRepository()
	orderRepo := memory.NewOrderRepository()
	saleRepo := memory.NewSaleRepository()

	cat := catalog.NewService(suppliers, products, orderRepo, saleRepo, 10, nil)
	ord := orders.NewService(orderRepo, suppliers, products, nil)
	sal := sales.NewService(saleRepo, products, nil)

	_, err := cat.AddSupplier(domain.Supplier{ID: "SUP001", Name: "Acme", Contact: "sales@acme.com"})
	require.NoError(t, err)
	_, err = cat.AddProduct(domain.Product{SKU: "A1", Name: "Widget", MOQ: 10, CostMinor: 250, Stock: 5, Threshold: 10})
	require.NoError(t, err)
	_, err = ord.Place("SUP001", "A1", 10, 250)
	require.NoError(t, err)
	_, _, err = sal.Record("A1", 3, 499)
	require.NoError(t, err)

	return report.NewGenerator(dir, cat, ord, sal, nil)
}

func TestInventoryReport(t *testing.T) {
	dir := t.TempDir()
	gen := newGenerator(t, dir)

	path, err := gen.Inventory(10)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))
	require.Contains(t, filepath.Base(path), "inventory_report_")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestProductSalesReport(t *testing.T) {
	dir := t.TempDir()
	gen := newGenerator(t, dir)

	path, err := gen.ProductSales("A1")
	require.NoError(t, err)
	require.Contains(t, filepath.Base(path), "product_sales_report_A1_")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestProductSalesReport_UnknownSKU(t *testing.T) {
	gen := newGenerator(t, t.TempDir())

	_, err := gen.ProductSales("ZZ")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryReport_UnwritableDir(t *testing.T) {
	gen := newGenerator(t, filepath.Join(t.TempDir(), "missing", "nested"))

	_, err := gen.Inventory(10)
	require.Error(t, err)
}
