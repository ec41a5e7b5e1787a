package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ims/internal/cli"
	"github.com/vladislavdragonenkov/ims/internal/report"
	"github.com/vladislavdragonenkov/ims/internal/service/catalog"
	"github.com/vladislavdragonenkov/ims/internal/service/orders"
	"github.com/vladislavdragonenkov/ims/internal/service/sales"
	"github.com/vladislavdragonenkov/ims/internal/storage/memory"
)

// runSession прогоняет меню по сценарию из строк ввода и возвращает весь вывод.
func runSession(t *testing.T, input []string) string {
	t.Helper()

	suppliers := memory.NewSupplierRepository()
	products := memory.NewProductRepository()
	orderRepo := memory.NewOrderRepository()
	saleRepo := memory.NewSaleRepository()

	cat := catalog.NewService(suppliers, products, orderRepo, saleRepo, 10, nil)
	ord := orders.NewService(orderRepo, suppliers, products, nil)
	sal := sales.NewService(saleRepo, products, nil)
	gen := report.NewGenerator(t.TempDir(), cat, ord, sal, nil)

	var out bytes.Buffer
	menu := cli.NewMenu(strings.NewReader(strings.Join(input, "\n")+"\n"), &out, cat, ord, sal, gen, nil)
	require.NoError(t, menu.Run())
	return out.String()
}

func TestMenu_FullSession(t *testing.T) {
	out := runSession(t, []string{
		"1", "Acme", "sales@acme.com", "y", // добавить поставщика
		"6", "A1", "Widget", "2.50", "10", "5", "", "y", // добавить товар
		"12", "SUP001", "A1", "10", "2.50", "y", // разместить заказ
		"17", "A1", "15", "4.99", // продать весь остаток
		"2",  // список поставщиков
		"99", // несуществующий пункт
		"0",
	})

	require.Contains(t, out, "Supplier SUP001 added successfully!")
	require.Contains(t, out, "Product A1 added successfully!")
	require.Contains(t, out, "Order ORD001 placed successfully! Total: $25.00")
	require.Contains(t, out, "Sale SALE001 recorded successfully!")
	require.Contains(t, out, "below its low-stock threshold")
	require.Contains(t, out, "Acme")
	require.Contains(t, out, "Invalid choice. Please try again.")
	require.Contains(t, out, "Goodbye!")
}

func TestMenu_SaleExceedingStockReportsError(t *testing.T) {
	out := runSession(t, []string{
		"1", "Acme", "sales@acme.com", "y",
		"6", "A1", "Widget", "2.50", "10", "5", "", "y",
		"17", "A1", "20", "4.99",
		"0",
	})

	require.Contains(t, out, "ERROR: not enough stock to complete the sale")
}

func TestMenu_MOQViolationReportsError(t *testing.T) {
	out := runSession(t, []string{
		"1", "Acme", "sales@acme.com", "y",
		"6", "A1", "Widget", "2.50", "10", "5", "", "y",
		"12", "SUP001", "A1", "9", "2.50", "y",
		"0",
	})

	require.Contains(t, out, "ERROR: quantity is below the product's minimum order quantity")
}

func TestMenu_CancelSkipsMutation(t *testing.T) {
	out := runSession(t, []string{
		"1", "Acme", "sales@acme.com", "n",
		"2",
		"0",
	})

	require.Contains(t, out, "Operation canceled.")
	require.Contains(t, out, "No suppliers found.")
}

func TestMenu_EOFTerminatesLoop(t *testing.T) {
	out := runSession(t, []string{"2"})
	require.Contains(t, out, "No suppliers found.")
}

func TestMenu_ReportsAndChart(t *testing.T) {
	out := runSession(t, []string{
		"1", "Acme", "sales@acme.com", "y",
		"6", "A1", "Widget", "2.50", "10", "5", "", "y",
		"12", "SUP001", "A1", "10", "2.50", "y",
		"19", "", // отчёт с порогом по умолчанию
		"20", "A1",
		"21",
		"0",
	})

	require.Contains(t, out, "Report generated:")
	require.Contains(t, out, "inventory_report_")
	require.Contains(t, out, "product_sales_report_A1_")
	require.Contains(t, out, "Total Order Costs by Supplier ($)")
}
