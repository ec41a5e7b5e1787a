package report

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ims/internal/domain"
	"github.com/vladislavdragonenkov/ims/internal/service/catalog"
	"github.com/vladislavdragonenkov/ims/internal/service/orders"
	"github.com/vladislavdragonenkov/ims/internal/service/sales"
)

// Метка времени в имени файла отчёта, как у исходных отчётов.
const fileTimestamp = "20060102_150405"

// Generator собирает PDF-отчёты по снимкам всех таблиц на момент вызова.
// Отчёты ничего не мутируют; ошибки записи возвращаются обёрнутыми.
type Generator struct {
	dir     string
	catalog *catalog.Service
	orders  *orders.Service
	sales   *sales.Service
	logger  *log.Entry

	// now подменяется в тестах для детерминированных имён файлов.
	now func() time.Time
}

// NewGenerator создаёт генератор отчётов, пишущий в каталог dir.
func NewGenerator(dir string, cat *catalog.Service, ord *orders.Service, sal *sales.Service, logger *log.Entry) *Generator {
	if logger == nil {
		logger = log.New().WithField("component", "report")
	}
	return &Generator{
		dir:     dir,
		catalog: cat,
		orders:  ord,
		sales:   sal,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Inventory формирует сводный отчёт: товары с низким остатком, стоимость
// заказов по поставщикам и продажи по товарам. Возвращает путь к PDF.
func (g *Generator) Inventory(threshold int) (string, error) {
	low, err := g.catalog.LowStock(threshold)
	if err != nil {
		return "", err
	}
	orderSummary, err := g.orders.SummaryBySupplier()
	if err != nil {
		return "", err
	}
	salesSummary, err := g.sales.Summary()
	if err != nil {
		return "", err
	}

	now := g.now()
	pdf := newDoc()
	title(pdf, "Inventory Report")
	generatedAt(pdf, now)

	heading(pdf, fmt.Sprintf("Low Stock Products (Threshold: %d)", threshold))
	if len(low) == 0 {
		paragraph(pdf, "No low stock products.")
	} else {
		rows := make([][]string, 0, len(low))
		for _, p := range low {
			rows = append(rows, []string{p.SKU, p.Name, strconv.Itoa(p.Stock), strconv.Itoa(p.Threshold)})
		}
		table(pdf, []string{"SKU", "Name", "Stock", "Threshold"}, rows)
	}

	heading(pdf, "Order Summary by Supplier")
	if len(orderSummary) == 0 {
		paragraph(pdf, "No orders found.")
	} else {
		rows := make([][]string, 0, len(orderSummary))
		for _, s := range orderSummary {
			rows = append(rows, []string{s.SupplierID, domain.FormatMinor(s.TotalMinor)})
		}
		table(pdf, []string{"Supplier ID", "Total Cost"}, rows)
	}

	heading(pdf, "Sales Summary by Product")
	if len(salesSummary) == 0 {
		paragraph(pdf, "No sales found.")
	} else {
		rows := make([][]string, 0, len(salesSummary))
		for _, s := range salesSummary {
			rows = append(rows, []string{s.SKU, s.Name, strconv.Itoa(s.Units), domain.FormatMinor(s.RevenueMinor)})
		}
		table(pdf, []string{"SKU", "Name", "Units Sold", "Revenue"}, rows)
	}

	path := filepath.Join(g.dir, fmt.Sprintf("inventory_report_%s.pdf", now.Format(fileTimestamp)))
	return g.write(pdf, path)
}

// ProductSales формирует отчёт по продажам одного товара: список
// транзакций с выручкой и итогом. ErrNotFound, если товара нет.
func (g *Generator) ProductSales(sku string) (string, error) {
	product, err := g.catalog.Product(sku)
	if err != nil {
		return "", err
	}
	productSales, err := g.sales.BySKU(sku)
	if err != nil {
		return "", err
	}

	now := g.now()
	pdf := newDoc()
	title(pdf, fmt.Sprintf("Product Sales Report: %s (%s)", product.Name, product.SKU))
	generatedAt(pdf, now)
	paragraph(pdf, fmt.Sprintf("Cost per Unit: %s", domain.FormatMinor(product.CostMinor)))

	if len(productSales) == 0 {
		paragraph(pdf, "No sales found for this product.")
	} else {
		var totalMinor int64
		rows := make([][]string, 0, len(productSales))
		for _, sale := range productSales {
			revenue := int64(sale.Quantity) * sale.PriceMinor
			totalMinor += revenue
			rows = append(rows, []string{
				sale.ID,
				strconv.Itoa(sale.Quantity),
				sale.CreatedAt.Format("2006-01-02"),
				domain.FormatMinor(sale.PriceMinor),
				domain.FormatMinor(revenue),
			})
		}
		table(pdf, []string{"Sale ID", "Quantity", "Date", "Price/Unit", "Revenue"}, rows)
		heading(pdf, fmt.Sprintf("Total Revenue for %s: %s", product.Name, domain.FormatMinor(totalMinor)))
	}

	path := filepath.Join(g.dir, fmt.Sprintf("product_sales_report_%s_%s.pdf", sku, now.Format(fileTimestamp)))
	return g.write(pdf, path)
}

func (g *Generator) write(pdf *fpdf.Fpdf, path string) (string, error) {
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	g.logger.WithField("path", path).Info("report generated")
	return path, nil
}
