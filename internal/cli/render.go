package cli

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pterm/pterm"

	"github.com/vladislavdragonenkov/ims/internal/domain"
	"github.com/vladislavdragonenkov/ims/internal/service/orders"
)

func (m *Menu) newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(m.out)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	return table
}

func (m *Menu) renderSuppliers(suppliers []domain.Supplier) {
	if len(suppliers) == 0 {
		fmt.Fprintln(m.out, "No suppliers found.")
		return
	}
	table := m.newTable([]string{"ID", "Name", "Contact"})
	for _, s := range suppliers {
		table.Append([]string{s.ID, s.Name, s.Contact})
	}
	table.Render()
}

func (m *Menu) renderProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products found.")
		return
	}
	table := m.newTable([]string{"SKU", "Name", "MOQ", "Cost/Unit", "Stock", "Threshold"})
	for _, p := range products {
		table.Append([]string{
			p.SKU, p.Name, strconv.Itoa(p.MOQ),
			domain.FormatMinor(p.CostMinor), strconv.Itoa(p.Stock), strconv.Itoa(p.Threshold),
		})
	}
	table.Render()
}

func (m *Menu) renderOrders(orderRows []domain.Order) {
	if len(orderRows) == 0 {
		fmt.Fprintln(m.out, "No orders found.")
		return
	}
	table := m.newTable([]string{"ID", "Supplier ID", "SKU", "Quantity", "Unit Cost", "Total Cost", "Date"})
	for _, o := range orderRows {
		table.Append([]string{
			o.ID, o.SupplierID, o.SKU, strconv.Itoa(o.Quantity),
			domain.FormatMinor(o.UnitCostMinor), domain.FormatMinor(o.TotalCostMinor),
			o.CreatedAt.Format("2006-01-02"),
		})
	}
	table.Render()
}

// renderChart печатает столбчатую диаграмму стоимости заказов по поставщикам.
// Значения переводятся в целые доллары: pterm рисует только int.
func (m *Menu) renderChart(summary []orders.SupplierCost) error {
	bars := make([]pterm.Bar, 0, len(summary))
	for _, s := range summary {
		bars = append(bars, pterm.Bar{
			Label: s.SupplierID,
			Value: int(s.TotalMinor / 100),
		})
	}

	chart, err := pterm.DefaultBarChart.
		WithBars(bars).
		WithShowValue().
		Srender()
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	fmt.Fprintln(m.out, "Total Order Costs by Supplier ($)")
	fmt.Fprint(m.out, chart)
	return nil
}
