package cli

import (
	"fmt"
	"strconv"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

const canceled = "Operation canceled."

func (m *Menu) addSupplier() error {
	fmt.Fprintln(m.out, "\n--- Add New Supplier ---")
	name, err := m.promptString("Enter supplier name: ")
	if err != nil {
		return err
	}
	contact, err := m.promptString("Enter contact info (email or phone): ")
	if err != nil {
		return err
	}
	if !m.confirm("Confirm adding supplier") {
		fmt.Fprintln(m.out, canceled)
		return nil
	}

	supplier, err := m.catalog.AddSupplier(domain.Supplier{Name: name, Contact: contact})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Supplier %s added successfully!\n", supplier.ID)
	return nil
}

func (m *Menu) listSuppliers() error {
	suppliers, err := m.catalog.Suppliers()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\n--- All Suppliers ---")
	m.renderSuppliers(suppliers)
	return nil
}

func (m *Menu) updateSupplier() error {
	fmt.Fprintln(m.out, "\n--- Update Supplier ---")
	id, err := m.promptString("Enter Supplier ID (e.g., SUP001): ")
	if err != nil {
		return err
	}
	if _, err := m.catalog.Supplier(id); err != nil {
		return err
	}
	name, err := m.promptString("Enter new supplier name: ")
	if err != nil {
		return err
	}
	contact, err := m.promptString("Enter new contact info (email or phone): ")
	if err != nil {
		return err
	}
	if !m.confirm("Confirm updating supplier") {
		fmt.Fprintln(m.out, canceled)
		return nil
	}

	if err := m.catalog.UpdateSupplier(domain.Supplier{ID: id, Name: name, Contact: contact}); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Supplier %s updated successfully!\n", id)
	return nil
}

func (m *Menu) deleteSupplier() error {
	fmt.Fprintln(m.out, "\n--- Delete Supplier ---")
	id, err := m.promptString("Enter Supplier ID (e.g., SUP001): ")
	if err != nil {
		return err
	}
	if _, err := m.catalog.Supplier(id); err != nil {
		return err
	}
	if !m.confirm("Confirm deleting supplier") {
		fmt.Fprintln(m.out, canceled)
		return nil
	}

	if err := m.catalog.DeleteSupplier(id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Supplier deleted successfully.")
	return nil
}

func (m *Menu) searchSuppliers() error {
	fmt.Fprintln(m.out, "\n--- Search Suppliers ---")
	term, err := m.promptString("Enter name to search: ")
	if err != nil {
		return err
	}
	suppliers, err := m.catalog.SearchSuppliers(term)
	if err != nil {
		return err
	}
	if len(suppliers) == 0 {
		fmt.Fprintln(m.out, "No suppliers found matching the search term.")
		return nil
	}
	m.renderSuppliers(suppliers)
	return nil
}

func (m *Menu) addProduct() error {
	fmt.Fprintln(m.out, "\n--- Add New Product ---")
	sku, err := m.promptString("Enter SKU: ")
	if err != nil {
		return err
	}
	name, err := m.promptString("Enter product name: ")
	if err != nil {
		return err
	}
	cost, err := m.promptMoney("Enter cost per unit: ")
	if err != nil {
		return err
	}
	moq, err := m.promptInt("Enter minimum order quantity (MOQ): ")
	if err != nil {
		return err
	}
	stockLine, ok := m.readLine("Enter initial stock: ")
	if !ok {
		return errBadInput
	}
	stock, err := parseInt(stockLine)
	if err != nil || stock < 0 {
		return fmt.Errorf("%w: stock must be a non-negative integer", errBadInput)
	}
	thresholdLine, ok := m.readLine("Enter low-stock threshold (blank for default): ")
	if !ok {
		return errBadInput
	}
	threshold := 0
	if thresholdLine != "" {
		if threshold, err = parseInt(thresholdLine); err != nil {
			return fmt.Errorf("%w: threshold must be an integer", errBadInput)
		}
	}
	if !m.confirm("Confirm adding product") {
		fmt.Fprintln(m.out, canceled)
		return nil
	}

	product, err := m.catalog.AddProduct(domain.Product{
		SKU:       sku,
		Name:      name,
		MOQ:       moq,
		CostMinor: cost,
		Stock:     stock,
		Threshold: threshold,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Product %s added successfully!\n", product.SKU)
	return nil
}

func (m *Menu) listProducts() error {
	products, err := m.catalog.Products()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\n--- All Products ---")
	m.renderProducts(products)
	return nil
}

func (m *Menu) updateProduct() error {
	fmt.Fprintln(m.out, "\n--- Update Product ---")
	sku, err := m.promptString("Enter SKU: ")
	if err != nil {
		return err
	}
	current, err := m.catalog.Product(sku)
	if err != nil {
		return err
	}
	name, err := m.promptString("Enter new product name: ")
	if err != nil {
		return err
	}
	cost, err := m.promptMoney("Enter new cost per unit: ")
	if err != nil {
		return err
	}
	moq, err := m.promptInt("Enter new minimum order quantity (MOQ): ")
	if err != nil {
		return err
	}
	threshold, err := m.promptInt("Enter new low-stock threshold: ")
	if err != nil {
		return err
	}
	if !m.confirm("Confirm updating product") {
		fmt.Fprintln(m.out, canceled)
		return nil
	}

	// Остаток правится только заказами и продажами, поэтому сохраняется как есть.
	err = m.catalog.UpdateProduct(domain.Product{
		SKU:       sku,
		Name:      name,
		MOQ:       moq,
		CostMinor: cost,
		Stock:     current.Stock,
		Threshold: threshold,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Product %s updated successfully!\n", sku)
	return nil
}

func (m *Menu) deleteProduct() error {
	fmt.Fprintln(m.out, "\n--- Delete Product ---")
	sku, err := m.promptString("Enter SKU: ")
	if err != nil {
		return err
	}
	if _, err := m.catalog.Product(sku); err != nil {
		return err
	}
	if !m.confirm("Confirm deleting product") {
		fmt.Fprintln(m.out, canceled)
		return nil
	}

	if err := m.catalog.DeleteProduct(sku); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product deleted successfully.")
	return nil
}

func (m *Menu) searchProducts() error {
	fmt.Fprintln(m.out, "\n--- Search Products ---")
	term, err := m.promptString("Enter name or SKU to search: ")
	if err != nil {
		return err
	}
	products, err := m.catalog.SearchProducts(term)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products found matching the search term.")
		return nil
	}
	m.renderProducts(products)
	return nil
}

func (m *Menu) lowStockProducts() error {
	fmt.Fprintln(m.out, "\n--- Low Stock Products ---")
	line, ok := m.readLine("Enter low stock threshold (blank for per-product): ")
	if !ok {
		return errBadInput
	}
	threshold := 0
	if line != "" {
		var err error
		if threshold, err = parseInt(line); err != nil {
			return fmt.Errorf("%w: threshold must be an integer", errBadInput)
		}
	}
	products, err := m.catalog.LowStock(threshold)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No low stock products.")
		return nil
	}
	m.renderProducts(products)
	return nil
}

func (m *Menu) placeOrder() error {
	fmt.Fprintln(m.out, "\n--- Place New Order ---")
	supplierID, err := m.promptString("Enter Supplier ID (e.g., SUP001): ")
	if err != nil {
		return err
	}
	sku, err := m.promptString("Enter SKU: ")
	if err != nil {
		return err
	}
	qty, err := m.promptInt("Enter quantity: ")
	if err != nil {
		return err
	}
	cost, err := m.promptMoney("Enter cost per unit: ")
	if err != nil {
		return err
	}
	if !m.confirm("Confirm placing order") {
		fmt.Fprintln(m.out, canceled)
		return nil
	}

	order, err := m.orders.Place(supplierID, sku, qty, cost)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Order %s placed successfully! Total: %s\n", order.ID, domain.FormatMinor(order.TotalCostMinor))
	return nil
}

func (m *Menu) listOrders() error {
	orderRows, err := m.orders.Orders()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\n--- All Orders ---")
	m.renderOrders(orderRows)
	return nil
}

func (m *Menu) deleteOrder() error {
	fmt.Fprintln(m.out, "\n--- Delete Order ---")
	id, err := m.promptString("Enter Order ID (e.g., ORD001): ")
	if err != nil {
		return err
	}
	if !m.confirm("Confirm deleting order") {
		fmt.Fprintln(m.out, canceled)
		return nil
	}

	if err := m.orders.Delete(id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Order deleted successfully.")
	return nil
}

func (m *Menu) searchOrders() error {
	fmt.Fprintln(m.out, "\n--- Search Orders ---")
	term, err := m.promptString("Enter order ID, supplier, SKU or date to search: ")
	if err != nil {
		return err
	}
	orderRows, err := m.orders.Search(term)
	if err != nil {
		return err
	}
	if len(orderRows) == 0 {
		fmt.Fprintln(m.out, "No orders found matching the search term.")
		return nil
	}
	m.renderOrders(orderRows)
	return nil
}

func (m *Menu) orderSummary() error {
	summary, err := m.orders.SummaryBySupplier()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\n--- Order Summary by Supplier ---")
	if len(summary) == 0 {
		fmt.Fprintln(m.out, "No orders found for summary.")
		return nil
	}
	table := m.newTable([]string{"Supplier ID", "Total Cost"})
	for _, s := range summary {
		table.Append([]string{s.SupplierID, domain.FormatMinor(s.TotalMinor)})
	}
	table.Render()
	return nil
}

func (m *Menu) recordSale() error {
	fmt.Fprintln(m.out, "\n--- Record Product Sale ---")
	sku, err := m.promptString("Enter SKU: ")
	if err != nil {
		return err
	}
	qty, err := m.promptInt("Enter quantity sold: ")
	if err != nil {
		return err
	}
	price, err := m.promptMoney("Enter sale price per unit: ")
	if err != nil {
		return err
	}

	sale, low, err := m.sales.Record(sku, qty, price)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Sale %s recorded successfully!\n", sale.ID)
	if low {
		fmt.Fprintf(m.out, "WARNING: stock for %s is below its low-stock threshold.\n", sku)
	}
	return nil
}

func (m *Menu) listSales() error {
	saleRows, err := m.sales.Sales()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\n--- All Sales ---")
	if len(saleRows) == 0 {
		fmt.Fprintln(m.out, "No sales found.")
		return nil
	}
	table := m.newTable([]string{"ID", "SKU", "Quantity", "Price", "Date"})
	for _, s := range saleRows {
		table.Append([]string{
			s.ID, s.SKU, strconv.Itoa(s.Quantity),
			domain.FormatMinor(s.PriceMinor), s.CreatedAt.Format("2006-01-02"),
		})
	}
	table.Render()
	return nil
}

func (m *Menu) inventoryReport() error {
	fmt.Fprintln(m.out, "\n--- Generate Inventory Report ---")
	line, ok := m.readLine("Enter low stock threshold (default 10): ")
	if !ok {
		return errBadInput
	}
	threshold := 10
	if line != "" {
		var err error
		if threshold, err = parseInt(line); err != nil || threshold <= 0 {
			return fmt.Errorf("%w: threshold must be a positive integer", errBadInput)
		}
	}

	path, err := m.reports.Inventory(threshold)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Report generated: %s\n", path)
	return nil
}

func (m *Menu) productSalesReport() error {
	fmt.Fprintln(m.out, "\n--- Generate Product Sales Report ---")
	sku, err := m.promptString("Enter SKU: ")
	if err != nil {
		return err
	}

	path, err := m.reports.ProductSales(sku)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Report generated: %s\n", path)
	return nil
}

func (m *Menu) orderChart() error {
	summary, err := m.orders.SummaryBySupplier()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\n--- Order Summary Chart ---")
	if len(summary) == 0 {
		fmt.Fprintln(m.out, "No orders found for chart.")
		return nil
	}
	return m.renderChart(summary)
}
