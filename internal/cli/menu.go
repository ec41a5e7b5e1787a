package cli

import (
	"bufio"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ims/internal/report"
	"github.com/vladislavdragonenkov/ims/internal/service/catalog"
	"github.com/vladislavdragonenkov/ims/internal/service/orders"
	"github.com/vladislavdragonenkov/ims/internal/service/sales"
)

// command — одна строка меню: номер, подпись и обработчик.
type command struct {
	code  int
	title string
	run   func(*Menu) error
}

// Таблица диспетчеризации меню. Номер 0 зарезервирован за выходом.
var commands = []command{
	{1, "Add New Supplier", (*Menu).addSupplier},
	{2, "View All Suppliers", (*Menu).listSuppliers},
	{3, "Update Supplier", (*Menu).updateSupplier},
	{4, "Delete Supplier", (*Menu).deleteSupplier},
	{5, "Search Suppliers", (*Menu).searchSuppliers},
	{6, "Add New Product", (*Menu).addProduct},
	{7, "View All Products", (*Menu).listProducts},
	{8, "Update Product", (*Menu).updateProduct},
	{9, "Delete Product", (*Menu).deleteProduct},
	{10, "Search Products", (*Menu).searchProducts},
	{11, "View Low Stock Products", (*Menu).lowStockProducts},
	{12, "Place New Order", (*Menu).placeOrder},
	{13, "View All Orders", (*Menu).listOrders},
	{14, "Delete Order", (*Menu).deleteOrder},
	{15, "Search Orders", (*Menu).searchOrders},
	{16, "View Order Summary by Supplier", (*Menu).orderSummary},
	{17, "Record Product Sale", (*Menu).recordSale},
	{18, "View All Sales", (*Menu).listSales},
	{19, "Generate Inventory Report (PDF)", (*Menu).inventoryReport},
	{20, "Generate Product Sales Report (PDF)", (*Menu).productSalesReport},
	{21, "View Order Summary Chart", (*Menu).orderChart},
}

// Menu — единственный интерактивный цикл приложения: читает номер команды,
// вызывает обработчик, печатает результат или ошибку и повторяет до выхода.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer

	catalog *catalog.Service
	orders  *orders.Service
	sales   *sales.Service
	reports *report.Generator
	logger  *log.Entry
}

// NewMenu создаёт контроллер меню поверх произвольных потоков ввода/вывода.
func NewMenu(
	in io.Reader,
	out io.Writer,
	cat *catalog.Service,
	ord *orders.Service,
	sal *sales.Service,
	reports *report.Generator,
	logger *log.Entry,
) *Menu {
	if logger == nil {
		logger = log.New().WithField("component", "menu")
	}
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: cat,
		orders:  ord,
		sales:   sal,
		reports: reports,
		logger:  logger,
	}
}

// Run крутит цикл меню до выбора 0 либо конца потока ввода.
// Любая ошибка обработчика печатается, цикл продолжается.
func (m *Menu) Run() error {
	dispatch := make(map[int]command, len(commands))
	for _, cmd := range commands {
		dispatch[cmd.code] = cmd
	}

	for {
		m.printMenu()
		line, ok := m.readLine("Enter your choice: ")
		if !ok {
			return nil
		}
		choice, err := parseInt(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}
		if choice == 0 {
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		}
		cmd, ok := dispatch[choice]
		if !ok {
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}
		if err := cmd.run(m); err != nil {
			m.logger.WithError(err).WithField("command", cmd.title).Debug("command failed")
			fmt.Fprintf(m.out, "ERROR: %s\n", errorMessage(err))
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n====== Inventory & Supplier Management ======")
	for _, cmd := range commands {
		fmt.Fprintf(m.out, "%d. %s\n", cmd.code, cmd.title)
	}
	fmt.Fprintln(m.out, "0. Exit")
}
