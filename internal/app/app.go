package app

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ims/internal/cli"
	"github.com/vladislavdragonenkov/ims/internal/domain"
	"github.com/vladislavdragonenkov/ims/internal/report"
	"github.com/vladislavdragonenkov/ims/internal/service/catalog"
	"github.com/vladislavdragonenkov/ims/internal/service/orders"
	"github.com/vladislavdragonenkov/ims/internal/service/sales"
	csvstore "github.com/vladislavdragonenkov/ims/internal/storage/csv"
)

// Run собирает все компоненты поверх каталога данных и крутит меню
// до выхода оператора. in/out подменяются в тестах.
func Run(cfg Config, in io.Reader, out io.Writer) error {
	logger := log.WithField("component", "app")

	store, err := csvstore.NewStore(cfg.DataDir, log.WithField("component", "storage"))
	if err != nil {
		return err
	}

	suppliers := csvstore.NewSupplierRepository(store)
	products := csvstore.NewProductRepository(store)
	orderRepo := csvstore.NewOrderRepository(store)
	saleRepo := csvstore.NewSaleRepository(store)

	// Нечитаемая таблица на старте фатальна: дальше работать не с чем.
	if err := checkTables(suppliers, products, orderRepo, saleRepo); err != nil {
		return fmt.Errorf("data dir %s is unusable: %w", cfg.DataDir, err)
	}

	cat := catalog.NewService(suppliers, products, orderRepo, saleRepo, cfg.LowStockThreshold, log.WithField("component", "catalog"))
	ord := orders.NewService(orderRepo, suppliers, products, log.WithField("component", "orders"))
	sal := sales.NewService(saleRepo, products, log.WithField("component", "sales"))
	gen := report.NewGenerator(cfg.ReportDir, cat, ord, sal, log.WithField("component", "report"))

	logger.WithFields(log.Fields{
		"data_dir":   cfg.DataDir,
		"report_dir": cfg.ReportDir,
	}).Info("хранилище готово, запускаем меню")

	menu := cli.NewMenu(in, out, cat, ord, sal, gen, log.WithField("component", "menu"))
	return menu.Run()
}

// checkTables прогоняет полный скан всех четырёх таблиц.
func checkTables(
	suppliers domain.SupplierRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	sales domain.SaleRepository,
) error {
	if _, err := suppliers.List(); err != nil {
		return err
	}
	if _, err := products.List(); err != nil {
		return err
	}
	if _, err := orders.List(); err != nil {
		return err
	}
	if _, err := sales.List(); err != nil {
		return err
	}
	return nil
}
