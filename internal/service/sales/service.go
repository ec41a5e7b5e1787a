package sales

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// ProductSales — суммарные продажи одного товара.
type ProductSales struct {
	SKU          string
	Name         string
	Units        int
	RevenueMinor int64
}

// Service регистрирует продажи: проверяет остаток, записывает продажу и
// уменьшает остаток товара. Продажи неизменяемы после создания.
type Service struct {
	sales    domain.SaleRepository
	products domain.ProductRepository
	logger   *log.Entry

	// now подменяется в тестах для детерминированных меток времени.
	now func() time.Time
}

// NewService создаёт рабочий экземпляр процессора продаж.
func NewService(sales domain.SaleRepository, products domain.ProductRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "sales")
	}
	return &Service{
		sales:    sales,
		products: products,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Record регистрирует продажу. Возвращает продажу и low-stock флаг:
// true, если остаток после продажи опустился ниже порога товара.
// Продажа, уводящая остаток в минус, отклоняется с ErrInsufficientStock,
// остаток при этом не меняется.
func (s *Service) Record(sku string, qty int, priceMinor int64) (domain.Sale, bool, error) {
	product, err := s.products.Get(sku)
	if err != nil {
		return domain.Sale{}, false, err
	}
	if qty > product.Stock {
		return domain.Sale{}, false, domain.ErrInsufficientStock
	}

	id, err := s.sales.NextID()
	if err != nil {
		return domain.Sale{}, false, err
	}
	sale := domain.Sale{
		ID:         id,
		SKU:        sku,
		Quantity:   qty,
		PriceMinor: priceMinor,
		CreatedAt:  s.now(),
	}
	if errs := sale.Validate(); len(errs) > 0 {
		return domain.Sale{}, false, errs[0]
	}

	product.Stock -= qty
	if err := s.products.Update(product); err != nil {
		return domain.Sale{}, false, err
	}
	if err := s.sales.Create(sale); err != nil {
		// Откатываем расход, чтобы остаток не разошёлся с таблицей продаж.
		product.Stock += qty
		if rbErr := s.products.Update(product); rbErr != nil {
			s.logger.WithError(rbErr).WithField("sku", sku).Error("stock rollback failed")
		}
		return domain.Sale{}, false, err
	}

	low := product.LowStock()
	entry := s.logger.WithFields(log.Fields{
		"sale_id": sale.ID,
		"sku":     sku,
		"qty":     qty,
		"stock":   product.Stock,
	})
	if low {
		entry.Warn("sale recorded, stock below threshold")
	} else {
		entry.Info("sale recorded")
	}
	return sale, low, nil
}

// Sales возвращает все продажи в порядке записи.
func (s *Service) Sales() ([]domain.Sale, error) {
	return s.sales.List()
}

// BySKU возвращает продажи одного товара в порядке записи.
func (s *Service) BySKU(sku string) ([]domain.Sale, error) {
	sales, err := s.sales.List()
	if err != nil {
		return nil, err
	}
	var matched []domain.Sale
	for _, sale := range sales {
		if sale.SKU == sku {
			matched = append(matched, sale)
		}
	}
	return matched, nil
}

// Summary агрегирует проданные единицы и выручку по товарам,
// подтягивая имена из каталога. Результат упорядочен по SKU.
func (s *Service) Summary() ([]ProductSales, error) {
	sales, err := s.sales.List()
	if err != nil {
		return nil, err
	}
	products, err := s.products.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.SKU] = p.Name
	}

	totals := make(map[string]*ProductSales)
	for _, sale := range sales {
		ps, ok := totals[sale.SKU]
		if !ok {
			ps = &ProductSales{SKU: sale.SKU, Name: names[sale.SKU]}
			totals[sale.SKU] = ps
		}
		ps.Units += sale.Quantity
		ps.RevenueMinor += int64(sale.Quantity) * sale.PriceMinor
	}

	summary := make([]ProductSales, 0, len(totals))
	for _, ps := range totals {
		summary = append(summary, *ps)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].SKU < summary[j].SKU
	})
	return summary, nil
}
