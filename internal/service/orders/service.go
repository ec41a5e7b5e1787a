package orders

import (
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// SupplierCost — итоговая стоимость заказов одного поставщика.
type SupplierCost struct {
	SupplierID string
	TotalMinor int64
}

// Service размещает закупки: проверяет MOQ, записывает заказ и
// увеличивает остаток товара. Заказы неизменяемы после создания.
type Service struct {
	orders    domain.OrderRepository
	suppliers domain.SupplierRepository
	products  domain.ProductRepository
	logger    *log.Entry

	// now подменяется в тестах для детерминированных меток времени.
	now func() time.Time
}

// NewService создаёт рабочий экземпляр процессора заказов.
func NewService(
	orders domain.OrderRepository,
	suppliers domain.SupplierRepository,
	products domain.ProductRepository,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "orders")
	}
	return &Service{
		orders:    orders,
		suppliers: suppliers,
		products:  products,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Place размещает заказ у поставщика. Порядок проверок: существование
// поставщика и товара, затем MOQ. Успешный заказ увеличивает остаток
// товара на qty; верхней границы остатка нет.
func (s *Service) Place(supplierID, sku string, qty int, unitCostMinor int64) (domain.Order, error) {
	if _, err := s.suppliers.Get(supplierID); err != nil {
		return domain.Order{}, err
	}
	product, err := s.products.Get(sku)
	if err != nil {
		return domain.Order{}, err
	}
	if qty < product.MOQ {
		return domain.Order{}, domain.ErrMOQViolation
	}

	id, err := s.orders.NextID()
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		ID:             id,
		SupplierID:     supplierID,
		SKU:            sku,
		Quantity:       qty,
		UnitCostMinor:  unitCostMinor,
		TotalCostMinor: int64(qty) * unitCostMinor,
		CreatedAt:      s.now(),
	}
	if errs := order.Validate(); len(errs) > 0 {
		return domain.Order{}, errs[0]
	}

	product.Stock += qty
	if err := s.products.Update(product); err != nil {
		return domain.Order{}, err
	}
	if err := s.orders.Create(order); err != nil {
		// Откатываем приход, чтобы остаток не разошёлся с таблицей заказов.
		product.Stock -= qty
		if rbErr := s.products.Update(product); rbErr != nil {
			s.logger.WithError(rbErr).WithField("sku", sku).Error("stock rollback failed")
		}
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id":    order.ID,
		"supplier_id": supplierID,
		"sku":         sku,
		"qty":         qty,
	}).Info("order placed")
	return order, nil
}

// Orders возвращает все заказы в порядке записи.
func (s *Service) Orders() ([]domain.Order, error) {
	return s.orders.List()
}

// Delete удаляет заказ по ID или возвращает ErrNotFound.
// Остаток товара при этом не корректируется: приход уже состоялся.
func (s *Service) Delete(id string) error {
	if err := s.orders.Delete(id); err != nil {
		return err
	}
	s.logger.WithField("order_id", id).Info("order deleted")
	return nil
}

// Search ищет подстроку в ID заказа, поставщике, SKU или дате (без учёта регистра).
func (s *Service) Search(term string) ([]domain.Order, error) {
	orders, err := s.orders.List()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	var matched []domain.Order
	for _, o := range orders {
		date := o.CreatedAt.Format("2006-01-02")
		if strings.Contains(strings.ToLower(o.ID), term) ||
			strings.Contains(strings.ToLower(o.SupplierID), term) ||
			strings.Contains(strings.ToLower(o.SKU), term) ||
			strings.Contains(date, term) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// SummaryBySupplier агрегирует итоговую стоимость заказов по поставщикам,
// упорядочивая результат по ID поставщика.
func (s *Service) SummaryBySupplier() ([]SupplierCost, error) {
	orders, err := s.orders.List()
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int64)
	for _, o := range orders {
		totals[o.SupplierID] += o.TotalCostMinor
	}

	summary := make([]SupplierCost, 0, len(totals))
	for id, total := range totals {
		summary = append(summary, SupplierCost{SupplierID: id, TotalMinor: total})
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].SupplierID < summary[j].SupplierID
	})
	return summary, nil
}
