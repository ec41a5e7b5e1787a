package catalog

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// Service ведёт справочники поставщиков и товаров: CRUD, поиск, low-stock выборка.
// Удаление защищено ссылочной целостностью: запись, на которую ссылаются
// заказы или продажи, удалить нельзя.
type Service struct {
	suppliers domain.SupplierRepository
	products  domain.ProductRepository
	orders    domain.OrderRepository
	sales     domain.SaleRepository

	// defaultThreshold подставляется товарам, созданным без порога low-stock.
	defaultThreshold int
	logger           *log.Entry
}

// NewService создаёт рабочий экземпляр каталога.
func NewService(
	suppliers domain.SupplierRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	sales domain.SaleRepository,
	defaultThreshold int,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "catalog")
	}
	if defaultThreshold <= 0 {
		defaultThreshold = 10
	}
	return &Service{
		suppliers:        suppliers,
		products:         products,
		orders:           orders,
		sales:            sales,
		defaultThreshold: defaultThreshold,
		logger:           logger,
	}
}

// AddSupplier валидирует и сохраняет поставщика. Пустой ID заменяется
// следующим номером последовательности SUP001.
func (s *Service) AddSupplier(supplier domain.Supplier) (domain.Supplier, error) {
	if errs := supplier.Validate(); len(errs) > 0 {
		return domain.Supplier{}, errors.Join(errs...)
	}
	if supplier.ID == "" {
		id, err := s.suppliers.NextID()
		if err != nil {
			return domain.Supplier{}, err
		}
		supplier.ID = id
	}
	if err := s.suppliers.Create(supplier); err != nil {
		return domain.Supplier{}, err
	}
	s.logger.WithField("supplier_id", supplier.ID).Info("supplier added")
	return supplier, nil
}

// UpdateSupplier перезаписывает поставщика или возвращает ErrNotFound.
func (s *Service) UpdateSupplier(supplier domain.Supplier) error {
	if errs := supplier.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if err := s.suppliers.Update(supplier); err != nil {
		return err
	}
	s.logger.WithField("supplier_id", supplier.ID).Info("supplier updated")
	return nil
}

// DeleteSupplier удаляет поставщика, если на него не ссылается ни один заказ.
func (s *Service) DeleteSupplier(id string) error {
	orders, err := s.orders.List()
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.SupplierID == id {
			return domain.ErrReferenced
		}
	}
	if err := s.suppliers.Delete(id); err != nil {
		return err
	}
	s.logger.WithField("supplier_id", id).Info("supplier deleted")
	return nil
}

// Suppliers возвращает всех поставщиков в порядке записи.
func (s *Service) Suppliers() ([]domain.Supplier, error) {
	return s.suppliers.List()
}

// Supplier возвращает поставщика по ID или ErrNotFound.
func (s *Service) Supplier(id string) (domain.Supplier, error) {
	return s.suppliers.Get(id)
}

// SearchSuppliers ищет подстроку в имени без учёта регистра.
func (s *Service) SearchSuppliers(term string) ([]domain.Supplier, error) {
	suppliers, err := s.suppliers.List()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	var matched []domain.Supplier
	for _, sup := range suppliers {
		if strings.Contains(strings.ToLower(sup.Name), term) {
			matched = append(matched, sup)
		}
	}
	return matched, nil
}

// AddProduct валидирует и сохраняет товар. Нулевой порог low-stock
// заменяется порогом по умолчанию.
func (s *Service) AddProduct(product domain.Product) (domain.Product, error) {
	if product.Threshold <= 0 {
		product.Threshold = s.defaultThreshold
	}
	if errs := product.Validate(); len(errs) > 0 {
		return domain.Product{}, errors.Join(errs...)
	}
	if err := s.products.Create(product); err != nil {
		return domain.Product{}, err
	}
	s.logger.WithField("sku", product.SKU).Info("product added")
	return product, nil
}

// UpdateProduct перезаписывает товар или возвращает ErrNotFound.
func (s *Service) UpdateProduct(product domain.Product) error {
	if product.Threshold <= 0 {
		product.Threshold = s.defaultThreshold
	}
	if errs := product.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if err := s.products.Update(product); err != nil {
		return err
	}
	s.logger.WithField("sku", product.SKU).Info("product updated")
	return nil
}

// DeleteProduct удаляет товар, если на него не ссылаются заказы и продажи.
func (s *Service) DeleteProduct(sku string) error {
	orders, err := s.orders.List()
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.SKU == sku {
			return domain.ErrReferenced
		}
	}
	sales, err := s.sales.List()
	if err != nil {
		return err
	}
	for _, sale := range sales {
		if sale.SKU == sku {
			return domain.ErrReferenced
		}
	}
	if err := s.products.Delete(sku); err != nil {
		return err
	}
	s.logger.WithField("sku", sku).Info("product deleted")
	return nil
}

// Products возвращает все товары в порядке записи.
func (s *Service) Products() ([]domain.Product, error) {
	return s.products.List()
}

// Product возвращает товар по SKU или ErrNotFound.
func (s *Service) Product(sku string) (domain.Product, error) {
	return s.products.Get(sku)
}

// SearchProducts ищет подстроку в имени или SKU без учёта регистра.
func (s *Service) SearchProducts(term string) ([]domain.Product, error) {
	products, err := s.products.List()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	var matched []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.SKU), term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// LowStock возвращает товары с остатком не выше threshold.
// При threshold <= 0 каждый товар сверяется с собственным порогом.
func (s *Service) LowStock(threshold int) ([]domain.Product, error) {
	products, err := s.products.List()
	if err != nil {
		return nil, err
	}
	var low []domain.Product
	for _, p := range products {
		limit := threshold
		if limit <= 0 {
			limit = p.Threshold
		}
		if p.Stock <= limit {
			low = append(low, p)
		}
	}
	return low, nil
}
