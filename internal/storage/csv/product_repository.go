package csv

import (
	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// productRecord — строковое представление товара в CSV.
// Порядок колонок фиксирован: sku,name,moq,cost,stock,threshold.
// Цена хранится в центах.
type productRecord struct {
	SKU       string `csv:"sku"`
	Name      string `csv:"name"`
	MOQ       int    `csv:"moq"`
	CostMinor int64  `csv:"cost"`
	Stock     int    `csv:"stock"`
	Threshold int    `csv:"threshold"`
}

func toProductRecord(p domain.Product) productRecord {
	return productRecord{
		SKU:       p.SKU,
		Name:      p.Name,
		MOQ:       p.MOQ,
		CostMinor: p.CostMinor,
		Stock:     p.Stock,
		Threshold: p.Threshold,
	}
}

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		SKU:       r.SKU,
		Name:      r.Name,
		MOQ:       r.MOQ,
		CostMinor: r.CostMinor,
		Stock:     r.Stock,
		Threshold: r.Threshold,
	}
}

// productRepositoryCSV — реализация ProductRepository поверх products.csv.
type productRepositoryCSV struct {
	store *Store
}

// NewProductRepository возвращает CSV-репозиторий товаров.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepositoryCSV{store: store}
}

func (r *productRepositoryCSV) List() ([]domain.Product, error) {
	records, err := r.loadRecords()
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toDomain())
	}
	return products, nil
}

func (r *productRepositoryCSV) Get(sku string) (domain.Product, error) {
	records, err := r.loadRecords()
	if err != nil {
		return domain.Product{}, err
	}
	for _, rec := range records {
		if rec.SKU == sku {
			return rec.toDomain(), nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (r *productRepositoryCSV) Create(product domain.Product) error {
	records, err := r.loadRecords()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.SKU == product.SKU {
			return domain.ErrDuplicateKey
		}
	}
	records = append(records, toProductRecord(product))
	return r.store.save(productsTable, &records)
}

func (r *productRepositoryCSV) Update(product domain.Product) error {
	records, err := r.loadRecords()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.SKU == product.SKU {
			records[i] = toProductRecord(product)
			return r.store.save(productsTable, &records)
		}
	}
	return domain.ErrNotFound
}

func (r *productRepositoryCSV) Delete(sku string) error {
	records, err := r.loadRecords()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.SKU == sku {
			records = append(records[:i], records[i+1:]...)
			return r.store.save(productsTable, &records)
		}
	}
	return domain.ErrNotFound
}

func (r *productRepositoryCSV) loadRecords() ([]productRecord, error) {
	var records []productRecord
	if err := r.store.load(productsTable, &records); err != nil {
		return nil, err
	}
	return records, nil
}

var _ domain.ProductRepository = (*productRepositoryCSV)(nil)
