package csv

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// saleRecord — строковое представление продажи в CSV.
// Порядок колонок фиксирован: id,sku,quantity,price,timestamp.
type saleRecord struct {
	ID         string `csv:"id"`
	SKU        string `csv:"sku"`
	Quantity   int    `csv:"quantity"`
	PriceMinor int64  `csv:"price"`
	Timestamp  string `csv:"timestamp"`
}

func toSaleRecord(s domain.Sale) saleRecord {
	return saleRecord{
		ID:         s.ID,
		SKU:        s.SKU,
		Quantity:   s.Quantity,
		PriceMinor: s.PriceMinor,
		Timestamp:  s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (r saleRecord) toDomain() (domain.Sale, error) {
	createdAt, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("sale %s: bad timestamp %q: %w", r.ID, r.Timestamp, err)
	}
	return domain.Sale{
		ID:         r.ID,
		SKU:        r.SKU,
		Quantity:   r.Quantity,
		PriceMinor: r.PriceMinor,
		CreatedAt:  createdAt,
	}, nil
}

// saleRepositoryCSV — реализация SaleRepository поверх sales.csv.
type saleRepositoryCSV struct {
	store *Store
}

// NewSaleRepository возвращает CSV-репозиторий продаж.
func NewSaleRepository(store *Store) domain.SaleRepository {
	return &saleRepositoryCSV{store: store}
}

func (r *saleRepositoryCSV) List() ([]domain.Sale, error) {
	records, err := r.loadRecords()
	if err != nil {
		return nil, err
	}
	sales := make([]domain.Sale, 0, len(records))
	for _, rec := range records {
		sale, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, nil
}

// Create дописывает продажу в конец таблицы. Существующие строки не меняются.
func (r *saleRepositoryCSV) Create(sale domain.Sale) error {
	records, err := r.loadRecords()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.ID == sale.ID {
			return domain.ErrDuplicateKey
		}
	}
	records = append(records, toSaleRecord(sale))
	return r.store.save(salesTable, &records)
}

func (r *saleRepositoryCSV) NextID() (string, error) {
	records, err := r.loadRecords()
	if err != nil {
		return "", err
	}
	var last string
	if len(records) > 0 {
		last = records[len(records)-1].ID
	}
	return nextID("SALE", last), nil
}

func (r *saleRepositoryCSV) loadRecords() ([]saleRecord, error) {
	var records []saleRecord
	if err := r.store.load(salesTable, &records); err != nil {
		return nil, err
	}
	return records, nil
}

var _ domain.SaleRepository = (*saleRepositoryCSV)(nil)
