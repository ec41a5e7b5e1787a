package csv

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// orderRecord — строковое представление заказа в CSV.
// Порядок колонок фиксирован: id,supplierId,sku,quantity,unitCost,totalCost,timestamp.
// Времена сериализуются в RFC 3339 (UTC), цены — в центах.
type orderRecord struct {
	ID            string `csv:"id"`
	SupplierID    string `csv:"supplierId"`
	SKU           string `csv:"sku"`
	Quantity      int    `csv:"quantity"`
	UnitCostMinor int64  `csv:"unitCost"`
	TotalMinor    int64  `csv:"totalCost"`
	Timestamp     string `csv:"timestamp"`
}

func toOrderRecord(o domain.Order) orderRecord {
	return orderRecord{
		ID:            o.ID,
		SupplierID:    o.SupplierID,
		SKU:           o.SKU,
		Quantity:      o.Quantity,
		UnitCostMinor: o.UnitCostMinor,
		TotalMinor:    o.TotalCostMinor,
		Timestamp:     o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (r orderRecord) toDomain() (domain.Order, error) {
	createdAt, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s: bad timestamp %q: %w", r.ID, r.Timestamp, err)
	}
	return domain.Order{
		ID:             r.ID,
		SupplierID:     r.SupplierID,
		SKU:            r.SKU,
		Quantity:       r.Quantity,
		UnitCostMinor:  r.UnitCostMinor,
		TotalCostMinor: r.TotalMinor,
		CreatedAt:      createdAt,
	}, nil
}

// orderRepositoryCSV — реализация OrderRepository поверх orders.csv.
type orderRepositoryCSV struct {
	store *Store
}

// NewOrderRepository возвращает CSV-репозиторий заказов.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepositoryCSV{store: store}
}

func (r *orderRepositoryCSV) List() ([]domain.Order, error) {
	records, err := r.loadRecords()
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(records))
	for _, rec := range records {
		order, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *orderRepositoryCSV) Get(id string) (domain.Order, error) {
	records, err := r.loadRecords()
	if err != nil {
		return domain.Order{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.toDomain()
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

// Create дописывает заказ в конец таблицы. Существующие строки не меняются.
func (r *orderRepositoryCSV) Create(order domain.Order) error {
	records, err := r.loadRecords()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.ID == order.ID {
			return domain.ErrDuplicateKey
		}
	}
	records = append(records, toOrderRecord(order))
	return r.store.save(ordersTable, &records)
}

func (r *orderRepositoryCSV) Delete(id string) error {
	records, err := r.loadRecords()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == id {
			records = append(records[:i], records[i+1:]...)
			return r.store.save(ordersTable, &records)
		}
	}
	return domain.ErrNotFound
}

func (r *orderRepositoryCSV) NextID() (string, error) {
	records, err := r.loadRecords()
	if err != nil {
		return "", err
	}
	var last string
	if len(records) > 0 {
		last = records[len(records)-1].ID
	}
	return nextID("ORD", last), nil
}

func (r *orderRepositoryCSV) loadRecords() ([]orderRecord, error) {
	var records []orderRecord
	if err := r.store.load(ordersTable, &records); err != nil {
		return nil, err
	}
	return records, nil
}

var _ domain.OrderRepository = (*orderRepositoryCSV)(nil)
