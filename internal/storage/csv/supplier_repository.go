package csv

import (
	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// supplierRecord — строковое представление поставщика в CSV.
// Порядок колонок фиксирован: id,name,contact.
type supplierRecord struct {
	ID      string `csv:"id"`
	Name    string `csv:"name"`
	Contact string `csv:"contact"`
}

func toSupplierRecord(s domain.Supplier) supplierRecord {
	return supplierRecord{ID: s.ID, Name: s.Name, Contact: s.Contact}
}

func (r supplierRecord) toDomain() domain.Supplier {
	return domain.Supplier{ID: r.ID, Name: r.Name, Contact: r.Contact}
}

// supplierRepositoryCSV — реализация SupplierRepository поверх suppliers.csv.
type supplierRepositoryCSV struct {
	store *Store
}

// NewSupplierRepository возвращает CSV-репозиторий поставщиков.
func NewSupplierRepository(store *Store) domain.SupplierRepository {
	return &supplierRepositoryCSV{store: store}
}

// List возвращает всех поставщиков в порядке записи в файле.
func (r *supplierRepositoryCSV) List() ([]domain.Supplier, error) {
	records, err := r.loadRecords()
	if err != nil {
		return nil, err
	}
	suppliers := make([]domain.Supplier, 0, len(records))
	for _, rec := range records {
		suppliers = append(suppliers, rec.toDomain())
	}
	return suppliers, nil
}

// Get возвращает поставщика по ID или ErrNotFound.
func (r *supplierRepositoryCSV) Get(id string) (domain.Supplier, error) {
	records, err := r.loadRecords()
	if err != nil {
		return domain.Supplier{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return domain.Supplier{}, domain.ErrNotFound
}

// Create дописывает поставщика и переписывает таблицу.
func (r *supplierRepositoryCSV) Create(supplier domain.Supplier) error {
	records, err := r.loadRecords()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.ID == supplier.ID {
			return domain.ErrDuplicateKey
		}
	}
	records = append(records, toSupplierRecord(supplier))
	return r.store.save(suppliersTable, &records)
}

// Update перезаписывает поставщика по ID или возвращает ErrNotFound.
func (r *supplierRepositoryCSV) Update(supplier domain.Supplier) error {
	records, err := r.loadRecords()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == supplier.ID {
			records[i] = toSupplierRecord(supplier)
			return r.store.save(suppliersTable, &records)
		}
	}
	return domain.ErrNotFound
}

// Delete удаляет поставщика по ID или возвращает ErrNotFound.
func (r *supplierRepositoryCSV) Delete(id string) error {
	records, err := r.loadRecords()
	if err != nil {
		return err
	}
	for i, rec := range records {
		if rec.ID == id {
			records = append(records[:i], records[i+1:]...)
			return r.store.save(suppliersTable, &records)
		}
	}
	return domain.ErrNotFound
}

// NextID продолжает последовательность SUP001 от последней строки таблицы.
func (r *supplierRepositoryCSV) NextID() (string, error) {
	records, err := r.loadRecords()
	if err != nil {
		return "", err
	}
	var last string
	if len(records) > 0 {
		last = records[len(records)-1].ID
	}
	return nextID("SUP", last), nil
}

func (r *supplierRepositoryCSV) loadRecords() ([]supplierRecord, error) {
	var records []supplierRecord
	if err := r.store.load(suppliersTable, &records); err != nil {
		return nil, err
	}
	return records, nil
}

var _ domain.SupplierRepository = (*supplierRepositoryCSV)(nil)
