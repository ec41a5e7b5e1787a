package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// supplierRepositoryInMemory — простая in-memory реализация SupplierRepository
// для локальной разработки и тестов. Порядок List совпадает с порядком Create.
type supplierRepositoryInMemory struct {
	mu    sync.RWMutex
	items []domain.Supplier
}

// NewSupplierRepository возвращает in-memory репозиторий поставщиков.
func NewSupplierRepository() domain.SupplierRepository {
	return &supplierRepositoryInMemory{}
}

func (r *supplierRepositoryInMemory) List() ([]domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Supplier, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *supplierRepositoryInMemory) Get(id string) (domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.items {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Supplier{}, domain.ErrNotFound
}

func (r *supplierRepositoryInMemory) Create(supplier domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.items {
		if s.ID == supplier.ID {
			return domain.ErrDuplicateKey
		}
	}
	r.items = append(r.items, supplier)
	return nil
}

func (r *supplierRepositoryInMemory) Update(supplier domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.items {
		if s.ID == supplier.ID {
			r.items[i] = supplier
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *supplierRepositoryInMemory) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.items {
		if s.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *supplierRepositoryInMemory) NextID() (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last string
	if len(r.items) > 0 {
		last = r.items[len(r.items)-1].ID
	}
	return nextID("SUP", last), nil
}

var _ domain.SupplierRepository = (*supplierRepositoryInMemory)(nil)
