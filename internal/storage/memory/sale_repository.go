package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// saleRepositoryInMemory — простая in-memory реализация SaleRepository.
type saleRepositoryInMemory struct {
	mu    sync.RWMutex
	items []domain.Sale
}

// NewSaleRepository возвращает in-memory репозиторий продаж.
func NewSaleRepository() domain.SaleRepository {
	return &saleRepositoryInMemory{}
}

func (r *saleRepositoryInMemory) List() ([]domain.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Sale, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *saleRepositoryInMemory) Create(sale domain.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.items {
		if s.ID == sale.ID {
			return domain.ErrDuplicateKey
		}
	}
	r.items = append(r.items, sale)
	return nil
}

func (r *saleRepositoryInMemory) NextID() (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last string
	if len(r.items) > 0 {
		last = r.items[len(r.items)-1].ID
	}
	return nextID("SALE", last), nil
}

var _ domain.SaleRepository = (*saleRepositoryInMemory)(nil)
