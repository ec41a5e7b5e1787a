package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items []domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий заказов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{}
}

func (r *orderRepositoryInMemory) List() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *orderRepositoryInMemory) Get(id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.items {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

func (r *orderRepositoryInMemory) Create(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.items {
		if o.ID == order.ID {
			return domain.ErrDuplicateKey
		}
	}
	r.items = append(r.items, order)
	return nil
}

func (r *orderRepositoryInMemory) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.items {
		if o.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *orderRepositoryInMemory) NextID() (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last string
	if len(r.items) > 0 {
		last = r.items[len(r.items)-1].ID
	}
	return nextID("ORD", last), nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
