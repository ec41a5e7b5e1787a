package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items []domain.Product
}

// NewProductRepository возвращает in-memory репозиторий товаров.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{}
}

func (r *productRepositoryInMemory) List() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *productRepositoryInMemory) Get(sku string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.SKU == sku {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (r *productRepositoryInMemory) Create(product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.items {
		if p.SKU == product.SKU {
			return domain.ErrDuplicateKey
		}
	}
	r.items = append(r.items, product)
	return nil
}

func (r *productRepositoryInMemory) Update(product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.items {
		if p.SKU == product.SKU {
			r.items[i] = product
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *productRepositoryInMemory) Delete(sku string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.items {
		if p.SKU == sku {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
