package domain

// SupplierRepository описывает требования к хранилищу поставщиков.
type SupplierRepository interface {
	// List возвращает всех поставщиков в порядке записи.
	List() ([]Supplier, error)
	// Get возвращает поставщика по ID или ErrNotFound, если его нет.
	Get(id string) (Supplier, error)
	// Create сохраняет нового поставщика. Возвращает ErrDuplicateKey, если ID занят.
	Create(supplier Supplier) error
	// Update перезаписывает поставщика или возвращает ErrNotFound.
	Update(supplier Supplier) error
	// Delete удаляет поставщика или возвращает ErrNotFound.
	Delete(id string) error
	// NextID возвращает следующий свободный идентификатор вида SUP001.
	NextID() (string, error)
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	List() ([]Product, error)
	Get(sku string) (Product, error)
	Create(product Product) error
	Update(product Product) error
	Delete(sku string) error
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	List() ([]Order, error)
	Get(id string) (Order, error)
	// Create дописывает заказ в конец таблицы. Заказы неизменяемы.
	Create(order Order) error
	Delete(id string) error
	NextID() (string, error)
}

// SaleRepository описывает требования к хранилищу продаж.
type SaleRepository interface {
	List() ([]Sale, error)
	// Create дописывает продажу в конец таблицы. Продажи неизменяемы.
	Create(sale Sale) error
	NextID() (string, error)
}
