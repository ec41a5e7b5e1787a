package domain

import "errors"

var (
	// ErrNotFound возвращается, если запись с указанным ключом отсутствует в таблице.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey возвращается при попытке создать запись с занятым ключом.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrMOQViolation — количество в заказе меньше минимальной партии поставщика.
	ErrMOQViolation = errors.New("quantity below minimum order quantity")
	// ErrInsufficientStock — продажа превышает доступный остаток товара.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrReferenced — запись нельзя удалить, пока на неё ссылаются заказы или продажи.
	ErrReferenced = errors.New("record is referenced by other tables")

	// Ошибка пустого имени поставщика или товара.
	ErrNameRequired = errors.New("name is required")
	// Ошибка некорректного контакта поставщика (не email и не телефон).
	ErrContactInvalid = errors.New("contact must be a valid email or phone number")
	// Ошибка пустого SKU.
	ErrSKURequired = errors.New("sku is required")
	// Ошибка отсутствующего идентификатора поставщика в заказе.
	ErrSupplierRequired = errors.New("supplier_id is required")
	// Ошибка некорректного MOQ (<= 0).
	ErrMOQInvalid = errors.New("moq must be greater than zero")
	// Ошибка некорректной цены (<= 0).
	ErrCostInvalid = errors.New("cost must be greater than zero")
	// Ошибка отрицательного остатка.
	ErrStockNegative = errors.New("stock must be non-negative")
	// Ошибка некорректного количества в заказе или продаже (<= 0).
	ErrQtyInvalid = errors.New("qty must be greater than zero")
)

// IsNotFound проверяет, является ли ошибка отсутствием записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey проверяет, является ли ошибка конфликтом ключей при создании.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsValidation проверяет, относится ли ошибка к нарушению бизнес-правил
// (MOQ, остаток, ссылочная целостность, валидация полей).
func IsValidation(err error) bool {
	return errors.Is(err, ErrMOQViolation) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrReferenced) ||
		errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrContactInvalid) ||
		errors.Is(err, ErrSKURequired) ||
		errors.Is(err, ErrSupplierRequired) ||
		errors.Is(err, ErrMOQInvalid) ||
		errors.Is(err, ErrCostInvalid) ||
		errors.Is(err, ErrStockNegative) ||
		errors.Is(err, ErrQtyInvalid)
}
