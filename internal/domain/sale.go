package domain

import "time"

// Sale — продажа товара со склада. Запись неизменяема после создания:
// регистрация продажи сразу уменьшает остаток товара на Quantity.
type Sale struct {
	// ID — уникальный идентификатор вида SALE001.
	ID string
	// SKU ссылается на проданный товар.
	SKU string
	// Quantity — количество проданных единиц. Не может превышать остаток.
	Quantity int
	// PriceMinor — цена продажи за единицу, в центах.
	PriceMinor int64
	// CreatedAt фиксирует момент продажи.
	CreatedAt time.Time
}

// Validate проверяет базовые инварианты продажи и возвращает список замечаний.
func (s *Sale) Validate() []error {
	var errs []error

	if s.SKU == "" {
		errs = append(errs, ErrSKURequired)
	}
	if s.Quantity <= 0 {
		errs = append(errs, ErrQtyInvalid)
	}
	if s.PriceMinor <= 0 {
		errs = append(errs, ErrCostInvalid)
	}

	return errs
}
