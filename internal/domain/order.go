package domain

import "time"

// Order — закупка у поставщика. Запись неизменяема после создания:
// размещение заказа сразу увеличивает остаток товара на Quantity.
type Order struct {
	// ID — уникальный идентификатор вида ORD001.
	ID string
	// SupplierID ссылается на поставщика заказа.
	SupplierID string
	// SKU ссылается на закупаемый товар.
	SKU string
	// Quantity — количество единиц. Должно быть не меньше MOQ товара.
	Quantity int
	// UnitCostMinor — цена за единицу на момент заказа, в центах.
	UnitCostMinor int64
	// TotalCostMinor — итоговая стоимость заказа: Quantity * UnitCostMinor.
	TotalCostMinor int64
	// CreatedAt фиксирует момент размещения заказа.
	CreatedAt time.Time
}

// Validate проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) Validate() []error {
	var errs []error

	if o.SupplierID == "" {
		errs = append(errs, ErrSupplierRequired)
	}
	if o.SKU == "" {
		errs = append(errs, ErrSKURequired)
	}
	if o.Quantity <= 0 {
		errs = append(errs, ErrQtyInvalid)
	}
	if o.UnitCostMinor <= 0 {
		errs = append(errs, ErrCostInvalid)
	}

	return errs
}
