package domain

// Product описывает товар каталога. SKU служит ключом таблицы.
type Product struct {
	// SKU — внешний уникальный идентификатор товара.
	SKU string
	// Name — отображаемое имя товара.
	Name string
	// MOQ — минимальная партия, которую принимает поставщик.
	MOQ int
	// CostMinor — цена за единицу в минимальных денежных единицах (центах).
	CostMinor int64
	// Stock — текущий остаток на складе. Инвариант: всегда >= 0.
	Stock int
	// Threshold — уровень остатка, ниже которого поднимается low-stock сигнал.
	Threshold int
}

// Validate проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) Validate() []error {
	var errs []error

	if p.SKU == "" {
		errs = append(errs, ErrSKURequired)
	}
	if p.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if p.MOQ <= 0 {
		errs = append(errs, ErrMOQInvalid)
	}
	if p.CostMinor <= 0 {
		errs = append(errs, ErrCostInvalid)
	}
	if p.Stock < 0 {
		errs = append(errs, ErrStockNegative)
	}

	return errs
}

// LowStock сообщает, опустился ли остаток ниже порога товара.
func (p *Product) LowStock() bool {
	return p.Stock < p.Threshold
}
