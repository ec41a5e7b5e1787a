package domain

import "regexp"

var (
	// Паттерны контактов повторяют исходную валидацию: email либо телефон из 10–15 цифр.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?1?\d{10,15}$`)
)

// Supplier описывает поставщика каталога.
type Supplier struct {
	// ID — уникальный идентификатор вида SUP001.
	ID string
	// Name — отображаемое имя поставщика.
	Name string
	// Contact — email или телефон для связи.
	Contact string
}

// Validate проверяет обязательные поля поставщика и возвращает список замечаний.
func (s *Supplier) Validate() []error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if !ValidContact(s.Contact) {
		errs = append(errs, ErrContactInvalid)
	}

	return errs
}

// ValidContact сообщает, похож ли контакт на корректный email или телефон.
func ValidContact(contact string) bool {
	return emailPattern.MatchString(contact) || phonePattern.MatchString(contact)
}
