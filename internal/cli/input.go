package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vladislavdragonenkov/ims/internal/domain"
)

var errBadInput = errors.New("invalid input")

// readLine печатает приглашение и возвращает следующую строку ввода.
// false означает конец потока.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptString требует непустую строку.
func (m *Menu) promptString(prompt string) (string, error) {
	line, ok := m.readLine(prompt)
	if !ok || line == "" {
		return "", fmt.Errorf("%w: value cannot be empty", errBadInput)
	}
	return line, nil
}

// promptInt требует положительное целое.
func (m *Menu) promptInt(prompt string) (int, error) {
	line, ok := m.readLine(prompt)
	if !ok {
		return 0, errBadInput
	}
	n, err := parseInt(line)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: expected a positive integer, got %q", errBadInput, line)
	}
	return n, nil
}

// promptMoney требует положительную сумму в долларах и возвращает центы.
func (m *Menu) promptMoney(prompt string) (int64, error) {
	line, ok := m.readLine(prompt)
	if !ok {
		return 0, errBadInput
	}
	minor, err := parseMoney(line)
	if err != nil || minor <= 0 {
		return 0, fmt.Errorf("%w: expected a positive amount, got %q", errBadInput, line)
	}
	return minor, nil
}

// confirm запрашивает подтверждение [Y/N]; всё, кроме y/Y, трактуется как отказ.
func (m *Menu) confirm(prompt string) bool {
	line, ok := m.readLine(prompt + " [Y/N]? ")
	if !ok {
		return false
	}
	return strings.EqualFold(line, "y")
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// parseMoney разбирает десятичную сумму в долларах в центы без плавающей
// точки: "12.34" -> 1234, "12" -> 1200, "12.3" -> 1230.
func parseMoney(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errBadInput
	}
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadInput, s)
	}

	var cents int64
	switch len(frac) {
	case 0:
	case 1:
		cents, err = strconv.ParseInt(frac, 10, 64)
		cents *= 10
	case 2:
		cents, err = strconv.ParseInt(frac, 10, 64)
	default:
		return 0, fmt.Errorf("%w: at most two decimal places in %q", errBadInput, s)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadInput, s)
	}

	minor := dollars*100 + cents
	if negative {
		minor = -minor
	}
	return minor, nil
}

// errorMessage переводит доменные ошибки в сообщение для оператора.
func errorMessage(err error) string {
	switch {
	case domain.IsNotFound(err):
		return "record not found"
	case domain.IsDuplicateKey(err):
		return "a record with this key already exists"
	case errors.Is(err, domain.ErrMOQViolation):
		return "quantity is below the product's minimum order quantity"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "not enough stock to complete the sale"
	case errors.Is(err, domain.ErrReferenced):
		return "record is referenced by existing orders or sales and cannot be deleted"
	default:
		return err.Error()
	}
}
