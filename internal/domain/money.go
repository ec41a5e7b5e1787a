package domain

import "fmt"

// FormatMinor печатает сумму в центах как доллары: 2500 -> "$25.00".
func FormatMinor(m int64) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s$%d.%02d", sign, m/100, m%100)
}
