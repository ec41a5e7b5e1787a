package memory

import (
	"fmt"
	"strconv"
	"strings"
)

// nextID выдаёт следующий идентификатор вида PREFIX001, продолжая номер последней записи.
func nextID(prefix, lastID string) string {
	if lastID == "" {
		return fmt.Sprintf("%s%03d", prefix, 1)
	}
	num, err := strconv.Atoi(strings.TrimPrefix(lastID, prefix))
	if err != nil {
		return fmt.Sprintf("%s%03d", prefix, 1)
	}
	return fmt.Sprintf("%s%03d", prefix, num+1)
}
