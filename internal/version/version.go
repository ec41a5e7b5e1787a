package version

import "fmt"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// String возвращает строку версии для ims --version.
// Переменные заполняются через -ldflags при сборке релиза.
func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}
