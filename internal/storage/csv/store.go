package csv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Имена таблиц фиксированы: одна таблица — один CSV-файл в каталоге данных.
const (
	suppliersTable = "suppliers.csv"
	productsTable  = "products.csv"
	ordersTable    = "orders.csv"
	salesTable     = "sales.csv"
)

// Store владеет каталогом данных и кодеком таблиц. Каждая мутация
// переписывает файл таблицы целиком через атомарную замену.
type Store struct {
	dir    string
	logger *log.Entry
}

// NewStore создаёт каталог данных (если его нет) и возвращает хранилище.
func NewStore(dir string, logger *log.Entry) (*Store, error) {
	if logger == nil {
		logger = log.New().WithField("component", "storage")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir возвращает каталог данных хранилища.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(table string) string {
	return filepath.Join(s.dir, table)
}

// load декодирует таблицу в out (указатель на срез записей).
// Отсутствующий файл трактуется как пустая таблица.
func (s *Store) load(table string, out any) error {
	f, err := os.Open(s.path(table))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open table %s: %w", table, err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil
		}
		return fmt.Errorf("decode table %s: %w", table, err)
	}
	return nil
}

// save переписывает таблицу целиком: записи уходят во временный файл
// с uuid-суффиксом, затем os.Rename атомарно подменяет таблицу.
// Сбой посреди записи оставляет либо старую, либо новую версию файла.
func (s *Store) save(table string, rows any) error {
	tmp := filepath.Join(s.dir, fmt.Sprintf(".%s.%s.tmp", table, uuid.NewString()))

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", table, err)
	}
	if err := gocsv.MarshalFile(rows, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode table %s: %w", table, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("flush table %s: %w", table, err)
	}

	if err := os.Rename(tmp, s.path(table)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace table %s: %w", table, err)
	}

	s.logger.WithField("table", table).Debug("table rewritten")
	return nil
}

// nextID выдаёт следующий идентификатор последовательности вида PREFIX001,
// продолжая номер последней записи таблицы.
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
