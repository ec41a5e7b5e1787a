package csv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vladislavdragonenkov/ims/internal/domain"
	csvstore "github.com/vladislavdragonenkov/ims/internal/storage/csv"
)

func newTestStore(t *testing.T) *csvstore.Store {
	t.Helper()
	store, err := csvstore.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}
	return store
}

func TestSupplierRepository_CreateGet(t *testing.T) {
	repo := csvstore.NewSupplierRepository(newTestStore(t))
	supplier := domain.Supplier{ID: "SUP001", Name: "Acme", Contact: "sales@acme.com"}

	if err := repo.Create(supplier); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(supplier.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored != supplier {
		t.Fatalf("expected %+v, got %+v", supplier, stored)
	}
}

func TestSupplierRepository_CreateDuplicate(t *testing.T) {
	repo := csvstore.NewSupplierRepository(newTestStore(t))
	supplier := domain.Supplier{ID: "SUP001", Name: "Acme", Contact: "sales@acme.com"}

	if err := repo.Create(supplier); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(supplier); !domain.IsDuplicateKey(err) {
		t.Fatalf("expected duplicate key, got %v", err)
	}

	// Таблица не должна измениться после отклонённого создания.
	suppliers, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(suppliers) != 1 {
		t.Fatalf("expected 1 supplier, got %d", len(suppliers))
	}
}

func TestSupplierRepository_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := csvstore.NewSupplierRepository(store)
	seed := []domain.Supplier{
		{ID: "SUP001", Name: "Acme", Contact: "sales@acme.com"},
		{ID: "SUP002", Name: "Globex", Contact: "+15551234567"},
		{ID: "SUP003", Name: "Initech, Inc.", Contact: "ops@initech.io"},
	}
	for _, s := range seed {
		if err := repo.Create(s); err != nil {
			t.Fatalf("create %s failed: %v", s.ID, err)
		}
	}

	// Повторное чтение той же таблицы возвращает идентичную последовательность строк.
	reloaded := csvstore.NewSupplierRepository(store)
	suppliers, err := reloaded.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(suppliers) != len(seed) {
		t.Fatalf("expected %d suppliers, got %d", len(seed), len(suppliers))
	}
	for i, want := range seed {
		if suppliers[i] != want {
			t.Errorf("row %d: expected %+v, got %+v", i, want, suppliers[i])
		}
	}
}

func TestSupplierRepository_UpdateDeleteNotFound(t *testing.T) {
	repo := csvstore.NewSupplierRepository(newTestStore(t))

	if err := repo.Update(domain.Supplier{ID: "SUP042"}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found on update, got %v", err)
	}
	if err := repo.Delete("SUP042"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found on delete, got %v", err)
	}
}

func TestSupplierRepository_Delete(t *testing.T) {
	repo := csvstore.NewSupplierRepository(newTestStore(t))
	for _, s := range []domain.Supplier{
		{ID: "SUP001", Name: "Acme", Contact: "sales@acme.com"},
		{ID: "SUP002", Name: "Globex", Contact: "+15551234567"},
	} {
		if err := repo.Create(s); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	if err := repo.Delete("SUP001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	suppliers, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(suppliers) != 1 || suppliers[0].ID != "SUP002" {
		t.Fatalf("expected only SUP002 to remain, got %+v", suppliers)
	}
}

func TestSupplierRepository_NextID(t *testing.T) {
	repo := csvstore.NewSupplierRepository(newTestStore(t))

	id, err := repo.NextID()
	if err != nil {
		t.Fatalf("next id failed: %v", err)
	}
	if id != "SUP001" {
		t.Fatalf("expected SUP001, got %s", id)
	}

	if err := repo.Create(domain.Supplier{ID: id, Name: "Acme", Contact: "sales@acme.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	id, err = repo.NextID()
	if err != nil {
		t.Fatalf("next id failed: %v", err)
	}
	if id != "SUP002" {
		t.Fatalf("expected SUP002, got %s", id)
	}
}

func TestStore_NoTempFilesLeftBehind(t *testing.T) {
	store := newTestStore(t)
	repo := csvstore.NewSupplierRepository(store)
	if err := repo.Create(domain.Supplier{ID: "SUP001", Name: "Acme", Contact: "sales@acme.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("read data dir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", filepath.Join(store.Dir(), e.Name()))
		}
	}
}
