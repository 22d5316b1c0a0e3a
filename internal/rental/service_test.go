package rental

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/DriveQuest/DriveQuest/internal/catalog"
	"github.com/DriveQuest/DriveQuest/internal/vehicle"
)

func newFixture(t *testing.T) (*Service, *catalog.Store) {
	t.Helper()
	store := catalog.NewStore()
	pass, err := vehicle.New(vehicle.KindPassenger, "ABCD12", "Toyota", "Corolla", 20000, 4, 2020, 5)
	if err != nil {
		t.Fatalf("vehicle.New: %v", err)
	}
	cargo, err := vehicle.New(vehicle.KindCargo, "EFGH34", "Volvo", "FH16", 15000, 2, 2019, 12000)
	if err != nil {
		t.Fatalf("vehicle.New: %v", err)
	}
	for _, v := range []*vehicle.Vehicle{pass, cargo} {
		if err := store.Insert(v); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return NewService(store), store
}

func TestRentWorkflow(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.Rent(ctx, "ZZZZ99", 5); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var verr *vehicle.ValidationError
	if _, err := svc.Rent(ctx, "  ", 5); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty plate, got %v", err)
	}
	if _, err := svc.Rent(ctx, "ABCD12", 0); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for zero days, got %v", err)
	}

	r, err := svc.Rent(ctx, "abcd12", 5)
	if err != nil {
		t.Fatalf("Rent: %v", err)
	}
	if r.Total != 104720 {
		t.Fatalf("total = %d, want 104720", r.Total)
	}

	if _, err := svc.Rent(ctx, "ABCD12", 2); !errors.Is(err, vehicle.ErrAlreadyRented) {
		t.Fatalf("expected ErrAlreadyRented, got %v", err)
	}
}

func TestReceiptsOnlyForRentedVehicles(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	if got := svc.Receipts(ctx); len(got) != 0 {
		t.Fatalf("expected no receipts, got %d", len(got))
	}
	if _, err := svc.Rent(ctx, "EFGH34", 10); err != nil {
		t.Fatalf("Rent: %v", err)
	}
	receipts := svc.Receipts(ctx)
	if len(receipts) != 1 {
		t.Fatalf("expected 1 receipt, got %d", len(receipts))
	}
	if receipts[0].Plate != "EFGH34" || receipts[0].Total != 166005 {
		t.Fatalf("unexpected receipt: %+v", receipts[0])
	}
}

func TestExportReceipts(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()
	if _, err := svc.Rent(ctx, "ABCD12", 5); err != nil {
		t.Fatalf("Rent: %v", err)
	}
	if _, err := svc.Rent(ctx, "EFGH34", 10); err != nil {
		t.Fatalf("Rent: %v", err)
	}

	path := filepath.Join(t.TempDir(), "boletas.json")
	n, err := svc.ExportReceipts(ctx, path)
	if err != nil {
		t.Fatalf("ExportReceipts: %v", err)
	}
	if n != 2 {
		t.Fatalf("exported %d receipts, want 2", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var out []vehicle.Receipt
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("decoded %d receipts, want 2", len(out))
	}
}
