package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/DriveQuest/DriveQuest/internal/catalog"
	"github.com/DriveQuest/DriveQuest/internal/common/logger"
	"github.com/DriveQuest/DriveQuest/internal/rental"
	"github.com/DriveQuest/DriveQuest/internal/vehicle"
)

func runScript(t *testing.T, store *catalog.Store, lines ...string) *bytes.Buffer {
	t.Helper()
	log, err := logger.NewLogger("error", "text", "stderr", "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	out := &bytes.Buffer{}
	sh := New(in, out, store, rental.NewService(store), "", log)
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out
}

func TestRunAddVehicleAndExit(t *testing.T) {
	store := catalog.NewStore()
	out := runScript(t, store,
		"x",      // entrada no numérica en el menú principal: se reporta y se repite
		"1", "1", // agregar vehículo de pasajeros
		"ABCD12", "Toyota", "Corolla", "20000", "4", "2020", "5",
		"6",
	)
	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}
	v, err := store.FindByPlate("ABCD12")
	if err != nil {
		t.Fatalf("FindByPlate: %v", err)
	}
	if v.Kind != vehicle.KindPassenger || v.Capacity != 5 {
		t.Fatalf("unexpected vehicle: %+v", v)
	}
	if !strings.Contains(out.String(), "Debe ingresar un número válido") {
		t.Fatalf("invalid menu input not reported")
	}
	if !strings.Contains(out.String(), "agregado correctamente") {
		t.Fatalf("missing add confirmation")
	}
}

func TestRunRentVehiclePrintsBoleta(t *testing.T) {
	store := catalog.NewStore()
	v, err := vehicle.New(vehicle.KindCargo, "EFGH34", "Volvo", "FH16", 15000, 2, 2019, 12000)
	if err != nil {
		t.Fatalf("vehicle.New: %v", err)
	}
	if err := store.Insert(v); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	out := runScript(t, store,
		"2", "2", // arrendar vehículo de carga
		"efgh34", "10",
		"6",
	)
	if v.RentalDays != 10 {
		t.Fatalf("rental days = %d, want 10", v.RentalDays)
	}
	if !strings.Contains(out.String(), "Total a Pagar:  $166005") {
		t.Fatalf("boleta total missing in output:\n%s", out.String())
	}
}

func TestRunAbortsOnInvalidNumericInput(t *testing.T) {
	store := catalog.NewStore()
	runScript(t, store,
		"1", "2", // agregar vehículo de carga
		"ABCD12", "Volvo", "FH16", "quince", // valor diario no numérico: aborta la operación
		"6",
	)
	if store.Len() != 0 {
		t.Fatalf("vehicle added despite invalid input")
	}
}

func TestRunExitOnClosedInput(t *testing.T) {
	store := catalog.NewStore()
	log, err := logger.NewLogger("error", "text", "stderr", "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	sh := New(strings.NewReader(""), &bytes.Buffer{}, store, rental.NewService(store), "", log)
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run on closed input: %v", err)
	}
}
