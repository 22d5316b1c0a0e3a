package vehicle

import (
	"errors"
	"testing"
)

func TestComputeReceiptPassenger(t *testing.T) {
	v, err := New(KindPassenger, "ABCD12", "Toyota", "Corolla", 20000, 4, 2020, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r, err := v.Rent(5)
	if err != nil {
		t.Fatalf("Rent: %v", err)
	}
	// 12% 折扣 + 19% IVA，逐步截断
	if r.Subtotal != 100000 {
		t.Fatalf("subtotal = %d, want 100000", r.Subtotal)
	}
	if r.Discount != 12000 {
		t.Fatalf("discount = %d, want 12000", r.Discount)
	}
	if r.Tax != 16720 {
		t.Fatalf("tax = %d, want 16720", r.Tax)
	}
	if r.Total != 104720 {
		t.Fatalf("total = %d, want 104720", r.Total)
	}
	if r.ID == "" {
		t.Fatalf("expected non-empty receipt id")
	}
}

func TestComputeReceiptCargo(t *testing.T) {
	v, err := New(KindCargo, "EFGH34", "Volvo", "FH16", 15000, 2, 2019, 12000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r, err := v.Rent(10)
	if err != nil {
		t.Fatalf("Rent: %v", err)
	}
	// 7% 折扣 + 19% IVA
	if r.Subtotal != 150000 {
		t.Fatalf("subtotal = %d, want 150000", r.Subtotal)
	}
	if r.Discount != 10500 {
		t.Fatalf("discount = %d, want 10500", r.Discount)
	}
	if r.Tax != 26505 {
		t.Fatalf("tax = %d, want 26505", r.Tax)
	}
	if r.Total != 166005 {
		t.Fatalf("total = %d, want 166005", r.Total)
	}
}

func TestComputeReceiptRequiresRental(t *testing.T) {
	v, err := New(KindPassenger, "ABCD12", "Toyota", "Corolla", 20000, 4, 2020, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := v.ComputeReceipt(); !errors.Is(err, ErrNotRented) {
		t.Fatalf("expected ErrNotRented, got %v", err)
	}
}
