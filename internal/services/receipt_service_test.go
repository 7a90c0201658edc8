package services

import (
	"testing"
	"time"

	"evtaxi-admin/internal/repositories"
)

func TestGenerateReceipt(t *testing.T) {
	fare := 250.0
	rider := "Tester"
	now := time.Now()

	svc := ReceiptService{Loader: func(id int64) (repositories.TripDetail, error) {
		d := repositories.TripDetail{}
		d.TripID = id
		d.Status = "completed"
		d.Fare = &fare
		d.RiderName = &rider
		d.RequestedAt = &now
		return d, nil
	}}

	pdf, filename, err := svc.GenerateReceipt(12)
	if err != nil {
		t.Fatalf("GenerateReceipt error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("empty PDF output")
	}
	if filename != "RECEIPT_12.pdf" {
		t.Fatalf("unexpected filename: %q", filename)
	}
}

func TestBilledAmountRespectsExplicitZero(t *testing.T) {
	fare := 250.0
	zero := 0.0

	var d repositories.TripDetail
	d.Fare = &fare
	if got := billedAmountOf(d); got != 250 {
		t.Fatalf("nil paid_amount should fall back to fare, got %v", got)
	}

	d.PaidAmount = &zero
	if got := billedAmountOf(d); got != 0 {
		t.Fatalf("explicit zero paid_amount must be respected, got %v", got)
	}

	d.Fare = nil
	d.PaidAmount = nil
	if got := billedAmountOf(d); got != 0 {
		t.Fatalf("all-nil trip should bill 0, got %v", got)
	}
}
