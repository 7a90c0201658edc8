package services

import (
	"bytes"
	"fmt"
	"time"

	"evtaxi-admin/internal/repositories"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a PDF receipt for a single trip.
type ReceiptService struct {
	TripsRepo repositories.TripsRepository
	Loader    func(int64) (repositories.TripDetail, error)
}

func (s ReceiptService) GenerateReceipt(tripID int64) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.TripsRepo.GetByID
	}
	trip, err := load(tripID)
	if err != nil {
		return nil, "", err
	}
	return buildReceiptPDF(trip)
}

func buildReceiptPDF(t repositories.TripDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Trip        : #%d", t.TripID),
		fmt.Sprintf("Status      : %s", t.Status),
		fmt.Sprintf("Rider       : %s", orDash(t.RiderName)),
		fmt.Sprintf("Rider phone : %s", orDash(t.RiderPhone)),
		fmt.Sprintf("Driver      : %s", orDash(t.DriverName)),
		fmt.Sprintf("Vehicle     : %s (%s)", orDash(t.PlateNumber), orDash(t.VehicleModel)),
		fmt.Sprintf("From        : %s", orDash(t.Origin)),
		fmt.Sprintf("To          : %s", orDash(t.Destination)),
		fmt.Sprintf("Distance    : %s km", floatOrDash(t.DistanceKm)),
		fmt.Sprintf("Requested   : %s", timeOrDash(t.RequestedAt)),
		fmt.Sprintf("Picked up   : %s", timeOrDash(t.PickedUpAt)),
		fmt.Sprintf("Dropped off : %s", timeOrDash(t.DroppedOffAt)),
		fmt.Sprintf("Paid with   : %s", orDash(t.PaidWith)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Billed amount (TWD): %.2f", billedAmountOf(t)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Generated %s by the EV-taxi back office.", time.Now().Format("2006-01-02 15:04")), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d.pdf", t.TripID)
	return buf.Bytes(), filename, nil
}

// billedAmountOf mirrors the revenue rule: paid_amount when present
// (including an explicit zero), else fare, else 0.
func billedAmountOf(t repositories.TripDetail) float64 {
	if t.PaidAmount != nil {
		return *t.PaidAmount
	}
	if t.Fare != nil {
		return *t.Fare
	}
	return 0
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func floatOrDash(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *f)
}

func timeOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
