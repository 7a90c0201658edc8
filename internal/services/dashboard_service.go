package services

import (
	"math"
	"time"

	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/repositories"
)

type DashboardService struct {
	Repo repositories.DashboardRepository
}

// PeriodSummary is one side of a growth comparison. Label is part of the
// response contract; dashboard clients key off it.
type PeriodSummary struct {
	Label   string  `json:"label"`
	Trips   int64   `json:"trips"`
	Revenue float64 `json:"revenue"`
}

type GrowthRates struct {
	Trips   float64 `json:"trips"`
	Revenue float64 `json:"revenue"`
}

type GrowthComparison struct {
	Current  PeriodSummary `json:"current"`
	Previous PeriodSummary `json:"previous"`
	Growth   GrowthRates   `json:"growth"`
}

type PaymentShare struct {
	Type       string  `json:"type"`
	Count      int64   `json:"count"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type PaymentDistribution struct {
	Data        []PaymentShare `json:"data"`
	TotalAmount float64        `json:"totalAmount"`
}

func (s DashboardService) GetTotals() (repositories.Totals, error) {
	return s.Repo.Totals()
}

func (s DashboardService) GetRevenueSeries(seriesType, startDate, endDate string) ([]repositories.RevenueBucket, error) {
	return s.Repo.RevenueSeries(seriesType, startDate, endDate)
}

// GetGrowthComparison compares the reference period against the one
// before it. Windows are computed here and passed to the store as bound
// time bounds.
func (s DashboardService) GetGrowthComparison(growthType string, reference time.Time) (GrowthComparison, error) {
	var out GrowthComparison

	w, err := growthWindows(growthType, reference)
	if err != nil {
		return out, err
	}

	current, err := s.Repo.WindowStats(w.currentStart, w.currentEnd)
	if err != nil {
		return out, err
	}
	previous, err := s.Repo.WindowStats(w.previousStart, w.previousEnd)
	if err != nil {
		return out, err
	}

	out.Current = PeriodSummary{Label: w.currentLabel, Trips: current.Count, Revenue: current.Revenue}
	out.Previous = PeriodSummary{Label: w.previousLabel, Trips: previous.Count, Revenue: previous.Revenue}
	out.Growth = GrowthRates{
		Trips:   growthPercent(float64(current.Count), float64(previous.Count)),
		Revenue: growthPercent(current.Revenue, previous.Revenue),
	}
	return out, nil
}

// GetPaymentDistribution shapes the card/points breakdown with one-decimal
// percentages of the included total.
func (s DashboardService) GetPaymentDistribution() (PaymentDistribution, error) {
	rows, err := s.Repo.PaymentDistribution()
	if err != nil {
		return PaymentDistribution{}, err
	}

	var total float64
	for _, row := range rows {
		total += row.Amount
	}

	data := []PaymentShare{}
	for _, row := range rows {
		share := PaymentShare{Type: row.Method, Count: row.Count, Amount: row.Amount}
		if total > 0 {
			share.Percentage = round1(row.Amount / total * 100)
		}
		data = append(data, share)
	}
	return PaymentDistribution{Data: data, TotalAmount: total}, nil
}

type growthWindow struct {
	currentStart, currentEnd   time.Time
	previousStart, previousEnd time.Time
	currentLabel               string
	previousLabel              string
}

// growthWindows derives the [start, end) bounds of the reference period
// and the one preceding it. Weeks start on Monday.
func growthWindows(growthType string, reference time.Time) (growthWindow, error) {
	day := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())

	switch growthType {
	case "daily":
		return growthWindow{
			currentStart:  day,
			currentEnd:    day.AddDate(0, 0, 1),
			previousStart: day.AddDate(0, 0, -1),
			previousEnd:   day,
			currentLabel:  "selected day",
			previousLabel: "previous day",
		}, nil
	case "weekly":
		monday := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
		return growthWindow{
			currentStart:  monday,
			currentEnd:    monday.AddDate(0, 0, 7),
			previousStart: monday.AddDate(0, 0, -7),
			previousEnd:   monday,
			currentLabel:  "selected week",
			previousLabel: "previous week",
		}, nil
	case "monthly":
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return growthWindow{
			currentStart:  first,
			currentEnd:    first.AddDate(0, 1, 0),
			previousStart: first.AddDate(0, -1, 0),
			previousEnd:   first,
			currentLabel:  "selected month",
			previousLabel: "previous month",
		}, nil
	case "yearly":
		first := time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
		return growthWindow{
			currentStart:  first,
			currentEnd:    first.AddDate(1, 0, 0),
			previousStart: first.AddDate(-1, 0, 0),
			previousEnd:   first,
			currentLabel:  "selected year",
			previousLabel: "previous year",
		}, nil
	default:
		return growthWindow{}, domain.ValidationError{Field: "type", Msg: "invalid growth type: " + growthType}
	}
}

// growthPercent keeps the legacy divide-by-zero convention: a previous
// period of zero reads as +100% when anything happened, else 0.
func growthPercent(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1((current - previous) / previous * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
