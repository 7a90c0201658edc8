package services

import (
	"testing"
	"time"

	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGrowthPercentZeroPrevious(t *testing.T) {
	if got := growthPercent(5, 0); got != 100 {
		t.Fatalf("previous=0 current=5 should read +100%%, got %v", got)
	}
	if got := growthPercent(0, 0); got != 0 {
		t.Fatalf("previous=0 current=0 should read 0%%, got %v", got)
	}
}

func TestGrowthPercentRounding(t *testing.T) {
	if got := growthPercent(1500, 1000); got != 50.0 {
		t.Fatalf("expected 50.0, got %v", got)
	}
	if got := growthPercent(4, 3); got != 33.3 {
		t.Fatalf("expected 33.3, got %v", got)
	}
	if got := growthPercent(500, 1000); got != -50.0 {
		t.Fatalf("expected -50.0, got %v", got)
	}
}

func TestGrowthWindowsDaily(t *testing.T) {
	ref := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	w, err := growthWindows("daily", ref)
	if err != nil {
		t.Fatalf("growthWindows error: %v", err)
	}

	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	if !w.currentStart.Equal(day) || !w.currentEnd.Equal(day.AddDate(0, 0, 1)) {
		t.Fatalf("current window wrong: %v - %v", w.currentStart, w.currentEnd)
	}
	if !w.previousStart.Equal(day.AddDate(0, 0, -1)) || !w.previousEnd.Equal(day) {
		t.Fatalf("previous window wrong: %v - %v", w.previousStart, w.previousEnd)
	}
	if w.currentLabel != "selected day" || w.previousLabel != "previous day" {
		t.Fatalf("labels wrong: %q / %q", w.currentLabel, w.previousLabel)
	}
}

func TestGrowthWindowsWeeklyStartsMonday(t *testing.T) {
	// 2025-03-12 is a Wednesday; its week starts Monday 2025-03-10.
	ref := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	w, err := growthWindows("weekly", ref)
	if err != nil {
		t.Fatalf("growthWindows error: %v", err)
	}

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !w.currentStart.Equal(monday) {
		t.Fatalf("expected week start %v, got %v", monday, w.currentStart)
	}
	if !w.previousStart.Equal(monday.AddDate(0, 0, -7)) || !w.previousEnd.Equal(monday) {
		t.Fatalf("previous week wrong: %v - %v", w.previousStart, w.previousEnd)
	}

	// A Sunday belongs to the week of the preceding Monday.
	sunday := time.Date(2025, 3, 16, 23, 0, 0, 0, time.UTC)
	w, err = growthWindows("weekly", sunday)
	if err != nil {
		t.Fatalf("growthWindows error: %v", err)
	}
	if !w.currentStart.Equal(monday) {
		t.Fatalf("sunday should map to week of %v, got %v", monday, w.currentStart)
	}
}

func TestGrowthWindowsMonthlyAndYearly(t *testing.T) {
	ref := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	w, err := growthWindows("monthly", ref)
	if err != nil {
		t.Fatalf("growthWindows error: %v", err)
	}
	if !w.currentStart.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("month start wrong: %v", w.currentStart)
	}
	// The previous month crosses the year boundary.
	if !w.previousStart.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("previous month start wrong: %v", w.previousStart)
	}

	w, err = growthWindows("yearly", ref)
	if err != nil {
		t.Fatalf("growthWindows error: %v", err)
	}
	if !w.currentStart.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) ||
		!w.previousStart.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("year windows wrong: %v / %v", w.currentStart, w.previousStart)
	}
}

func TestGrowthWindowsUnknownType(t *testing.T) {
	_, err := growthWindows("hourly", time.Now())
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetGrowthComparison(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := func(count int64, revenue float64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count", "revenue"}).AddRow(count, revenue)
	}
	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE`).WillReturnRows(rows(5, 1500))
	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE`).WillReturnRows(rows(0, 0))

	svc := DashboardService{Repo: repositories.DashboardRepository{DB: db}}
	out, err := svc.GetGrowthComparison("daily", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetGrowthComparison error: %v", err)
	}

	if out.Current.Label != "selected day" || out.Previous.Label != "previous day" {
		t.Fatalf("labels wrong: %+v", out)
	}
	if out.Growth.Trips != 100 || out.Growth.Revenue != 100 {
		t.Fatalf("zero previous period should cap growth at 100, got %+v", out.Growth)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetPaymentDistribution(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT t\.paid_with, COUNT\(\*\), COALESCE`).
		WillReturnRows(sqlmock.NewRows([]string{"paid_with", "count", "amount"}).
			AddRow("card", 1, 100.0).
			AddRow("points", 1, 50.0))

	svc := DashboardService{Repo: repositories.DashboardRepository{DB: db}}
	out, err := svc.GetPaymentDistribution()
	if err != nil {
		t.Fatalf("GetPaymentDistribution error: %v", err)
	}

	if out.TotalAmount != 150 {
		t.Fatalf("cash must be excluded from the total, got %v", out.TotalAmount)
	}
	if len(out.Data) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(out.Data))
	}
	if out.Data[0].Percentage != 66.7 || out.Data[1].Percentage != 33.3 {
		t.Fatalf("percentages wrong: %+v", out.Data)
	}
}

func TestGetPaymentDistributionEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT t\.paid_with, COUNT\(\*\), COALESCE`).
		WillReturnRows(sqlmock.NewRows([]string{"paid_with", "count", "amount"}))

	svc := DashboardService{Repo: repositories.DashboardRepository{DB: db}}
	out, err := svc.GetPaymentDistribution()
	if err != nil {
		t.Fatalf("GetPaymentDistribution error: %v", err)
	}
	if out.TotalAmount != 0 || len(out.Data) != 0 {
		t.Fatalf("expected empty distribution, got %+v", out)
	}
}
