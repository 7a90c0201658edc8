package repositories

import (
	"reflect"
	"testing"

	"evtaxi-admin/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTripFilterEmptyTripleMeansNoFilters(t *testing.T) {
	qb := tripFilter("", "user_name", "")
	if qb.HasPredicates() {
		t.Fatalf("expected no predicates for empty status and search value")
	}

	qb = tripFilter("   ", "", "   ")
	if qb.HasPredicates() {
		t.Fatalf("expected whitespace inputs to be treated as absent")
	}
}

func TestTripFilterStatusOnly(t *testing.T) {
	qb := tripFilter(" completed ", "", "")
	if got := qb.Clause(); got != " WHERE t.status = ? ORDER BY t.requested_at DESC" {
		t.Fatalf("unexpected clause: %q", got)
	}
	if got := qb.Args(); !reflect.DeepEqual(got, []any{"completed"}) {
		t.Fatalf("unexpected args: %v", got)
	}
}

func TestTripFilterSearchTypes(t *testing.T) {
	cases := []struct {
		searchType string
		wantClause string
		wantArgs   []any
	}{
		{"trip_id", " WHERE t.trip_id = ? ORDER BY t.requested_at DESC", []any{"7"}},
		{"user_id", " WHERE t.user_id = ? ORDER BY t.requested_at DESC", []any{"7"}},
		{"vehicle_id", " WHERE t.vehicle_id = ? ORDER BY t.requested_at DESC", []any{"7"}},
		{"owner_id", " WHERE v.owner_id = ? ORDER BY t.requested_at DESC", []any{"7"}},
		{"user_name", " WHERE (u.name LIKE ? OR o.name LIKE ?) ORDER BY t.requested_at DESC", []any{"%7%", "%7%"}},
		{"plate_number", " WHERE v.plate_number LIKE ? ORDER BY t.requested_at DESC", []any{"%7%"}},
		{"vehicle_model", " WHERE v.model LIKE ? ORDER BY t.requested_at DESC", []any{"%7%"}},
	}

	for _, tc := range cases {
		qb := tripFilter("", tc.searchType, "7")
		if got := qb.Clause(); got != tc.wantClause {
			t.Fatalf("%s: clause mismatch:\n got %q\nwant %q", tc.searchType, got, tc.wantClause)
		}
		if got := qb.Args(); !reflect.DeepEqual(got, tc.wantArgs) {
			t.Fatalf("%s: args mismatch: %v", tc.searchType, got)
		}
	}
}

func TestTripFilterUnknownSearchTypeIgnored(t *testing.T) {
	qb := tripFilter("", "favorite_color", "blue")
	if qb.HasPredicates() {
		t.Fatalf("unknown search type must not add predicates")
	}
}

func TestUpdateTripStatusStampsPickup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE Trips SET status = \?, picked_up_at = NOW\(\) WHERE trip_id = \?`).
		WithArgs("on_trip", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := TripsRepository{DB: db}
	if err := repo.UpdateStatus(5, "on_trip", false); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateTripStatusStampsDropoff(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE Trips SET status = \?, dropped_off_at = NOW\(\) WHERE trip_id = \?`).
		WithArgs("completed", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := TripsRepository{DB: db}
	if err := repo.UpdateStatus(5, "completed", false); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateTripStatusSkipTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE Trips SET status = \? WHERE trip_id = \?`).
		WithArgs("completed", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := TripsRepository{DB: db}
	if err := repo.UpdateStatus(5, "completed", true); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateTripStatusMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE Trips SET status = \? WHERE trip_id = \?`).
		WithArgs("cancelled", int64(9999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TripsRepository{DB: db}
	err = repo.UpdateStatus(9999, "cancelled", false)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestTripListAppliesStatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"trip_id", "user_id", "vehicle_id",
		"requested_at", "picked_up_at", "dropped_off_at",
		"origin", "destination", "distance_km",
		"fare", "paid_amount", "paid_with", "status",
		"rider_name", "rider_phone",
		"plate_number", "vehicle_model",
		"driver_name", "driver_phone",
	}
	mock.ExpectQuery(`SELECT(?s).+FROM Trips t(?s).+WHERE t\.status = \? ORDER BY t\.requested_at DESC`).
		WithArgs("completed").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			1, 2, 3,
			nil, nil, nil,
			"Taipei Main Station", "Songshan Airport", 12.4,
			250.0, nil, "card", "completed",
			"Rider", "0900", "ABC-123", "Model Y", "Driver", "0911",
		))

	repo := TripsRepository{DB: db}
	trips, err := repo.List("completed", "", "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(trips))
	}
	if trips[0].PaidAmount != nil {
		t.Fatalf("paid_amount should stay nil when NULL")
	}
	if trips[0].Fare == nil || *trips[0].Fare != 250 {
		t.Fatalf("fare not scanned: %+v", trips[0].Fare)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
