package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "evtaxi-admin/internal/config"
	"evtaxi-admin/internal/domain"
)

// billedAmount is the revenue attributed to a trip: paid_amount when set
// (an explicit 0 counts), otherwise fare, otherwise 0.
const billedAmount = "COALESCE(t.paid_amount, t.fare, 0)"

// bucketExprs maps a series granularity to its MySQL grouping key over
// requested_at. The map doubles as the granularity allow-list.
var bucketExprs = map[string]string{
	"daily":   "DATE_FORMAT(t.requested_at, '%Y-%m-%d')",
	"monthly": "DATE_FORMAT(t.requested_at, '%Y-%m')",
	"yearly":  "DATE_FORMAT(t.requested_at, '%Y')",
}

// RevenueBucket is one aggregation unit of a revenue series.
type RevenueBucket struct {
	Date          string  `json:"date"`
	CardRevenue   float64 `json:"card_revenue"`
	PointsRevenue float64 `json:"points_revenue"`
	TotalRevenue  float64 `json:"total_revenue"`
	TripCount     int64   `json:"trip_count"`
}

// PeriodStats are the completed-trip count and revenue inside one window.
type PeriodStats struct {
	Count   int64
	Revenue float64
}

// Totals are the dashboard headline counts.
type Totals struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalDrivers  int64 `json:"totalDrivers"`
	TotalVehicles int64 `json:"totalVehicles"`
	TotalTrips    int64 `json:"totalTrips"`
}

// PaymentMethodStats is one paid_with group of the distribution query.
type PaymentMethodStats struct {
	Method string
	Count  int64
	Amount float64
}

type DashboardRepository struct {
	DB *sql.DB
}

func (r DashboardRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Totals counts users, owners, vehicles and trips. The four reads are
// independent; the first failure fails the whole call.
func (r DashboardRepository) Totals() (Totals, error) {
	var t Totals
	for _, c := range []struct {
		table string
		dst   *int64
	}{
		{"Users", &t.TotalUsers},
		{"Owners", &t.TotalDrivers},
		{"Vehicles", &t.TotalVehicles},
		{"Trips", &t.TotalTrips},
	} {
		if err := r.db().QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dst); err != nil {
			return t, err
		}
	}
	return t, nil
}

// RevenueSeries returns up to 50 revenue buckets of completed trips,
// ascending by bucket key. startDate/endDate bound requested_at
// inclusively when non-empty.
func (r DashboardRepository) RevenueSeries(granularity, startDate, endDate string) ([]RevenueBucket, error) {
	bucket, ok := bucketExprs[granularity]
	if !ok {
		return nil, domain.ValidationError{Field: "type", Msg: "invalid revenue series type: " + granularity}
	}

	q := `
		SELECT
			` + bucket + ` AS date,
			SUM(CASE WHEN t.paid_with = 'card' THEN ` + billedAmount + ` ELSE 0 END) AS card_revenue,
			SUM(CASE WHEN t.paid_with = 'points' THEN ` + billedAmount + ` ELSE 0 END) AS points_revenue,
			SUM(` + billedAmount + `) AS total_revenue,
			COUNT(*) AS trip_count
		FROM Trips t
		WHERE t.status = 'completed'
		  AND t.requested_at IS NOT NULL`

	args := []any{}
	if s := strings.TrimSpace(startDate); s != "" {
		q += " AND t.requested_at >= ?"
		args = append(args, s)
	}
	if e := strings.TrimSpace(endDate); e != "" {
		q += " AND t.requested_at <= ?"
		args = append(args, e)
	}

	q += `
		GROUP BY date
		ORDER BY date ASC
		LIMIT 50`

	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RevenueBucket{}
	for rows.Next() {
		var b RevenueBucket
		if err := rows.Scan(&b.Date, &b.CardRevenue, &b.PointsRevenue, &b.TotalRevenue, &b.TripCount); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// WindowStats aggregates completed trips whose requested_at falls in
// [start, end).
func (r DashboardRepository) WindowStats(start, end time.Time) (PeriodStats, error) {
	var s PeriodStats
	err := r.db().QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(`+billedAmount+`), 0)
		FROM Trips t
		WHERE t.status = 'completed'
		  AND t.requested_at >= ?
		  AND t.requested_at < ?`, start, end).Scan(&s.Count, &s.Revenue)
	return s, err
}

// PaymentDistribution groups completed trips by payment method, card and
// points only.
func (r DashboardRepository) PaymentDistribution() ([]PaymentMethodStats, error) {
	rows, err := r.db().Query(`
		SELECT t.paid_with, COUNT(*), COALESCE(SUM(` + billedAmount + `), 0)
		FROM Trips t
		WHERE t.status = 'completed'
		  AND t.paid_with IN ('card', 'points')
		GROUP BY t.paid_with`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PaymentMethodStats{}
	for rows.Next() {
		var s PaymentMethodStats
		if err := rows.Scan(&s.Method, &s.Count, &s.Amount); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
