package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "evtaxi-admin/internal/config"
	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/query"
)

// RefundRow is a refund request joined with its trip, rider and driver.
type RefundRow struct {
	RefundRequestID       int64      `json:"refund_request_id"`
	TripID                int64      `json:"trip_id"`
	Reason                *string    `json:"reason"`
	RequestedRefundTWD    *float64   `json:"requested_refund_twd"`
	RequestedRefundPoints *int64     `json:"requested_refund_points"`
	ApprovedRefundTWD     *float64   `json:"approved_refund_twd"`
	ApprovedRefundPoints  *int64     `json:"approved_refund_points"`
	Status                string     `json:"status"`
	DecisionNote          *string    `json:"decision_note"`
	CreatedAt             *time.Time `json:"created_at"`
	DecidedAt             *time.Time `json:"decided_at"`
	RiderID               *int64     `json:"rider_id"`
	VehicleID             *int64     `json:"vehicle_id"`
	RiderName             *string    `json:"rider_name"`
	OwnerID               *int64     `json:"owner_id"`
	DriverName            *string    `json:"driver_name"`
}

// RefundDecision carries the write-path fields of a refund update.
// Approved amounts are pre-validated by the caller; nil means "leave as is".
type RefundDecision struct {
	Status               string
	ApprovedRefundTWD    *float64
	ApprovedRefundPoints *int64
	DecisionNote         *string
}

type RefundsRepository struct {
	DB *sql.DB
}

func (r RefundsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func refundFilter(status, searchType, searchValue string) *query.Builder {
	qb := query.New().OrderBy("rr.created_at DESC")

	if s := strings.TrimSpace(status); s != "" {
		qb.WhereEq("rr.status", s)
	}

	v := strings.TrimSpace(searchValue)
	if v == "" {
		return qb
	}
	switch searchType {
	case "user_id":
		qb.WhereAnyEq([]string{"t.user_id", "v.owner_id"}, v)
	case "trip_id":
		qb.WhereEq("rr.trip_id", v)
	case "user_name":
		qb.WhereAnyLike([]string{"u.name", "o.name"}, v)
	}
	return qb
}

// List returns refund requests filtered by the standard search triple,
// newest first.
func (r RefundsRepository) List(status, searchType, searchValue string) ([]RefundRow, error) {
	qb := refundFilter(status, searchType, searchValue)

	rows, err := r.db().Query(`
		SELECT
			rr.refund_request_id, rr.trip_id, rr.reason,
			rr.requested_refund_twd, rr.requested_refund_points,
			rr.approved_refund_twd, rr.approved_refund_points,
			rr.status, rr.decision_note, rr.created_at, rr.decided_at,
			t.user_id AS rider_id, t.vehicle_id,
			u.name AS rider_name,
			v.owner_id, o.name AS driver_name
		FROM Refund_Requests rr
		JOIN Trips t ON rr.trip_id = t.trip_id
		LEFT JOIN Users u ON t.user_id = u.user_id
		LEFT JOIN Vehicles v ON t.vehicle_id = v.vehicle_id
		LEFT JOIN Owners o ON v.owner_id = o.owner_id`+qb.Clause(), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RefundRow{}
	for rows.Next() {
		var (
			rec                  RefundRow
			reason, note         sql.NullString
			reqTWD, appTWD       sql.NullFloat64
			reqPts, appPts       sql.NullInt64
			createdAt, decidedAt sql.NullTime
			riderID, vehicleID   sql.NullInt64
			riderName            sql.NullString
			ownerID              sql.NullInt64
			driverName           sql.NullString
		)
		if err := rows.Scan(
			&rec.RefundRequestID, &rec.TripID, &reason,
			&reqTWD, &reqPts,
			&appTWD, &appPts,
			&rec.Status, &note, &createdAt, &decidedAt,
			&riderID, &vehicleID,
			&riderName,
			&ownerID, &driverName,
		); err != nil {
			return out, err
		}
		rec.Reason = strPtr(reason)
		rec.RequestedRefundTWD = floatPtr(reqTWD)
		rec.RequestedRefundPoints = intPtr(reqPts)
		rec.ApprovedRefundTWD = floatPtr(appTWD)
		rec.ApprovedRefundPoints = intPtr(appPts)
		rec.DecisionNote = strPtr(note)
		rec.CreatedAt = timePtr(createdAt)
		rec.DecidedAt = timePtr(decidedAt)
		rec.RiderID = intPtr(riderID)
		rec.VehicleID = intPtr(vehicleID)
		rec.RiderName = strPtr(riderName)
		rec.OwnerID = intPtr(ownerID)
		rec.DriverName = strPtr(driverName)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpdateDecision writes a refund decision. decided_at is stamped on every
// update; approved amounts are written only for approved/on_hold targets
// and only when supplied. The status must already be validated against
// domain.RefundStatuses.
func (r RefundsRepository) UpdateDecision(id int64, d RefundDecision) error {
	set := "status = ?, decided_at = NOW()"
	args := []any{d.Status}

	if d.DecisionNote != nil {
		set += ", decision_note = ?"
		args = append(args, *d.DecisionNote)
	}

	if d.Status == "approved" || d.Status == "on_hold" {
		if d.ApprovedRefundTWD != nil {
			set += ", approved_refund_twd = ?"
			args = append(args, *d.ApprovedRefundTWD)
		}
		if d.ApprovedRefundPoints != nil {
			set += ", approved_refund_points = ?"
			args = append(args, *d.ApprovedRefundPoints)
		}
	}

	args = append(args, id)
	res, err := r.db().Exec("UPDATE Refund_Requests SET "+set+" WHERE refund_request_id = ?", args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "refund request"}
	}
	return nil
}
