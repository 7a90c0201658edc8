package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "evtaxi-admin/internal/config"
	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/query"
)

// TripRow is a trip list entry with joined rider/vehicle/owner fields.
type TripRow struct {
	TripID       int64      `json:"trip_id"`
	UserID       *int64     `json:"user_id"`
	VehicleID    *int64     `json:"vehicle_id"`
	RequestedAt  *time.Time `json:"requested_at"`
	PickedUpAt   *time.Time `json:"picked_up_at"`
	DroppedOffAt *time.Time `json:"dropped_off_at"`
	Origin       *string    `json:"origin"`
	Destination  *string    `json:"destination"`
	DistanceKm   *float64   `json:"distance_km"`
	Fare         *float64   `json:"fare"`
	PaidAmount   *float64   `json:"paid_amount"`
	PaidWith     *string    `json:"paid_with"`
	Status       string     `json:"status"`
	RiderName    *string    `json:"rider_name"`
	RiderPhone   *string    `json:"rider_phone"`
	PlateNumber  *string    `json:"plate_number"`
	VehicleModel *string    `json:"vehicle_model"`
	DriverName   *string    `json:"driver_name"`
	DriverPhone  *string    `json:"driver_phone"`
}

// TripDetail extends TripRow with the contact/vehicle fields shown on the
// single-trip view.
type TripDetail struct {
	TripRow
	RiderEmail         *string  `json:"rider_email"`
	BatteryCapacityKWh *float64 `json:"battery_capacity_kwh"`
	OwnerID            *int64   `json:"owner_id"`
	DriverEmail        *string  `json:"driver_email"`
}

type TripsRepository struct {
	DB *sql.DB
}

func (r TripsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripListSelect = `
		SELECT
			t.trip_id, t.user_id, t.vehicle_id,
			t.requested_at, t.picked_up_at, t.dropped_off_at,
			t.origin, t.destination, t.distance_km,
			t.fare, t.paid_amount, t.paid_with, t.status,
			u.name AS rider_name, u.phone AS rider_phone,
			v.plate_number, v.model AS vehicle_model,
			o.name AS driver_name, o.phone AS driver_phone
		FROM Trips t
		LEFT JOIN Users u ON t.user_id = u.user_id
		LEFT JOIN Vehicles v ON t.vehicle_id = v.vehicle_id
		LEFT JOIN Owners o ON v.owner_id = o.owner_id`

// tripFilter translates the (status, search_type, search_value) triple
// into a predicate list. Unrecognized search types add no predicate.
func tripFilter(status, searchType, searchValue string) *query.Builder {
	qb := query.New().OrderBy("t.requested_at DESC")

	if s := strings.TrimSpace(status); s != "" {
		qb.WhereEq("t.status", s)
	}

	v := strings.TrimSpace(searchValue)
	if v == "" {
		return qb
	}
	switch searchType {
	case "trip_id":
		qb.WhereEq("t.trip_id", v)
	case "user_id":
		qb.WhereEq("t.user_id", v)
	case "vehicle_id":
		qb.WhereEq("t.vehicle_id", v)
	case "owner_id":
		qb.WhereEq("v.owner_id", v)
	case "user_name":
		qb.WhereAnyLike([]string{"u.name", "o.name"}, v)
	case "plate_number":
		qb.WhereLike("v.plate_number", v)
	case "vehicle_model":
		qb.WhereLike("v.model", v)
	}
	return qb
}

// List returns trips filtered by the standard search triple, newest first.
func (r TripsRepository) List(status, searchType, searchValue string) ([]TripRow, error) {
	qb := tripFilter(status, searchType, searchValue)
	return r.listTrips(tripListSelect+qb.Clause(), qb.Args()...)
}

// ListByRider returns one rider's trips, newest first.
func (r TripsRepository) ListByRider(userID int64) ([]TripRow, error) {
	qb := query.New().OrderBy("t.requested_at DESC").WhereEq("t.user_id", userID)
	return r.listTrips(tripListSelect+qb.Clause(), qb.Args()...)
}

func (r TripsRepository) listTrips(q string, args ...any) ([]TripRow, error) {
	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TripRow{}
	for rows.Next() {
		rec, err := scanTripRow(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanTripRow(rows *sql.Rows) (TripRow, error) {
	var (
		rec                                  TripRow
		userID, vehicleID                    sql.NullInt64
		requestedAt, pickedUp, droppedOff    sql.NullTime
		origin, destination                  sql.NullString
		distance, fare, paidAmount           sql.NullFloat64
		paidWith, riderName, riderPhone      sql.NullString
		plate, model, driverName, driverPhon sql.NullString
	)
	if err := rows.Scan(
		&rec.TripID, &userID, &vehicleID,
		&requestedAt, &pickedUp, &droppedOff,
		&origin, &destination, &distance,
		&fare, &paidAmount, &paidWith, &rec.Status,
		&riderName, &riderPhone,
		&plate, &model,
		&driverName, &driverPhon,
	); err != nil {
		return rec, err
	}
	rec.UserID = intPtr(userID)
	rec.VehicleID = intPtr(vehicleID)
	rec.RequestedAt = timePtr(requestedAt)
	rec.PickedUpAt = timePtr(pickedUp)
	rec.DroppedOffAt = timePtr(droppedOff)
	rec.Origin = strPtr(origin)
	rec.Destination = strPtr(destination)
	rec.DistanceKm = floatPtr(distance)
	rec.Fare = floatPtr(fare)
	rec.PaidAmount = floatPtr(paidAmount)
	rec.PaidWith = strPtr(paidWith)
	rec.RiderName = strPtr(riderName)
	rec.RiderPhone = strPtr(riderPhone)
	rec.PlateNumber = strPtr(plate)
	rec.VehicleModel = strPtr(model)
	rec.DriverName = strPtr(driverName)
	rec.DriverPhone = strPtr(driverPhon)
	return rec, nil
}

// GetByID returns one trip with full joined detail.
func (r TripsRepository) GetByID(id int64) (TripDetail, error) {
	var (
		out                                TripDetail
		userID, vehicleID, ownerID         sql.NullInt64
		requestedAt, pickedUp, droppedOff  sql.NullTime
		origin, destination                sql.NullString
		distance, fare, paidAmount         sql.NullFloat64
		battery                            sql.NullFloat64
		paidWith                           sql.NullString
		riderName, riderPhone, riderEmail  sql.NullString
		plate, model                       sql.NullString
		driverName, driverPhon, driverMail sql.NullString
	)

	err := r.db().QueryRow(`
		SELECT
			t.trip_id, t.user_id, t.vehicle_id,
			t.requested_at, t.picked_up_at, t.dropped_off_at,
			t.origin, t.destination, t.distance_km,
			t.fare, t.paid_amount, t.paid_with, t.status,
			u.name AS rider_name, u.phone AS rider_phone, u.email AS rider_email,
			v.plate_number, v.model AS vehicle_model, v.battery_capacity_kwh,
			o.owner_id, o.name AS driver_name, o.phone AS driver_phone, o.email AS driver_email
		FROM Trips t
		LEFT JOIN Users u ON t.user_id = u.user_id
		LEFT JOIN Vehicles v ON t.vehicle_id = v.vehicle_id
		LEFT JOIN Owners o ON v.owner_id = o.owner_id
		WHERE t.trip_id = ?`, id).Scan(
		&out.TripID, &userID, &vehicleID,
		&requestedAt, &pickedUp, &droppedOff,
		&origin, &destination, &distance,
		&fare, &paidAmount, &paidWith, &out.Status,
		&riderName, &riderPhone, &riderEmail,
		&plate, &model, &battery,
		&ownerID, &driverName, &driverPhon, &driverMail,
	)
	if err == sql.ErrNoRows {
		return out, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return out, err
	}

	out.UserID = intPtr(userID)
	out.VehicleID = intPtr(vehicleID)
	out.RequestedAt = timePtr(requestedAt)
	out.PickedUpAt = timePtr(pickedUp)
	out.DroppedOffAt = timePtr(droppedOff)
	out.Origin = strPtr(origin)
	out.Destination = strPtr(destination)
	out.DistanceKm = floatPtr(distance)
	out.Fare = floatPtr(fare)
	out.PaidAmount = floatPtr(paidAmount)
	out.PaidWith = strPtr(paidWith)
	out.RiderName = strPtr(riderName)
	out.RiderPhone = strPtr(riderPhone)
	out.RiderEmail = strPtr(riderEmail)
	out.PlateNumber = strPtr(plate)
	out.VehicleModel = strPtr(model)
	out.BatteryCapacityKWh = floatPtr(battery)
	out.OwnerID = intPtr(ownerID)
	out.DriverName = strPtr(driverName)
	out.DriverPhone = strPtr(driverPhon)
	out.DriverEmail = strPtr(driverMail)
	return out, nil
}

// UpdateStatus sets a trip's status. Entering on_trip stamps picked_up_at
// and entering completed stamps dropped_off_at unless the caller opted out.
// The status value must already be validated against domain.TripStatuses.
func (r TripsRepository) UpdateStatus(id int64, status string, skipTimestamp bool) error {
	set := "status = ?"
	if !skipTimestamp {
		switch status {
		case "on_trip":
			set += ", picked_up_at = NOW()"
		case "completed":
			set += ", dropped_off_at = NOW()"
		}
	}

	res, err := r.db().Exec("UPDATE Trips SET "+set+" WHERE trip_id = ?", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}
