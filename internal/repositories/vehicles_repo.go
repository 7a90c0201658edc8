package repositories

import (
	"database/sql"
	"strings"
	"time"

	intconfig "evtaxi-admin/internal/config"
	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/query"
)

// VehicleRow is a vehicle list entry with joined owner contact fields.
type VehicleRow struct {
	VehicleID            int64      `json:"vehicle_id"`
	OwnerID              *int64     `json:"owner_id"`
	PlateNumber          string     `json:"plate_number"`
	Model                *string    `json:"model"`
	BatteryCapacityKWh   *float64   `json:"battery_capacity_kwh"`
	CurrentChargePercent *float64   `json:"current_charge_percent"`
	LocationLat          *float64   `json:"location_lat"`
	LocationLng          *float64   `json:"location_lng"`
	Status               string     `json:"status"`
	UpdatedAt            *time.Time `json:"updated_at"`
	OwnerName            *string    `json:"owner_name,omitempty"`
	OwnerPhone           *string    `json:"owner_phone,omitempty"`
	OwnerEmail           *string    `json:"owner_email,omitempty"`
}

type VehiclesRepository struct {
	DB *sql.DB
}

func (r VehiclesRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleListSelect = `
		SELECT
			v.vehicle_id, v.owner_id, v.plate_number, v.model,
			v.battery_capacity_kwh, v.current_charge_percent,
			v.location_lat, v.location_lng, v.status, v.updated_at,
			o.name AS owner_name, o.phone AS owner_phone, o.email AS owner_email
		FROM Vehicles v
		LEFT JOIN Owners o ON v.owner_id = o.owner_id`

func vehicleFilter(status, searchType, searchValue string) *query.Builder {
	qb := query.New().OrderBy("v.vehicle_id DESC")

	if s := strings.TrimSpace(status); s != "" {
		qb.WhereEq("v.status", s)
	}

	v := strings.TrimSpace(searchValue)
	if v == "" {
		return qb
	}
	switch searchType {
	case "plate_number":
		qb.WhereLike("v.plate_number", v)
	case "model":
		qb.WhereLike("v.model", v)
	case "owner_name":
		qb.WhereLike("o.name", v)
	case "owner_id":
		qb.WhereEq("v.owner_id", v)
	}
	return qb
}

// List returns vehicles filtered by the standard search triple.
func (r VehiclesRepository) List(status, searchType, searchValue string) ([]VehicleRow, error) {
	qb := vehicleFilter(status, searchType, searchValue)

	rows, err := r.db().Query(vehicleListSelect+qb.Clause(), qb.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VehicleRow{}
	for rows.Next() {
		rec, err := scanVehicleRow(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListByOwner returns one owner's vehicles without the owner join.
func (r VehiclesRepository) ListByOwner(ownerID int64) ([]VehicleRow, error) {
	rows, err := r.db().Query(`
		SELECT
			vehicle_id, owner_id, plate_number, model,
			battery_capacity_kwh, current_charge_percent,
			location_lat, location_lng, status, updated_at
		FROM Vehicles
		WHERE owner_id = ?
		ORDER BY vehicle_id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []VehicleRow{}
	for rows.Next() {
		var (
			rec             VehicleRow
			owner           sql.NullInt64
			model           sql.NullString
			battery, charge sql.NullFloat64
			lat, lng        sql.NullFloat64
			updatedAt       sql.NullTime
		)
		if err := rows.Scan(
			&rec.VehicleID, &owner, &rec.PlateNumber, &model,
			&battery, &charge, &lat, &lng, &rec.Status, &updatedAt,
		); err != nil {
			return out, err
		}
		rec.OwnerID = intPtr(owner)
		rec.Model = strPtr(model)
		rec.BatteryCapacityKWh = floatPtr(battery)
		rec.CurrentChargePercent = floatPtr(charge)
		rec.LocationLat = floatPtr(lat)
		rec.LocationLng = floatPtr(lng)
		rec.UpdatedAt = timePtr(updatedAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanVehicleRow(rows *sql.Rows) (VehicleRow, error) {
	var (
		rec                   VehicleRow
		owner                 sql.NullInt64
		model                 sql.NullString
		battery, charge       sql.NullFloat64
		lat, lng              sql.NullFloat64
		updatedAt             sql.NullTime
		oName, oPhone, oEmail sql.NullString
	)
	if err := rows.Scan(
		&rec.VehicleID, &owner, &rec.PlateNumber, &model,
		&battery, &charge, &lat, &lng, &rec.Status, &updatedAt,
		&oName, &oPhone, &oEmail,
	); err != nil {
		return rec, err
	}
	rec.OwnerID = intPtr(owner)
	rec.Model = strPtr(model)
	rec.BatteryCapacityKWh = floatPtr(battery)
	rec.CurrentChargePercent = floatPtr(charge)
	rec.LocationLat = floatPtr(lat)
	rec.LocationLng = floatPtr(lng)
	rec.UpdatedAt = timePtr(updatedAt)
	rec.OwnerName = strPtr(oName)
	rec.OwnerPhone = strPtr(oPhone)
	rec.OwnerEmail = strPtr(oEmail)
	return rec, nil
}

// GetByID returns one vehicle with owner contact fields.
func (r VehiclesRepository) GetByID(id int64) (VehicleRow, error) {
	var (
		rec                   VehicleRow
		owner                 sql.NullInt64
		model                 sql.NullString
		battery, charge       sql.NullFloat64
		lat, lng              sql.NullFloat64
		updatedAt             sql.NullTime
		oName, oPhone, oEmail sql.NullString
	)
	err := r.db().QueryRow(vehicleListSelect+" WHERE v.vehicle_id = ?", id).Scan(
		&rec.VehicleID, &owner, &rec.PlateNumber, &model,
		&battery, &charge, &lat, &lng, &rec.Status, &updatedAt,
		&oName, &oPhone, &oEmail,
	)
	if err == sql.ErrNoRows {
		return rec, domain.NotFoundError{Resource: "vehicle"}
	}
	if err != nil {
		return rec, err
	}
	rec.OwnerID = intPtr(owner)
	rec.Model = strPtr(model)
	rec.BatteryCapacityKWh = floatPtr(battery)
	rec.CurrentChargePercent = floatPtr(charge)
	rec.LocationLat = floatPtr(lat)
	rec.LocationLng = floatPtr(lng)
	rec.UpdatedAt = timePtr(updatedAt)
	rec.OwnerName = strPtr(oName)
	rec.OwnerPhone = strPtr(oPhone)
	rec.OwnerEmail = strPtr(oEmail)
	return rec, nil
}

// UpdateStatus sets a vehicle's status. The value must already be
// validated against domain.VehicleStatuses.
func (r VehiclesRepository) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec("UPDATE Vehicles SET status = ? WHERE vehicle_id = ?", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}
