package repositories

import (
	"database/sql"
	"time"

	intconfig "evtaxi-admin/internal/config"
	"evtaxi-admin/internal/domain"
)

// AccountRow is one entry of the synthetic rider+driver user list.
// TripCount is populated for riders, VehicleCount for drivers.
type AccountRow struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Phone        *string    `json:"phone"`
	Email        *string    `json:"email"`
	CreatedAt    *time.Time `json:"created_at"`
	UserType     string     `json:"user_type"`
	TripCount    *int64     `json:"trip_count,omitempty"`
	VehicleCount *int64     `json:"vehicle_count,omitempty"`
}

type UsersRepository struct {
	DB *sql.DB
}

func (r UsersRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListRiders returns all riders with their derived trip counts, id DESC.
func (r UsersRepository) ListRiders() ([]AccountRow, error) {
	rows, err := r.db().Query(`
		SELECT
			u.user_id AS id, u.name, u.phone, u.email, u.created_at,
			COUNT(t.trip_id) AS trip_count
		FROM Users u
		LEFT JOIN Trips t ON u.user_id = t.user_id
		GROUP BY u.user_id, u.name, u.phone, u.email, u.created_at
		ORDER BY u.user_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []AccountRow{}
	for rows.Next() {
		var (
			rec          AccountRow
			phone, email sql.NullString
			createdAt    sql.NullTime
			count        int64
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &phone, &email, &createdAt, &count); err != nil {
			return out, err
		}
		rec.Phone = strPtr(phone)
		rec.Email = strPtr(email)
		rec.CreatedAt = timePtr(createdAt)
		rec.UserType = "rider"
		rec.TripCount = &count
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListOwners returns all vehicle owners with their derived vehicle counts,
// id DESC.
func (r UsersRepository) ListOwners() ([]AccountRow, error) {
	rows, err := r.db().Query(`
		SELECT
			o.owner_id AS id, o.name, o.phone, o.email, o.registered_at AS created_at,
			COUNT(v.vehicle_id) AS vehicle_count
		FROM Owners o
		LEFT JOIN Vehicles v ON o.owner_id = v.owner_id
		GROUP BY o.owner_id, o.name, o.phone, o.email, o.registered_at
		ORDER BY o.owner_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []AccountRow{}
	for rows.Next() {
		var (
			rec          AccountRow
			phone, email sql.NullString
			createdAt    sql.NullTime
			count        int64
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &phone, &email, &createdAt, &count); err != nil {
			return out, err
		}
		rec.Phone = strPtr(phone)
		rec.Email = strPtr(email)
		rec.CreatedAt = timePtr(createdAt)
		rec.UserType = "driver"
		rec.VehicleCount = &count
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetRider returns one rider without derived counts.
func (r UsersRepository) GetRider(id int64) (AccountRow, error) {
	return r.getAccount(`
		SELECT user_id AS id, name, phone, email, created_at
		FROM Users
		WHERE user_id = ?`, id, "rider")
}

// GetOwner returns one vehicle owner without derived counts.
func (r UsersRepository) GetOwner(id int64) (AccountRow, error) {
	return r.getAccount(`
		SELECT owner_id AS id, name, phone, email, registered_at AS created_at
		FROM Owners
		WHERE owner_id = ?`, id, "driver")
}

func (r UsersRepository) getAccount(q string, id int64, userType string) (AccountRow, error) {
	var (
		rec          AccountRow
		phone, email sql.NullString
		createdAt    sql.NullTime
	)
	err := r.db().QueryRow(q, id).Scan(&rec.ID, &rec.Name, &phone, &email, &createdAt)
	if err == sql.ErrNoRows {
		return rec, domain.NotFoundError{Resource: userType}
	}
	if err != nil {
		return rec, err
	}
	rec.Phone = strPtr(phone)
	rec.Email = strPtr(email)
	rec.CreatedAt = timePtr(createdAt)
	rec.UserType = userType
	return rec, nil
}
