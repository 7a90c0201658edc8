package repositories

import (
	"database/sql"

	intconfig "evtaxi-admin/internal/config"
	"evtaxi-admin/internal/domain"
)

// Admin is an active back-office account.
type Admin struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetActiveByEmail looks up an active admin for login.
func (r AdminRepository) GetActiveByEmail(email string) (Admin, error) {
	var a Admin
	err := r.db().QueryRow(`
		SELECT admin_id, name, email, password_hash
		FROM AdminUsers
		WHERE email = ? AND is_active = TRUE`, email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash)
	if err == sql.ErrNoRows {
		return a, domain.NotFoundError{Resource: "admin"}
	}
	return a, err
}

// Create inserts a new admin account and returns its id.
func (r AdminRepository) Create(name, email, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO AdminUsers (name, email, password_hash)
		VALUES (?, ?, ?)`, name, email, passwordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
