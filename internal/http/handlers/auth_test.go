package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	intconfig "evtaxi-admin/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func authHandlerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", Login)
	return r
}

func TestLoginUnknownEmailIs401(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectQuery(`FROM AdminUsers`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"admin_id", "name", "email", "password_hash"}))

	r := authHandlerRouter()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"pw"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery(`FROM AdminUsers`).
		WithArgs("ops@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"admin_id", "name", "email", "password_hash"}).
			AddRow(1, "Ops", "ops@example.com", string(hash)))

	r := authHandlerRouter()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"ops@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestLoginSuccessReturnsTokenAndAdmin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	mock.ExpectQuery(`FROM AdminUsers`).
		WithArgs("ops@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"admin_id", "name", "email", "password_hash"}).
			AddRow(1, "Ops", "ops@example.com", string(hash)))

	r := authHandlerRouter()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"email":"ops@example.com","password":"right-password"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		Admin struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"admin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token == "" || resp.Admin.ID != 1 || resp.Admin.Email != "ops@example.com" {
		t.Fatalf("unexpected login response: %s", w.Body.String())
	}
}
