package handlers

import (
	"net/http"
	"strings"
	"time"

	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret installs the signing key; called once at router setup.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	admin, err := repositories.AdminRepository{}.GetActiveByEmail(req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "server error", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}

type createAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/create-admin
//
// Dev bootstrap endpoint; mirrors login in being unauthenticated.
func CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	id, err := repositories.AdminRepository{}.Create(req.Name, req.Email, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create admin", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "admin created", "adminId": id})
}
