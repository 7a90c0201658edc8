package handlers

import (
	"net/http"

	"evtaxi-admin/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Store-level
// failures surface as a generic 500 with details for diagnostics.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "server error", err)
	}
}
