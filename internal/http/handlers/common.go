package handlers

import (
	"net/http"
	"strconv"

	"evtaxi-admin/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload. details carries
// diagnostics and must never include credentials.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{"error": message}
	if err != nil {
		payload["details"] = err.Error()
	}
	if rid := middleware.GetRequestID(c); rid != "" {
		payload["request_id"] = rid
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// PathID parses the numeric :id path parameter; responds 400 on garbage.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid "+name, err)
		return 0, false
	}
	return id, true
}
