package handlers

import (
	"net/http"

	intconfig "evtaxi-admin/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "admin API running"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusInternalServerError, "database unreachable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK"})
}
