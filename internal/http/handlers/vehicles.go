package handlers

import (
	"net/http"

	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/vehicles?status&search_type&search_value
func GetVehicles(c *gin.Context) {
	vehicles, err := repositories.VehiclesRepository{}.List(
		c.Query("status"),
		c.Query("search_type"),
		c.Query("search_value"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	vehicle, err := repositories.VehiclesRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

type vehicleStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/vehicles/:id/status
func UpdateVehicleStatus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var req vehicleStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := domain.ValidateStatus(domain.VehicleStatuses, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := (repositories.VehiclesRepository{}).UpdateStatus(id, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle status updated"})
}
