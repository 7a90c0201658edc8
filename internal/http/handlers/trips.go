package handlers

import (
	"net/http"

	"evtaxi-admin/internal/domain"
	"evtaxi-admin/internal/repositories"
	"evtaxi-admin/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/trips?status&search_type&search_value
func GetTrips(c *gin.Context) {
	trips, err := repositories.TripsRepository{}.List(
		c.Query("status"),
		c.Query("search_type"),
		c.Query("search_value"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	trip, err := repositories.TripsRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

type tripStatusRequest struct {
	Status        string `json:"status"`
	SkipTimestamp bool   `json:"skip_timestamp"`
}

// PUT /api/trips/:id/status
func UpdateTripStatus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var req tripStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := domain.ValidateStatus(domain.TripStatuses, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}

	if err := (repositories.TripsRepository{}).UpdateStatus(id, req.Status, req.SkipTimestamp); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip status updated"})
}

// GET /api/trips/:id/receipt
func GetTripReceipt(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	pdf, filename, err := services.ReceiptService{}.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
