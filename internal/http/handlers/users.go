package handlers

import (
	"net/http"

	"evtaxi-admin/internal/repositories"
	"evtaxi-admin/internal/services"

	"github.com/gin-gonic/gin"
)

func usersService() services.UsersService {
	return services.UsersService{UsersRepo: repositories.UsersRepository{}}
}

// GET /api/users?type=rider|driver&search
func GetUsers(c *gin.Context) {
	accounts, err := usersService().ListAccounts(c.Query("type"), c.Query("search"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// GET /api/users/rider/:id
func GetRiderByID(c *gin.Context) {
	respondAccount(c, "rider")
}

// GET /api/users/driver/:id
func GetDriverByID(c *gin.Context) {
	respondAccount(c, "driver")
}

// GET /api/users/:type/:id — catches unknown types with a 400.
func GetUserByID(c *gin.Context) {
	respondAccount(c, c.Param("type"))
}

func respondAccount(c *gin.Context, accountType string) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	account, err := usersService().GetAccount(accountType, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// GET /api/users/driver/:id/vehicles
func GetDriverVehicles(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	vehicles, err := repositories.VehiclesRepository{}.ListByOwner(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GET /api/users/rider/:id/trips
func GetRiderTrips(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	trips, err := repositories.TripsRepository{}.ListByRider(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}
