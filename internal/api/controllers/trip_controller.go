package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Creates a trip; when both dates are given one day per date is generated
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req request_models.CreateTripRequest
	if !bindJSON(c, &req) {
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List trips
// @Description Trips owned by the caller or shared with one of the caller's groups, newest first
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	scope, ok := tripScope(c)
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), scope.ActorID, scope.TripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Description Partial update. Changing a date bound regenerates the days; clear_dates removes them
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Trip changes"
// @Success 200 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [patch]
func (t *TripController) UpdateTrip(c *gin.Context) {
	scope, ok := tripScope(c)
	if !ok {
		return
	}
	var req request_models.UpdateTripRequest
	if !bindJSON(c, &req) {
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), scope.ActorID, scope.TripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Param tripId path string true "Trip ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	scope, ok := tripScope(c)
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), scope.ActorID, scope.TripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
