package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{placeService: placeService}
}

// CreatePlace godoc
// @Summary Create a place
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.PlaceRequest true "Place payload"
// @Success 201 {object} response_models.PlaceResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /places [post]
func (p *PlaceController) CreatePlace(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req request_models.PlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	place, err := p.placeService.CreatePlace(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, place, "Place created successfully")
}

// ListPlaces godoc
// @Summary List own places
// @Tags Places
// @Produce json
// @Success 200 {array} response_models.PlaceResponse
// @Security BearerAuth
// @Router /places [get]
func (p *PlaceController) ListPlaces(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	places, err := p.placeService.ListPlaces(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// GetPlace godoc
// @Summary Get a place
// @Tags Places
// @Produce json
// @Param placeId path string true "Place ID"
// @Success 200 {object} response_models.PlaceResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /places/{placeId} [get]
func (p *PlaceController) GetPlace(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	placeID, ok := pathID(c, "placeId", utils.ErrPlaceNotFound)
	if !ok {
		return
	}

	place, err := p.placeService.GetPlace(c.Request.Context(), actor, placeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "Place fetched successfully")
}

// UpdatePlace godoc
// @Summary Update a place
// @Tags Places
// @Accept json
// @Produce json
// @Param placeId path string true "Place ID"
// @Param request body request_models.UpdatePlaceRequest true "Place changes"
// @Success 200 {object} response_models.PlaceResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /places/{placeId} [patch]
func (p *PlaceController) UpdatePlace(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	placeID, ok := pathID(c, "placeId", utils.ErrPlaceNotFound)
	if !ok {
		return
	}
	var req request_models.UpdatePlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	place, err := p.placeService.UpdatePlace(c.Request.Context(), actor, placeID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "Place updated successfully")
}

// DeletePlace godoc
// @Summary Delete a place
// @Tags Places
// @Param placeId path string true "Place ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /places/{placeId} [delete]
func (p *PlaceController) DeletePlace(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	placeID, ok := pathID(c, "placeId", utils.ErrPlaceNotFound)
	if !ok {
		return
	}

	if err := p.placeService.DeletePlace(c.Request.Context(), actor, placeID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
