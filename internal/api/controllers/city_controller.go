package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{cityService: cityService}
}

// CreateCity godoc
// @Summary Add a city to the shared catalog
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body request_models.CityRequest true "City payload"
// @Success 201 {object} response_models.CityResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cities [post]
func (ct *CityController) CreateCity(c *gin.Context) {
	var req request_models.CityRequest
	if !bindJSON(c, &req) {
		return
	}

	city, err := ct.cityService.CreateCity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, city, "City created successfully")
}

// ListCities godoc
// @Summary List cities
// @Tags Cities
// @Produce json
// @Success 200 {array} response_models.CityResponse
// @Security BearerAuth
// @Router /cities [get]
func (ct *CityController) ListCities(c *gin.Context) {
	cities, err := ct.cityService.ListCities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCity godoc
// @Summary Get a city
// @Tags Cities
// @Produce json
// @Param cityId path string true "City ID"
// @Success 200 {object} response_models.CityResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cities/{cityId} [get]
func (ct *CityController) GetCity(c *gin.Context) {
	cityID, ok := pathID(c, "cityId", utils.ErrCityNotFound)
	if !ok {
		return
	}

	city, err := ct.cityService.GetCity(c.Request.Context(), cityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, city, "City fetched successfully")
}

// UpdateCity godoc
// @Summary Update a city
// @Tags Cities
// @Accept json
// @Produce json
// @Param cityId path string true "City ID"
// @Param request body request_models.UpdateCityRequest true "City changes"
// @Success 200 {object} response_models.CityResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cities/{cityId} [patch]
func (ct *CityController) UpdateCity(c *gin.Context) {
	cityID, ok := pathID(c, "cityId", utils.ErrCityNotFound)
	if !ok {
		return
	}
	var req request_models.UpdateCityRequest
	if !bindJSON(c, &req) {
		return
	}

	city, err := ct.cityService.UpdateCity(c.Request.Context(), cityID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, city, "City updated successfully")
}

// DeleteCity godoc
// @Summary Delete a city
// @Tags Cities
// @Param cityId path string true "City ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cities/{cityId} [delete]
func (ct *CityController) DeleteCity(c *gin.Context) {
	cityID, ok := pathID(c, "cityId", utils.ErrCityNotFound)
	if !ok {
		return
	}

	if err := ct.cityService.DeleteCity(c.Request.Context(), cityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
