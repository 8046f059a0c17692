package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// CreateActivity godoc
// @Summary Create an activity
// @Description place_id must reference one of the caller's places; each set time needs a time zone
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body request_models.ActivityRequest true "Activity payload"
// @Success 201 {object} response_models.ActivityResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities [post]
func (a *ActivityController) CreateActivity(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	var req request_models.ActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := a.activityService.CreateActivity(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, activity, "Activity created successfully")
}

// ListActivities godoc
// @Summary List own activities
// @Tags Activities
// @Produce json
// @Success 200 {array} response_models.ActivityResponse
// @Security BearerAuth
// @Router /activities [get]
func (a *ActivityController) ListActivities(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	activities, err := a.activityService.ListActivities(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

// GetActivity godoc
// @Summary Get an activity
// @Tags Activities
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} response_models.ActivityResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{activityId} [get]
func (a *ActivityController) GetActivity(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	activityID, ok := pathID(c, "activityId", utils.ErrActivityNotFound)
	if !ok {
		return
	}

	activity, err := a.activityService.GetActivity(c.Request.Context(), actor, activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags Activities
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Activity changes"
// @Success 200 {object} response_models.ActivityResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{activityId} [patch]
func (a *ActivityController) UpdateActivity(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	activityID, ok := pathID(c, "activityId", utils.ErrActivityNotFound)
	if !ok {
		return
	}
	var req request_models.UpdateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := a.activityService.UpdateActivity(c.Request.Context(), actor, activityID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags Activities
// @Param activityId path string true "Activity ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{activityId} [delete]
func (a *ActivityController) DeleteActivity(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	activityID, ok := pathID(c, "activityId", utils.ErrActivityNotFound)
	if !ok {
		return
	}

	if err := a.activityService.DeleteActivity(c.Request.Context(), actor, activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondNoContent(c)
}
