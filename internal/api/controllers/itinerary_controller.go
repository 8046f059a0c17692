package controllers

import (
	"github.com/gin-gonic/gin"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// ListDays godoc
// @Summary List trip days
// @Description Days of the trip itinerary ordered by position
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.TripDayResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days [get]
func (i *ItineraryController) ListDays(c *gin.Context) {
	scope, ok := tripScope(c)
	if !ok {
		return
	}

	days, err := i.itineraryService.ListDays(c.Request.Context(), scope.ActorID, scope.TripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, days, "Days fetched successfully")
}

// CreateDay godoc
// @Summary Append a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateTripDayRequest true "Day payload"
// @Success 201 {object} response_models.TripDayResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days [post]
func (i *ItineraryController) CreateDay(c *gin.Context) {
	scope, ok := tripScope(c)
	if !ok {
		return
	}
	var req request_models.CreateTripDayRequest
	if !bindJSON(c, &req) {
		return
	}

	day, err := i.itineraryService.CreateDay(c.Request.Context(), scope.ActorID, scope.TripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, day, "Day created successfully")
}

// UpdateDay godoc
// @Summary Update a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param dayId path string true "Day ID"
// @Param request body request_models.UpdateTripDayRequest true "Day changes"
// @Success 200 {object} response_models.TripDayResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/{dayId} [patch]
func (i *ItineraryController) UpdateDay(c *gin.Context) {
	scope, ok := dayScope(c)
	if !ok {
		return
	}
	var req request_models.UpdateTripDayRequest
	if !bindJSON(c, &req) {
		return
	}

	day, err := i.itineraryService.UpdateDay(c.Request.Context(), scope, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "Day updated successfully")
}

// ReorderDays godoc
// @Summary Reorder days
// @Description ordered_ids must list every day of the trip exactly once
// @Tags Itinerary
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.ReorderRequest true "New order"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/reorder [patch]
func (i *ItineraryController) ReorderDays(c *gin.Context) {
	scope, ok := tripScope(c)
	if !ok {
		return
	}
	var req request_models.ReorderRequest
	if !bindJSON(c, &req) {
		return
	}
	ids, err := parseIDs(req.OrderedIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := i.itineraryService.ReorderDays(c.Request.Context(), scope.ActorID, scope.TripID, ids); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// RegenerateDays godoc
// @Summary Regenerate days
// @Description Replaces every day, and everything attached to them, with one day per date of the trip range
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.TripDayResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/regenerate [post]
func (i *ItineraryController) RegenerateDays(c *gin.Context) {
	scope, ok := tripScope(c)
	if !ok {
		return
	}

	days, err := i.itineraryService.RegenerateDays(c.Request.Context(), scope.ActorID, scope.TripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, days, "Days regenerated successfully")
}

// ListAttachments godoc
// @Summary List day attachments
// @Description Cities, places or activities of a day in position order
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param dayId path string true "Day ID"
// @Success 200 {array} response_models.DayAttachmentResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/{dayId}/cities [get]
// @Router /trips/{tripId}/days/{dayId}/places [get]
// @Router /trips/{tripId}/days/{dayId}/activities [get]
func (i *ItineraryController) ListAttachments(kind dbm.AttachmentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := dayScope(c)
		if !ok {
			return
		}

		rows, err := i.itineraryService.ListAttachments(c.Request.Context(), kind, scope)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		utils.RespondSuccess(c, rows, "Attachments fetched successfully")
	}
}

// AddAttachment godoc
// @Summary Attach to a day
// @Description Appends the target, or inserts it at position shifting later rows down
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param dayId path string true "Day ID"
// @Param request body request_models.AddAttachmentRequest true "Target and optional position"
// @Success 201 {object} response_models.DayAttachmentResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/{dayId}/cities [post]
// @Router /trips/{tripId}/days/{dayId}/places [post]
// @Router /trips/{tripId}/days/{dayId}/activities [post]
func (i *ItineraryController) AddAttachment(kind dbm.AttachmentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := dayScope(c)
		if !ok {
			return
		}
		var req request_models.AddAttachmentRequest
		if !bindJSON(c, &req) {
			return
		}

		row, err := i.itineraryService.AddAttachment(c.Request.Context(), kind, scope, req)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		utils.RespondCreated(c, row, "Attachment created successfully")
	}
}

// RemoveAttachment godoc
// @Summary Detach from a day
// @Tags Itinerary
// @Param tripId path string true "Trip ID"
// @Param dayId path string true "Day ID"
// @Param attachmentId path string true "Attachment ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/{dayId}/cities/{attachmentId} [delete]
// @Router /trips/{tripId}/days/{dayId}/places/{attachmentId} [delete]
// @Router /trips/{tripId}/days/{dayId}/activities/{attachmentId} [delete]
func (i *ItineraryController) RemoveAttachment(kind dbm.AttachmentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := dayScope(c)
		if !ok {
			return
		}
		attachmentID, ok := pathID(c, "attachmentId", utils.ErrAttachmentNotFound)
		if !ok {
			return
		}

		if err := i.itineraryService.RemoveAttachment(c.Request.Context(), kind, scope, attachmentID); err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		utils.RespondNoContent(c)
	}
}

// ReorderAttachments godoc
// @Summary Reorder day attachments
// @Description ordered_ids must list every attachment of the day exactly once
// @Tags Itinerary
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param dayId path string true "Day ID"
// @Param request body request_models.ReorderRequest true "New order"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/days/{dayId}/cities/reorder [patch]
// @Router /trips/{tripId}/days/{dayId}/places/reorder [patch]
// @Router /trips/{tripId}/days/{dayId}/activities/reorder [patch]
func (i *ItineraryController) ReorderAttachments(kind dbm.AttachmentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := dayScope(c)
		if !ok {
			return
		}
		var req request_models.ReorderRequest
		if !bindJSON(c, &req) {
			return
		}
		ids, err := parseIDs(req.OrderedIDs)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		if err := i.itineraryService.ReorderAttachments(c.Request.Context(), kind, scope, ids); err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		utils.RespondNoContent(c)
	}
}

// RegisterAttachmentRoutes mounts the four attachment routes of every kind under a day group.
func (i *ItineraryController) RegisterAttachmentRoutes(day *gin.RouterGroup) {
	for _, kind := range dbm.AttachmentKinds {
		g := day.Group("/" + string(kind))
		g.GET("", i.ListAttachments(kind))
		g.POST("", i.AddAttachment(kind))
		g.PATCH("/reorder", i.ReorderAttachments(kind))
		g.DELETE("/:attachmentId", i.RemoveAttachment(kind))
	}
}
