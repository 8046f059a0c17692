package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

// actorID reads the account id set by the JWT middleware.
func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses a uuid path parameter. A malformed id cannot exist, so it answers notFound.
func pathID(c *gin.Context, name string, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.HandleServiceError(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}

func tripScope(c *gin.Context) (repositories.TripScope, bool) {
	actor, ok := actorID(c)
	if !ok {
		return repositories.TripScope{}, false
	}
	tripID, ok := pathID(c, "tripId", utils.ErrTripNotFound)
	if !ok {
		return repositories.TripScope{}, false
	}
	return repositories.TripScope{TripID: tripID, ActorID: actor}, true
}

func dayScope(c *gin.Context) (repositories.DayScope, bool) {
	trip, ok := tripScope(c)
	if !ok {
		return repositories.DayScope{}, false
	}
	dayID, ok := pathID(c, "dayId", utils.ErrDayNotFound)
	if !ok {
		return repositories.DayScope{}, false
	}
	return repositories.DayScope{TripScope: trip, DayID: dayID}, true
}

// bindJSON binds and validates the body, answering 400 with the validator message on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return false
	}
	return true
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, utils.ErrInvalidOrder
		}
		ids = append(ids, id)
	}
	return ids, nil
}
