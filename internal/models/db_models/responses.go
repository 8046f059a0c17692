package db_models

import (
	"github.com/google/uuid"
	resp "tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

func unixString(t int64) string {
	return utils.FormatRFC3339(utils.FromUnixSeconds(t))
}

func uuidPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func BuildTripResponse(t *Trip) resp.TripResponse {
	return resp.TripResponse{
		ID:            t.ID.String(),
		OwnerID:       t.OwnerID.String(),
		GroupID:       uuidPtr(t.GroupID),
		Title:         t.Title,
		Description:   t.Description,
		StartDate:     utils.FormatRFC3339Ptr(t.StartDate),
		EndDate:       utils.FormatRFC3339Ptr(t.EndDate),
		StartTimeZone: t.StartTimeZone,
		EndTimeZone:   t.EndTimeZone,
		CreatedAt:     unixString(t.CreatedAt),
		UpdatedAt:     unixString(t.UpdatedAt),
	}
}

func BuildTripDayResponse(d *TripDay) resp.TripDayResponse {
	return resp.TripDayResponse{
		ID:          d.ID.String(),
		ItineraryID: d.ItineraryID.String(),
		Date:        utils.FormatRFC3339(d.Date),
		Title:       d.Title,
		Position:    d.Position,
		CreatedAt:   unixString(d.CreatedAt),
		UpdatedAt:   unixString(d.UpdatedAt),
	}
}

func BuildTripDayResponses(days []TripDay) []resp.TripDayResponse {
	out := make([]resp.TripDayResponse, 0, len(days))
	for i := range days {
		out = append(out, BuildTripDayResponse(&days[i]))
	}
	return out
}

func BuildPlaceResponse(p *Place) resp.PlaceResponse {
	return resp.PlaceResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		CreatedAt:   unixString(p.CreatedAt),
		UpdatedAt:   unixString(p.UpdatedAt),
	}
}

func BuildCityResponse(c *City) resp.CityResponse {
	return resp.CityResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Country:   c.Country,
		Region:    c.Region,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		CreatedAt: unixString(c.CreatedAt),
		UpdatedAt: unixString(c.UpdatedAt),
	}
}

func BuildActivityResponse(a *Activity) resp.ActivityResponse {
	out := resp.ActivityResponse{
		ID:            a.ID.String(),
		OwnerID:       a.OwnerID.String(),
		PlaceID:       uuidPtr(a.PlaceID),
		Title:         a.Title,
		Description:   a.Description,
		Notes:         a.Notes,
		StartTime:     utils.FormatRFC3339Ptr(a.StartTime),
		EndTime:       utils.FormatRFC3339Ptr(a.EndTime),
		StartTimeZone: a.StartTimeZone,
		EndTimeZone:   a.EndTimeZone,
		CreatedAt:     unixString(a.CreatedAt),
		UpdatedAt:     unixString(a.UpdatedAt),
	}
	if a.Place != nil && a.Place.ID != uuid.Nil {
		place := BuildPlaceResponse(a.Place)
		out.Place = &place
	}
	return out
}

// BuildAttachmentResponse embeds the preloaded target matching the attachment kind.
func BuildAttachmentResponse(a DayAttachment) resp.DayAttachmentResponse {
	out := resp.DayAttachmentResponse{
		ID:        a.AttachmentID().String(),
		TripDayID: a.DayID().String(),
		Kind:      string(a.Kind()),
		TargetID:  a.TargetID().String(),
		Position:  a.SortPosition(),
	}

	switch v := a.(type) {
	case *TripDayCity:
		out.CreatedAt, out.UpdatedAt = unixString(v.CreatedAt), unixString(v.UpdatedAt)
		if v.City.ID != uuid.Nil {
			city := BuildCityResponse(&v.City)
			out.City = &city
		}
	case *TripDayPlace:
		out.CreatedAt, out.UpdatedAt = unixString(v.CreatedAt), unixString(v.UpdatedAt)
		if v.Place.ID != uuid.Nil {
			place := BuildPlaceResponse(&v.Place)
			out.Place = &place
		}
	case *TripDayActivity:
		out.CreatedAt, out.UpdatedAt = unixString(v.CreatedAt), unixString(v.UpdatedAt)
		if v.Activity.ID != uuid.Nil {
			activity := BuildActivityResponse(&v.Activity)
			out.Activity = &activity
		}
	}
	return out
}

func BuildAccountResponse(a *Account) resp.AccountResponse {
	return resp.AccountResponse{
		ID:        a.ID.String(),
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: unixString(a.CreatedAt),
	}
}

func BuildGroupResponse(g *Group) resp.GroupResponse {
	return resp.GroupResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		OwnerID:   g.OwnerID.String(),
		CreatedAt: unixString(g.CreatedAt),
		UpdatedAt: unixString(g.UpdatedAt),
	}
}

func BuildGroupMemberResponse(m *GroupMember) resp.GroupMemberResponse {
	out := resp.GroupMemberResponse{
		ID:        m.ID.String(),
		GroupID:   m.GroupID.String(),
		UserID:    m.UserID.String(),
		Role:      m.Role,
		CreatedAt: unixString(m.CreatedAt),
		UpdatedAt: unixString(m.UpdatedAt),
	}
	if m.User != nil {
		user := BuildAccountResponse(m.User)
		out.User = &user
	}
	return out
}
