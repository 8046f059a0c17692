package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"tripplanner/internal/infra/infratest"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

var ctx = context.Background()

type env struct {
	t *testing.T

	metrics    *metrics.Metrics
	accounts   AccountServiceInterface
	trips      TripServiceInterface
	itinerary  ItineraryServiceInterface
	places     PlaceServiceInterface
	cities     CityServiceInterface
	activities ActivityServiceInterface
	groups     GroupServiceInterface
}

func newEnv(t *testing.T) *env {
	db := infratest.OpenTestDB(t)
	log := zap.NewNop()
	m := metrics.New()

	accountRepo := repositories.NewAccountRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	placeRepo := repositories.NewPlaceRepository(db)

	return &env{
		t:          t,
		metrics:    m,
		accounts:   NewAccountService(accountRepo, utils.NewTokenIssuer("test-secret", time.Hour), log),
		trips:      NewTripService(repositories.NewTripRepository(db), groupRepo, log),
		itinerary:  NewItineraryService(repositories.NewItineraryRepository(db), repositories.NewAttachmentRepositories(db), m, log),
		places:     NewPlaceService(placeRepo, log),
		cities:     NewCityService(repositories.NewCityRepository(db), log),
		activities: NewActivityService(repositories.NewActivityRepository(db), placeRepo, log),
		groups:     NewGroupService(groupRepo, accountRepo, log),
	}
}

func (e *env) register(email string) uuid.UUID {
	out, err := e.accounts.Register(ctx, request_models.SignUpRequest{Email: email, Password: "correct horse"})
	require.NoError(e.t, err)
	return uuid.MustParse(out.ID)
}

func ptr[T any](v T) *T { return &v }

func day(y int, m time.Month, d int) *time.Time {
	return ptr(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
