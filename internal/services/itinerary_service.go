package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	dbm "tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

const daysKind = "days"

type ItineraryServiceInterface interface {
	ListDays(ctx context.Context, actorID, tripID uuid.UUID) ([]response_models.TripDayResponse, error)
	CreateDay(ctx context.Context, actorID, tripID uuid.UUID, request request_models.CreateTripDayRequest) (*response_models.TripDayResponse, error)
	UpdateDay(ctx context.Context, scope repositories.DayScope, request request_models.UpdateTripDayRequest) (*response_models.TripDayResponse, error)
	ReorderDays(ctx context.Context, actorID, tripID uuid.UUID, orderedIDs []uuid.UUID) error
	RegenerateDays(ctx context.Context, actorID, tripID uuid.UUID) ([]response_models.TripDayResponse, error)

	ListAttachments(ctx context.Context, kind dbm.AttachmentKind, scope repositories.DayScope) ([]response_models.DayAttachmentResponse, error)
	AddAttachment(ctx context.Context, kind dbm.AttachmentKind, scope repositories.DayScope, request request_models.AddAttachmentRequest) (*response_models.DayAttachmentResponse, error)
	RemoveAttachment(ctx context.Context, kind dbm.AttachmentKind, scope repositories.DayScope, attachmentID uuid.UUID) error
	ReorderAttachments(ctx context.Context, kind dbm.AttachmentKind, scope repositories.DayScope, orderedIDs []uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	attachments   repositories.AttachmentRepositories
	metrics       *metrics.Metrics
	log           *zap.Logger
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	attachments repositories.AttachmentRepositories,
	m *metrics.Metrics,
	log *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		attachments:   attachments,
		metrics:       m,
		log:           log.Named("itinerary"),
	}
}

func (s *ItineraryService) record(operation, kind string, err error) error {
	s.metrics.RecordMutation(operation, kind, err)
	return storeError(s.log, operation+" "+kind, err)
}

func (s *ItineraryService) ListDays(ctx context.Context, actorID, tripID uuid.UUID) ([]response_models.TripDayResponse, error) {
	days, err := s.itineraryRepo.ListDays(ctx, repositories.TripScope{TripID: tripID, ActorID: actorID})
	if err != nil {
		return nil, storeError(s.log, "list days", err)
	}
	return dbm.BuildTripDayResponses(days), nil
}

func (s *ItineraryService) CreateDay(ctx context.Context, actorID, tripID uuid.UUID, request request_models.CreateTripDayRequest) (*response_models.TripDayResponse, error) {
	day, err := s.itineraryRepo.CreateDay(ctx, repositories.TripScope{TripID: tripID, ActorID: actorID}, request.Date, request.Title)
	if err != nil {
		return nil, s.record("create", daysKind, err)
	}
	s.record("create", daysKind, nil)

	out := dbm.BuildTripDayResponse(day)
	return &out, nil
}

func (s *ItineraryService) UpdateDay(ctx context.Context, scope repositories.DayScope, request request_models.UpdateTripDayRequest) (*response_models.TripDayResponse, error) {
	if request.ClearTitle && request.Title != nil {
		return nil, s.record("update", daysKind, utils.ErrInvalidInput)
	}
	day, err := s.itineraryRepo.UpdateDay(ctx, scope, repositories.DayChanges{
		Date:       request.Date,
		Title:      request.Title,
		ClearTitle: request.ClearTitle,
	})
	if err != nil {
		return nil, s.record("update", daysKind, err)
	}
	s.record("update", daysKind, nil)

	out := dbm.BuildTripDayResponse(day)
	return &out, nil
}

func (s *ItineraryService) ReorderDays(ctx context.Context, actorID, tripID uuid.UUID, orderedIDs []uuid.UUID) error {
	err := s.itineraryRepo.ReorderDays(ctx, repositories.TripScope{TripID: tripID, ActorID: actorID}, orderedIDs)
	return s.record("reorder", daysKind, err)
}

func (s *ItineraryService) RegenerateDays(ctx context.Context, actorID, tripID uuid.UUID) ([]response_models.TripDayResponse, error) {
	days, err := s.itineraryRepo.RegenerateDays(ctx, repositories.TripScope{TripID: tripID, ActorID: actorID})
	if err != nil {
		return nil, s.record("regenerate", daysKind, err)
	}
	s.record("regenerate", daysKind, nil)

	s.log.Info("days regenerated", zap.String("trip_id", tripID.String()), zap.Int("days", len(days)))
	return dbm.BuildTripDayResponses(days), nil
}

func (s *ItineraryService) repo(kind dbm.AttachmentKind) (repositories.AttachmentRepository, error) {
	repo, ok := s.attachments[kind]
	if !ok {
		return nil, utils.ErrInvalidKind
	}
	return repo, nil
}

func (s *ItineraryService) ListAttachments(ctx context.Context, kind dbm.AttachmentKind, scope repositories.DayScope) ([]response_models.DayAttachmentResponse, error) {
	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}

	rows, err := repo.List(ctx, scope)
	if err != nil {
		return nil, storeError(s.log, "list "+string(kind), err)
	}

	out := make([]response_models.DayAttachmentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dbm.BuildAttachmentResponse(row))
	}
	return out, nil
}

func (s *ItineraryService) AddAttachment(ctx context.Context, kind dbm.AttachmentKind, scope repositories.DayScope, request request_models.AddAttachmentRequest) (*response_models.DayAttachmentResponse, error) {
	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}
	targetID, err := uuid.Parse(request.TargetID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var row dbm.DayAttachment
	operation := "append"
	if request.Position == nil {
		row, err = repo.Append(ctx, scope, targetID)
	} else {
		operation = "insert"
		row, err = repo.InsertAt(ctx, scope, targetID, *request.Position)
	}
	if err != nil {
		return nil, s.record(operation, string(kind), err)
	}
	s.record(operation, string(kind), nil)

	out := dbm.BuildAttachmentResponse(row)
	return &out, nil
}

func (s *ItineraryService) RemoveAttachment(ctx context.Context, kind dbm.AttachmentKind, scope repositories.DayScope, attachmentID uuid.UUID) error {
	repo, err := s.repo(kind)
	if err != nil {
		return err
	}
	return s.record("remove", string(kind), repo.Remove(ctx, scope, attachmentID))
}

func (s *ItineraryService) ReorderAttachments(ctx context.Context, kind dbm.AttachmentKind, scope repositories.DayScope, orderedIDs []uuid.UUID) error {
	repo, err := s.repo(kind)
	if err != nil {
		return err
	}
	return s.record("reorder", string(kind), repo.Reorder(ctx, scope, orderedIDs))
}
