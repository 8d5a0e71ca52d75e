package service

import (
	"context"
	"database/sql"
	"strings"

	"guestdesk/core/constants"
	"guestdesk/core/errors"
	"guestdesk/core/params"
	"guestdesk/core/utils"
	"guestdesk/modules/event/dto"
	"guestdesk/modules/event/entity"
	"guestdesk/modules/event/mapper"
	"guestdesk/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, req *dto.EventRequest, createdByID uuid.UUID) (*dto.EventResponse, *errors.AppError)
	GetEventById(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	GetEventBySlug(ctx context.Context, slug string) (*dto.EventResponse, *errors.AppError)
	GetEvents(ctx context.Context, params params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, req *dto.EventRequest, id uuid.UUID) *errors.AppError
	DeleteEvent(ctx context.Context, id uuid.UUID) *errors.AppError
}

type EventService struct {
	repo repository.EventRepositoryInterface
}

func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

// eventSlug derives a URL-safe slug from the event name, suffixed to keep it
// unique without a read-modify-write cycle.
func eventSlug(name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "event"
	}
	return base + "-" + strings.ToLower(utils.GenerateID())
}

func (s *EventService) CreateEvent(ctx context.Context, req *dto.EventRequest, createdByID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event := &entity.Event{
		Name:        req.Name,
		Slug:        eventSlug(req.Name),
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxGuests:   req.MaxGuests,
		CreatedByID: createdByID,
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create event failed", err)
	}
	return mapper.ToEventResponse(created), nil
}

func (s *EventService) GetEventById(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, err := s.repo.GetEventById(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return mapper.ToEventResponse(event), nil
}

func (s *EventService) GetEventBySlug(ctx context.Context, slugParam string) (*dto.EventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event, err := s.repo.GetEventBySlug(ctx, slugParam)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get event failed", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return mapper.ToEventResponse(event), nil
}

func (s *EventService) GetEvents(ctx context.Context, params params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	events, err := s.repo.GetEvents(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get events failed", err)
	}
	return mapper.ToEventPaginationResponse(events), nil
}

func (s *EventService) UpdateEvent(ctx context.Context, req *dto.EventRequest, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	event := &entity.Event{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxGuests:   req.MaxGuests,
	}

	err := s.repo.UpdateEvent(ctx, event, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "event not found", err)
		}
		return errors.NewAppError(errors.ErrUpdateFailed, "update event failed", err)
	}

	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	err := s.repo.DeleteEvent(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete event failed", err)
	}

	return nil
}
