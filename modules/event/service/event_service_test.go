package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	coreErrors "guestdesk/core/errors"
	"guestdesk/core/params"
	"guestdesk/modules/event/dto"
	"guestdesk/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEventRepository struct {
	CreateEventFunc    func(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByIdFunc   func(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetEventBySlugFunc func(ctx context.Context, slug string) (*entity.Event, error)
	GetEventsFunc      func(ctx context.Context, params params.QueryParams) (*entity.PaginatedEventEntity, error)
	UpdateEventFunc    func(ctx context.Context, event *entity.Event, id uuid.UUID) error
	DeleteEventFunc    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockEventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if m.CreateEventFunc != nil {
		return m.CreateEventFunc(ctx, event)
	}
	created := *event
	created.ID = uuid.New()
	return &created, nil
}

func (m *mockEventRepository) GetEventById(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	if m.GetEventByIdFunc != nil {
		return m.GetEventByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEventRepository) GetEventBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	if m.GetEventBySlugFunc != nil {
		return m.GetEventBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockEventRepository) GetEvents(ctx context.Context, params params.QueryParams) (*entity.PaginatedEventEntity, error) {
	if m.GetEventsFunc != nil {
		return m.GetEventsFunc(ctx, params)
	}
	return &entity.PaginatedEventEntity{}, nil
}

func (m *mockEventRepository) UpdateEvent(ctx context.Context, event *entity.Event, id uuid.UUID) error {
	if m.UpdateEventFunc != nil {
		return m.UpdateEventFunc(ctx, event, id)
	}
	return nil
}

func (m *mockEventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if m.DeleteEventFunc != nil {
		return m.DeleteEventFunc(ctx, id)
	}
	return nil
}

func TestCreateEventGeneratesSlug(t *testing.T) {
	svc := NewEventService(&mockEventRepository{})

	resp, appErr := svc.CreateEvent(context.Background(), &dto.EventRequest{
		Name:      "Annual Gala 2025",
		StartDate: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
	}, uuid.New())

	require.Nil(t, appErr)
	assert.True(t, strings.HasPrefix(resp.Slug, "annual-gala-2025-"), resp.Slug)
	assert.Equal(t, resp.Slug, strings.ToLower(resp.Slug))
}

func TestCreateEventSlugsAreUnique(t *testing.T) {
	svc := NewEventService(&mockEventRepository{})
	req := &dto.EventRequest{
		Name:      "Annual Gala",
		StartDate: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
	}

	first, appErr := svc.CreateEvent(context.Background(), req, uuid.New())
	require.Nil(t, appErr)
	second, appErr := svc.CreateEvent(context.Background(), req, uuid.New())
	require.Nil(t, appErr)

	assert.NotEqual(t, first.Slug, second.Slug)
}

func TestGetEventByIdNotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepository{})

	_, appErr := svc.GetEventById(context.Background(), uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}

func TestUpdateEventNotFound(t *testing.T) {
	repo := &mockEventRepository{
		UpdateEventFunc: func(ctx context.Context, event *entity.Event, id uuid.UUID) error {
			return sql.ErrNoRows
		},
	}
	svc := NewEventService(repo)

	appErr := svc.UpdateEvent(context.Background(), &dto.EventRequest{
		Name:      "Renamed",
		StartDate: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
	}, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}
