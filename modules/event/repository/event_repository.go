package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/core/params"
	"guestdesk/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventById(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*entity.Event, error)
	GetEvents(ctx context.Context, params params.QueryParams) (*entity.PaginatedEventEntity, error)
	UpdateEvent(ctx context.Context, event *entity.Event, id uuid.UUID) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) EventRepositoryInterface {
	return &EventRepository{DB: db}
}

const eventColumns = `id, name, slug, description, start_date, end_date, max_guests, created_by_id, created_at, updated_at`

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (name, slug, description, start_date, end_date, max_guests, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + eventColumns
	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Name,
		event.Slug,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.MaxGuests,
		event.CreatedByID,
	)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) GetEventById(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventById", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetEventBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	var event entity.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`
	err := r.DB.GetContext(ctx, &event, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventBySlug", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetEvents(ctx context.Context, params params.QueryParams) (*entity.PaginatedEventEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM events`

	var whereClause string
	var args []interface{}

	conditions := []string{}
	argIndex := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) " + baseQuery + whereClause

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, countQuery, args...)
	if err != nil {
		logger.Error("EventRepository:GetEvents - Count", err)
		return nil, err
	}

	dataQuery := `
		SELECT ` + eventColumns + `
	` + baseQuery + whereClause + `
		ORDER BY start_date DESC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)

	args = append(args, params.PageSize, offset)

	var events []entity.Event
	err = r.DB.SelectContext(ctx, &events, dataQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			events = []entity.Event{}
		} else {
			logger.Error("EventRepository:GetEvents - Select", err)
			return nil, err
		}
	}

	return &entity.PaginatedEventEntity{
		Items:      events,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event, id uuid.UUID) error {
	query := `
		UPDATE events
		SET name = $1, description = $2, start_date = $3, end_date = $4, max_guests = $5, updated_at = now()
		WHERE id = $6
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		event.Name,
		event.Description,
		event.StartDate,
		event.EndDate,
		event.MaxGuests,
		id,
	)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("EventRepository:UpdateEvent - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM events
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("EventRepository:DeleteEvent", err)
		return err
	}
	return nil
}
