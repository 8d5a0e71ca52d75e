package repository

import (
	"context"
	"database/sql"
	"errors"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/modules/guest/entity"

	"github.com/google/uuid"
)

var (
	ErrGroupNotFound    = errors.New("guest group not found")
	ErrCapacityExceeded = errors.New("event guest capacity exceeded")
)

type GuestRepositoryInterface interface {
	CreateGuestGroup(ctx context.Context, group *entity.GuestGroup) (*entity.GuestGroup, error)
	GetGuestGroupById(ctx context.Context, id uuid.UUID) (*entity.GuestGroup, error)
	GetGuestGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.GuestGroup, error)
	DeleteGuestGroup(ctx context.Context, id uuid.UUID) error

	CreateGuest(ctx context.Context, guest *entity.Guest) (*entity.Guest, error)
	GetGuestById(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	GetGuestsByGroupId(ctx context.Context, groupID uuid.UUID) ([]entity.Guest, error)
	UpdateGuest(ctx context.Context, guest *entity.Guest, id uuid.UUID) error
	DeleteGuest(ctx context.Context, id uuid.UUID) error
	CountGuestsByEventId(ctx context.Context, eventID uuid.UUID) (int, error)
}

type GuestRepository struct {
	DB database.IDatabase
}

func NewGuestRepository(db database.IDatabase) GuestRepositoryInterface {
	return &GuestRepository{DB: db}
}

func (r *GuestRepository) CreateGuestGroup(ctx context.Context, group *entity.GuestGroup) (*entity.GuestGroup, error) {
	query := `
		INSERT INTO guest_groups (name, event_id)
		VALUES ($1, $2)
		RETURNING id, name, event_id, created_at, updated_at
	`
	var created entity.GuestGroup
	err := r.DB.GetContext(ctx, &created, query, group.Name, group.EventID)
	if err != nil {
		logger.Error("GuestRepository:CreateGuestGroup", err)
		return nil, err
	}
	return &created, nil
}

func (r *GuestRepository) GetGuestGroupById(ctx context.Context, id uuid.UUID) (*entity.GuestGroup, error) {
	var group entity.GuestGroup
	query := `
		SELECT id, name, event_id, created_at, updated_at
		FROM guest_groups
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GuestRepository:GetGuestGroupById", err)
		return nil, err
	}
	return &group, nil
}

func (r *GuestRepository) GetGuestGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.GuestGroup, error) {
	query := `
		SELECT id, name, event_id, created_at, updated_at
		FROM guest_groups
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	var groups []entity.GuestGroup
	err := r.DB.SelectContext(ctx, &groups, query, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.GuestGroup{}, nil
		}
		logger.Error("GuestRepository:GetGuestGroupsByEventId", err)
		return nil, err
	}
	return groups, nil
}

func (r *GuestRepository) DeleteGuestGroup(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM guest_groups
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("GuestRepository:DeleteGuestGroup", err)
		return err
	}
	return nil
}

// CreateGuest admits a guest only while the event stays under its capacity
// ceiling. The event row is locked for the duration of the transaction so
// concurrent admissions for the same event serialize instead of racing the
// count check.
func (r *GuestRepository) CreateGuest(ctx context.Context, guest *entity.Guest) (*entity.Guest, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("GuestRepository:CreateGuest - BeginTx", err)
		return nil, err
	}
	defer tx.Rollback()

	var event struct {
		ID        uuid.UUID `db:"id"`
		MaxGuests *int      `db:"max_guests"`
	}
	lockQuery := `
		SELECT e.id, e.max_guests
		FROM events e
		JOIN guest_groups gg ON gg.event_id = e.id
		WHERE gg.id = $1
		FOR UPDATE OF e
	`
	err = tx.GetContext(ctx, &event, lockQuery, guest.GuestGroupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrGroupNotFound
		}
		logger.Error("GuestRepository:CreateGuest - LockEvent", err)
		return nil, err
	}

	if event.MaxGuests != nil {
		var total int
		countQuery := `
			SELECT COUNT(*)
			FROM guests g
			JOIN guest_groups gg ON gg.id = g.guest_group_id
			WHERE gg.event_id = $1
		`
		if err := tx.GetContext(ctx, &total, countQuery, event.ID); err != nil {
			logger.Error("GuestRepository:CreateGuest - Count", err)
			return nil, err
		}
		if total >= *event.MaxGuests {
			return nil, ErrCapacityExceeded
		}
	}

	insertQuery := `
		INSERT INTO guests (name, email, phone, guest_group_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, guest_group_id, created_at, updated_at
	`
	var created entity.Guest
	err = tx.GetContext(ctx, &created, insertQuery, guest.Name, guest.Email, guest.Phone, guest.GuestGroupID)
	if err != nil {
		logger.Error("GuestRepository:CreateGuest - Insert", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("GuestRepository:CreateGuest - Commit", err)
		return nil, err
	}

	return &created, nil
}

func (r *GuestRepository) GetGuestById(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guest entity.Guest
	query := `
		SELECT id, name, email, phone, guest_group_id, created_at, updated_at
		FROM guests
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &guest, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GuestRepository:GetGuestById", err)
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) GetGuestsByGroupId(ctx context.Context, groupID uuid.UUID) ([]entity.Guest, error) {
	query := `
		SELECT id, name, email, phone, guest_group_id, created_at, updated_at
		FROM guests
		WHERE guest_group_id = $1
		ORDER BY created_at DESC
	`
	var guests []entity.Guest
	err := r.DB.SelectContext(ctx, &guests, query, groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.Guest{}, nil
		}
		logger.Error("GuestRepository:GetGuestsByGroupId", err)
		return nil, err
	}
	return guests, nil
}

func (r *GuestRepository) UpdateGuest(ctx context.Context, guest *entity.Guest, id uuid.UUID) error {
	query := `
		UPDATE guests
		SET name = $1, email = $2, phone = $3, updated_at = now()
		WHERE id = $4
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		guest.Name,
		guest.Email,
		guest.Phone,
		id,
	)
	if err != nil {
		logger.Error("GuestRepository:UpdateGuest", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("GuestRepository:UpdateGuest - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *GuestRepository) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM guests
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("GuestRepository:DeleteGuest", err)
		return err
	}
	return nil
}

func (r *GuestRepository) CountGuestsByEventId(ctx context.Context, eventID uuid.UUID) (int, error) {
	var total int
	query := `
		SELECT COUNT(*)
		FROM guests g
		JOIN guest_groups gg ON gg.id = g.guest_group_id
		WHERE gg.event_id = $1
	`
	err := r.DB.GetContext(ctx, &total, query, eventID)
	if err != nil {
		logger.Error("GuestRepository:CountGuestsByEventId", err)
		return 0, err
	}
	return total, nil
}
