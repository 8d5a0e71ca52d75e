package repository

import (
	"context"
	"database/sql"
	"time"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/modules/checkin/entity"

	"github.com/google/uuid"
)

// GuestEvent carries the guest identity together with its event's schedule,
// resolved in one round-trip before a check-in is recorded.
type GuestEvent struct {
	GuestID    uuid.UUID `db:"guest_id"`
	GuestName  string    `db:"guest_name"`
	EventID    uuid.UUID `db:"event_id"`
	EventStart time.Time `db:"event_start"`
}

type RecentCheckIn struct {
	ID          uuid.UUID `db:"id"`
	GuestID     uuid.UUID `db:"guest_id"`
	GuestName   string    `db:"guest_name"`
	EventName   string    `db:"event_name"`
	CheckInTime time.Time `db:"check_in_time"`
	Status      string    `db:"status"`
	CheckedInBy string    `db:"checked_in_by"`
}

type CheckInRepositoryInterface interface {
	GetGuestEvent(ctx context.Context, guestID uuid.UUID) (*GuestEvent, error)
	CreateCheckIn(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error)
	GetCheckInsByGuestId(ctx context.Context, guestID uuid.UUID) ([]entity.CheckIn, error)
	GetLatestStatusesByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.GuestStatus, error)
	GetRecentCheckIns(ctx context.Context, limit int) ([]RecentCheckIn, error)
}

type CheckInRepository struct {
	DB database.IDatabase
}

func NewCheckInRepository(db database.IDatabase) CheckInRepositoryInterface {
	return &CheckInRepository{DB: db}
}

func (r *CheckInRepository) GetGuestEvent(ctx context.Context, guestID uuid.UUID) (*GuestEvent, error) {
	var ge GuestEvent
	query := `
		SELECT
			g.id AS guest_id,
			g.name AS guest_name,
			e.id AS event_id,
			e.start_date AS event_start
		FROM guests g
		JOIN guest_groups gg ON gg.id = g.guest_group_id
		JOIN events e ON e.id = gg.event_id
		WHERE g.id = $1
	`
	err := r.DB.GetContext(ctx, &ge, query, guestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CheckInRepository:GetGuestEvent", err)
		return nil, err
	}
	return &ge, nil
}

func (r *CheckInRepository) CreateCheckIn(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error) {
	query := `
		INSERT INTO check_ins (guest_id, check_in_time, status, description, checked_in_by_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, guest_id, check_in_time, status, description, checked_in_by_id, created_at, updated_at
	`
	var created entity.CheckIn
	err := r.DB.GetContext(ctx, &created, query,
		checkIn.GuestID,
		checkIn.CheckInTime,
		checkIn.Status,
		checkIn.Description,
		checkIn.CheckedInByID,
	)
	if err != nil {
		logger.Error("CheckInRepository:CreateCheckIn", err)
		return nil, err
	}
	return &created, nil
}

func (r *CheckInRepository) GetCheckInsByGuestId(ctx context.Context, guestID uuid.UUID) ([]entity.CheckIn, error) {
	query := `
		SELECT id, guest_id, check_in_time, status, description, checked_in_by_id, created_at, updated_at
		FROM check_ins
		WHERE guest_id = $1
		ORDER BY check_in_time DESC
	`
	var checkIns []entity.CheckIn
	err := r.DB.SelectContext(ctx, &checkIns, query, guestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.CheckIn{}, nil
		}
		logger.Error("CheckInRepository:GetCheckInsByGuestId", err)
		return nil, err
	}
	return checkIns, nil
}

func (r *CheckInRepository) GetLatestStatusesByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.GuestStatus, error) {
	query := `
		SELECT g.id AS guest_id, ci.status
		FROM guests g
		JOIN guest_groups gg ON gg.id = g.guest_group_id
		LEFT JOIN LATERAL (
			SELECT status
			FROM check_ins
			WHERE guest_id = g.id
			ORDER BY check_in_time DESC
			LIMIT 1
		) ci ON true
		WHERE gg.event_id = $1
	`
	var statuses []entity.GuestStatus
	err := r.DB.SelectContext(ctx, &statuses, query, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.GuestStatus{}, nil
		}
		logger.Error("CheckInRepository:GetLatestStatusesByEventId", err)
		return nil, err
	}
	return statuses, nil
}

func (r *CheckInRepository) GetRecentCheckIns(ctx context.Context, limit int) ([]RecentCheckIn, error) {
	query := `
		SELECT
			ci.id,
			ci.guest_id,
			g.name AS guest_name,
			e.name AS event_name,
			ci.check_in_time,
			ci.status,
			u.name AS checked_in_by
		FROM check_ins ci
		JOIN guests g ON g.id = ci.guest_id
		JOIN guest_groups gg ON gg.id = g.guest_group_id
		JOIN events e ON e.id = gg.event_id
		JOIN users u ON u.id = ci.checked_in_by_id
		ORDER BY ci.check_in_time DESC
		LIMIT $1
	`
	var recent []RecentCheckIn
	err := r.DB.SelectContext(ctx, &recent, query, limit)
	if err != nil {
		if err == sql.ErrNoRows {
			return []RecentCheckIn{}, nil
		}
		logger.Error("CheckInRepository:GetRecentCheckIns", err)
		return nil, err
	}
	return recent, nil
}
