package repository

import (
	"context"

	"guestdesk/core/database"
	eventEntity "guestdesk/modules/event/entity"
)

type DashboardCounts struct {
	TotalEvents int `db:"total_events"`
	TotalGuests int `db:"total_guests"`
	TotalUsers  int `db:"total_users"`
}

type ReportRepositoryInterface interface {
	GetDashboardCounts(ctx context.Context) (*DashboardCounts, error)
	GetUpcomingEvents(ctx context.Context, limit int) ([]eventEntity.Event, error)
}

type ReportRepository struct {
	DB database.IDatabase
}

func NewReportRepository(db database.IDatabase) ReportRepositoryInterface {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) GetDashboardCounts(ctx context.Context) (*DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM events) AS total_events,
			(SELECT COUNT(*) FROM guests) AS total_guests,
			(SELECT COUNT(*) FROM users) AS total_users
	`

	counts := &DashboardCounts{}
	if err := r.DB.GetContext(ctx, counts, query); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *ReportRepository) GetUpcomingEvents(ctx context.Context, limit int) ([]eventEntity.Event, error) {
	query := `
		SELECT id, name, slug, description, start_date, end_date, max_guests, created_by_id, created_at, updated_at
		FROM events
		WHERE start_date >= now()
		ORDER BY start_date ASC
		LIMIT $1
	`

	events := []eventEntity.Event{}
	if err := r.DB.SelectContext(ctx, &events, query, limit); err != nil {
		return nil, err
	}
	return events, nil
}
