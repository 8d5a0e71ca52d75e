package entity

import (
	"time"

	"guestdesk/core/entity"

	"github.com/google/uuid"
)

type Event struct {
	Name string `db:"name"`

	Slug string `db:"slug"`

	Description string `db:"description"`

	StartDate time.Time `db:"start_date"`

	EndDate time.Time `db:"end_date"`

	// MaxGuests is the optional capacity ceiling across all of the
	// event's guest groups.
	MaxGuests *int `db:"max_guests"`

	CreatedByID uuid.UUID `db:"created_by_id"`

	entity.BaseEntity
}

type PaginatedEventEntity = entity.Pagination[Event]
