package entity

import (
	"guestdesk/core/entity"

	"github.com/google/uuid"
)

type GuestGroup struct {
	Name string `db:"name"`

	EventID uuid.UUID `db:"event_id"`

	entity.BaseEntity
}

type Guest struct {
	Name string `db:"name"`

	Email *string `db:"email"`

	Phone *string `db:"phone"`

	GuestGroupID uuid.UUID `db:"guest_group_id"`

	entity.BaseEntity
}
