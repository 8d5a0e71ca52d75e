package dto

import (
	"time"

	"github.com/google/uuid"
)

type GuestGroupRequest struct {
	Name    string    `json:"name"`
	EventID uuid.UUID `json:"event_id"`
}

type GuestGroupResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	EventID   uuid.UUID       `json:"event_id"`
	Guests    []GuestResponse `json:"guests,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type GuestRequest struct {
	Name         string    `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	GuestGroupID uuid.UUID `json:"guest_group_id"`
}

type GuestResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	GuestGroupID uuid.UUID `json:"guest_group_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
