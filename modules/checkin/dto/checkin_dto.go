package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	GuestID uuid.UUID `json:"guest_id"`
	// Status is only honored for the manual values "absent" and "declined";
	// presence is derived from the check-in moment.
	Status      string  `json:"status"`
	Description *string `json:"description"`
}

type CheckInResponse struct {
	ID            uuid.UUID `json:"id"`
	GuestID       uuid.UUID `json:"guest_id"`
	CheckInTime   time.Time `json:"check_in_time"`
	Status        string    `json:"status"`
	Description   *string   `json:"description"`
	CheckedInByID uuid.UUID `json:"checked_in_by_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type RecentCheckInResponse struct {
	ID          uuid.UUID `json:"id"`
	GuestID     uuid.UUID `json:"guest_id"`
	GuestName   string    `json:"guest_name"`
	EventName   string    `json:"event_name"`
	CheckInTime time.Time `json:"check_in_time"`
	Status      string    `json:"status"`
	CheckedInBy string    `json:"checked_in_by"`
}

type AttendanceStatsResponse struct {
	Total         int `json:"total"`
	PresentOnTime int `json:"present_ontime"`
	PresentLate   int `json:"present_late"`
	Absent        int `json:"absent"`
	Declined      int `json:"declined"`
	NoCheckIn     int `json:"no_checkin"`
}
