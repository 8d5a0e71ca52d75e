package entity

import (
	"time"

	"guestdesk/core/entity"

	"github.com/google/uuid"
)

type CheckInStatus string

const (
	StatusPresentOnTime CheckInStatus = "present_ontime"
	StatusPresentLate   CheckInStatus = "present_late"
	StatusAbsent        CheckInStatus = "absent"
	StatusDeclined      CheckInStatus = "declined"
)

// IsManual reports whether the status is one of the two values staff may set
// explicitly. Presence statuses are always derived from timestamps.
func (s CheckInStatus) IsManual() bool {
	return s == StatusAbsent || s == StatusDeclined
}

func (s CheckInStatus) Valid() bool {
	switch s {
	case StatusPresentOnTime, StatusPresentLate, StatusAbsent, StatusDeclined:
		return true
	}
	return false
}

// DeriveStatus classifies an arrival against the event's scheduled start.
// Arriving exactly at the start still counts as on time.
func DeriveStatus(checkInTime, eventStart time.Time) CheckInStatus {
	if checkInTime.After(eventStart) {
		return StatusPresentLate
	}
	return StatusPresentOnTime
}

type CheckIn struct {
	GuestID uuid.UUID `db:"guest_id"`

	CheckInTime time.Time `db:"check_in_time"`

	Status CheckInStatus `db:"status"`

	Description *string `db:"description"`

	CheckedInByID uuid.UUID `db:"checked_in_by_id"`

	entity.BaseEntity
}

// GuestStatus pairs a guest with the status of their most recent check-in,
// nil when the guest has never been checked in.
type GuestStatus struct {
	GuestID uuid.UUID `db:"guest_id"`
	Status  *string   `db:"status"`
}

type AttendanceStats struct {
	Total         int `json:"total"`
	PresentOnTime int `json:"present_ontime"`
	PresentLate   int `json:"present_late"`
	Absent        int `json:"absent"`
	Declined      int `json:"declined"`
	NoCheckIn     int `json:"no_checkin"`
}

// BucketGuestStatuses partitions guests by current status. Every guest lands
// in exactly one bucket, so the bucket counts always sum to Total. Statuses
// are validated on write; an unexpected stored value counts as unchecked.
func BucketGuestStatuses(statuses []GuestStatus) AttendanceStats {
	stats := AttendanceStats{Total: len(statuses)}
	for _, gs := range statuses {
		if gs.Status == nil {
			stats.NoCheckIn++
			continue
		}
		switch CheckInStatus(*gs.Status) {
		case StatusPresentOnTime:
			stats.PresentOnTime++
		case StatusPresentLate:
			stats.PresentLate++
		case StatusAbsent:
			stats.Absent++
		case StatusDeclined:
			stats.Declined++
		default:
			stats.NoCheckIn++
		}
	}
	return stats
}
