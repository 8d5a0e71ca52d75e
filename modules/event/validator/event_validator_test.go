package validator

import (
	"testing"
	"time"

	"guestdesk/modules/event/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidateEventRequestOk(t *testing.T) {
	maxGuests := 100
	req := &dto.EventRequest{
		Name:      "Annual Gala",
		StartDate: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
		MaxGuests: &maxGuests,
	}

	assert.False(t, ValidateEventRequest(req).HasError())
}

func TestValidateEventRequestMissingFields(t *testing.T) {
	result := ValidateEventRequest(&dto.EventRequest{})

	assert.True(t, result.HasError())
	assert.Len(t, result.Errors, 3)
}

func TestValidateEventRequestEndBeforeStart(t *testing.T) {
	req := &dto.EventRequest{
		Name:      "Annual Gala",
		StartDate: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC),
	}

	result := ValidateEventRequest(req)
	assert.True(t, result.HasError())
}

func TestValidateEventRequestZeroMaxGuests(t *testing.T) {
	maxGuests := 0
	req := &dto.EventRequest{
		Name:      "Annual Gala",
		StartDate: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
		MaxGuests: &maxGuests,
	}

	assert.True(t, ValidateEventRequest(req).HasError())
}

func TestValidateEventRequestNilMaxGuestsIsUnlimited(t *testing.T) {
	req := &dto.EventRequest{
		Name:      "Annual Gala",
		StartDate: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC),
	}

	assert.False(t, ValidateEventRequest(req).HasError())
}
