package validator

import (
	"guestdesk/core/controller"
	"guestdesk/modules/event/dto"
)

func ValidateEventRequest(req *dto.EventRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.Name == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("name", "name is required"))
	}
	if req.StartDate.IsZero() {
		result.Errors = append(result.Errors, controller.NewValidationError("start_date", "start_date is required"))
	}
	if req.EndDate.IsZero() {
		result.Errors = append(result.Errors, controller.NewValidationError("end_date", "end_date is required"))
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		result.Errors = append(result.Errors, controller.NewValidationError("end_date", "end_date must not precede start_date"))
	}
	if req.MaxGuests != nil && *req.MaxGuests < 1 {
		result.Errors = append(result.Errors, controller.NewValidationError("max_guests", "max_guests must be positive"))
	}

	return result
}
