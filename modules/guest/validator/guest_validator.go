package validator

import (
	"net/mail"

	"guestdesk/core/controller"
	"guestdesk/modules/guest/dto"

	"github.com/google/uuid"
)

func ValidateGuestGroupRequest(req *dto.GuestGroupRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.Name == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("name", "name is required"))
	}
	if req.EventID == uuid.Nil {
		result.Errors = append(result.Errors, controller.NewValidationError("event_id", "event_id is required"))
	}

	return result
}

func ValidateGuestRequest(req *dto.GuestRequest, requireGroup bool) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.Name == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("name", "name is required"))
	}
	if requireGroup && req.GuestGroupID == uuid.Nil {
		result.Errors = append(result.Errors, controller.NewValidationError("guest_group_id", "guest_group_id is required"))
	}
	if req.Email != nil && *req.Email != "" {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			result.Errors = append(result.Errors, controller.NewValidationError("email", "email is invalid"))
		}
	}

	return result
}
