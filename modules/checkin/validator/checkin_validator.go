package validator

import (
	"guestdesk/core/controller"
	"guestdesk/modules/checkin/dto"
	"guestdesk/modules/checkin/entity"

	"github.com/google/uuid"
)

func ValidateCheckInRequest(req *dto.CheckInRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.GuestID == uuid.Nil {
		result.Errors = append(result.Errors, controller.NewValidationError("guest_id", "guest_id is required"))
	}
	if req.Status != "" && !entity.CheckInStatus(req.Status).Valid() {
		result.Errors = append(result.Errors, controller.NewValidationError("status", "status must be one of present_ontime, present_late, absent, declined"))
	}

	return result
}
