package validator

import (
	"net/mail"

	"guestdesk/core/controller"
	"guestdesk/modules/auth/dto"
)

func ValidateSignupRequest(req *dto.SignupRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.Name == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("name", "name is required"))
	}
	if req.Email == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("email", "email is required"))
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		result.Errors = append(result.Errors, controller.NewValidationError("email", "email is invalid"))
	}
	if len(req.Password) < 8 {
		result.Errors = append(result.Errors, controller.NewValidationError("password", "password must be at least 8 characters"))
	}

	return result
}

func ValidateLoginRequest(req *dto.LoginRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.Email == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("email", "email is required"))
	}
	if req.Password == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("password", "password is required"))
	}

	return result
}
