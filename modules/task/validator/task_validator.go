package validator

import (
	"guestdesk/core/controller"
	"guestdesk/modules/task/dto"
	"guestdesk/modules/task/entity"

	"github.com/google/uuid"
)

func ValidateTaskGroupRequest(req *dto.TaskGroupRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.Name == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("name", "name is required"))
	}
	if req.EventID == uuid.Nil {
		result.Errors = append(result.Errors, controller.NewValidationError("event_id", "event_id is required"))
	}

	return result
}

func ValidateTaskGroupUpdateRequest(req *dto.TaskGroupUpdateRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.Name == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("name", "name is required"))
	}

	return result
}

func ValidateTaskRequest(req *dto.TaskRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.Title == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("title", "title is required"))
	}
	if req.TaskGroupID == uuid.Nil {
		result.Errors = append(result.Errors, controller.NewValidationError("task_group_id", "task_group_id is required"))
	}
	if req.Status != "" && !entity.TaskStatus(req.Status).Valid() {
		result.Errors = append(result.Errors, controller.NewValidationError("status", "unknown status"))
	}

	return result
}

func ValidateTaskUpdateRequest(req *dto.TaskUpdateRequest) *controller.ValidationResponse {
	result := &controller.ValidationResponse{}

	if req.Title != nil && *req.Title == "" {
		result.Errors = append(result.Errors, controller.NewValidationError("title", "title must not be empty"))
	}
	if req.Status != nil && !entity.TaskStatus(*req.Status).Valid() {
		result.Errors = append(result.Errors, controller.NewValidationError("status", "unknown status"))
	}

	return result
}
