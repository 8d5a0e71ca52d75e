package mapper

import (
	"guestdesk/modules/task/dto"
	"guestdesk/modules/task/entity"
)

func ToTaskResponse(task *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Deadline:     task.Deadline,
		Status:       string(task.Status),
		BlockedBy:    task.BlockedBy,
		TaskGroupID:  task.TaskGroupID,
		AssignedToID: task.AssignedToID,
		CreatedByID:  task.CreatedByID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
}

func ToTaskResponses(tasks []entity.Task) []dto.TaskResponse {
	responses := make([]dto.TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = *ToTaskResponse(&t)
	}
	return responses
}

func ToTaskGroupResponse(group *entity.TaskGroup) *dto.TaskGroupResponse {
	return &dto.TaskGroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		EventID:   group.EventID,
		CreatedAt: group.CreatedAt,
	}
}

func ToTaskGroupWithTasksResponse(group *entity.TaskGroup, tasks []entity.Task) *dto.TaskGroupWithTasksResponse {
	return &dto.TaskGroupWithTasksResponse{
		TaskGroupResponse: *ToTaskGroupResponse(group),
		Tasks:             ToTaskResponses(tasks),
	}
}

func ToTaskStatsResponse(stats entity.TaskStats) *dto.TaskStatsResponse {
	return &dto.TaskStatsResponse{
		Total:              stats.Total,
		Todo:               stats.Todo,
		InProgress:         stats.InProgress,
		Achieved:           stats.Achieved,
		Closed:             stats.Closed,
		Blocked:            stats.Blocked,
		NeedReview:         stats.NeedReview,
		ProgressPercentage: stats.ProgressPercentage,
	}
}
