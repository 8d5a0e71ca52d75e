package dto

import (
	"time"

	coreDto "guestdesk/core/dto"

	"github.com/google/uuid"
)

type TaskGroupRequest struct {
	Name    string    `json:"name"`
	EventID uuid.UUID `json:"event_id"`
}

type TaskGroupUpdateRequest struct {
	Name string `json:"name"`
}

type TaskRequest struct {
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Deadline     *time.Time `json:"deadline"`
	Status       string     `json:"status"`
	BlockedBy    *string    `json:"blocked_by"`
	TaskGroupID  uuid.UUID  `json:"task_group_id"`
	AssignedToID *uuid.UUID `json:"assigned_to_id"`
}

// TaskUpdateRequest carries a partial update: absent fields stay untouched,
// an explicit null clears the nullable ones (unassigning the task, dropping
// its deadline, description or blocker).
type TaskUpdateRequest struct {
	Title        *string                     `json:"title"`
	Description  coreDto.Optional[string]    `json:"description"`
	Deadline     coreDto.Optional[time.Time] `json:"deadline"`
	Status       *string                     `json:"status"`
	BlockedBy    coreDto.Optional[string]    `json:"blocked_by"`
	AssignedToID coreDto.Optional[uuid.UUID] `json:"assigned_to_id"`
}

type TaskResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Deadline     *time.Time `json:"deadline"`
	Status       string     `json:"status"`
	BlockedBy    *string    `json:"blocked_by"`
	TaskGroupID  uuid.UUID  `json:"task_group_id"`
	AssignedToID *uuid.UUID `json:"assigned_to_id"`
	CreatedByID  uuid.UUID  `json:"created_by_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type TaskGroupResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	EventID   uuid.UUID `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

type TaskGroupWithTasksResponse struct {
	TaskGroupResponse
	Tasks []TaskResponse `json:"tasks"`
}

type TaskStatsResponse struct {
	Total              int `json:"total"`
	Todo               int `json:"todo"`
	InProgress         int `json:"in_progress"`
	Achieved           int `json:"achieved"`
	Closed             int `json:"closed"`
	Blocked            int `json:"blocked"`
	NeedReview         int `json:"need_review"`
	ProgressPercentage int `json:"progress_percentage"`
}
