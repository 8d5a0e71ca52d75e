package service

import (
	"context"
	"database/sql"
	"fmt"

	"guestdesk/core/constants"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/queue"
	notifDto "guestdesk/modules/notification/dto"
	notifEntity "guestdesk/modules/notification/entity"
	notifService "guestdesk/modules/notification/service"
	"guestdesk/modules/task/dto"
	"guestdesk/modules/task/entity"
	"guestdesk/modules/task/mapper"
	"guestdesk/modules/task/repository"

	"github.com/google/uuid"
)

type TaskServiceInterface interface {
	CreateTaskGroup(ctx context.Context, req *dto.TaskGroupRequest) (*dto.TaskGroupResponse, *errors.AppError)
	GetTaskGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]dto.TaskGroupWithTasksResponse, *errors.AppError)
	UpdateTaskGroup(ctx context.Context, req *dto.TaskGroupUpdateRequest, id uuid.UUID) *errors.AppError
	DeleteTaskGroup(ctx context.Context, id uuid.UUID) *errors.AppError

	CreateTask(ctx context.Context, req *dto.TaskRequest, creatorID uuid.UUID) (*dto.TaskResponse, *errors.AppError)
	GetTaskById(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, *errors.AppError)
	GetTasks(ctx context.Context, filter repository.TaskFilter) ([]dto.TaskResponse, *errors.AppError)
	UpdateTask(ctx context.Context, req *dto.TaskUpdateRequest, id uuid.UUID, updaterID uuid.UUID) (*dto.TaskResponse, *errors.AppError)
	DeleteTask(ctx context.Context, id uuid.UUID) *errors.AppError

	GetTaskStats(ctx context.Context, eventID uuid.UUID) (*dto.TaskStatsResponse, *errors.AppError)
}

type TaskService struct {
	repo          repository.TaskRepositoryInterface
	notifier      queue.Notifier
	notifications notifService.NotificationServiceInterface
}

func NewTaskService(repo repository.TaskRepositoryInterface, notifier queue.Notifier, notifications notifService.NotificationServiceInterface) TaskServiceInterface {
	return &TaskService{
		repo:          repo,
		notifier:      notifier,
		notifications: notifications,
	}
}

func (s *TaskService) CreateTaskGroup(ctx context.Context, req *dto.TaskGroupRequest) (*dto.TaskGroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group := &entity.TaskGroup{
		Name:    req.Name,
		EventID: req.EventID,
	}
	created, err := s.repo.CreateTaskGroup(ctx, group)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create task group", err)
	}
	return mapper.ToTaskGroupResponse(created), nil
}

func (s *TaskService) GetTaskGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]dto.TaskGroupWithTasksResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	groups, err := s.repo.GetTaskGroupsByEventId(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get task groups", err)
	}

	responses := make([]dto.TaskGroupWithTasksResponse, 0, len(groups))
	for i := range groups {
		groupID := groups[i].ID
		tasks, err := s.repo.GetTasks(ctx, repository.TaskFilter{TaskGroupID: &groupID})
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get task groups", err)
		}
		entity.SortByDeadline(tasks)
		responses = append(responses, *mapper.ToTaskGroupWithTasksResponse(&groups[i], tasks))
	}
	return responses, nil
}

func (s *TaskService) UpdateTaskGroup(ctx context.Context, req *dto.TaskGroupUpdateRequest, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	err := s.repo.UpdateTaskGroup(ctx, &entity.TaskGroup{Name: req.Name}, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.NewAppError(errors.ErrNotFound, "Task group not found", err)
		}
		return errors.NewAppError(errors.ErrUpdateFailed, "Failed to update task group", err)
	}
	return nil
}

func (s *TaskService) DeleteTaskGroup(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.repo.GetTaskGroupById(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete task group", err)
	}
	if group == nil {
		return errors.NewAppError(errors.ErrNotFound, "Task group not found", nil)
	}
	if err := s.repo.DeleteTaskGroup(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete task group", err)
	}
	return nil
}

// CreateTask adds a task to a group. New tasks start in todo unless the
// request names another valid status.
func (s *TaskService) CreateTask(ctx context.Context, req *dto.TaskRequest, creatorID uuid.UUID) (*dto.TaskResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.repo.GetTaskGroupById(ctx, req.TaskGroupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create task", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Task group not found", nil)
	}

	status := entity.StatusTodo
	if req.Status != "" {
		status = entity.TaskStatus(req.Status)
		if !status.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidStatus, "Unknown task status", nil)
		}
	}

	task := &entity.Task{
		Title:        req.Title,
		Description:  req.Description,
		Deadline:     req.Deadline,
		Status:       status,
		BlockedBy:    req.BlockedBy,
		TaskGroupID:  req.TaskGroupID,
		AssignedToID: req.AssignedToID,
		CreatedByID:  creatorID,
	}
	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create task", err)
	}

	if created.AssignedToID != nil {
		s.notifyAssignment(ctx, created, creatorID)
	}

	return mapper.ToTaskResponse(created), nil
}

func (s *TaskService) GetTaskById(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	task, err := s.repo.GetTaskById(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get task", err)
	}
	if task == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Task not found", nil)
	}
	return mapper.ToTaskResponse(task), nil
}

func (s *TaskService) GetTasks(ctx context.Context, filter repository.TaskFilter) ([]dto.TaskResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	tasks, err := s.repo.GetTasks(ctx, filter)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get tasks", err)
	}
	entity.SortByDeadline(tasks)
	return mapper.ToTaskResponses(tasks), nil
}

// UpdateTask applies a partial update. Any status may be set from any other,
// the board does not restrict transitions. Assigning the task to a new user
// emits an assignment notification; an explicit null unassigns without one.
func (s *TaskService) UpdateTask(ctx context.Context, req *dto.TaskUpdateRequest, id uuid.UUID, updaterID uuid.UUID) (*dto.TaskResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	task, err := s.repo.GetTaskById(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update task", err)
	}
	if task == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Task not found", nil)
	}

	previousAssignee := task.AssignedToID

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description.Set {
		task.Description = req.Description.Value
	}
	if req.Deadline.Set {
		task.Deadline = req.Deadline.Value
	}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, errors.NewAppError(errors.ErrInvalidStatus, "Unknown task status", nil)
		}
		task.Status = status
	}
	if req.BlockedBy.Set {
		task.BlockedBy = req.BlockedBy.Value
	}
	if req.AssignedToID.Set {
		task.AssignedToID = req.AssignedToID.Value
	}

	if err := s.repo.UpdateTask(ctx, task, id); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update task", err)
	}

	newAssignee := task.AssignedToID != nil &&
		(previousAssignee == nil || *previousAssignee != *task.AssignedToID)
	if newAssignee {
		s.notifyAssignment(ctx, task, updaterID)
	}

	return mapper.ToTaskResponse(task), nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	task, err := s.repo.GetTaskById(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete task", err)
	}
	if task == nil {
		return errors.NewAppError(errors.ErrNotFound, "Task not found", nil)
	}
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete task", err)
	}
	return nil
}

func (s *TaskService) GetTaskStats(ctx context.Context, eventID uuid.UUID) (*dto.TaskStatsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	tasks, err := s.repo.GetTasksByEventId(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get task stats", err)
	}
	stats := entity.BucketTasks(tasks)
	return mapper.ToTaskStatsResponse(stats), nil
}

// notifyAssignment records an in-app notification and queues the assignment
// mail. Neither outcome affects the task write, failures are logged only.
func (s *TaskService) notifyAssignment(ctx context.Context, task *entity.Task, assignerID uuid.UUID) {
	assignee, err := s.repo.GetUserContact(ctx, *task.AssignedToID)
	if err != nil || assignee == nil {
		logger.Warn("TaskService:NotifyAssignment:AssigneeLookup", "task_id", task.ID, "assigned_to_id", *task.AssignedToID)
		return
	}

	assignerName := ""
	if assigner, err := s.repo.GetUserContact(ctx, assignerID); err == nil && assigner != nil {
		assignerName = assigner.Name
	}

	if appErr := s.notifications.Create(ctx, &notifDto.CreateNotificationRequest{
		UserID:  assignee.ID,
		Title:   "Task assigned",
		Message: fmt.Sprintf("You have been assigned the task %q", task.Title),
		Type:    notifEntity.TypeTaskAssigned,
		Data: map[string]interface{}{
			"task_id":       task.ID.String(),
			"task_group_id": task.TaskGroupID.String(),
		},
	}); appErr != nil {
		logger.Warn("TaskService:NotifyAssignment:Notification", "task_id", task.ID, "error", appErr.Error())
	}

	description := ""
	if task.Description != nil {
		description = *task.Description
	}
	s.notifier.NotifyTaskAssigned(ctx, queue.TaskAssignedPayload{
		RecipientEmail:  assignee.Email,
		RecipientName:   assignee.Name,
		TaskTitle:       task.Title,
		TaskDescription: description,
		Deadline:        task.Deadline,
		AssignerName:    assignerName,
	})
}
