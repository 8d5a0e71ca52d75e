package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"guestdesk/core/dto"
	coreErrors "guestdesk/core/errors"
	"guestdesk/core/params"
	"guestdesk/core/queue"
	notifDto "guestdesk/modules/notification/dto"
	taskDto "guestdesk/modules/task/dto"
	"guestdesk/modules/task/entity"
	"guestdesk/modules/task/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTaskRepository struct {
	CreateTaskGroupFunc        func(ctx context.Context, group *entity.TaskGroup) (*entity.TaskGroup, error)
	GetTaskGroupByIdFunc       func(ctx context.Context, id uuid.UUID) (*entity.TaskGroup, error)
	GetTaskGroupsByEventIdFunc func(ctx context.Context, eventID uuid.UUID) ([]entity.TaskGroup, error)
	UpdateTaskGroupFunc        func(ctx context.Context, group *entity.TaskGroup, id uuid.UUID) error
	DeleteTaskGroupFunc        func(ctx context.Context, id uuid.UUID) error
	CreateTaskFunc             func(ctx context.Context, task *entity.Task) (*entity.Task, error)
	GetTaskByIdFunc            func(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	GetTasksFunc               func(ctx context.Context, filter repository.TaskFilter) ([]entity.Task, error)
	GetTasksByEventIdFunc      func(ctx context.Context, eventID uuid.UUID) ([]entity.Task, error)
	UpdateTaskFunc             func(ctx context.Context, task *entity.Task, id uuid.UUID) error
	DeleteTaskFunc             func(ctx context.Context, id uuid.UUID) error
	GetUserContactFunc         func(ctx context.Context, userID uuid.UUID) (*repository.UserContact, error)
}

func (m *mockTaskRepository) CreateTaskGroup(ctx context.Context, group *entity.TaskGroup) (*entity.TaskGroup, error) {
	if m.CreateTaskGroupFunc != nil {
		return m.CreateTaskGroupFunc(ctx, group)
	}
	created := *group
	created.ID = uuid.New()
	return &created, nil
}

func (m *mockTaskRepository) GetTaskGroupById(ctx context.Context, id uuid.UUID) (*entity.TaskGroup, error) {
	if m.GetTaskGroupByIdFunc != nil {
		return m.GetTaskGroupByIdFunc(ctx, id)
	}
	group := &entity.TaskGroup{Name: "logistics"}
	group.ID = id
	return group, nil
}

func (m *mockTaskRepository) GetTaskGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.TaskGroup, error) {
	if m.GetTaskGroupsByEventIdFunc != nil {
		return m.GetTaskGroupsByEventIdFunc(ctx, eventID)
	}
	return []entity.TaskGroup{}, nil
}

func (m *mockTaskRepository) UpdateTaskGroup(ctx context.Context, group *entity.TaskGroup, id uuid.UUID) error {
	if m.UpdateTaskGroupFunc != nil {
		return m.UpdateTaskGroupFunc(ctx, group, id)
	}
	return nil
}

func (m *mockTaskRepository) DeleteTaskGroup(ctx context.Context, id uuid.UUID) error {
	if m.DeleteTaskGroupFunc != nil {
		return m.DeleteTaskGroupFunc(ctx, id)
	}
	return nil
}

func (m *mockTaskRepository) CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, task)
	}
	created := *task
	created.ID = uuid.New()
	return &created, nil
}

func (m *mockTaskRepository) GetTaskById(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	if m.GetTaskByIdFunc != nil {
		return m.GetTaskByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskRepository) GetTasks(ctx context.Context, filter repository.TaskFilter) ([]entity.Task, error) {
	if m.GetTasksFunc != nil {
		return m.GetTasksFunc(ctx, filter)
	}
	return []entity.Task{}, nil
}

func (m *mockTaskRepository) GetTasksByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.Task, error) {
	if m.GetTasksByEventIdFunc != nil {
		return m.GetTasksByEventIdFunc(ctx, eventID)
	}
	return []entity.Task{}, nil
}

func (m *mockTaskRepository) UpdateTask(ctx context.Context, task *entity.Task, id uuid.UUID) error {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, task, id)
	}
	return nil
}

func (m *mockTaskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, id)
	}
	return nil
}

func (m *mockTaskRepository) GetUserContact(ctx context.Context, userID uuid.UUID) (*repository.UserContact, error) {
	if m.GetUserContactFunc != nil {
		return m.GetUserContactFunc(ctx, userID)
	}
	return &repository.UserContact{ID: userID, Name: "Grace", Email: "grace@example.com"}, nil
}

type mockNotifier struct {
	payloads []queue.TaskAssignedPayload
}

func (m *mockNotifier) NotifyTaskAssigned(ctx context.Context, payload queue.TaskAssignedPayload) {
	m.payloads = append(m.payloads, payload)
}

type mockNotificationService struct {
	created   []*notifDto.CreateNotificationRequest
	createErr *coreErrors.AppError
}

func (m *mockNotificationService) Create(ctx context.Context, req *notifDto.CreateNotificationRequest) *coreErrors.AppError {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, req)
	return nil
}

func (m *mockNotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*dto.Pagination[notifDto.NotificationResponse], *coreErrors.AppError) {
	return nil, nil
}

func (m *mockNotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *coreErrors.AppError {
	return nil
}

func (m *mockNotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *coreErrors.AppError {
	return nil
}

func (m *mockNotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *coreErrors.AppError) {
	return 0, nil
}

func newTestTaskService(repo *mockTaskRepository) (*TaskService, *mockNotifier, *mockNotificationService) {
	notifier := &mockNotifier{}
	notifications := &mockNotificationService{}
	svc := &TaskService{
		repo:          repo,
		notifier:      notifier,
		notifications: notifications,
	}
	return svc, notifier, notifications
}

func TestCreateTaskDefaultsToTodo(t *testing.T) {
	svc, _, _ := newTestTaskService(&mockTaskRepository{})

	resp, appErr := svc.CreateTask(context.Background(), &taskDto.TaskRequest{
		Title:       "book caterer",
		TaskGroupID: uuid.New(),
	}, uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, "todo", resp.Status)
}

func TestCreateTaskRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestTaskService(&mockTaskRepository{})

	_, appErr := svc.CreateTask(context.Background(), &taskDto.TaskRequest{
		Title:       "book caterer",
		TaskGroupID: uuid.New(),
		Status:      "done",
	}, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidStatus, appErr.Code)
}

func TestCreateTaskGroupMissing(t *testing.T) {
	repo := &mockTaskRepository{
		GetTaskGroupByIdFunc: func(ctx context.Context, id uuid.UUID) (*entity.TaskGroup, error) {
			return nil, nil
		},
	}
	svc, _, _ := newTestTaskService(repo)

	_, appErr := svc.CreateTask(context.Background(), &taskDto.TaskRequest{
		Title:       "book caterer",
		TaskGroupID: uuid.New(),
	}, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}

func TestUpdateTaskGroupRenames(t *testing.T) {
	var got *entity.TaskGroup
	repo := &mockTaskRepository{
		UpdateTaskGroupFunc: func(ctx context.Context, group *entity.TaskGroup, id uuid.UUID) error {
			got = group
			return nil
		},
	}
	svc, _, _ := newTestTaskService(repo)

	appErr := svc.UpdateTaskGroup(context.Background(), &taskDto.TaskGroupUpdateRequest{Name: "Logistics"}, uuid.New())

	require.Nil(t, appErr)
	require.NotNil(t, got)
	assert.Equal(t, "Logistics", got.Name)
}

func TestUpdateTaskGroupMissing(t *testing.T) {
	repo := &mockTaskRepository{
		UpdateTaskGroupFunc: func(ctx context.Context, group *entity.TaskGroup, id uuid.UUID) error {
			return sql.ErrNoRows
		},
	}
	svc, _, _ := newTestTaskService(repo)

	appErr := svc.UpdateTaskGroup(context.Background(), &taskDto.TaskGroupUpdateRequest{Name: "Logistics"}, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}

func TestCreateTaskWithAssigneeNotifies(t *testing.T) {
	assignee := uuid.New()
	svc, notifier, notifications := newTestTaskService(&mockTaskRepository{})

	resp, appErr := svc.CreateTask(context.Background(), &taskDto.TaskRequest{
		Title:        "print badges",
		TaskGroupID:  uuid.New(),
		AssignedToID: &assignee,
	}, uuid.New())

	require.Nil(t, appErr)
	require.NotNil(t, resp.AssignedToID)

	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, "print badges", notifier.payloads[0].TaskTitle)
	assert.Equal(t, "grace@example.com", notifier.payloads[0].RecipientEmail)

	require.Len(t, notifications.created, 1)
	assert.Equal(t, assignee, notifications.created[0].UserID)
}

func TestCreateTaskNotificationFailureDoesNotFailWrite(t *testing.T) {
	assignee := uuid.New()
	svc, notifier, notifications := newTestTaskService(&mockTaskRepository{})
	notifications.createErr = coreErrors.NewAppError(coreErrors.ErrCreateFailed, "down", nil)

	resp, appErr := svc.CreateTask(context.Background(), &taskDto.TaskRequest{
		Title:        "print badges",
		TaskGroupID:  uuid.New(),
		AssignedToID: &assignee,
	}, uuid.New())

	require.Nil(t, appErr)
	assert.NotNil(t, resp)
	// Mail still goes out even if the in-app notification write failed.
	assert.Len(t, notifier.payloads, 1)
}

func TestUpdateTaskStatusTransitionsAreUnrestricted(t *testing.T) {
	stored := &entity.Task{Title: "sound check", Status: entity.StatusClosed}
	stored.ID = uuid.New()

	repo := &mockTaskRepository{
		GetTaskByIdFunc: func(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
			return stored, nil
		},
	}
	svc, _, _ := newTestTaskService(repo)

	status := "todo"
	resp, appErr := svc.UpdateTask(context.Background(), &taskDto.TaskUpdateRequest{Status: &status}, stored.ID, uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, "todo", resp.Status)
}

func TestUpdateTaskRejectsUnknownStatus(t *testing.T) {
	stored := &entity.Task{Title: "sound check", Status: entity.StatusTodo}
	stored.ID = uuid.New()

	repo := &mockTaskRepository{
		GetTaskByIdFunc: func(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
			return stored, nil
		},
	}
	svc, _, _ := newTestTaskService(repo)

	status := "finished"
	_, appErr := svc.UpdateTask(context.Background(), &taskDto.TaskUpdateRequest{Status: &status}, stored.ID, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidStatus, appErr.Code)
}

func TestUpdateTaskReassignmentNotifies(t *testing.T) {
	previous := uuid.New()
	next := uuid.New()
	stored := &entity.Task{Title: "sound check", Status: entity.StatusTodo, AssignedToID: &previous}
	stored.ID = uuid.New()

	repo := &mockTaskRepository{
		GetTaskByIdFunc: func(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
			return stored, nil
		},
	}
	svc, notifier, _ := newTestTaskService(repo)

	_, appErr := svc.UpdateTask(context.Background(), &taskDto.TaskUpdateRequest{AssignedToID: dto.NewOptional(next)}, stored.ID, uuid.New())

	require.Nil(t, appErr)
	assert.Len(t, notifier.payloads, 1)
}

func TestUpdateTaskExplicitNullClearsAssigneeAndDeadline(t *testing.T) {
	assignee := uuid.New()
	deadline := timeMustParse(t, "2025-03-10T09:00:00Z")
	stored := &entity.Task{Title: "sound check", Status: entity.StatusInProgress, AssignedToID: &assignee, Deadline: &deadline}
	stored.ID = uuid.New()

	var written *entity.Task
	repo := &mockTaskRepository{
		GetTaskByIdFunc: func(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
			return stored, nil
		},
		UpdateTaskFunc: func(ctx context.Context, task *entity.Task, id uuid.UUID) error {
			written = task
			return nil
		},
	}
	svc, notifier, _ := newTestTaskService(repo)

	req := &taskDto.TaskUpdateRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"assigned_to_id": null, "deadline": null}`), req))

	resp, appErr := svc.UpdateTask(context.Background(), req, stored.ID, uuid.New())

	require.Nil(t, appErr)
	require.NotNil(t, written)
	assert.Nil(t, written.AssignedToID)
	assert.Nil(t, written.Deadline)
	assert.Nil(t, resp.AssignedToID)
	// Absent keys stay untouched, and unassigning notifies nobody.
	assert.Equal(t, "sound check", written.Title)
	assert.Equal(t, entity.StatusInProgress, written.Status)
	assert.Empty(t, notifier.payloads)
}

func TestUpdateTaskUnchangedAssigneeDoesNotNotify(t *testing.T) {
	assignee := uuid.New()
	stored := &entity.Task{Title: "sound check", Status: entity.StatusTodo, AssignedToID: &assignee}
	stored.ID = uuid.New()

	repo := &mockTaskRepository{
		GetTaskByIdFunc: func(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
			return stored, nil
		},
	}
	svc, notifier, _ := newTestTaskService(repo)

	status := "in_progress"
	_, appErr := svc.UpdateTask(context.Background(), &taskDto.TaskUpdateRequest{Status: &status}, stored.ID, uuid.New())

	require.Nil(t, appErr)
	assert.Empty(t, notifier.payloads)
}

func timeMustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestGetTasksSortedByDeadline(t *testing.T) {
	jan := timeMustParse(t, "2025-01-01T00:00:00Z")
	feb := timeMustParse(t, "2025-02-01T00:00:00Z")

	repo := &mockTaskRepository{
		GetTasksFunc: func(ctx context.Context, filter repository.TaskFilter) ([]entity.Task, error) {
			return []entity.Task{
				{Title: "undated"},
				{Title: "february", Deadline: &feb},
				{Title: "january", Deadline: &jan},
			}, nil
		},
	}
	svc, _, _ := newTestTaskService(repo)

	tasks, appErr := svc.GetTasks(context.Background(), repository.TaskFilter{})

	require.Nil(t, appErr)
	require.Len(t, tasks, 3)
	assert.Equal(t, "january", tasks[0].Title)
	assert.Equal(t, "february", tasks[1].Title)
	assert.Equal(t, "undated", tasks[2].Title)
}

func TestGetTaskStats(t *testing.T) {
	repo := &mockTaskRepository{
		GetTasksByEventIdFunc: func(ctx context.Context, eventID uuid.UUID) ([]entity.Task, error) {
			return []entity.Task{
				{Status: entity.StatusAchieved},
				{Status: entity.StatusClosed},
				{Status: entity.StatusTodo},
				{Status: entity.StatusBlocked},
			}, nil
		},
	}
	svc, _, _ := newTestTaskService(repo)

	stats, appErr := svc.GetTaskStats(context.Background(), uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 50, stats.ProgressPercentage)
}
