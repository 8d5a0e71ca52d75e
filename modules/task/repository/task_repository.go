package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/modules/task/entity"

	"github.com/google/uuid"
)

// UserContact is the minimal slice of a user needed to address a notification.
type UserContact struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Email string    `db:"email"`
}

type TaskFilter struct {
	TaskGroupID  *uuid.UUID
	AssignedToID *uuid.UUID
	Status       *entity.TaskStatus
}

type TaskRepositoryInterface interface {
	CreateTaskGroup(ctx context.Context, group *entity.TaskGroup) (*entity.TaskGroup, error)
	GetTaskGroupById(ctx context.Context, id uuid.UUID) (*entity.TaskGroup, error)
	GetTaskGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.TaskGroup, error)
	UpdateTaskGroup(ctx context.Context, group *entity.TaskGroup, id uuid.UUID) error
	DeleteTaskGroup(ctx context.Context, id uuid.UUID) error

	CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
	GetTaskById(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	GetTasks(ctx context.Context, filter TaskFilter) ([]entity.Task, error)
	GetTasksByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.Task, error)
	UpdateTask(ctx context.Context, task *entity.Task, id uuid.UUID) error
	DeleteTask(ctx context.Context, id uuid.UUID) error

	GetUserContact(ctx context.Context, userID uuid.UUID) (*UserContact, error)
}

type TaskRepository struct {
	DB database.IDatabase
}

func NewTaskRepository(db database.IDatabase) TaskRepositoryInterface {
	return &TaskRepository{DB: db}
}

const taskColumns = `id, title, description, deadline, status, blocked_by, task_group_id, assigned_to_id, created_by_id, created_at, updated_at`

func (r *TaskRepository) CreateTaskGroup(ctx context.Context, group *entity.TaskGroup) (*entity.TaskGroup, error) {
	query := `
		INSERT INTO task_groups (name, event_id)
		VALUES ($1, $2)
		RETURNING id, name, event_id, created_at, updated_at
	`
	var created entity.TaskGroup
	err := r.DB.GetContext(ctx, &created, query, group.Name, group.EventID)
	if err != nil {
		logger.Error("TaskRepository:CreateTaskGroup", err)
		return nil, err
	}
	return &created, nil
}

func (r *TaskRepository) GetTaskGroupById(ctx context.Context, id uuid.UUID) (*entity.TaskGroup, error) {
	var group entity.TaskGroup
	query := `SELECT id, name, event_id, created_at, updated_at FROM task_groups WHERE id = $1`
	err := r.DB.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TaskRepository:GetTaskGroupById", err)
		return nil, err
	}
	return &group, nil
}

func (r *TaskRepository) GetTaskGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.TaskGroup, error) {
	query := `
		SELECT id, name, event_id, created_at, updated_at
		FROM task_groups
		WHERE event_id = $1
		ORDER BY created_at
	`
	var groups []entity.TaskGroup
	err := r.DB.SelectContext(ctx, &groups, query, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.TaskGroup{}, nil
		}
		logger.Error("TaskRepository:GetTaskGroupsByEventId", err)
		return nil, err
	}
	return groups, nil
}

func (r *TaskRepository) UpdateTaskGroup(ctx context.Context, group *entity.TaskGroup, id uuid.UUID) error {
	query := `
		UPDATE task_groups
		SET name = $1, updated_at = now()
		WHERE id = $2
	`
	result, err := r.DB.SQLx().ExecContext(ctx, query, group.Name, id)
	if err != nil {
		logger.Error("TaskRepository:UpdateTaskGroup", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("TaskRepository:UpdateTaskGroup - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *TaskRepository) DeleteTaskGroup(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM task_groups
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("TaskRepository:DeleteTaskGroup", err)
		return err
	}
	return nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	query := `
		INSERT INTO tasks (title, description, deadline, status, blocked_by, task_group_id, assigned_to_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + taskColumns
	var created entity.Task
	err := r.DB.GetContext(ctx, &created, query,
		task.Title,
		task.Description,
		task.Deadline,
		task.Status,
		task.BlockedBy,
		task.TaskGroupID,
		task.AssignedToID,
		task.CreatedByID,
	)
	if err != nil {
		logger.Error("TaskRepository:CreateTask", err)
		return nil, err
	}
	return &created, nil
}

func (r *TaskRepository) GetTaskById(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	err := r.DB.GetContext(ctx, &task, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TaskRepository:GetTaskById", err)
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) GetTasks(ctx context.Context, filter TaskFilter) ([]entity.Task, error) {
	var args []interface{}
	conditions := []string{}
	argIndex := 1

	if filter.TaskGroupID != nil {
		conditions = append(conditions, fmt.Sprintf("task_group_id = $%d", argIndex))
		args = append(args, *filter.TaskGroupID)
		argIndex++
	}
	if filter.AssignedToID != nil {
		conditions = append(conditions, fmt.Sprintf("assigned_to_id = $%d", argIndex))
		args = append(args, *filter.AssignedToID)
		argIndex++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at"

	var tasks []entity.Task
	err := r.DB.SelectContext(ctx, &tasks, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.Task{}, nil
		}
		logger.Error("TaskRepository:GetTasks", err)
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) GetTasksByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.Task, error) {
	query := `
		SELECT t.id, t.title, t.description, t.deadline, t.status, t.blocked_by, t.task_group_id, t.assigned_to_id, t.created_by_id, t.created_at, t.updated_at
		FROM tasks t
		JOIN task_groups tg ON tg.id = t.task_group_id
		WHERE tg.event_id = $1
		ORDER BY t.created_at
	`
	var tasks []entity.Task
	err := r.DB.SelectContext(ctx, &tasks, query, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.Task{}, nil
		}
		logger.Error("TaskRepository:GetTasksByEventId", err)
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task *entity.Task, id uuid.UUID) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, deadline = $3, status = $4, blocked_by = $5, assigned_to_id = $6, updated_at = now()
		WHERE id = $7
	`
	result, err := r.DB.SQLx().ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Deadline,
		task.Status,
		task.BlockedBy,
		task.AssignedToID,
		id,
	)
	if err != nil {
		logger.Error("TaskRepository:UpdateTask", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("TaskRepository:UpdateTask - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM tasks
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("TaskRepository:DeleteTask", err)
		return err
	}
	return nil
}

func (r *TaskRepository) GetUserContact(ctx context.Context, userID uuid.UUID) (*UserContact, error) {
	var contact UserContact
	query := `SELECT id, name, email FROM users WHERE id = $1`
	err := r.DB.GetContext(ctx, &contact, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TaskRepository:GetUserContact", err)
		return nil, err
	}
	return &contact, nil
}
