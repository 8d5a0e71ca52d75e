package entity

import (
	"math"
	"sort"
	"time"

	"guestdesk/core/entity"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusAchieved   TaskStatus = "achieved"
	StatusClosed     TaskStatus = "closed"
	StatusBlocked    TaskStatus = "blocked"
	StatusNeedReview TaskStatus = "need_review"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusAchieved, StatusClosed, StatusBlocked, StatusNeedReview:
		return true
	}
	return false
}

// IsDone reports whether the status counts toward progress. Both achieved and
// closed terminate a task.
func (s TaskStatus) IsDone() bool {
	return s == StatusAchieved || s == StatusClosed
}

type TaskGroup struct {
	Name    string    `db:"name"`
	EventID uuid.UUID `db:"event_id"`

	entity.BaseEntity
}

type Task struct {
	Title        string     `db:"title"`
	Description  *string    `db:"description"`
	Deadline     *time.Time `db:"deadline"`
	Status       TaskStatus `db:"status"`
	BlockedBy    *string    `db:"blocked_by"`
	TaskGroupID  uuid.UUID  `db:"task_group_id"`
	AssignedToID *uuid.UUID `db:"assigned_to_id"`
	CreatedByID  uuid.UUID  `db:"created_by_id"`

	entity.BaseEntity
}

// SortByDeadline orders tasks by deadline ascending with undated tasks last.
// The sort is stable, ties keep their incoming order.
func SortByDeadline(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, dj := tasks[i].Deadline, tasks[j].Deadline
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.Before(*dj)
	})
}

type TaskStats struct {
	Total              int `json:"total"`
	Todo               int `json:"todo"`
	InProgress         int `json:"in_progress"`
	Achieved           int `json:"achieved"`
	Closed             int `json:"closed"`
	Blocked            int `json:"blocked"`
	NeedReview         int `json:"need_review"`
	ProgressPercentage int `json:"progress_percentage"`
}

// BucketTasks tallies tasks per status and computes the completion percentage,
// rounded to the nearest integer. An empty set reports zero progress.
func BucketTasks(tasks []Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusTodo:
			stats.Todo++
		case StatusInProgress:
			stats.InProgress++
		case StatusAchieved:
			stats.Achieved++
		case StatusClosed:
			stats.Closed++
		case StatusBlocked:
			stats.Blocked++
		case StatusNeedReview:
			stats.NeedReview++
		}
	}
	if stats.Total > 0 {
		done := float64(stats.Achieved + stats.Closed)
		stats.ProgressPercentage = int(math.Round(100 * done / float64(stats.Total)))
	}
	return stats
}
