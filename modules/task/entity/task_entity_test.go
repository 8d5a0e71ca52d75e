package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusValid(t *testing.T) {
	for _, s := range []TaskStatus{StatusTodo, StatusInProgress, StatusAchieved, StatusClosed, StatusBlocked, StatusNeedReview} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, TaskStatus("done").Valid())
	assert.False(t, TaskStatus("").Valid())
}

func TestBucketTasksProgress(t *testing.T) {
	tasks := []Task{
		{Status: StatusAchieved},
		{Status: StatusClosed},
		{Status: StatusTodo},
		{Status: StatusInProgress},
	}

	stats := BucketTasks(tasks)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Achieved)
	assert.Equal(t, 1, stats.Closed)
	assert.Equal(t, 50, stats.ProgressPercentage)
}

func TestBucketTasksEmpty(t *testing.T) {
	stats := BucketTasks(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.ProgressPercentage)
}

func TestBucketTasksRounding(t *testing.T) {
	// 1 of 3 done is 33.33..., rounds to 33
	stats := BucketTasks([]Task{
		{Status: StatusAchieved},
		{Status: StatusTodo},
		{Status: StatusTodo},
	})
	assert.Equal(t, 33, stats.ProgressPercentage)

	// 2 of 3 done is 66.66..., rounds to 67
	stats = BucketTasks([]Task{
		{Status: StatusAchieved},
		{Status: StatusClosed},
		{Status: StatusBlocked},
	})
	assert.Equal(t, 67, stats.ProgressPercentage)
}

func TestBucketTasksAllStatuses(t *testing.T) {
	stats := BucketTasks([]Task{
		{Status: StatusTodo},
		{Status: StatusInProgress},
		{Status: StatusAchieved},
		{Status: StatusClosed},
		{Status: StatusBlocked},
		{Status: StatusNeedReview},
	})

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.Todo)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Achieved)
	assert.Equal(t, 1, stats.Closed)
	assert.Equal(t, 1, stats.Blocked)
	assert.Equal(t, 1, stats.NeedReview)
	assert.Equal(t, 33, stats.ProgressPercentage)
}

func timePtr(t time.Time) *time.Time { return &t }

func TestSortByDeadline(t *testing.T) {
	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tasks := []Task{
		{Title: "undated", Deadline: nil},
		{Title: "february", Deadline: timePtr(feb)},
		{Title: "january", Deadline: timePtr(jan)},
	}

	SortByDeadline(tasks)

	assert.Equal(t, "january", tasks[0].Title)
	assert.Equal(t, "february", tasks[1].Title)
	assert.Equal(t, "undated", tasks[2].Title)
}

func TestSortByDeadlineStableOnTies(t *testing.T) {
	deadline := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tasks := []Task{
		{Title: "first", Deadline: timePtr(deadline)},
		{Title: "second", Deadline: timePtr(deadline)},
		{Title: "third", Deadline: nil},
		{Title: "fourth", Deadline: nil},
	}

	SortByDeadline(tasks)

	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)
	assert.Equal(t, "fourth", tasks[3].Title)
}
