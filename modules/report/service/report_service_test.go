package service

import (
	"context"
	"testing"
	"time"

	coreErrors "guestdesk/core/errors"
	checkInDto "guestdesk/modules/checkin/dto"
	eventEntity "guestdesk/modules/event/entity"
	"guestdesk/modules/report/repository"
	taskDto "guestdesk/modules/task/dto"
	taskRepository "guestdesk/modules/task/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	store map[string]string
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string]string)}
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	return m.store[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	m.store[key] = value
	m.sets++
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.store, key)
	return nil
}

func (m *mockCache) AddToTokenBlacklist(ctx context.Context, token string) error {
	return nil
}

func (m *mockCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return false, nil
}

type mockReportRepository struct {
	counts   repository.DashboardCounts
	upcoming []eventEntity.Event
}

func (m *mockReportRepository) GetDashboardCounts(ctx context.Context) (*repository.DashboardCounts, error) {
	counts := m.counts
	return &counts, nil
}

func (m *mockReportRepository) GetUpcomingEvents(ctx context.Context, limit int) ([]eventEntity.Event, error) {
	return m.upcoming, nil
}

type mockCheckInService struct {
	statsCalls int
}

func (m *mockCheckInService) RecordCheckIn(ctx context.Context, req *checkInDto.CheckInRequest, staffID uuid.UUID) (*checkInDto.CheckInResponse, *coreErrors.AppError) {
	return nil, nil
}

func (m *mockCheckInService) GetCheckInHistory(ctx context.Context, guestID uuid.UUID) ([]checkInDto.CheckInResponse, *coreErrors.AppError) {
	return nil, nil
}

func (m *mockCheckInService) GetAttendanceStats(ctx context.Context, eventID uuid.UUID) (*checkInDto.AttendanceStatsResponse, *coreErrors.AppError) {
	m.statsCalls++
	return &checkInDto.AttendanceStatsResponse{Total: 10, PresentOnTime: 6, NoCheckIn: 4}, nil
}

func (m *mockCheckInService) GetRecentCheckIns(ctx context.Context, limit int) ([]checkInDto.RecentCheckInResponse, *coreErrors.AppError) {
	return []checkInDto.RecentCheckInResponse{{GuestName: "Ada"}}, nil
}

type mockTaskService struct {
	statsCalls int
}

func (m *mockTaskService) CreateTaskGroup(ctx context.Context, req *taskDto.TaskGroupRequest) (*taskDto.TaskGroupResponse, *coreErrors.AppError) {
	return nil, nil
}

func (m *mockTaskService) GetTaskGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]taskDto.TaskGroupWithTasksResponse, *coreErrors.AppError) {
	return nil, nil
}

func (m *mockTaskService) UpdateTaskGroup(ctx context.Context, req *taskDto.TaskGroupUpdateRequest, id uuid.UUID) *coreErrors.AppError {
	return nil
}

func (m *mockTaskService) DeleteTaskGroup(ctx context.Context, id uuid.UUID) *coreErrors.AppError {
	return nil
}

func (m *mockTaskService) CreateTask(ctx context.Context, req *taskDto.TaskRequest, creatorID uuid.UUID) (*taskDto.TaskResponse, *coreErrors.AppError) {
	return nil, nil
}

func (m *mockTaskService) GetTaskById(ctx context.Context, id uuid.UUID) (*taskDto.TaskResponse, *coreErrors.AppError) {
	return nil, nil
}

func (m *mockTaskService) GetTasks(ctx context.Context, filter taskRepository.TaskFilter) ([]taskDto.TaskResponse, *coreErrors.AppError) {
	return nil, nil
}

func (m *mockTaskService) UpdateTask(ctx context.Context, req *taskDto.TaskUpdateRequest, id uuid.UUID, updaterID uuid.UUID) (*taskDto.TaskResponse, *coreErrors.AppError) {
	return nil, nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id uuid.UUID) *coreErrors.AppError {
	return nil
}

func (m *mockTaskService) GetTaskStats(ctx context.Context, eventID uuid.UUID) (*taskDto.TaskStatsResponse, *coreErrors.AppError) {
	m.statsCalls++
	return &taskDto.TaskStatsResponse{Total: 4, Achieved: 1, Closed: 1, ProgressPercentage: 50}, nil
}

func TestGetAttendanceStatsCachesResult(t *testing.T) {
	checkIns := &mockCheckInService{}
	cache := newMockCache()
	svc := NewReportService(&mockReportRepository{}, checkIns, &mockTaskService{}, cache)
	eventID := uuid.New()

	first, appErr := svc.GetAttendanceStats(context.Background(), eventID)
	require.Nil(t, appErr)
	assert.Equal(t, 10, first.Total)

	second, appErr := svc.GetAttendanceStats(context.Background(), eventID)
	require.Nil(t, appErr)
	assert.Equal(t, first, second)

	// Second read is served from the cache.
	assert.Equal(t, 1, checkIns.statsCalls)
	assert.Equal(t, 1, cache.sets)
}

func TestGetTaskProgressCachesResult(t *testing.T) {
	tasks := &mockTaskService{}
	svc := NewReportService(&mockReportRepository{}, &mockCheckInService{}, tasks, newMockCache())
	eventID := uuid.New()

	first, appErr := svc.GetTaskProgress(context.Background(), eventID)
	require.Nil(t, appErr)
	assert.Equal(t, 50, first.ProgressPercentage)

	_, appErr = svc.GetTaskProgress(context.Background(), eventID)
	require.Nil(t, appErr)
	assert.Equal(t, 1, tasks.statsCalls)
}

func TestGetEventReportCombinesSections(t *testing.T) {
	svc := NewReportService(&mockReportRepository{}, &mockCheckInService{}, &mockTaskService{}, newMockCache())

	report, appErr := svc.GetEventReport(context.Background(), uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, 10, report.Attendance.Total)
	assert.Equal(t, 50, report.Tasks.ProgressPercentage)
}

func TestGetDashboard(t *testing.T) {
	repo := &mockReportRepository{
		counts:   repository.DashboardCounts{TotalEvents: 3, TotalGuests: 42, TotalUsers: 7},
		upcoming: []eventEntity.Event{{Name: "Annual Gala", Slug: "annual-gala-2025-x1y2z3"}},
	}
	svc := NewReportService(repo, &mockCheckInService{}, &mockTaskService{}, newMockCache())

	dashboard, appErr := svc.GetDashboard(context.Background(), 5)

	require.Nil(t, appErr)
	assert.Equal(t, 3, dashboard.TotalEvents)
	assert.Equal(t, 42, dashboard.TotalGuests)
	assert.Equal(t, 7, dashboard.TotalUsers)
	require.Len(t, dashboard.RecentCheckIns, 1)
	assert.Equal(t, "Ada", dashboard.RecentCheckIns[0].GuestName)
	require.Len(t, dashboard.UpcomingEvents, 1)
	assert.Equal(t, "Annual Gala", dashboard.UpcomingEvents[0].Name)
}
