package service

import (
	"context"
	"encoding/json"

	"guestdesk/core/cache"
	"guestdesk/core/constants"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	checkInDto "guestdesk/modules/checkin/dto"
	checkInService "guestdesk/modules/checkin/service"
	eventDto "guestdesk/modules/event/dto"
	eventMapper "guestdesk/modules/event/mapper"
	"guestdesk/modules/report/dto"
	"guestdesk/modules/report/repository"
	taskDto "guestdesk/modules/task/dto"
	taskService "guestdesk/modules/task/service"

	"github.com/google/uuid"
)

type ReportServiceInterface interface {
	GetAttendanceStats(ctx context.Context, eventID uuid.UUID) (*checkInDto.AttendanceStatsResponse, *errors.AppError)
	GetTaskProgress(ctx context.Context, eventID uuid.UUID) (*taskDto.TaskStatsResponse, *errors.AppError)
	GetEventReport(ctx context.Context, eventID uuid.UUID) (*dto.EventReportResponse, *errors.AppError)
	GetDashboard(ctx context.Context, limit int) (*dto.DashboardResponse, *errors.AppError)
}

type ReportService struct {
	repo     repository.ReportRepositoryInterface
	checkIns checkInService.CheckInServiceInterface
	tasks    taskService.TaskServiceInterface
	cache    cache.Cache
}

func NewReportService(repo repository.ReportRepositoryInterface, checkIns checkInService.CheckInServiceInterface, tasks taskService.TaskServiceInterface, c cache.Cache) ReportServiceInterface {
	return &ReportService{
		repo:     repo,
		checkIns: checkIns,
		tasks:    tasks,
		cache:    c,
	}
}

// GetAttendanceStats serves the attendance breakdown for an event, cached
// briefly so dashboard polling does not hammer the latest-status query.
func (s *ReportService) GetAttendanceStats(ctx context.Context, eventID uuid.UUID) (*checkInDto.AttendanceStatsResponse, *errors.AppError) {
	key := constants.RedisKeyAttendanceStats + eventID.String()

	var cached checkInDto.AttendanceStatsResponse
	if hit := s.fromCache(ctx, key, &cached); hit {
		return &cached, nil
	}

	stats, appErr := s.checkIns.GetAttendanceStats(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	s.toCache(ctx, key, stats)
	return stats, nil
}

func (s *ReportService) GetTaskProgress(ctx context.Context, eventID uuid.UUID) (*taskDto.TaskStatsResponse, *errors.AppError) {
	key := constants.RedisKeyTaskProgress + eventID.String()

	var cached taskDto.TaskStatsResponse
	if hit := s.fromCache(ctx, key, &cached); hit {
		return &cached, nil
	}

	stats, appErr := s.tasks.GetTaskStats(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	s.toCache(ctx, key, stats)
	return stats, nil
}

func (s *ReportService) GetEventReport(ctx context.Context, eventID uuid.UUID) (*dto.EventReportResponse, *errors.AppError) {
	attendance, appErr := s.GetAttendanceStats(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	tasks, appErr := s.GetTaskProgress(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	return &dto.EventReportResponse{
		Attendance: *attendance,
		Tasks:      *tasks,
	}, nil
}

func (s *ReportService) GetDashboard(ctx context.Context, limit int) (*dto.DashboardResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	counts, err := s.repo.GetDashboardCounts(ctx)
	if err != nil {
		logger.Error("ReportService:GetDashboard:Counts", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load dashboard counts", err)
	}

	recent, appErr := s.checkIns.GetRecentCheckIns(ctx, limit)
	if appErr != nil {
		return nil, appErr
	}

	upcoming, err := s.repo.GetUpcomingEvents(ctx, limit)
	if err != nil {
		logger.Error("ReportService:GetDashboard:UpcomingEvents", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load upcoming events", err)
	}
	upcomingResponses := make([]eventDto.EventResponse, 0, len(upcoming))
	for i := range upcoming {
		upcomingResponses = append(upcomingResponses, *eventMapper.ToEventResponse(&upcoming[i]))
	}

	return &dto.DashboardResponse{
		TotalEvents:    counts.TotalEvents,
		TotalGuests:    counts.TotalGuests,
		TotalUsers:     counts.TotalUsers,
		RecentCheckIns: recent,
		UpcomingEvents: upcomingResponses,
	}, nil
}

// fromCache reports whether the key was present and decoded. Cache failures
// are treated as misses.
func (s *ReportService) fromCache(ctx context.Context, key string, dest any) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Warn("ReportService:FromCache:Unmarshal", "key", key, "error", err)
		return false
	}
	return true
}

func (s *ReportService) toCache(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("ReportService:ToCache:Marshal", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), constants.ReportCacheTTL); err != nil {
		logger.Warn("ReportService:ToCache:Set", "key", key, "error", err)
	}
}
