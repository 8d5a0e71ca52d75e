package service

import (
	"context"
	"time"

	"guestdesk/core/constants"
	"guestdesk/core/errors"
	"guestdesk/core/logger"
	checkInDto "guestdesk/modules/checkin/dto"
	"guestdesk/modules/checkin/entity"
	"guestdesk/modules/checkin/mapper"
	"guestdesk/modules/checkin/repository"

	"github.com/google/uuid"
)

type CheckInServiceInterface interface {
	RecordCheckIn(ctx context.Context, req *checkInDto.CheckInRequest, staffID uuid.UUID) (*checkInDto.CheckInResponse, *errors.AppError)
	GetCheckInHistory(ctx context.Context, guestID uuid.UUID) ([]checkInDto.CheckInResponse, *errors.AppError)
	GetAttendanceStats(ctx context.Context, eventID uuid.UUID) (*checkInDto.AttendanceStatsResponse, *errors.AppError)
	GetRecentCheckIns(ctx context.Context, limit int) ([]checkInDto.RecentCheckInResponse, *errors.AppError)
}

type CheckInService struct {
	repo repository.CheckInRepositoryInterface
	now  func() time.Time
}

func NewCheckInService(repo repository.CheckInRepositoryInterface) CheckInServiceInterface {
	return &CheckInService{
		repo: repo,
		now:  time.Now,
	}
}

// RecordCheckIn appends a check-in record for the guest. When no explicit
// status is supplied, the presence status is derived by comparing the moment
// of check-in with the event's start; only "absent" and "declined" may be set
// by hand. Records are never updated in place, the latest one wins.
func (s *CheckInService) RecordCheckIn(ctx context.Context, req *checkInDto.CheckInRequest, staffID uuid.UUID) (*checkInDto.CheckInResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	guestEvent, err := s.repo.GetGuestEvent(ctx, req.GuestID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to record check-in", err)
	}
	if guestEvent == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Guest not found", nil)
	}

	checkInTime := s.now()

	var status entity.CheckInStatus
	if req.Status == "" {
		status = entity.DeriveStatus(checkInTime, guestEvent.EventStart)
	} else {
		status = entity.CheckInStatus(req.Status)
		if !status.IsManual() {
			return nil, errors.NewAppError(errors.ErrInvalidStatus, "Only absent and declined may be set explicitly", nil)
		}
	}

	checkIn := &entity.CheckIn{
		GuestID:       req.GuestID,
		CheckInTime:   checkInTime,
		Status:        status,
		Description:   req.Description,
		CheckedInByID: staffID,
	}
	created, err := s.repo.CreateCheckIn(ctx, checkIn)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to record check-in", err)
	}

	logger.Info("CheckInService:RecordCheckIn", "guest_id", req.GuestID, "status", string(status))
	return mapper.ToCheckInResponse(created), nil
}

func (s *CheckInService) GetCheckInHistory(ctx context.Context, guestID uuid.UUID) ([]checkInDto.CheckInResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	checkIns, err := s.repo.GetCheckInsByGuestId(ctx, guestID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get check-in history", err)
	}
	return mapper.ToCheckInResponses(checkIns), nil
}

// GetAttendanceStats counts every guest of the event into exactly one bucket
// based on their most recent check-in, guests without one included.
func (s *CheckInService) GetAttendanceStats(ctx context.Context, eventID uuid.UUID) (*checkInDto.AttendanceStatsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	statuses, err := s.repo.GetLatestStatusesByEventId(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get attendance stats", err)
	}
	stats := entity.BucketGuestStatuses(statuses)
	return mapper.ToAttendanceStatsResponse(stats), nil
}

func (s *CheckInService) GetRecentCheckIns(ctx context.Context, limit int) ([]checkInDto.RecentCheckInResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}
	recent, err := s.repo.GetRecentCheckIns(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get recent check-ins", err)
	}
	responses := make([]checkInDto.RecentCheckInResponse, len(recent))
	for i, rc := range recent {
		responses[i] = checkInDto.RecentCheckInResponse{
			ID:          rc.ID,
			GuestID:     rc.GuestID,
			GuestName:   rc.GuestName,
			EventName:   rc.EventName,
			CheckInTime: rc.CheckInTime,
			Status:      rc.Status,
			CheckedInBy: rc.CheckedInBy,
		}
	}
	return responses, nil
}
