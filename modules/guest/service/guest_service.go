package service

import (
	"context"
	"database/sql"

	"guestdesk/core/constants"
	"guestdesk/core/errors"
	"guestdesk/modules/guest/dto"
	"guestdesk/modules/guest/entity"
	"guestdesk/modules/guest/mapper"
	"guestdesk/modules/guest/repository"

	"github.com/google/uuid"
)

type GuestServiceInterface interface {
	CreateGuestGroup(ctx context.Context, req *dto.GuestGroupRequest) (*dto.GuestGroupResponse, *errors.AppError)
	GetGuestGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]dto.GuestGroupResponse, *errors.AppError)
	DeleteGuestGroup(ctx context.Context, id uuid.UUID) *errors.AppError

	CreateGuest(ctx context.Context, req *dto.GuestRequest) (*dto.GuestResponse, *errors.AppError)
	UpdateGuest(ctx context.Context, req *dto.GuestRequest, id uuid.UUID) (*dto.GuestResponse, *errors.AppError)
	DeleteGuest(ctx context.Context, id uuid.UUID) *errors.AppError
}

type GuestService struct {
	repo repository.GuestRepositoryInterface
}

func NewGuestService(repo repository.GuestRepositoryInterface) GuestServiceInterface {
	return &GuestService{repo: repo}
}

func (s *GuestService) CreateGuestGroup(ctx context.Context, req *dto.GuestGroupRequest) (*dto.GuestGroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.repo.CreateGuestGroup(ctx, &entity.GuestGroup{
		Name:    req.Name,
		EventID: req.EventID,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create guest group failed", err)
	}
	return mapper.ToGuestGroupResponse(group), nil
}

func (s *GuestService) GetGuestGroupsByEventId(ctx context.Context, eventID uuid.UUID) ([]dto.GuestGroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	groups, err := s.repo.GetGuestGroupsByEventId(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get guest groups failed", err)
	}

	responses := make([]dto.GuestGroupResponse, len(groups))
	for i, group := range groups {
		guests, err := s.repo.GetGuestsByGroupId(ctx, group.ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "get guests failed", err)
		}
		responses[i] = *mapper.ToGuestGroupResponseWithGuests(&group, guests)
	}
	return responses, nil
}

func (s *GuestService) DeleteGuestGroup(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.DeleteGuestGroup(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete guest group failed", err)
	}
	return nil
}

func (s *GuestService) CreateGuest(ctx context.Context, req *dto.GuestRequest) (*dto.GuestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	guest, err := s.repo.CreateGuest(ctx, &entity.Guest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		GuestGroupID: req.GuestGroupID,
	})
	if err != nil {
		switch err {
		case repository.ErrGroupNotFound:
			return nil, errors.NewAppError(errors.ErrNotFound, "guest group not found", err)
		case repository.ErrCapacityExceeded:
			return nil, errors.NewAppError(errors.ErrCapacityExceeded, "event guest capacity reached", err)
		default:
			return nil, errors.NewAppError(errors.ErrCreateFailed, "create guest failed", err)
		}
	}
	return mapper.ToGuestResponse(guest), nil
}

func (s *GuestService) UpdateGuest(ctx context.Context, req *dto.GuestRequest, id uuid.UUID) (*dto.GuestResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	guest := &entity.Guest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	err := s.repo.UpdateGuest(ctx, guest, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "guest not found", err)
		}
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "update guest failed", err)
	}

	updated, err := s.repo.GetGuestById(ctx, id)
	if err != nil || updated == nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get guest failed", err)
	}
	return mapper.ToGuestResponse(updated), nil
}

func (s *GuestService) DeleteGuest(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.DeleteGuest(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete guest failed", err)
	}
	return nil
}
