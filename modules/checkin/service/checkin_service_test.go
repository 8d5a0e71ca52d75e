package service

import (
	"context"
	"errors"
	"testing"
	"time"

	coreErrors "guestdesk/core/errors"
	"guestdesk/modules/checkin/dto"
	"guestdesk/modules/checkin/entity"
	"guestdesk/modules/checkin/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCheckInRepository struct {
	GetGuestEventFunc              func(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error)
	CreateCheckInFunc              func(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error)
	GetCheckInsByGuestIdFunc       func(ctx context.Context, guestID uuid.UUID) ([]entity.CheckIn, error)
	GetLatestStatusesByEventIdFunc func(ctx context.Context, eventID uuid.UUID) ([]entity.GuestStatus, error)
	GetRecentCheckInsFunc          func(ctx context.Context, limit int) ([]repository.RecentCheckIn, error)
}

func (m *mockCheckInRepository) GetGuestEvent(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error) {
	if m.GetGuestEventFunc != nil {
		return m.GetGuestEventFunc(ctx, guestID)
	}
	return nil, nil
}

func (m *mockCheckInRepository) CreateCheckIn(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error) {
	if m.CreateCheckInFunc != nil {
		return m.CreateCheckInFunc(ctx, checkIn)
	}
	created := *checkIn
	created.ID = uuid.New()
	return &created, nil
}

func (m *mockCheckInRepository) GetCheckInsByGuestId(ctx context.Context, guestID uuid.UUID) ([]entity.CheckIn, error) {
	if m.GetCheckInsByGuestIdFunc != nil {
		return m.GetCheckInsByGuestIdFunc(ctx, guestID)
	}
	return []entity.CheckIn{}, nil
}

func (m *mockCheckInRepository) GetLatestStatusesByEventId(ctx context.Context, eventID uuid.UUID) ([]entity.GuestStatus, error) {
	if m.GetLatestStatusesByEventIdFunc != nil {
		return m.GetLatestStatusesByEventIdFunc(ctx, eventID)
	}
	return []entity.GuestStatus{}, nil
}

func (m *mockCheckInRepository) GetRecentCheckIns(ctx context.Context, limit int) ([]repository.RecentCheckIn, error) {
	if m.GetRecentCheckInsFunc != nil {
		return m.GetRecentCheckInsFunc(ctx, limit)
	}
	return []repository.RecentCheckIn{}, nil
}

func newTestService(repo *mockCheckInRepository, now time.Time) *CheckInService {
	return &CheckInService{
		repo: repo,
		now:  func() time.Time { return now },
	}
}

func guestEventStartingAt(start time.Time) *repository.GuestEvent {
	return &repository.GuestEvent{
		GuestID:    uuid.New(),
		GuestName:  "Ada",
		EventID:    uuid.New(),
		EventStart: start,
	}
}

func TestRecordCheckInDerivesOnTime(t *testing.T) {
	eventStart := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 15, 8, 55, 0, 0, time.UTC)

	repo := &mockCheckInRepository{
		GetGuestEventFunc: func(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error) {
			return guestEventStartingAt(eventStart), nil
		},
	}
	svc := newTestService(repo, now)

	resp, appErr := svc.RecordCheckIn(context.Background(), &dto.CheckInRequest{GuestID: uuid.New()}, uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, "present_ontime", resp.Status)
	assert.Equal(t, now, resp.CheckInTime)
}

func TestRecordCheckInDerivesLate(t *testing.T) {
	eventStart := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 15, 9, 5, 0, 0, time.UTC)

	repo := &mockCheckInRepository{
		GetGuestEventFunc: func(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error) {
			return guestEventStartingAt(eventStart), nil
		},
	}
	svc := newTestService(repo, now)

	resp, appErr := svc.RecordCheckIn(context.Background(), &dto.CheckInRequest{GuestID: uuid.New()}, uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, "present_late", resp.Status)
}

func TestRecordCheckInAtExactStartIsOnTime(t *testing.T) {
	eventStart := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	repo := &mockCheckInRepository{
		GetGuestEventFunc: func(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error) {
			return guestEventStartingAt(eventStart), nil
		},
	}
	svc := newTestService(repo, eventStart)

	resp, appErr := svc.RecordCheckIn(context.Background(), &dto.CheckInRequest{GuestID: uuid.New()}, uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, "present_ontime", resp.Status)
}

func TestRecordCheckInExplicitAbsent(t *testing.T) {
	eventStart := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	description := "no-show"

	repo := &mockCheckInRepository{
		GetGuestEventFunc: func(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error) {
			return guestEventStartingAt(eventStart), nil
		},
	}
	svc := newTestService(repo, eventStart.Add(2*time.Hour))

	resp, appErr := svc.RecordCheckIn(context.Background(), &dto.CheckInRequest{
		GuestID:     uuid.New(),
		Status:      "absent",
		Description: &description,
	}, uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, "absent", resp.Status)
	require.NotNil(t, resp.Description)
	assert.Equal(t, "no-show", *resp.Description)
}

func TestRecordCheckInExplicitDeclined(t *testing.T) {
	repo := &mockCheckInRepository{
		GetGuestEventFunc: func(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error) {
			return guestEventStartingAt(time.Now()), nil
		},
	}
	svc := newTestService(repo, time.Now())

	resp, appErr := svc.RecordCheckIn(context.Background(), &dto.CheckInRequest{
		GuestID: uuid.New(),
		Status:  "declined",
	}, uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, "declined", resp.Status)
}

func TestRecordCheckInRejectsExplicitPresence(t *testing.T) {
	repo := &mockCheckInRepository{
		GetGuestEventFunc: func(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error) {
			return guestEventStartingAt(time.Now()), nil
		},
	}
	svc := newTestService(repo, time.Now())

	for _, status := range []string{"present_ontime", "present_late", "bogus"} {
		_, appErr := svc.RecordCheckIn(context.Background(), &dto.CheckInRequest{
			GuestID: uuid.New(),
			Status:  status,
		}, uuid.New())

		require.NotNil(t, appErr, status)
		assert.Equal(t, coreErrors.ErrInvalidStatus, appErr.Code)
	}
}

func TestRecordCheckInGuestNotFound(t *testing.T) {
	repo := &mockCheckInRepository{
		GetGuestEventFunc: func(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error) {
			return nil, nil
		},
	}
	svc := newTestService(repo, time.Now())

	_, appErr := svc.RecordCheckIn(context.Background(), &dto.CheckInRequest{GuestID: uuid.New()}, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}

func TestRecordCheckInRepoFailure(t *testing.T) {
	repo := &mockCheckInRepository{
		GetGuestEventFunc: func(ctx context.Context, guestID uuid.UUID) (*repository.GuestEvent, error) {
			return guestEventStartingAt(time.Now()), nil
		},
		CreateCheckInFunc: func(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error) {
			return nil, errors.New("insert failed")
		},
	}
	svc := newTestService(repo, time.Now())

	_, appErr := svc.RecordCheckIn(context.Background(), &dto.CheckInRequest{GuestID: uuid.New()}, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrCreateFailed, appErr.Code)
}

func TestGetCheckInHistoryKeepsOrder(t *testing.T) {
	guestID := uuid.New()
	newer := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	older := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

	repo := &mockCheckInRepository{
		GetCheckInsByGuestIdFunc: func(ctx context.Context, id uuid.UUID) ([]entity.CheckIn, error) {
			return []entity.CheckIn{
				{GuestID: guestID, CheckInTime: newer, Status: entity.StatusAbsent},
				{GuestID: guestID, CheckInTime: older, Status: entity.StatusPresentOnTime},
			}, nil
		},
	}
	svc := newTestService(repo, time.Now())

	history, appErr := svc.GetCheckInHistory(context.Background(), guestID)

	require.Nil(t, appErr)
	require.Len(t, history, 2)
	assert.Equal(t, "absent", history[0].Status)
	assert.Equal(t, "present_ontime", history[1].Status)
}

func TestGetAttendanceStatsBucketsEveryGuest(t *testing.T) {
	ontime := "present_ontime"
	absent := "absent"

	repo := &mockCheckInRepository{
		GetLatestStatusesByEventIdFunc: func(ctx context.Context, eventID uuid.UUID) ([]entity.GuestStatus, error) {
			return []entity.GuestStatus{
				{GuestID: uuid.New(), Status: &ontime},
				{GuestID: uuid.New(), Status: &absent},
				{GuestID: uuid.New(), Status: nil},
			}, nil
		},
	}
	svc := newTestService(repo, time.Now())

	stats, appErr := svc.GetAttendanceStats(context.Background(), uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.PresentOnTime)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 1, stats.NoCheckIn)
}
