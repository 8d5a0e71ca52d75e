package mapper

import (
	"guestdesk/modules/checkin/dto"
	"guestdesk/modules/checkin/entity"
)

func ToCheckInResponse(checkIn *entity.CheckIn) *dto.CheckInResponse {
	return &dto.CheckInResponse{
		ID:            checkIn.ID,
		GuestID:       checkIn.GuestID,
		CheckInTime:   checkIn.CheckInTime,
		Status:        string(checkIn.Status),
		Description:   checkIn.Description,
		CheckedInByID: checkIn.CheckedInByID,
		CreatedAt:     checkIn.CreatedAt,
	}
}

func ToCheckInResponses(checkIns []entity.CheckIn) []dto.CheckInResponse {
	responses := make([]dto.CheckInResponse, len(checkIns))
	for i, ci := range checkIns {
		responses[i] = *ToCheckInResponse(&ci)
	}
	return responses
}

func ToAttendanceStatsResponse(stats entity.AttendanceStats) *dto.AttendanceStatsResponse {
	return &dto.AttendanceStatsResponse{
		Total:         stats.Total,
		PresentOnTime: stats.PresentOnTime,
		PresentLate:   stats.PresentLate,
		Absent:        stats.Absent,
		Declined:      stats.Declined,
		NoCheckIn:     stats.NoCheckIn,
	}
}
