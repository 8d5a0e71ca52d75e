package dto

import (
	checkInDto "guestdesk/modules/checkin/dto"
	eventDto "guestdesk/modules/event/dto"
	taskDto "guestdesk/modules/task/dto"
)

type EventReportResponse struct {
	Attendance checkInDto.AttendanceStatsResponse `json:"attendance"`
	Tasks      taskDto.TaskStatsResponse          `json:"tasks"`
}

type DashboardResponse struct {
	TotalEvents    int                                `json:"total_events"`
	TotalGuests    int                                `json:"total_guests"`
	TotalUsers     int                                `json:"total_users"`
	RecentCheckIns []checkInDto.RecentCheckInResponse `json:"recent_check_ins"`
	UpcomingEvents []eventDto.EventResponse           `json:"upcoming_events"`
}
