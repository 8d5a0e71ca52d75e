package mapper

import (
	coreDto "guestdesk/core/dto"
	"guestdesk/modules/notification/dto"
	"guestdesk/modules/notification/entity"
)

func ToNotificationResponse(notification *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        notification.ID,
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		Data:      map[string]interface{}(notification.Data),
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
}

func ToPaginatedNotificationResponse(paginated *entity.PaginatedNotificationEntity) *coreDto.Pagination[dto.NotificationResponse] {
	if paginated == nil {
		return &coreDto.Pagination[dto.NotificationResponse]{
			Items: []dto.NotificationResponse{},
		}
	}

	items := make([]dto.NotificationResponse, len(paginated.Items))
	for i, n := range paginated.Items {
		items[i] = *ToNotificationResponse(&n)
	}

	totalPages := 0
	if paginated.PageSize > 0 {
		totalPages = (paginated.TotalItems + paginated.PageSize - 1) / paginated.PageSize
	}

	return &coreDto.Pagination[dto.NotificationResponse]{
		Items:      items,
		TotalItems: paginated.TotalItems,
		TotalPages: totalPages,
		PageNumber: paginated.PageNumber,
		PageSize:   paginated.PageSize,
	}
}
