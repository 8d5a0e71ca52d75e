package mapper

import (
	"guestdesk/modules/event/dto"
	"guestdesk/modules/event/entity"
)

func ToEventResponse(entity *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          entity.ID,
		Name:        entity.Name,
		Slug:        entity.Slug,
		Description: entity.Description,
		StartDate:   entity.StartDate,
		EndDate:     entity.EndDate,
		MaxGuests:   entity.MaxGuests,
		CreatedByID: entity.CreatedByID,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func ToEventPaginationResponse(entity *entity.PaginatedEventEntity) *dto.PaginatedEventResponse {
	if entity == nil {
		return &dto.PaginatedEventResponse{
			Items: []dto.EventResponse{},
		}
	}

	eventResponses := make([]dto.EventResponse, len(entity.Items))
	for i, event := range entity.Items {
		eventResponses[i] = *ToEventResponse(&event)
	}

	totalPages := 0
	if entity.PageSize > 0 {
		totalPages = (entity.TotalItems + entity.PageSize - 1) / entity.PageSize
	}

	return &dto.PaginatedEventResponse{
		Items:      eventResponses,
		TotalItems: entity.TotalItems,
		TotalPages: totalPages,
		PageNumber: entity.PageNumber,
		PageSize:   entity.PageSize,
	}
}
