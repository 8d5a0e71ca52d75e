package mapper

import (
	"guestdesk/modules/auth/dto"
	"guestdesk/modules/auth/entity"
)

func ToUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func ToUserPaginationResponse(entity *entity.PaginatedUserEntity) *dto.PaginatedUserResponse {
	if entity == nil {
		return &dto.PaginatedUserResponse{
			Items: []dto.UserResponse{},
		}
	}

	userResponses := make([]dto.UserResponse, len(entity.Items))
	for i, user := range entity.Items {
		userResponses[i] = *ToUserResponse(&user)
	}

	totalPages := 0
	if entity.PageSize > 0 {
		totalPages = (entity.TotalItems + entity.PageSize - 1) / entity.PageSize
	}

	return &dto.PaginatedUserResponse{
		Items:      userResponses,
		TotalItems: entity.TotalItems,
		TotalPages: totalPages,
		PageNumber: entity.PageNumber,
		PageSize:   entity.PageSize,
	}
}
