package mapper

import (
	"guestdesk/modules/guest/dto"
	"guestdesk/modules/guest/entity"
)

func ToGuestGroupResponse(group *entity.GuestGroup) *dto.GuestGroupResponse {
	return &dto.GuestGroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		EventID:   group.EventID,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}
}

func ToGuestResponse(guest *entity.Guest) *dto.GuestResponse {
	return &dto.GuestResponse{
		ID:           guest.ID,
		Name:         guest.Name,
		Email:        guest.Email,
		Phone:        guest.Phone,
		GuestGroupID: guest.GuestGroupID,
		CreatedAt:    guest.CreatedAt,
		UpdatedAt:    guest.UpdatedAt,
	}
}

func ToGuestGroupResponseWithGuests(group *entity.GuestGroup, guests []entity.Guest) *dto.GuestGroupResponse {
	response := ToGuestGroupResponse(group)
	response.Guests = make([]dto.GuestResponse, len(guests))
	for i, guest := range guests {
		response.Guests[i] = *ToGuestResponse(&guest)
	}
	return response
}
