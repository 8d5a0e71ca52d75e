package dto

import (
	"time"

	"guestdesk/core/dto"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type GoogleAuthURLResponse struct {
	URL string `json:"url"`
}

type GoogleCallbackRequest struct {
	Code string `json:"code"`
}

type PaginatedUserResponse = dto.Pagination[UserResponse]
