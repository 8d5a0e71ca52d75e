package entity

import (
	"guestdesk/core/entity"
)

const (
	RoleAdmin       = "Admin"
	RoleRegularUser = "RegularUser"
)

type User struct {
	Name string `db:"name"`

	Email string `db:"email"`

	Password string `db:"password"`

	Role string `db:"role"`

	entity.BaseEntity
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleRegularUser
}

type PaginatedUserEntity = entity.Pagination[User]
