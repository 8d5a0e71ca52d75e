package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"guestdesk/core/entity"

	"github.com/google/uuid"
)

const TypeTaskAssigned = "task_assigned"

type Notification struct {
	UserID  uuid.UUID `db:"user_id"`
	Title   string    `db:"title"`
	Message string    `db:"message"`
	Type    string    `db:"type"`
	Data    JSONB     `db:"data"`
	IsRead  bool      `db:"is_read"`

	entity.BaseEntity
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
