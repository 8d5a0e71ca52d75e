package utils

import "github.com/google/uuid"

// ToUUID parses s, returning uuid.Nil on malformed input.
func ToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func TryParseUUID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func ToString(id uuid.UUID) string {
	return id.String()
}
