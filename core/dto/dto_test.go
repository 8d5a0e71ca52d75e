package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesNullFromAbsent(t *testing.T) {
	type payload struct {
		Name     Optional[string] `json:"name"`
		Deadline Optional[string] `json:"deadline"`
		Note     Optional[string] `json:"note"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name": "gala", "deadline": null}`), &p))

	require.True(t, p.Name.Set)
	require.NotNil(t, p.Name.Value)
	assert.Equal(t, "gala", *p.Name.Value)

	assert.True(t, p.Deadline.Set)
	assert.Nil(t, p.Deadline.Value)

	assert.False(t, p.Note.Set)
	assert.Nil(t, p.Note.Value)
}

func TestOptionalMarshal(t *testing.T) {
	raw, err := json.Marshal(NewOptional(7))
	require.NoError(t, err)
	assert.Equal(t, "7", string(raw))

	raw, err = json.Marshal(Optional[int]{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}
