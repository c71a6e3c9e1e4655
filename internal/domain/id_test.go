package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalStringAndNumber(t *testing.T) {
	var vs []Visitor
	body := `[{"id":"v-1","name":"A"},{"id":42,"name":"B"},{"id":null,"name":"C"}]`
	require.NoError(t, json.Unmarshal([]byte(body), &vs))

	require.Len(t, vs, 3)
	assert.Equal(t, ID("v-1"), vs[0].ID)
	assert.Equal(t, ID("42"), vs[1].ID)
	assert.True(t, vs[2].ID.IsZero())
}

func TestID_MarshalsAsString(t *testing.T) {
	data, err := json.Marshal(Visitor{ID: "42", Name: "B"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"42"`)
}

func TestID_UnmarshalRejectsObjects(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}
