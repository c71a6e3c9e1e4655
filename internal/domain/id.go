package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID identifies a server-owned record. The remote API sends some identifiers
// as JSON numbers and others as strings; both decode into the same value.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return id == "" }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*id = ID(n.String())
	return nil
}
