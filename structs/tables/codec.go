package tables

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"ollacart_server/structs"
)

// Array-valued entity fields are persisted as JSON-encoded text columns.
// These codec types keep the encoding entirely at the storage boundary:
// everything above the database package only ever sees decoded slices.

// StringList is a []string stored as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, (*[]string)(l))
}

// Contains reports membership; used for like/dislike and lineage checks.
func (l StringList) Contains(v string) bool {
	for _, s := range l {
		if s == v {
			return true
		}
	}
	return false
}

// Without returns a copy with every occurrence of v removed.
func (l StringList) Without(v string) StringList {
	out := make(StringList, 0, len(l))
	for _, s := range l {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

// PhotoList is a []structs.Photo stored as a JSON text column.
type PhotoList []structs.Photo

func (l PhotoList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]structs.Photo(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *PhotoList) Scan(src any) error {
	return scanJSON(src, (*[]structs.Photo)(l))
}

func scanJSON[T any](src any, dst *T) error {
	switch v := src.(type) {
	case nil:
		var zero T
		*dst = zero
		return nil
	case []byte:
		if len(v) == 0 {
			var zero T
			*dst = zero
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			var zero T
			*dst = zero
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
