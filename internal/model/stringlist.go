package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings persisted as a JSON text column.
// It is used for the features, images and videos columns.
type StringList []string

// Value encodes the list as JSON text. An empty or nil list encodes to "[]",
// never to NULL, so every stored row carries an explicit empty-array marker.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan decodes the stored text back into the list. A stored NULL or empty
// value decodes to an empty list rather than an error.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	if items == nil {
		items = []string{}
	}

	*l = StringList(items)
	return nil
}

// GormDataType keeps the column as plain text regardless of dialect.
func (StringList) GormDataType() string {
	return "text"
}
