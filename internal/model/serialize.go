package model

import (
	"database/sql/driver"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StringList is an ordered list persisted as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	return string(data), errors.WithStack(err)
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// Metadata is an open key-value map persisted as a JSON text column.
type Metadata map[string]string

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]string(m))
	return string(data), errors.WithStack(err)
}

func (m *Metadata) Scan(src any) error {
	return scanJSON(src, m)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return errors.WithStack(json.Unmarshal(v, dst))
	case string:
		if v == "" {
			return nil
		}
		return errors.WithStack(json.Unmarshal([]byte(v), dst))
	default:
		return errors.Errorf("unsupported column type %T", src)
	}
}
