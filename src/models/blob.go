package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The line-item and photo columns are written and read as whole JSON
// documents, never queried by sub-field, so they live in single blob
// columns instead of child tables.

func marshalBlob(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func scanBlob(dest interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	switch raw := value.(type) {
	case []byte:
		return json.Unmarshal(raw, dest)
	case string:
		return json.Unmarshal([]byte(raw), dest)
	default:
		return fmt.Errorf("unsupported blob column type %T", value)
	}
}

func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		c = CartItems{}
	}
	return marshalBlob(c)
}

func (c *CartItems) Scan(value interface{}) error {
	return scanBlob(c, value)
}

type Photos []string

func (p Photos) Value() (driver.Value, error) {
	if p == nil {
		p = Photos{}
	}
	return marshalBlob(p)
}

func (p *Photos) Scan(value interface{}) error {
	return scanBlob(p, value)
}

func (r RejectItems) Value() (driver.Value, error) {
	if r == nil {
		r = RejectItems{}
	}
	return marshalBlob(r)
}

func (r *RejectItems) Scan(value interface{}) error {
	return scanBlob(r, value)
}
