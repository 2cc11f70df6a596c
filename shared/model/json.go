package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

var jsonNull = []byte("null")

// ColumnBytes reads a JSON column value as returned by lib/pq.
func ColumnBytes(src any) ([]byte, error) {
	switch value := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return value, nil
	case string:
		return []byte(value), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", src)
	}
}

// IsEmptyJSON reports whether data carries no value at all.
func IsEmptyJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)

	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}

// RawJSON stores an arbitrary JSON document, e.g. a free-form billing reason.
type RawJSON []byte

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if IsEmptyJSON(r) {
		return jsonNull, nil
	}

	return r, nil
}

func (r *RawJSON) UnmarshalJSON(data []byte) error {
	if IsEmptyJSON(data) {
		*r = nil

		return nil
	}

	*r = append((*r)[0:0], data...)

	return nil
}

// IsEmpty is true for null, "", {} and [].
func (r RawJSON) IsEmpty() bool {
	if IsEmptyJSON(r) {
		return true
	}

	switch string(bytes.TrimSpace(r)) {
	case `""`, "{}", "[]":
		return true
	}

	return false
}

func (r RawJSON) Value() (driver.Value, error) {
	if IsEmptyJSON(r) {
		return nil, nil
	}

	if !json.Valid(r) {
		return nil, fmt.Errorf("invalid json document")
	}

	return []byte(r), nil
}

func (r *RawJSON) Scan(src any) error {
	data, err := ColumnBytes(src)
	if err != nil {
		return err
	}

	if IsEmptyJSON(data) {
		*r = nil

		return nil
	}

	*r = append((*r)[0:0], data...)

	return nil
}

// Labels is a list of room-number labels. Historical rows hold numbers, strings
// or a single scalar, all of which decode to strings.
type Labels []string

func (l *Labels) UnmarshalJSON(data []byte) error {
	if IsEmptyJSON(data) {
		*l = nil

		return nil
	}

	trimmed := bytes.TrimSpace(data)

	if trimmed[0] != '[' {
		label, err := scalarLabel(trimmed)
		if err != nil {
			return err
		}

		*l = Labels{label}

		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return fmt.Errorf("room numbers must be an array: %w", err)
	}

	labels := make(Labels, 0, len(items))

	for _, item := range items {
		label, err := scalarLabel(item)
		if err != nil {
			return err
		}

		labels = append(labels, label)
	}

	*l = labels

	return nil
}

func (l Labels) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal labels: %w", err)
	}

	return data, nil
}

func (l *Labels) Scan(src any) error {
	data, err := ColumnBytes(src)
	if err != nil {
		return err
	}

	return l.UnmarshalJSON(data)
}

func scalarLabel(data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "", fmt.Errorf("empty room number")
	}

	switch trimmed[0] {
	case '"':
		var label string
		if err := json.Unmarshal(trimmed, &label); err != nil {
			return "", fmt.Errorf("invalid room number: %w", err)
		}

		return label, nil
	case '[', '{':
		return "", fmt.Errorf("room number must be a string or number, got %s", trimmed)
	default:
		var number json.Number
		if err := json.Unmarshal(trimmed, &number); err != nil {
			return "", fmt.Errorf("invalid room number: %w", err)
		}

		if integer, err := number.Int64(); err == nil {
			return strconv.FormatInt(integer, 10), nil
		}

		return number.String(), nil
	}
}
