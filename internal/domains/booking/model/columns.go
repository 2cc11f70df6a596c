package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"maps"

	"lodgehub/shared/model"
)

// RoomAmount is the pricing snapshot of one category at booking time.
type RoomAmount struct {
	RoomName             string  `json:"room_name"               validate:"required"`
	RoomType             string  `json:"room_type"               validate:"required"`
	RoomCount            int     `json:"room_count"              validate:"gte=0"`
	BaseAmountPerRoom    float64 `json:"base_amount_per_room"    validate:"gte=0"`
	GroupTotalBaseAmount float64 `json:"group_total_base_amount" validate:"gte=0"`
}

type RoomAmounts []RoomAmount

// Find returns the snapshot of a category.
func (r RoomAmounts) Find(roomName, roomType string) (RoomAmount, bool) {
	for _, amount := range r {
		if amount.RoomName == roomName && amount.RoomType == roomType {
			return amount, true
		}
	}

	return RoomAmount{}, false
}

func (r RoomAmounts) Value() (driver.Value, error) {
	if r == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal([]RoomAmount(r))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal room amount: %w", err)
	}

	return data, nil
}

func (r *RoomAmounts) Scan(src any) error {
	data, err := model.ColumnBytes(src)
	if err != nil {
		return err
	}

	if model.IsEmptyJSON(data) {
		*r = nil

		return nil
	}

	// Older rows stored a single object instead of a list.
	if trimmed := bytes.TrimSpace(data); trimmed[0] == '{' {
		var single RoomAmount
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return fmt.Errorf("invalid room amount: %w", err)
		}

		*r = RoomAmounts{single}

		return nil
	}

	var amounts []RoomAmount
	if err := json.Unmarshal(data, &amounts); err != nil {
		return fmt.Errorf("invalid room amount: %w", err)
	}

	*r = amounts

	return nil
}

// Notes is a free-form JSON object that only ever grows.
type Notes map[string]any

// Merge returns a copy of n with extra layered on top.
func (n Notes) Merge(extra Notes) Notes {
	merged := make(Notes, len(n)+len(extra))

	maps.Copy(merged, n)
	maps.Copy(merged, extra)

	return merged
}

// Append adds entry to the list stored under key, turning a scalar into a list.
func (n Notes) Append(key string, entry any) Notes {
	var list []any

	switch existing := n[key].(type) {
	case nil:
	case []any:
		list = append(list, existing...)
	default:
		list = append(list, existing)
	}

	return n.Merge(Notes{key: append(list, entry)})
}

func (n Notes) Value() (driver.Value, error) {
	if n == nil {
		return nil, nil
	}

	data, err := json.Marshal(map[string]any(n))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notes: %w", err)
	}

	return data, nil
}

func (n *Notes) Scan(src any) error {
	data, err := model.ColumnBytes(src)
	if err != nil {
		return err
	}

	if model.IsEmptyJSON(data) {
		*n = nil

		return nil
	}

	notes := map[string]any{}
	if err := json.Unmarshal(data, &notes); err != nil {
		// A non-object note is kept under "text".
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid notes: %w", err)
		}

		notes = map[string]any{"text": raw}
	}

	*n = notes

	return nil
}

// IDProofs lists uploaded ID-proof object URLs. Rows may hold a single string,
// an array or a JSON-encoded array string.
type IDProofs []string

func (p *IDProofs) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if model.IsEmptyJSON(trimmed) {
		*p = nil

		return nil
	}

	if trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return fmt.Errorf("invalid id proof: %w", err)
		}

		if single == "" {
			*p = nil

			return nil
		}

		if single[0] == '[' {
			return p.UnmarshalJSON([]byte(single))
		}

		*p = IDProofs{single}

		return nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return fmt.Errorf("invalid id proof list: %w", err)
	}

	*p = list

	return nil
}

func (p IDProofs) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}

	data, err := json.Marshal([]string(p))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal id proofs: %w", err)
	}

	return data, nil
}

func (p *IDProofs) Scan(src any) error {
	data, err := model.ColumnBytes(src)
	if err != nil {
		return err
	}

	return p.UnmarshalJSON(data)
}
