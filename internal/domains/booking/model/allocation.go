package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"

	"lodgehub/shared/model"
)

// RoomGroup is the set of labels a booking holds in one room category.
type RoomGroup struct {
	RoomName    string
	RoomType    string
	RoomNumbers []string
}

type roomGroupObject struct {
	RoomName    string       `json:"room_name"`
	RoomType    string       `json:"room_type"`
	RoomNumbers model.Labels `json:"room_numbers"`
	Rooms       model.Labels `json:"rooms"`
	RoomNumber  model.Labels `json:"room_number"`
}

// MarshalJSON writes the [name, type, [labels]] triple.
func (g RoomGroup) MarshalJSON() ([]byte, error) {
	labels := g.RoomNumbers
	if labels == nil {
		labels = []string{}
	}

	return json.Marshal([]any{g.RoomName, g.RoomType, labels}) //nolint:wrapcheck
}

// UnmarshalJSON reads either the triple form or an object with room_name/room_type/room_numbers.
func (g *RoomGroup) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty room group")
	}

	if trimmed[0] == '{' {
		var obj roomGroupObject
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return fmt.Errorf("invalid room group: %w", err)
		}

		g.RoomName = obj.RoomName
		g.RoomType = obj.RoomType

		switch {
		case len(obj.RoomNumbers) > 0:
			g.RoomNumbers = obj.RoomNumbers
		case len(obj.Rooms) > 0:
			g.RoomNumbers = obj.Rooms
		default:
			g.RoomNumbers = obj.RoomNumber
		}

		return nil
	}

	var triple []json.RawMessage
	if err := json.Unmarshal(trimmed, &triple); err != nil {
		return fmt.Errorf("room group must be [room_name, room_type, [room_numbers]]: %w", err)
	}

	if len(triple) != 3 {
		return fmt.Errorf("room group must have 3 elements, got %d", len(triple))
	}

	if err := json.Unmarshal(triple[0], &g.RoomName); err != nil {
		return fmt.Errorf("invalid room name: %w", err)
	}

	if err := json.Unmarshal(triple[1], &g.RoomType); err != nil {
		return fmt.Errorf("invalid room type: %w", err)
	}

	var labels model.Labels
	if err := labels.UnmarshalJSON(triple[2]); err != nil {
		return err
	}

	g.RoomNumbers = labels

	return nil
}

// Allocation is the grouped room assignment of a booking. Rows written before
// grouping existed hold a flat label array; those load as a single group with
// empty name and type.
type Allocation []RoomGroup

func (a *Allocation) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if model.IsEmptyJSON(trimmed) {
		*a = nil

		return nil
	}

	// JSON-string encoded column value.
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return fmt.Errorf("invalid allocation: %w", err)
		}

		return a.UnmarshalJSON([]byte(inner))
	}

	if trimmed[0] != '[' {
		return fmt.Errorf("allocation must be an array")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return fmt.Errorf("invalid allocation: %w", err)
	}

	if isFlat(items) {
		var labels model.Labels
		if err := labels.UnmarshalJSON(trimmed); err != nil {
			return err
		}

		*a = Allocation{{RoomNumbers: labels}}

		return nil
	}

	groups := make(Allocation, 0, len(items))

	for _, item := range items {
		var group RoomGroup
		if err := group.UnmarshalJSON(item); err != nil {
			return err
		}

		groups = append(groups, group)
	}

	*a = groups

	return nil
}

func isFlat(items []json.RawMessage) bool {
	for _, item := range items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
			return false
		}
	}

	return len(items) > 0
}

func (a Allocation) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal([]RoomGroup(a))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal allocation: %w", err)
	}

	return data, nil
}

func (a *Allocation) Scan(src any) error {
	data, err := model.ColumnBytes(src)
	if err != nil {
		return err
	}

	return a.UnmarshalJSON(data)
}

// Labels flattens every group into one label list.
func (a Allocation) Labels() []string {
	labels := []string{}

	for _, group := range a {
		labels = append(labels, group.RoomNumbers...)
	}

	return labels
}

// RoomCount is the number of labels held.
func (a Allocation) RoomCount() int {
	count := 0

	for _, group := range a {
		count += len(group.RoomNumbers)
	}

	return count
}

// Holds reports whether the allocation holds label in the given category.
// Groups without a category (flat legacy rows) match any category.
func (a Allocation) Holds(roomName, roomType, label string) bool {
	for _, group := range a {
		if !group.matches(roomName, roomType) {
			continue
		}

		if slices.Contains(group.RoomNumbers, label) {
			return true
		}
	}

	return false
}

func (g RoomGroup) matches(roomName, roomType string) bool {
	if g.RoomName == "" && g.RoomType == "" {
		return true
	}

	return g.RoomName == roomName && g.RoomType == roomType
}

// Release removes the selected labels and drops groups left empty. The receiver is not modified.
func (a Allocation) Release(selections []RoomGroup) Allocation {
	trimmed := make(Allocation, 0, len(a))

	for _, group := range a {
		remaining := make([]string, 0, len(group.RoomNumbers))

		for _, label := range group.RoomNumbers {
			if !releases(selections, group, label) {
				remaining = append(remaining, label)
			}
		}

		if len(remaining) == 0 {
			continue
		}

		trimmed = append(trimmed, RoomGroup{RoomName: group.RoomName, RoomType: group.RoomType, RoomNumbers: remaining})
	}

	return trimmed
}

func releases(selections []RoomGroup, group RoomGroup, label string) bool {
	for _, selection := range selections {
		if group.matches(selection.RoomName, selection.RoomType) && slices.Contains(selection.RoomNumbers, label) {
			return true
		}
	}

	return false
}
