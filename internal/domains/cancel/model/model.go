package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"lodgehub/shared/model"
)

const (
	TableName         = "cancels"
	EntityName        = "cancel"
	PartialTableName  = "partial_cancels"
	PartialEntityName = "partial_cancel"

	FieldID        = "id"
	FieldLodgeID   = "lodge_id"
	FieldBookingID = "booking_id"

	CacheGetCancels        = "cancel:gets"
	CacheGetPartialCancels = "partial_cancel:gets"

	// NotesKeyPartialCancel is the booking notes list that records every partial cancellation.
	NotesKeyPartialCancel = "partial_cancel"
)

// Cancel records a full cancellation. Rows are never updated.
type Cancel struct {
	ID           string  `db:"id"`
	LodgeID      int64   `db:"lodge_id"`
	BookingID    int64   `db:"booking_id"`
	UserID       string  `db:"user_id"`
	Reason       string  `db:"reason"`
	AmountPaid   float64 `db:"amount_paid"`
	CancelCharge float64 `db:"cancel_charge"`
	Refund       float64 `db:"refund"`
	model.Metadata
}

// PartialCancel records the labels released from a booking that stays active.
type PartialCancel struct {
	ID               string   `db:"id"`
	LodgeID          int64    `db:"lodge_id"`
	BookingID        int64    `db:"booking_id"`
	UserID           string   `db:"user_id"`
	RoomNumber       Releases `db:"room_number"`
	Reason           string   `db:"reason"`
	AmountPaid       float64  `db:"amount_paid"`
	CancelCharge     float64  `db:"cancel_charge"`
	Refund           float64  `db:"refund"`
	TotalCancelValue float64  `db:"total_cancel_value"`
	model.Metadata
}

// Release is the per-category breakdown of a partial cancellation, valued
// from the booking's pricing snapshot.
type Release struct {
	RoomName     string   `json:"room_name"`
	RoomType     string   `json:"room_type"`
	RoomNumbers  []string `json:"room_numbers"`
	PricePerRoom float64  `json:"price_per_room"`
	Count        int      `json:"count"`
	Value        float64  `json:"value"`
}

type Releases []Release

func (r Releases) Value() (driver.Value, error) {
	if r == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal([]Release(r))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal releases: %w", err)
	}

	return data, nil
}

func (r *Releases) Scan(src any) error {
	data, err := model.ColumnBytes(src)
	if err != nil {
		return err
	}

	if model.IsEmptyJSON(data) {
		*r = nil

		return nil
	}

	var releases []Release
	if err := json.Unmarshal(data, &releases); err != nil {
		return fmt.Errorf("invalid releases: %w", err)
	}

	*r = releases

	return nil
}
