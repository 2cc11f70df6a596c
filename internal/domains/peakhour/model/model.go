package model

import (
	"time"

	"lodgehub/shared/model"
)

const (
	TableName  = "peak_hours"
	EntityName = "peak_hour"

	FieldID      = "id"
	FieldLodgeID = "lodge_id"
	FieldDate    = "date"
)

// PeakHour flags one calendar date of a lodge for peak pricing.
type PeakHour struct {
	ID      string    `db:"id"`
	LodgeID int64     `db:"lodge_id"`
	UserID  string    `db:"user_id"`
	Date    time.Time `db:"date"`
	Reason  string    `db:"reason"`
	Rent    float64   `db:"rent"`
	model.Metadata
}
