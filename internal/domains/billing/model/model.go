package model

import "lodgehub/shared/model"

const (
	TableName  = "billings"
	EntityName = "billing"

	FieldID        = "id"
	FieldLodgeID   = "lodge_id"
	FieldBookingID = "booking_id"

	CacheGetBillings = "billing:gets"
)

// Billing is the settlement record written when a booking is checked out.
type Billing struct {
	ID            string        `db:"id"`
	LodgeID       int64         `db:"lodge_id"`
	BookingID     int64         `db:"booking_id"`
	UserID        string        `db:"user_id"`
	Reason        model.RawJSON `db:"reason"`
	Total         float64       `db:"total"`
	PaymentMethod string        `db:"payment_method"`
	model.Metadata
}
