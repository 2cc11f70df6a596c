package model

import "lodgehub/shared/model"

const (
	TableName  = "charges"
	EntityName = "charge"

	FieldID        = "id"
	FieldLodgeID   = "lodge_id"
	FieldBookingID = "booking_id"
	FieldReason    = "reason"
	FieldAmount    = "amount"
	FieldStatus    = "status"

	CacheGetCharge  = "charge:get"
	CacheGetCharges = "charge:gets"
)

const (
	StatusIncomplete = "INCOMPLETE"
	StatusComplete   = "COMPLETE"
)

// Charge is an extra item billed against a stay, e.g. laundry or minibar.
type Charge struct {
	ID        string  `db:"id"`
	LodgeID   int64   `db:"lodge_id"`
	BookingID int64   `db:"booking_id"`
	UserID    string  `db:"user_id"`
	Reason    string  `db:"reason"`
	Amount    float64 `db:"amount"`
	Status    string  `db:"status"`
	model.Metadata
}
