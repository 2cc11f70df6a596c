package model

import (
	"fmt"

	"lodgehub/shared/model"
)

const (
	TableName  = "default_values"
	EntityName = "default_value"

	FieldID      = "id"
	FieldLodgeID = "lodge_id"
	FieldType    = "type"
	FieldReason  = "reason"
	FieldAmount  = "amount"
)

// Rent tariffs.
const (
	TypeDefault   = "Default"
	TypePeakHours = "Peak Hours"
)

// Cancellation percentage tariffs.
const (
	TypeCancelDefault = "DEFAULT"
	TypeCancelPeak    = "PEAK_HOUR"
)

const (
	ReasonCancel = "CANCEL"
	ReasonGST    = "GST"
)

// DefaultValue is one cell of the lodge price table keyed by (reason, type).
type DefaultValue struct {
	ID      string  `db:"id"`
	LodgeID int64   `db:"lodge_id"`
	UserID  string  `db:"user_id"`
	Type    string  `db:"type"`
	Reason  string  `db:"reason"`
	Amount  float64 `db:"amount"`
	model.Metadata
}

// RentReason is the price table key for the nightly rent of a room category.
func RentReason(roomName, roomType string) string {
	return fmt.Sprintf("Rent (%s (%s))", roomName, roomType)
}

// PriceTable indexes a lodge's default values by reason and type.
type PriceTable map[string]float64

func PriceKey(reason, typ string) string {
	return reason + "\x00" + typ
}

func NewPriceTable(values []DefaultValue) PriceTable {
	table := make(PriceTable, len(values))

	for _, value := range values {
		table[PriceKey(value.Reason, value.Type)] = value.Amount
	}

	return table
}

func (p PriceTable) Lookup(reason, typ string) (float64, bool) {
	amount, ok := p[PriceKey(reason, typ)]

	return amount, ok
}
