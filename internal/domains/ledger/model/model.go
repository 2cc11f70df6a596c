package model

import (
	"lodgehub/shared/model"
)

const (
	IncomeTableName   = "incomes"
	IncomeEntityName  = "income"
	ExpenseTableName  = "expenses"
	ExpenseEntityName = "expense"

	FieldID        = "id"
	FieldLodgeID   = "lodge_id"
	FieldBookingID = "booking_id"
	FieldType      = "type"
	FieldAmount    = "amount"
)

// Entry types written by booking state changes.
const (
	TypeBooking       = "BOOKING"
	TypePreBook       = "PREBOOK"
	TypeBilling       = "BILLING"
	TypeCancel        = "CANCEL"
	TypePartialCancel = "PARTIAL_CANCEL"
	TypeExpense       = "EXPENSE"
	TypeIncome        = "INCOME"
)

// Entry is an append-only money movement. Incomes and expenses share the layout.
type Entry struct {
	ID          string  `db:"id"`
	LodgeID     int64   `db:"lodge_id"`
	UserID      string  `db:"user_id"`
	BookingID   *int64  `db:"booking_id"`
	Type        string  `db:"type"`
	Amount      float64 `db:"amount"`
	Description string  `db:"description"`
	model.Metadata
}
