package model

import (
	"time"

	"lodgehub/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldBookingID     = "booking_id"
	FieldLodgeID       = "lodge_id"
	FieldUserID        = "user_id"
	FieldName          = "name"
	FieldPhone         = "phone"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldOldCheckOut   = "old_check_out"
	FieldBookedRoom    = "booked_room"
	FieldRoomAmount    = "room_amount"
	FieldNumberOfGuest = "numberofguest"
	FieldDeposit       = "deposite"
	FieldAadharNumber  = "aadhar_number"
	FieldIDProof       = "id_proof"
	FieldNotes         = "notes"
	FieldStatus        = "status"
)

const (
	CacheGetBooking  = "booking:get"
	CacheGetBookings = "booking:gets"

	// IDProofDirectory is the object-storage prefix for identity documents.
	IDProofDirectory = "id-proofs"
)

const (
	StatusPreBooked = "PREBOOKED"
	StatusBooked    = "BOOKED"
	StatusBilled    = "BILLED"
	StatusCancel    = "CANCEL"
)

// BlockingStatuses hold their rooms for the stay window.
var BlockingStatuses = []string{StatusBooked, StatusPreBooked, StatusBilled}

// Booking is keyed by (booking_id, lodge_id); booking_id is a per-lodge sequence.
type Booking struct {
	BookingID      int64          `db:"booking_id"`
	LodgeID        int64          `db:"lodge_id"`
	UserID         string         `db:"user_id"`
	Name           string         `db:"name"`
	Phone          string         `db:"phone"`
	AlternatePhone string         `db:"alternate_phone"`
	Email          string         `db:"email"`
	Address        string         `db:"address"`
	NumberOfGuest  int            `db:"numberofguest"`
	Specification  model.RawJSON  `db:"specification"`
	CheckIn        time.Time      `db:"check_in"`
	CheckOut       time.Time      `db:"check_out"`
	OldCheckOut    *time.Time     `db:"old_check_out"`
	BookedRoom     Allocation     `db:"booked_room"`
	RoomAmount     RoomAmounts    `db:"room_amount"`
	BaseAmount     float64        `db:"baseamount"`
	GST            float64        `db:"gst"`
	Amount         float64        `db:"amount"`
	Advance        float64        `db:"advance"`
	Deposit        float64        `db:"deposite"`
	Balance        float64        `db:"balance"`
	Status         string         `db:"status"`
	AadharNumber   pq.StringArray `db:"aadhar_number"`
	IDProof        IDProofs       `db:"id_proof"`
	Notes          Notes          `db:"notes"`
	model.Metadata
}

// Blocks reports whether the booking still holds its rooms.
func (b *Booking) Blocks() bool {
	switch b.Status {
	case StatusBooked, StatusPreBooked, StatusBilled:
		return true
	default:
		return false
	}
}

// Overlaps is the half-open interval test [a.in, a.out) against [in, out).
func Overlaps(checkIn, checkOut, otherIn, otherOut time.Time) bool {
	return otherIn.Before(checkOut) && otherOut.After(checkIn)
}
