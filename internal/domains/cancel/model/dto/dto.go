package dto

import (
	"errors"
	"time"

	bookingModel "lodgehub/internal/domains/booking/model"
	"lodgehub/internal/domains/cancel/model"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
)

var ErrRefundExceedsPaid = errors.New("refund cannot exceed amount_paid")

type CreateCancelRequest struct {
	BookingID    int64   `json:"booking_id"    validate:"required,gt=0"`
	LodgeID      int64   `json:"lodge_id"      validate:"required,gt=0"`
	Reason       string  `json:"reason"        validate:"omitempty,max=255"`
	AmountPaid   float64 `json:"amount_paid"   validate:"gte=0"`
	CancelCharge float64 `json:"cancel_charge" validate:"gte=0"`
	Refund       float64 `json:"refund"        validate:"gte=0"`
}

// Check rejects a refund larger than what the guest paid.
func (c *CreateCancelRequest) Check() error {
	return checkRefund(c.AmountPaid, c.Refund)
}

func (c *CreateCancelRequest) ToModel(user string) model.Cancel {
	now := timezone.Now()

	return model.Cancel{
		ID:           uuid.NewString(),
		LodgeID:      c.LodgeID,
		BookingID:    c.BookingID,
		UserID:       user,
		Reason:       c.Reason,
		AmountPaid:   c.AmountPaid,
		CancelCharge: c.CancelCharge,
		Refund:       c.Refund,
		Metadata:     metadata(now, user),
	}
}

type PartialCancelRequest struct {
	BookingID    int64                    `json:"booking_id"    validate:"required,gt=0"`
	LodgeID      int64                    `json:"lodge_id"      validate:"required,gt=0"`
	RoomNumbers  []bookingModel.RoomGroup `json:"room_numbers"  validate:"required,min=1" swaggertype:"array,object"`
	Reason       string                   `json:"reason"        validate:"omitempty,max=255"`
	AmountPaid   float64                  `json:"amount_paid"   validate:"gte=0"`
	CancelCharge float64                  `json:"cancel_charge" validate:"gte=0"`
	Refund       float64                  `json:"refund"        validate:"gte=0"`
}

func (p *PartialCancelRequest) Check() error {
	return checkRefund(p.AmountPaid, p.Refund)
}

func (p *PartialCancelRequest) ToModel(user string, plan model.Plan) model.PartialCancel {
	now := timezone.Now()

	return model.PartialCancel{
		ID:               uuid.NewString(),
		LodgeID:          p.LodgeID,
		BookingID:        p.BookingID,
		UserID:           user,
		RoomNumber:       plan.Releases,
		Reason:           p.Reason,
		AmountPaid:       p.AmountPaid,
		CancelCharge:     p.CancelCharge,
		Refund:           p.Refund,
		TotalCancelValue: plan.TotalCancelValue,
		Metadata:         metadata(now, user),
	}
}

// NoteEntry is appended to the booking notes for every partial cancellation.
func (p *PartialCancelRequest) NoteEntry(user string, plan model.Plan) map[string]any {
	return map[string]any{
		"cancelled_at":       timezone.Format(timezone.Now(), constant.DateFormat),
		"user_id":            user,
		"reason":             p.Reason,
		"rooms":              plan.Releases,
		"amount_paid":        p.AmountPaid,
		"cancel_charge":      p.CancelCharge,
		"refund":             p.Refund,
		"total_cancel_value": plan.TotalCancelValue,
	}
}

func checkRefund(amountPaid, refund float64) error {
	if amountPaid > 0 && refund > amountPaid {
		return ErrRefundExceedsPaid
	}

	return nil
}

func metadata(now time.Time, user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

type CalculateCancelChargeRequest struct {
	BookingID   int64   `json:"booking_id"    validate:"omitempty,gt=0"`
	LodgeID     int64   `json:"lodge_id"      validate:"required,gt=0"`
	BaseAmount  float64 `json:"base_amount"   validate:"gte=0"`
	CheckInDate string  `json:"check_in_date" validate:"required_without=BookingID"`
}

type CancelChargeResponse struct {
	BookingID    int64   `json:"booking_id"`
	LodgeID      int64   `json:"lodge_id"`
	CheckInDate  string  `json:"check_in_date"`
	IsPeak       bool    `json:"is_peak"`
	Percentage   float64 `json:"percentage"`
	BaseAmount   float64 `json:"base_amount"`
	CancelCharge float64 `json:"cancel_charge"`
	Refund       float64 `json:"refund"`
}

type CancelResponse struct {
	ID           string  `json:"id"`
	LodgeID      int64   `json:"lodge_id"`
	BookingID    int64   `json:"booking_id"`
	UserID       string  `json:"user_id"`
	Reason       string  `json:"reason"`
	AmountPaid   float64 `json:"amount_paid"`
	CancelCharge float64 `json:"cancel_charge"`
	Refund       float64 `json:"refund"`
	gDto.Metadata
}

func (r *CancelResponse) FromModel(m model.Cancel) {
	r.ID = m.ID
	r.LodgeID = m.LodgeID
	r.BookingID = m.BookingID
	r.UserID = m.UserID
	r.Reason = m.Reason
	r.AmountPaid = m.AmountPaid
	r.CancelCharge = m.CancelCharge
	r.Refund = m.Refund
	r.Metadata.FromModel(m.Metadata)
}

type PartialCancelResponse struct {
	ID               string                  `json:"id"`
	LodgeID          int64                   `json:"lodge_id"`
	BookingID        int64                   `json:"booking_id"`
	UserID           string                  `json:"user_id"`
	RoomNumber       model.Releases          `json:"room_number"`
	Reason           string                  `json:"reason"`
	AmountPaid       float64                 `json:"amount_paid"`
	CancelCharge     float64                 `json:"cancel_charge"`
	Refund           float64                 `json:"refund"`
	TotalCancelValue float64                 `json:"total_cancel_value"`
	BookedRoom       bookingModel.Allocation `json:"booked_room,omitempty" swaggertype:"array,object"`
	gDto.Metadata
}

func (r *PartialCancelResponse) FromModel(m model.PartialCancel) {
	r.ID = m.ID
	r.LodgeID = m.LodgeID
	r.BookingID = m.BookingID
	r.UserID = m.UserID
	r.RoomNumber = m.RoomNumber
	r.Reason = m.Reason
	r.AmountPaid = m.AmountPaid
	r.CancelCharge = m.CancelCharge
	r.Refund = m.Refund
	r.TotalCancelValue = m.TotalCancelValue
	r.Metadata.FromModel(m.Metadata)
}

type GetCancelsResponse struct {
	Cancels   []CancelResponse `json:"cancels"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetCancelsResponse) FromModels(models []model.Cancel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cancels = make([]CancelResponse, len(models))
	for i, m := range models {
		r.Cancels[i].FromModel(m)
	}
}

type GetPartialCancelsResponse struct {
	PartialCancels []PartialCancelResponse `json:"partial_cancels"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetPartialCancelsResponse) FromModels(models []model.PartialCancel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.PartialCancels = make([]PartialCancelResponse, len(models))
	for i, m := range models {
		r.PartialCancels[i].FromModel(m)
	}
}
