package dto

import (
	"time"

	"lodgehub/internal/domains/billing/model"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
)

type CreateBillingRequest struct {
	LodgeID        int64          `json:"lodge_id"       validate:"required,gt=0"`
	BookingID      int64          `json:"booking_id"     validate:"required,gt=0"`
	Reason         gModel.RawJSON `json:"reason"         swaggertype:"object"`
	Total          float64        `json:"total"`
	BalancePayment float64        `json:"balancePayment"`
	PaymentMethod  string         `json:"payment_method" validate:"omitempty,max=50"`
	CurrentTime    string         `json:"current_time"`
}

// Now is the settlement instant: current_time when given, else the wall clock.
func (c *CreateBillingRequest) Now() (time.Time, error) {
	if c.CurrentTime == constant.Empty {
		return timezone.Now(), nil
	}

	return timezone.ParseDateTime(c.CurrentTime)
}

// HasCharges is false when there is nothing to record on a billing row.
func (c *CreateBillingRequest) HasCharges() bool {
	return !c.Reason.IsEmpty() || c.Total != 0
}

func (c *CreateBillingRequest) ToModel(user string) model.Billing {
	now := timezone.Now()

	return model.Billing{
		ID:            uuid.NewString(),
		LodgeID:       c.LodgeID,
		BookingID:     c.BookingID,
		UserID:        user,
		Reason:        c.Reason,
		Total:         c.Total,
		PaymentMethod: c.PaymentMethod,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BillingResponse struct {
	ID            string         `json:"id"`
	LodgeID       int64          `json:"lodge_id"`
	BookingID     int64          `json:"booking_id"`
	UserID        string         `json:"user_id"`
	Reason        gModel.RawJSON `json:"reason"         swaggertype:"object"`
	Total         float64        `json:"total"`
	PaymentMethod string         `json:"payment_method"`
	gDto.Metadata
}

func (r *BillingResponse) FromModel(m model.Billing) {
	r.ID = m.ID
	r.LodgeID = m.LodgeID
	r.BookingID = m.BookingID
	r.UserID = m.UserID
	r.Reason = m.Reason
	r.Total = m.Total
	r.PaymentMethod = m.PaymentMethod
	r.Metadata.FromModel(m.Metadata)
}

// BillingResult reports the settlement together with both checkout instants.
type BillingResult struct {
	LodgeID        int64            `json:"lodge_id"`
	BookingID      int64            `json:"booking_id"`
	Status         string           `json:"status"`
	EarlyCheckout  bool             `json:"early_checkout"`
	OldCheckOut    *string          `json:"old_check_out"`
	NewCheckOut    string           `json:"new_check_out"`
	BalancePayment float64          `json:"balancePayment"`
	Billing        *BillingResponse `json:"billing"`
}

type GetBillingsResponse struct {
	Billings  []BillingResponse `json:"billings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBillingsResponse) FromModels(models []model.Billing, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Billings = make([]BillingResponse, len(models))
	for i, m := range models {
		r.Billings[i].FromModel(m)
	}
}
