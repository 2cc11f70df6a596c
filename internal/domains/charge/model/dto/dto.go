package dto

import (
	"cmp"
	"slices"

	"lodgehub/internal/domains/charge/model"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/money"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateChargeRequest struct {
	BookingID int64   `json:"booking_id" validate:"required,gt=0"`
	LodgeID   int64   `json:"lodge_id"   validate:"required,gt=0"`
	Reason    string  `json:"reason"     validate:"required,max=255"`
	Amount    float64 `json:"amount"     validate:"gt=0"`
}

func (c *CreateChargeRequest) ToModel(user string) model.Charge {
	now := timezone.Now()

	return model.Charge{
		ID:        uuid.NewString(),
		LodgeID:   c.LodgeID,
		BookingID: c.BookingID,
		UserID:    user,
		Reason:    c.Reason,
		Amount:    money.ToFloat(money.FromFloat(c.Amount)),
		Status:    model.StatusIncomplete,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateChargeRequest struct {
	Reason *string  `json:"reason" validate:"omitempty,max=255"`
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
	Status *string  `json:"status" validate:"omitempty,oneof=INCOMPLETE COMPLETE"`
}

func (u *UpdateChargeRequest) Fields(user string) map[string]any {
	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if u.Reason != nil {
		fields[model.FieldReason] = *u.Reason
	}

	if u.Amount != nil {
		fields[model.FieldAmount] = money.ToFloat(money.FromFloat(*u.Amount))
	}

	if u.Status != nil {
		fields[model.FieldStatus] = *u.Status
	}

	return fields
}

type ChargeResponse struct {
	ID        string  `json:"id"`
	LodgeID   int64   `json:"lodge_id"`
	BookingID int64   `json:"booking_id"`
	UserID    string  `json:"user_id"`
	Reason    string  `json:"reason"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	gDto.Metadata
}

func (r *ChargeResponse) FromModel(m model.Charge) {
	r.ID = m.ID
	r.LodgeID = m.LodgeID
	r.BookingID = m.BookingID
	r.UserID = m.UserID
	r.Reason = m.Reason
	r.Amount = m.Amount
	r.Status = m.Status
	r.Metadata.FromModel(m.Metadata)
}

type GetChargesResponse struct {
	Charges   []ChargeResponse `json:"charges"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetChargesResponse) FromModels(models []model.Charge, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Charges = make([]ChargeResponse, len(models))
	for i, m := range models {
		r.Charges[i].FromModel(m)
	}
}

type ChargeItem struct {
	Reason string  `json:"reason"`
	Amount float64 `json:"amount"`
}

type BookingCharges struct {
	BookingID int64        `json:"booking_id"`
	Charges   []ChargeItem `json:"charges"`
	Total     float64      `json:"total"`
}

// GroupByBooking buckets charges per booking, ordered by booking id.
func GroupByBooking(models []model.Charge) []BookingCharges {
	index := make(map[int64]int)
	totals := make(map[int64]decimal.Decimal)
	grouped := []BookingCharges{}

	for _, m := range models {
		i, ok := index[m.BookingID]
		if !ok {
			i = len(grouped)
			index[m.BookingID] = i
			grouped = append(grouped, BookingCharges{BookingID: m.BookingID})
		}

		grouped[i].Charges = append(grouped[i].Charges, ChargeItem{Reason: m.Reason, Amount: m.Amount})
		totals[m.BookingID] = money.Sum(totals[m.BookingID], money.FromFloat(m.Amount))
	}

	for i := range grouped {
		grouped[i].Total = money.ToFloat(totals[grouped[i].BookingID])
	}

	slices.SortStableFunc(grouped, func(a, b BookingCharges) int {
		return cmp.Compare(a.BookingID, b.BookingID)
	})

	return grouped
}

type BookingStatusResponse struct {
	BookingID int64  `json:"booking_id"`
	LodgeID   int64  `json:"lodge_id"`
	Exists    bool   `json:"exists"`
	IsBooked  bool   `json:"is_booked"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message"`
}
