package dto

import (
	"lodgehub/internal/domains/ledger/model"
	"lodgehub/shared"
	gDto "lodgehub/shared/dto"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
)

// Posting is a money movement requested by the booking ledger.
type Posting struct {
	LodgeID     int64
	BookingID   int64
	UserID      string
	Type        string
	Amount      float64
	Description string
}

func (p *Posting) ToModel() model.Entry {
	bookingID := p.BookingID

	return model.Entry{
		ID:          uuid.NewString(),
		LodgeID:     p.LodgeID,
		UserID:      p.UserID,
		BookingID:   &bookingID,
		Type:        p.Type,
		Amount:      p.Amount,
		Description: p.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  p.UserID,
			ModifiedBy: p.UserID,
		},
	}
}

type EntryResponse struct {
	ID          string  `json:"id"`
	LodgeID     int64   `json:"lodge_id"`
	UserID      string  `json:"user_id"`
	BookingID   *int64  `json:"booking_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	gDto.Metadata
}

func (e *EntryResponse) FromModel(model model.Entry) {
	e.ID = model.ID
	e.LodgeID = model.LodgeID
	e.UserID = model.UserID
	e.BookingID = model.BookingID
	e.Type = model.Type
	e.Amount = model.Amount
	e.Description = model.Description
	e.Metadata.FromModel(model.Metadata)
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetEntriesResponse) FromModels(models []model.Entry, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		g.Entries[i].FromModel(mod)
	}
}

type FinanceSummaryResponse struct {
	LodgeID      int64   `json:"lodge_id"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}
