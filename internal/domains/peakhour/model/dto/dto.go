package dto

import (
	"lodgehub/internal/domains/peakhour/model"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
)

type CreatePeakHourRequest struct {
	LodgeID int64   `json:"lodge_id" validate:"required,gt=0"`
	Date    string  `json:"date"     validate:"required,datetime=2006-01-02"`
	Reason  string  `json:"reason"   validate:"omitempty,max=255"`
	Rent    float64 `json:"rent"     validate:"gte=0"`
}

func (c *CreatePeakHourRequest) ToModel(user string) (model.PeakHour, error) {
	date, err := timezone.Parse(constant.DayFormat, c.Date)
	if err != nil {
		return model.PeakHour{}, err //nolint:wrapcheck
	}

	return model.PeakHour{
		ID:      uuid.NewString(),
		LodgeID: c.LodgeID,
		UserID:  user,
		Date:    date,
		Reason:  c.Reason,
		Rent:    c.Rent,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type PeakHourResponse struct {
	ID      string  `json:"id"`
	LodgeID int64   `json:"lodge_id"`
	UserID  string  `json:"user_id"`
	Date    string  `json:"date"`
	Reason  string  `json:"reason"`
	Rent    float64 `json:"rent"`
	gDto.Metadata
}

func (p *PeakHourResponse) FromModel(model model.PeakHour) {
	p.ID = model.ID
	p.LodgeID = model.LodgeID
	p.UserID = model.UserID
	p.Date = model.Date.Format(constant.DayFormat)
	p.Reason = model.Reason
	p.Rent = model.Rent
	p.Metadata.FromModel(model.Metadata)
}

type GetPeakHoursResponse struct {
	PeakHours []PeakHourResponse `json:"peak_hours"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetPeakHoursResponse) FromModels(models []model.PeakHour, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.PeakHours = make([]PeakHourResponse, len(models))
	for i, mod := range models {
		g.PeakHours[i].FromModel(mod)
	}
}
