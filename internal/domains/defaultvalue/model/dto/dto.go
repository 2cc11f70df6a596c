package dto

import (
	"lodgehub/internal/domains/defaultvalue/model"
	"lodgehub/shared"
	gDto "lodgehub/shared/dto"
	gModel "lodgehub/shared/model"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
)

type ReasonAmount struct {
	Reason string  `json:"reason" validate:"required,max=255"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// CreateDefaultValuesRequest stores several reasons under one tariff type.
type CreateDefaultValuesRequest struct {
	LodgeID int64          `json:"lodge_id" validate:"required,gt=0"`
	Type    string         `json:"type"     validate:"required,max=50"`
	Values  []ReasonAmount `json:"values"   validate:"required,min=1,dive"`
}

func (c *CreateDefaultValuesRequest) ToModels(user string) []model.DefaultValue {
	now := timezone.Now()
	models := make([]model.DefaultValue, len(c.Values))

	for i, value := range c.Values {
		models[i] = model.DefaultValue{
			ID:      uuid.NewString(),
			LodgeID: c.LodgeID,
			UserID:  user,
			Type:    c.Type,
			Reason:  value.Reason,
			Amount:  value.Amount,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return models
}

type UpdateDefaultValueRequest struct {
	Type   string   `db:"type"   json:"type"   validate:"omitempty,max=50"`
	Reason string   `db:"reason" json:"reason" validate:"omitempty,max=255"`
	Amount *float64 `db:"amount" json:"amount" validate:"omitempty,gte=0"`
}

func (u *UpdateDefaultValueRequest) IsEmpty() bool {
	return u.Type == "" && u.Reason == "" && u.Amount == nil
}

type DefaultValueResponse struct {
	ID      string  `json:"id"`
	LodgeID int64   `json:"lodge_id"`
	UserID  string  `json:"user_id"`
	Type    string  `json:"type"`
	Reason  string  `json:"reason"`
	Amount  float64 `json:"amount"`
	gDto.Metadata
}

func (d *DefaultValueResponse) FromModel(model model.DefaultValue) {
	d.ID = model.ID
	d.LodgeID = model.LodgeID
	d.UserID = model.UserID
	d.Type = model.Type
	d.Reason = model.Reason
	d.Amount = model.Amount
	d.Metadata.FromModel(model.Metadata)
}

type GetDefaultValuesResponse struct {
	DefaultValues []DefaultValueResponse `json:"default_values"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (g *GetDefaultValuesResponse) FromModels(models []model.DefaultValue, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.DefaultValues = make([]DefaultValueResponse, len(models))
	for i, mod := range models {
		g.DefaultValues[i].FromModel(mod)
	}
}
