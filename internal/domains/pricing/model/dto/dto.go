package dto

import (
	bookingModel "lodgehub/internal/domains/booking/model"
	"lodgehub/internal/domains/pricing/model"
	"lodgehub/shared/money"
)

type CalculatePricingRequest struct {
	LodgeID            int64                   `json:"lodge_id"             validate:"required,gt=0"`
	CheckIn            string                  `json:"check_in"             validate:"required"`
	CheckOut           string                  `json:"check_out"            validate:"required"`
	BookedRooms        bookingModel.Allocation `json:"booked_rooms"         validate:"required,min=1"`
	OverrideBaseAmount *float64                `json:"override_base_amount" validate:"omitempty,gte=0"`
}

type RoomPriceRequest struct {
	LodgeID            int64    `json:"lodge_id"             validate:"required,gt=0"`
	RoomName           string   `json:"room_name"            validate:"required"`
	RoomType           string   `json:"room_type"            validate:"required"`
	RoomCount          int      `json:"room_count"           validate:"required,gt=0"`
	CheckIn            string   `json:"check_in"             validate:"required"`
	CheckOut           string   `json:"check_out"            validate:"required"`
	OverrideBaseAmount *float64 `json:"override_base_amount" validate:"omitempty,gte=0"`
}

// UpdatePricingRequest prices with a tariff picked by staff instead of the peak calendar.
type UpdatePricingRequest struct {
	CalculatePricingRequest
	PricingType string `json:"pricing_type" validate:"required,oneof=NORMAL PEAK_HOUR"`
}

type RoomPrice struct {
	RoomName             string   `json:"room_name"`
	RoomType             string   `json:"room_type"`
	RoomNumbers          []string `json:"room_numbers,omitempty"`
	RoomCount            int      `json:"room_count"`
	PricingType          string   `json:"pricing_type"`
	BaseAmountPerRoom    float64  `json:"base_amount_per_room"`
	PerRoomTotalForStay  float64  `json:"per_room_total_for_stay"`
	GroupTotalBaseAmount float64  `json:"group_total_base_amount"`
}

type PricingResponse struct {
	NumDays         int         `json:"num_days"`
	PricingType     string      `json:"pricing_type"`
	TotalBaseAmount float64     `json:"total_base_amount"`
	GSTRate         float64     `json:"gst_rate"`
	GSTAmount       float64     `json:"gst_amount"`
	TotalAmount     float64     `json:"total_amount"`
	Rooms           []RoomPrice `json:"rooms"`
}

func (p *PricingResponse) FromQuote(quote model.Quote) {
	p.NumDays = quote.NumDays
	p.PricingType = quote.PricingType
	p.TotalBaseAmount = money.ToFloat(quote.TotalBaseAmount)
	p.GSTRate = quote.GSTRate.InexactFloat64()
	p.GSTAmount = money.ToFloat(quote.GSTAmount)
	p.TotalAmount = money.ToFloat(quote.TotalAmount)

	p.Rooms = make([]RoomPrice, len(quote.Groups))
	for i, group := range quote.Groups {
		p.Rooms[i] = RoomPrice{
			RoomName:             group.RoomName,
			RoomType:             group.RoomType,
			RoomNumbers:          group.RoomNumbers,
			RoomCount:            group.RoomCount,
			PricingType:          quote.PricingType,
			BaseAmountPerRoom:    money.ToFloat(group.BaseAmountPerRoom),
			PerRoomTotalForStay:  money.ToFloat(group.PerRoomTotalForStay),
			GroupTotalBaseAmount: money.ToFloat(group.GroupTotalBaseAmount),
		}
	}
}
