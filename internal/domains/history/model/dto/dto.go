package dto

import (
	billingModel "lodgehub/internal/domains/billing/model"
	billingDto "lodgehub/internal/domains/billing/model/dto"
	bookingModel "lodgehub/internal/domains/booking/model"
	bookingDto "lodgehub/internal/domains/booking/model/dto"
	cancelModel "lodgehub/internal/domains/cancel/model"
	cancelDto "lodgehub/internal/domains/cancel/model/dto"
	"lodgehub/shared"
)

// HistoryEntry is a booking together with the records its lifecycle produced.
type HistoryEntry struct {
	Booking        *bookingDto.BookingResponse       `json:"booking"`
	Billings       []billingDto.BillingResponse      `json:"billings,omitempty"`
	Cancel         *cancelDto.CancelResponse         `json:"cancel,omitempty"`
	PartialCancels []cancelDto.PartialCancelResponse `json:"partial_cancels,omitempty"`
}

type GetHistoryResponse struct {
	Entries   []HistoryEntry `json:"entries"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

// Related holds the records attached to a page of bookings, keyed by booking id.
type Related struct {
	Billings       map[int64][]billingModel.Billing
	Cancels        map[int64]cancelModel.Cancel
	PartialCancels map[int64][]cancelModel.PartialCancel
}

func NewRelated() Related {
	return Related{
		Billings:       map[int64][]billingModel.Billing{},
		Cancels:        map[int64]cancelModel.Cancel{},
		PartialCancels: map[int64][]cancelModel.PartialCancel{},
	}
}

// FromBookings builds one entry per booking in the given order.
func (r *GetHistoryResponse) FromBookings(bookings []bookingModel.Booking, related Related, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Entries = make([]HistoryEntry, len(bookings))

	for i, booking := range bookings {
		entry := HistoryEntry{Booking: &bookingDto.BookingResponse{}}
		entry.Booking.FromModel(booking)

		for _, billing := range related.Billings[booking.BookingID] {
			var res billingDto.BillingResponse
			res.FromModel(billing)
			entry.Billings = append(entry.Billings, res)
		}

		if cancel, ok := related.Cancels[booking.BookingID]; ok {
			entry.Cancel = &cancelDto.CancelResponse{}
			entry.Cancel.FromModel(cancel)
		}

		entry.PartialCancels = partialResponses(related.PartialCancels[booking.BookingID])
		r.Entries[i] = entry
	}
}

// FromPartialCancels builds one entry per partial cancellation; the booking is
// attached when it still exists.
func (r *GetHistoryResponse) FromPartialCancels(partials []cancelModel.PartialCancel, bookings map[int64]bookingModel.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Entries = make([]HistoryEntry, len(partials))

	for i, partial := range partials {
		entry := HistoryEntry{PartialCancels: partialResponses([]cancelModel.PartialCancel{partial})}

		if booking, ok := bookings[partial.BookingID]; ok {
			entry.Booking = &bookingDto.BookingResponse{}
			entry.Booking.FromModel(booking)
		}

		r.Entries[i] = entry
	}
}

func partialResponses(partials []cancelModel.PartialCancel) []cancelDto.PartialCancelResponse {
	if len(partials) == 0 {
		return nil
	}

	res := make([]cancelDto.PartialCancelResponse, len(partials))
	for i, partial := range partials {
		res[i].FromModel(partial)
	}

	return res
}
