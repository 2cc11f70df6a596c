package model

import (
	"errors"
	"fmt"

	bookingModel "lodgehub/internal/domains/booking/model"
	"lodgehub/shared/money"

	"github.com/shopspring/decimal"
)

var (
	ErrNothingToRelease = errors.New("at least one room number must be selected")
	ErrReleaseAll       = errors.New("cannot release every room of a booking, cancel the booking instead")
)

// Plan is the outcome of releasing labels from a booking's allocation.
type Plan struct {
	Remaining        bookingModel.Allocation
	Releases         Releases
	TotalCancelValue float64
}

// PlanRelease checks that every selected label is held by the booking, trims
// the allocation and values the released rooms from the pricing snapshot.
// Categories missing from the snapshot are valued at zero.
func PlanRelease(held bookingModel.Allocation, amounts bookingModel.RoomAmounts, selections []bookingModel.RoomGroup) (Plan, error) {
	seen := make(map[string]struct{})
	releases := make(Releases, 0, len(selections))
	values := make([]decimal.Decimal, 0, len(selections))

	for _, selection := range selections {
		if len(selection.RoomNumbers) == 0 {
			continue
		}

		for _, label := range selection.RoomNumbers {
			key := selection.RoomName + "\x00" + selection.RoomType + "\x00" + label
			if _, ok := seen[key]; ok {
				return Plan{}, fmt.Errorf("room %s of %s (%s) is selected more than once", label, selection.RoomName, selection.RoomType)
			}

			seen[key] = struct{}{}

			if !held.Holds(selection.RoomName, selection.RoomType, label) {
				return Plan{}, fmt.Errorf("room %s of %s (%s) is not part of this booking", label, selection.RoomName, selection.RoomType)
			}
		}

		price := decimal.Zero
		if snapshot, ok := amounts.Find(selection.RoomName, selection.RoomType); ok {
			price = money.FromFloat(snapshot.BaseAmountPerRoom)
		}

		value := money.Round2(price.Mul(decimal.NewFromInt(int64(len(selection.RoomNumbers)))))
		values = append(values, value)

		releases = append(releases, Release{
			RoomName:     selection.RoomName,
			RoomType:     selection.RoomType,
			RoomNumbers:  selection.RoomNumbers,
			PricePerRoom: money.ToFloat(price),
			Count:        len(selection.RoomNumbers),
			Value:        money.ToFloat(value),
		})
	}

	if len(releases) == 0 {
		return Plan{}, ErrNothingToRelease
	}

	remaining := held.Release(selections)
	// A BOOKED row left without rooms would hold nothing yet stay BOOKED, so
	// releasing every room has to go through the full cancel.
	if len(remaining) == 0 {
		return Plan{}, ErrReleaseAll
	}

	return Plan{
		Remaining:        remaining,
		Releases:         releases,
		TotalCancelValue: money.ToFloat(money.Sum(values...)),
	}, nil
}
