// Package model holds the tariff arithmetic shared by quoting and booking.
package model

import (
	"math"
	"time"

	"lodgehub/shared/constant"
	"lodgehub/shared/money"

	"github.com/shopspring/decimal"
)

const (
	PricingNormal   = "NORMAL"
	PricingPeak     = "PEAK_HOUR"
	PricingOverride = "OVERRIDE"
)

// NumDays counts started 24h periods between check-in and check-out.
func NumDays(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()

	return int(math.Ceil(hours / constant.HoursInDay))
}

// GroupRate is the resolved nightly rate of one requested room group.
type GroupRate struct {
	RoomName          string
	RoomType          string
	RoomNumbers       []string
	RoomCount         int
	BaseAmountPerRoom decimal.Decimal
}

type GroupQuote struct {
	GroupRate
	PerRoomTotalForStay  decimal.Decimal
	GroupTotalBaseAmount decimal.Decimal
}

type Quote struct {
	NumDays         int
	PricingType     string
	Groups          []GroupQuote
	TotalBaseAmount decimal.Decimal
	GSTRate         decimal.Decimal
	GSTAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
}

// Calculate prices every group for numDays nights and adds GST on the total.
// Amounts are rounded to cents after every step.
func Calculate(numDays int, pricingType string, groups []GroupRate, gstRate decimal.Decimal) Quote {
	quote := Quote{
		NumDays:     numDays,
		PricingType: pricingType,
		Groups:      make([]GroupQuote, len(groups)),
		GSTRate:     gstRate,
	}

	days := decimal.NewFromInt(int64(numDays))
	totals := make([]decimal.Decimal, len(groups))

	for i, group := range groups {
		perRoom := money.Round2(group.BaseAmountPerRoom.Mul(days))
		groupTotal := money.Round2(perRoom.Mul(decimal.NewFromInt(int64(group.RoomCount))))

		quote.Groups[i] = GroupQuote{
			GroupRate:            group,
			PerRoomTotalForStay:  perRoom,
			GroupTotalBaseAmount: groupTotal,
		}
		totals[i] = groupTotal
	}

	quote.TotalBaseAmount = money.Sum(totals...)
	quote.GSTAmount = money.Percent(quote.TotalBaseAmount, gstRate)
	quote.TotalAmount = money.Round2(quote.TotalBaseAmount.Add(quote.GSTAmount))

	return quote
}
