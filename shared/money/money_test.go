package money_test

import (
	"lodgehub/shared/money"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "already rounded", value: "1180", expected: "1180"},
		{name: "round half up", value: "10.005", expected: "10.01"},
		{name: "round down", value: "10.004", expected: "10"},
		{name: "negative", value: "-2.555", expected: "-2.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := money.Round2(decimal.RequireFromString(tt.value))

			assert.True(t, decimal.RequireFromString(tt.expected).Equal(result), "got %s", result)
		})
	}
}

func TestPercent(t *testing.T) {
	result := money.Percent(decimal.NewFromInt(1000), decimal.NewFromInt(18))
	assert.Equal(t, 180.0, money.ToFloat(result))

	result = money.Percent(decimal.RequireFromString("333.33"), decimal.NewFromInt(18))
	assert.Equal(t, 60.0, money.ToFloat(result))
}

func TestSum(t *testing.T) {
	result := money.Sum(money.FromFloat(0.1), money.FromFloat(0.2), money.FromFloat(0.3))

	assert.Equal(t, 0.6, money.ToFloat(result))
}
