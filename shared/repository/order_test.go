package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderBy(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
		dir    string
		want   string
	}{
		{name: "column", sortBy: "check_in", dir: "ASC", want: `ORDER BY "check_in" ASC`},
		{name: "qualified column", sortBy: "bookings.booking_id", dir: "desc", want: `ORDER BY "bookings"."booking_id" DESC`},
		{name: "quote escaped", sortBy: `name"; DROP TABLE rooms; --`, dir: "ASC", want: `ORDER BY "name""; DROP TABLE rooms; --" ASC`},
		{name: "no column", sortBy: "", dir: "ASC", want: ""},
		{name: "bad direction", sortBy: "name", dir: "ASC; DELETE", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.sortBy, tt.dir))
		})
	}
}
