package dto_test

import (
	"testing"
	"time"

	"lodgehub/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "lodge_id", Value: int64(6), Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.lodge_id = :lodge_id",
			wantArgs:  map[string]any{"lodge_id": int64(6)},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "window_end", Field: "check_in", Value: day, Operator: dto.FilterOperatorLess},
			wantWhere: "check_in < :window_end",
			wantArgs:  map[string]any{"window_end": day},
		},
		{
			name:      "in expands slice",
			filter:    dto.Filter{Field: "status", Value: []string{"BOOKED", "PREBOOK"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "BOOKED", "status_1": "PREBOOK"},
		},
		{
			name:      "in with empty slice matches nothing",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with scalar is bound",
			filter:    dto.Filter{Field: "status", Value: "BOOKED'; DROP TABLE bookings; --", Operator: dto.FilterOperatorIn},
			wantWhere: "status = :status",
			wantArgs:  map[string]any{"status": "BOOKED'; DROP TABLE bookings; --"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "published_at", Operator: dto.FilterIsNull, Table: "outbox_events"},
			wantWhere: "outbox_events.published_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "name", Value: "x", Operator: "like"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "lodge_id", Value: int64(6), Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "name", Value: "x", Operator: "unsupported"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Value: "BOOKED", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "old_check_out", Operator: dto.FilterIsNotNull},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(lodge_id = :lodge_id AND (status = :status OR old_check_out IS NOT NULL))", where)
	assert.Equal(t, map[string]any{"lodge_id": int64(6), "status": "BOOKED"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
