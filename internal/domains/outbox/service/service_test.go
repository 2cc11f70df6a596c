package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodgehub/infras/otel/mocks"
	outboxMocks "lodgehub/internal/domains/outbox/mocks"
	"lodgehub/internal/domains/outbox/model"
	"lodgehub/internal/domains/outbox/service"
	gDto "lodgehub/shared/dto"
)

func TestOutboxService_EnqueueTx(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := outboxMocks.NewMockOutbox(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	payload := model.BookingBilled{LodgeID: 6, BookingID: 12, IDProofs: []string{"https://cdn/a.jpg"}}

	repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event model.Event) error {
		var got model.BookingBilled

		require.NoError(t, json.Unmarshal(event.Payload, &got))
		assert.Equal(t, payload, got)
		assert.Equal(t, "booking.billed", event.Topic)
		assert.Equal(t, "6:12", event.Key)
		assert.Nil(t, event.PublishedAt)

		return nil
	})

	err := svc.EnqueueTx(context.Background(), nil, "booking.billed", "6:12", payload)

	assert.NoError(t, err)
}

func TestOutboxService_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := outboxMocks.NewMockOutbox(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Event, error) {
		where, _ := filter.GetWhereClause()

		assert.Equal(t, 50, params.Limit)
		assert.Equal(t, gDto.SortDirAsc, params.SortDir)
		assert.Contains(t, where, "outbox_events.published_at IS NULL")

		return []model.Event{{ID: "e1"}}, nil
	})

	events, err := svc.Pending(context.Background(), 50)

	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestOutboxService_MarkPublished(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := outboxMocks.NewMockOutbox(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	t.Run("nothing to mark", func(t *testing.T) {
		assert.NoError(t, svc.MarkPublished(context.Background(), nil))
	})

	t.Run("update error", func(t *testing.T) {
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		assert.Error(t, svc.MarkPublished(context.Background(), []string{"e1"}))
	})
}
