package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodgehub/infras/otel/mocks"
	ledgerMocks "lodgehub/internal/domains/ledger/mocks"
	"lodgehub/internal/domains/ledger/model"
	"lodgehub/internal/domains/ledger/model/dto"
	"lodgehub/internal/domains/ledger/service"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
)

func TestLedgerService_Post(t *testing.T) {
	ctrl := gomock.NewController(t)

	income := ledgerMocks.NewMockIncome(ctrl)
	expense := ledgerMocks.NewMockExpense(ctrl)
	svc := service.New(income, expense, mocks.NewOtel())

	t.Run("income carries the booking", func(t *testing.T) {
		income.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, entry model.Entry) error {
			assert.Equal(t, model.TypeBooking, entry.Type)
			assert.Equal(t, int64(12), *entry.BookingID)
			assert.InDelta(t, 1000.13, entry.Amount, 0.0001)
			assert.NotEmpty(t, entry.ID)

			return nil
		})

		err := svc.PostIncomeTx(context.Background(), nil, dto.Posting{LodgeID: 6, BookingID: 12, Type: model.TypeBooking, Amount: 1000.129})

		assert.NoError(t, err)
	})

	t.Run("expense failure is returned", func(t *testing.T) {
		expense.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		err := svc.PostExpenseTx(context.Background(), nil, dto.Posting{LodgeID: 6, BookingID: 12, Type: model.TypeCancel, Amount: 50})

		assert.Error(t, err)
	})

	t.Run("non positive amount", func(t *testing.T) {
		err := svc.PostExpenseTx(context.Background(), nil, dto.Posting{LodgeID: 6, Type: model.TypeCancel})

		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestLedgerService_FinanceSummary(t *testing.T) {
	ctrl := gomock.NewController(t)

	income := ledgerMocks.NewMockIncome(ctrl)
	expense := ledgerMocks.NewMockExpense(ctrl)
	svc := service.New(income, expense, mocks.NewOtel())

	income.EXPECT().Sum(gomock.Any(), model.FieldAmount, gomock.Any()).Return(2500.10, nil)
	expense.EXPECT().Sum(gomock.Any(), model.FieldAmount, gomock.Any()).Return(300.05, nil)

	res, err := svc.FinanceSummary(context.Background(), 6)

	require.NoError(t, err)
	assert.InDelta(t, 2500.10, res.TotalIncome, 0.001)
	assert.InDelta(t, 300.05, res.TotalExpense, 0.001)
	assert.InDelta(t, 2200.05, res.Balance, 0.001)
}

func TestLedgerService_GetIncomes(t *testing.T) {
	ctrl := gomock.NewController(t)

	income := ledgerMocks.NewMockIncome(ctrl)
	svc := service.New(income, ledgerMocks.NewMockExpense(ctrl), mocks.NewOtel())

	income.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	income.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Entry{{ID: "i1", LodgeID: 6, Amount: 10}}, nil)

	res, err := svc.GetIncomes(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Entries, 1)
}
