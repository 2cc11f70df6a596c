package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/ledger/model"
	"lodgehub/internal/domains/ledger/model/dto"
	"lodgehub/internal/domains/ledger/repository"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/money"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Ledger records income and expense entries. Postings always join the caller's transaction.
type Ledger interface {
	PostIncomeTx(ctx context.Context, tx *sqlx.Tx, posting dto.Posting) error
	PostExpenseTx(ctx context.Context, tx *sqlx.Tx, posting dto.Posting) error
	GetIncomes(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntriesResponse, error)
	GetExpenses(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntriesResponse, error)
	FinanceSummary(ctx context.Context, lodgeID int64) (dto.FinanceSummaryResponse, error)
}

type serviceImpl struct {
	income  repository.Income
	expense repository.Expense
	otel    otel.Otel
}

func New(income repository.Income, expense repository.Expense, otel otel.Otel) Ledger {
	return &serviceImpl{
		income:  income,
		expense: expense,
		otel:    otel,
	}
}

func (s *serviceImpl) PostIncomeTx(ctx context.Context, tx *sqlx.Tx, posting dto.Posting) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostIncomeTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.post(ctx, tx, s.income, posting)
}

func (s *serviceImpl) PostExpenseTx(ctx context.Context, tx *sqlx.Tx, posting dto.Posting) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostExpenseTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.post(ctx, tx, s.expense, posting)
}

func (s *serviceImpl) post(ctx context.Context, tx *sqlx.Tx, repo repository.Entry, posting dto.Posting) error {
	if posting.Amount <= 0 {
		return failure.BadRequestFromString("ledger amount must be positive") // nolint:wrapcheck
	}

	posting.Amount = money.ToFloat(money.FromFloat(posting.Amount))

	if err := repo.InsertTx(ctx, tx, posting.ToModel()); err != nil {
		log.Error().Err(err).Str("type", posting.Type).Int64("booking_id", posting.BookingID).Msg("failed to post ledger entry")

		return fmt.Errorf("failed to post ledger entry: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetIncomes(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetIncomes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, s.income, req, filter)
}

func (s *serviceImpl) GetExpenses(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetExpenses")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, s.expense, req, filter)
}

func (s *serviceImpl) list(ctx context.Context, repo repository.Entry, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntriesResponse, err error) {
	total, err := repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count ledger entries")

		return res, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	entries, err := repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ledger entries")

		return res, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	res.FromModels(entries, total, req.Limit)

	return res, nil
}

// FinanceSummary derives the lodge balance from the income and expense sinks.
func (s *serviceImpl) FinanceSummary(ctx context.Context, lodgeID int64) (res dto.FinanceSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FinanceSummary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	income, err := s.income.Sum(ctx, model.FieldAmount, shared.FilterByLodge(lodgeID, model.IncomeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to sum incomes")

		return res, fmt.Errorf("failed to sum incomes: %w", err)
	}

	expense, err := s.expense.Sum(ctx, model.FieldAmount, shared.FilterByLodge(lodgeID, model.ExpenseTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to sum expenses")

		return res, fmt.Errorf("failed to sum expenses: %w", err)
	}

	totalIncome := money.FromFloat(income)
	totalExpense := money.FromFloat(expense)

	res = dto.FinanceSummaryResponse{
		LodgeID:      lodgeID,
		TotalIncome:  money.ToFloat(totalIncome),
		TotalExpense: money.ToFloat(totalExpense),
		Balance:      money.ToFloat(totalIncome.Sub(totalExpense)),
	}

	return res, nil
}
