package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/ledger/model"
	gDto "lodgehub/shared/dto"
	gRepo "lodgehub/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Entry interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Entry) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Sum(ctx context.Context, column string, filter gDto.FilterGroup) (float64, error)
}

type Income interface {
	Entry
}

type Expense interface {
	Entry
}

type repositoryImpl struct {
	gRepo.Repository[model.Entry]
	db   *postgres.Connection
	otel otel.Otel
}

func NewIncome(db *postgres.Connection, otel otel.Otel) Income {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.IncomeEntityName, model.IncomeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func NewExpense(db *postgres.Connection, otel otel.Otel) Expense {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Entry](model.ExpenseEntityName, model.ExpenseTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
