package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/billing/model"
	gDto "lodgehub/shared/dto"
	gRepo "lodgehub/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Billing interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Billing) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Billing, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Billing]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Billing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Billing](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
