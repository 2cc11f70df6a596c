package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/cancel/model"
	gDto "lodgehub/shared/dto"
	gRepo "lodgehub/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Cancel interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Cancel) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Cancel, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type PartialCancel interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.PartialCancel) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PartialCancel, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type cancelRepository struct {
	gRepo.Repository[model.Cancel]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cancel {
	return &cancelRepository{
		Repository: gRepo.NewRepository[model.Cancel](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type partialCancelRepository struct {
	gRepo.Repository[model.PartialCancel]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPartial(db *postgres.Connection, otel otel.Otel) PartialCancel {
	return &partialCancelRepository{
		Repository: gRepo.NewRepository[model.PartialCancel](model.PartialEntityName, model.PartialTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
