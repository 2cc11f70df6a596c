package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/charge/model"
	gDto "lodgehub/shared/dto"
	gRepo "lodgehub/shared/repository"
)

type Charge interface {
	Insert(ctx context.Context, model model.Charge) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Charge, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Charge, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Charge]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Charge {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Charge](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
