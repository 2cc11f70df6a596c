package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/lodge/model"
	gDto "lodgehub/shared/dto"
	gRepo "lodgehub/shared/repository"
)

type Lodge interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Lodge, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Lodge]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Lodge {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Lodge](model.EntityName, model.TableName, model.FieldLodgeID, db, otel),
		db:         db,
		otel:       otel,
	}
}
