package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/user/model"
	"lodgehub/shared"
	gDto "lodgehub/shared/dto"
	gRepo "lodgehub/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	GetByID(ctx context.Context, id string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	SetPassword(ctx context.Context, id, hash, by string, at time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func byEmail(email string) gDto.FilterGroup {
	return shared.FilterByID(model.NormalizeEmail(email), model.FieldEmail, model.TableName)
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.Get(ctx, byID(id))
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.Get(ctx, byEmail(email))
}

func (r *repositoryImpl) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.Exist(ctx, byEmail(email))
}

func (r *repositoryImpl) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.Update(ctx, map[string]any{model.FieldLastLogin: at}, byID(id))
}

func (r *repositoryImpl) SetPassword(ctx context.Context, id, hash, by string, at time.Time) error {
	return r.Update(ctx, map[string]any{
		model.FieldPassword:   hash,
		model.FieldModifiedAt: at,
		model.FieldModifiedBy: by,
	}, byID(id))
}
