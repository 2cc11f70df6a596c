package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/defaultvalue/model"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/logger"
	gRepo "lodgehub/shared/repository"

	"github.com/jmoiron/sqlx"
)

const upsertQuery = `INSERT INTO default_values (id, lodge_id, user_id, type, reason, amount, created_at, modified_at, created_by, modified_by)
VALUES (:id, :lodge_id, :user_id, :type, :reason, :amount, :created_at, :modified_at, :created_by, :modified_by)
ON CONFLICT (lodge_id, reason, type) DO UPDATE
SET amount = EXCLUDED.amount, user_id = EXCLUDED.user_id, modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by`

type DefaultValue interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DefaultValue, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DefaultValue, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	UpsertTx(ctx context.Context, tx *sqlx.Tx, value model.DefaultValue) error
}

type repositoryImpl struct {
	gRepo.Repository[model.DefaultValue]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DefaultValue {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DefaultValue](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpsertTx replaces the amount when the (lodge, reason, type) cell already exists.
func (r *repositoryImpl) UpsertTx(ctx context.Context, tx *sqlx.Tx, value model.DefaultValue) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".default_value.UpsertTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertQuery)

	if _, err := tx.NamedExecContext(ctx, upsertQuery, value); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}
