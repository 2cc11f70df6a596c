package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Outbox=MockOutboxService

import (
	"context"
	"encoding/json"
	"fmt"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/outbox/model"
	"lodgehub/internal/domains/outbox/repository"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Outbox interface {
	EnqueueTx(ctx context.Context, tx *sqlx.Tx, topic, key string, payload any) error
	Pending(ctx context.Context, limit int) ([]model.Event, error)
	MarkPublished(ctx context.Context, ids []string) error
}

type serviceImpl struct {
	repo repository.Outbox
	otel otel.Otel
}

func New(repo repository.Outbox, otel otel.Otel) Outbox {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) EnqueueTx(ctx context.Context, tx *sqlx.Tx, topic, key string, payload any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnqueueTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}

	event := model.Event{
		ID:        uuid.NewString(),
		Topic:     topic,
		Key:       key,
		Payload:   data,
		CreatedAt: timezone.Now(),
	}

	if err = s.repo.InsertTx(ctx, tx, event); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to enqueue event")

		return fmt.Errorf("failed to enqueue event: %w", err)
	}

	return nil
}

// Pending returns unpublished events, oldest first.
func (s *serviceImpl) Pending(ctx context.Context, limit int) (res []model.Event, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Pending")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldPublishedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
		},
	}

	res, err = s.repo.GetAll(ctx, gDto.QueryParams{Limit: limit, SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending events")

		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) MarkPublished(ctx context.Context, ids []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPublished")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(ids) == 0 {
		return nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: ids, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldPublishedAt: timezone.Now()}, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark events published")

		return fmt.Errorf("failed to mark events published: %w", err)
	}

	return nil
}
