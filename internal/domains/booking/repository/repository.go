package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/booking/model"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/logger"
	gRepo "lodgehub/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	nextBookingIDQuery = `INSERT INTO lodge_booking_sequences (lodge_id, last_booking_id)
VALUES ($1, COALESCE((SELECT MAX(booking_id) FROM bookings WHERE lodge_id = $1), 0) + 1)
ON CONFLICT (lodge_id) DO UPDATE SET last_booking_id = lodge_booking_sequences.last_booking_id + 1
RETURNING last_booking_id`

	lockLodgeQuery = `SELECT pg_advisory_xact_lock($1)`
)

type Booking interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllTx(ctx context.Context, tx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	NextBookingIDTx(ctx context.Context, tx *sqlx.Tx, lodgeID int64) (int64, error)
	LockLodgeTx(ctx context.Context, tx *sqlx.Tx, lodgeID int64) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldBookingID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NextBookingIDTx increments the lodge's booking sequence. The first call for a
// lodge seeds the sequence from existing rows.
func (r *repositoryImpl) NextBookingIDTx(ctx context.Context, tx *sqlx.Tx, lodgeID int64) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.NextBookingIDTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, nextBookingIDQuery)

	var bookingID int64
	if err := tx.GetContext(ctx, &bookingID, nextBookingIDQuery, lodgeID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to allocate booking id: %w", err)
	}

	return bookingID, nil
}

// LockLodgeTx serialises allocation changes of one lodge until the transaction ends.
func (r *repositoryImpl) LockLodgeTx(ctx context.Context, tx *sqlx.Tx, lodgeID int64) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockLodgeTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockLodgeQuery)

	if _, err := tx.ExecContext(ctx, lockLodgeQuery, lodgeID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock lodge: %w", err)
	}

	return nil
}

// FilterOverlapping selects bookings of a lodge that hold rooms during [checkIn, checkOut).
func FilterOverlapping(lodgeID int64, checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldLodgeID, Value: lodgeID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.BlockingStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
			gDto.Filter{ArgName: "window_end", Field: model.FieldCheckIn, Value: checkOut, Operator: gDto.FilterOperatorLess, Table: model.TableName},
			gDto.Filter{ArgName: "window_start", Field: model.FieldCheckOut, Value: checkIn, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
		},
	}
}

// FilterByStatus narrows a lodge's bookings to the given statuses.
func FilterByStatus(lodgeID int64, statuses ...string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldLodgeID, Value: lodgeID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if len(statuses) > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: model.TableName})
	}

	return filter
}
