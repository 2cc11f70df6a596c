package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Billing=MockBillingService

import (
	"context"
	"fmt"
	"math"

	"lodgehub/config"
	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/internal/domains/billing/model"
	"lodgehub/internal/domains/billing/model/dto"
	"lodgehub/internal/domains/billing/repository"
	bookingModel "lodgehub/internal/domains/booking/model"
	bookingRepo "lodgehub/internal/domains/booking/repository"
	bookingService "lodgehub/internal/domains/booking/service"
	ledgerModel "lodgehub/internal/domains/ledger/model"
	ledgerDto "lodgehub/internal/domains/ledger/model/dto"
	ledgerService "lodgehub/internal/domains/ledger/service"
	outboxModel "lodgehub/internal/domains/outbox/model"
	outboxService "lodgehub/internal/domains/outbox/service"
	"lodgehub/shared"
	"lodgehub/shared/cache"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Billing interface {
	CreateBillingAndUpdateStatus(ctx context.Context, req dto.CreateBillingRequest) (dto.BillingResult, error)
	GetByLodge(ctx context.Context, lodgeID int64, params gDto.QueryParams) (dto.GetBillingsResponse, error)
}

type serviceImpl struct {
	repo        repository.Billing
	bookingRepo bookingRepo.Booking
	ledger      ledgerService.Ledger
	outbox      outboxService.Outbox
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Billing,
	bookingRepo bookingRepo.Booking,
	ledger ledgerService.Ledger,
	outbox outboxService.Outbox,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Billing {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		ledger:      ledger,
		outbox:      outbox,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// CreateBillingAndUpdateStatus settles a booking. Leaving before the scheduled
// checkout moves check_out to now and keeps the original in old_check_out; a
// stay that has not started cannot be billed. The
// booking's id proofs are handed to the cleanup worker through the outbox.
func (s *serviceImpl) CreateBillingAndUpdateStatus(ctx context.Context, req dto.CreateBillingRequest) (res dto.BillingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBillingAndUpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now, err := req.Now()
	if err != nil {
		return res, failure.BadRequest(fmt.Errorf("invalid current_time: %w", err)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByBooking(req.BookingID, req.LodgeID, bookingModel.TableName)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.BookingID == 0 {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if booking.Status != bookingModel.StatusBooked {
			return failure.BadRequestFromString(fmt.Sprintf("booking with status %s cannot be billed", booking.Status)) // nolint:wrapcheck
		}

		res = dto.BillingResult{
			LodgeID:        req.LodgeID,
			BookingID:      req.BookingID,
			Status:         bookingModel.StatusBilled,
			BalancePayment: req.BalancePayment,
		}

		fields := map[string]any{
			bookingModel.FieldStatus:  bookingModel.StatusBilled,
			bookingModel.FieldIDProof: nil,
			constant.FieldModifiedAt:  timezone.Now(),
			constant.FieldModifiedBy:  user,
		}

		checkOut := booking.CheckOut
		if now.Before(booking.CheckOut) {
			// an early checkout still has to leave check_out after check_in
			if !now.After(booking.CheckIn) {
				return failure.BadRequestFromString(fmt.Sprintf("booking %d has not started yet, cancel it instead of billing", booking.BookingID)) // nolint:wrapcheck
			}

			old := timezone.Format(booking.CheckOut, constant.DateFormat)

			res.EarlyCheckout = true
			res.OldCheckOut = &old
			checkOut = now

			fields[bookingModel.FieldOldCheckOut] = booking.CheckOut
			fields[bookingModel.FieldCheckOut] = now
		}

		res.NewCheckOut = timezone.Format(checkOut, constant.DateFormat)

		if req.HasCharges() {
			billing := req.ToModel(user)

			if err := s.repo.InsertTx(ctx, tx, billing); err != nil {
				return fmt.Errorf("failed to insert billing: %w", err)
			}

			res.Billing = &dto.BillingResponse{}
			res.Billing.FromModel(billing)
		}

		if err := s.settleBalance(ctx, tx, booking, req.BalancePayment, user); err != nil {
			return err
		}

		if err := s.bookingRepo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		if len(booking.IDProof) == 0 {
			return nil
		}

		event := outboxModel.BookingBilled{
			LodgeID:   booking.LodgeID,
			BookingID: booking.BookingID,
			IDProofs:  booking.IDProof,
		}

		if err := s.outbox.EnqueueTx(ctx, tx, s.cfg.Kafka.Topics.BookingBilled, event.Key(), event); err != nil {
			return fmt.Errorf("failed to enqueue booking billed event: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("lodge_id", req.LodgeID).Int64("booking_id", req.BookingID).Msg("failed to bill booking")

		return dto.BillingResult{}, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bookingService.InvalidateCaches(c, s.cache, req.LodgeID, req.BookingID)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(model.CacheGetBillings, req.LodgeID))
	}()

	return res, nil
}

func (s *serviceImpl) GetByLodge(ctx context.Context, lodgeID int64, params gDto.QueryParams) (res dto.GetBillingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByLodge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByLodge(lodgeID, model.TableName)

	if params.SortBy == constant.Empty {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(model.CacheGetBillings, lodgeID), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for billings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count billings")

		return res, fmt.Errorf("failed to count billings: %w", err)
	}

	billings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get billings")

		return res, fmt.Errorf("failed to get billings: %w", err)
	}

	res.FromModels(billings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save billings to cache")
		}
	}()

	return res, nil
}

// settleBalance posts money collected at checkout as income and money returned
// to the guest as an expense.
func (s *serviceImpl) settleBalance(ctx context.Context, tx *sqlx.Tx, booking bookingModel.Booking, balance float64, user string) error {
	if balance == 0 {
		return nil
	}

	posting := ledgerDto.Posting{
		LodgeID:   booking.LodgeID,
		BookingID: booking.BookingID,
		UserID:    user,
		Type:      ledgerModel.TypeBilling,
		Amount:    math.Abs(balance),
	}

	if balance > 0 {
		posting.Description = fmt.Sprintf("Balance collected for booking #%d", booking.BookingID)

		if err := s.ledger.PostIncomeTx(ctx, tx, posting); err != nil {
			return fmt.Errorf("failed to post billing income: %w", err)
		}

		return nil
	}

	posting.Description = fmt.Sprintf("Balance refunded for booking #%d", booking.BookingID)

	if err := s.ledger.PostExpenseTx(ctx, tx, posting); err != nil {
		return fmt.Errorf("failed to post billing refund: %w", err)
	}

	return nil
}
