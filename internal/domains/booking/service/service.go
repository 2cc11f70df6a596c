package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"lodgehub/config"
	"lodgehub/infras/otel"
	"lodgehub/infras/postgres"
	"lodgehub/infras/s3"
	availabilityService "lodgehub/internal/domains/availability/service"
	"lodgehub/internal/domains/booking/model"
	"lodgehub/internal/domains/booking/model/dto"
	"lodgehub/internal/domains/booking/repository"
	ledgerModel "lodgehub/internal/domains/ledger/model"
	ledgerDto "lodgehub/internal/domains/ledger/model/dto"
	ledgerService "lodgehub/internal/domains/ledger/service"
	lodgeModel "lodgehub/internal/domains/lodge/model"
	lodgeRepo "lodgehub/internal/domains/lodge/repository"
	"lodgehub/shared"
	"lodgehub/shared/cache"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var ErrDeleteIDProofs = errors.New("failed to delete id proofs")

type Booking interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CreatePreBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	UpdateBooking(ctx context.Context, lodgeID, bookingID int64, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	UpdateBookingDate(ctx context.Context, req dto.UpdateBookingDateRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, lodgeID, bookingID int64) (dto.BookingResponse, error)
	GetByLodge(ctx context.Context, lodgeID int64, params gDto.QueryParams, statuses ...string) (dto.GetBookingsResponse, error)
	DeleteIDProofs(ctx context.Context, lodgeID int64, urls []string) error
}

type serviceImpl struct {
	repo         repository.Booking
	lodgeRepo    lodgeRepo.Lodge
	availability availabilityService.Availability
	ledger       ledgerService.Ledger
	transactor   postgres.Transactor
	s3           s3.S3
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	lodgeRepo lodgeRepo.Lodge,
	availability availabilityService.Availability,
	ledger ledgerService.Ledger,
	transactor postgres.Transactor,
	s3 s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		lodgeRepo:    lodgeRepo,
		availability: availability,
		ledger:       ledger,
		transactor:   transactor,
		s3:           s3,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(req.IDProofs) == 0 {
		return res, failure.BadRequestFromString("at least one id proof is required") // nolint:wrapcheck
	}

	if req.BookedRooms.RoomCount() == 0 {
		return res, failure.BadRequestFromString("at least one room must be booked") // nolint:wrapcheck
	}

	checkIn, checkOut, err := req.Window()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.ensureLodge(ctx, req.LodgeID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	proofs, err := s.uploadIDProofs(ctx, req.LodgeID, req.IDProofs)
	if err != nil {
		return res, err
	}

	var booking model.Booking

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockLodgeTx(ctx, tx, req.LodgeID); err != nil {
			return fmt.Errorf("failed to lock lodge: %w", err)
		}

		if err := s.availability.VerifyAllocationTx(ctx, tx, req.LodgeID, checkIn, checkOut, req.BookedRooms, 0); err != nil {
			return err
		}

		bookingID, err := s.repo.NextBookingIDTx(ctx, tx, req.LodgeID)
		if err != nil {
			return fmt.Errorf("failed to allocate booking id: %w", err)
		}

		booking, err = req.ToModel(bookingID, model.StatusBooked, user, proofs)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return s.postPayments(ctx, tx, booking, ledgerModel.TypeBooking)
	})
	if err != nil {
		log.Error().Err(err).Int64("lodge_id", req.LodgeID).Msg("failed to create booking")

		go s.discardIDProofs(context.WithoutCancel(ctx), req.LodgeID, proofs)

		return res, err
	}

	s.invalidate(ctx, booking.LodgeID, booking.BookingID)

	res.FromModel(booking)

	return res, nil
}

// CreatePreBooking stores a soft hold, possibly without rooms. No inventory
// lock is taken and the allocation is not checked against other bookings.
func (s *serviceImpl) CreatePreBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePreBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = req.Window(); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.ensureLodge(ctx, req.LodgeID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var booking model.Booking

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		bookingID, err := s.repo.NextBookingIDTx(ctx, tx, req.LodgeID)
		if err != nil {
			return fmt.Errorf("failed to allocate booking id: %w", err)
		}

		booking, err = req.ToModel(bookingID, model.StatusPreBooked, user, nil)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert pre-booking: %w", err)
		}

		return s.postPayments(ctx, tx, booking, ledgerModel.TypePreBook)
	})
	if err != nil {
		log.Error().Err(err).Int64("lodge_id", req.LodgeID).Msg("failed to create pre-booking")

		return res, err
	}

	s.invalidate(ctx, booking.LodgeID, booking.BookingID)

	res.FromModel(booking)

	return res, nil
}

// UpdateBooking appends new id proofs and confirms the booking. A pre-booking is
// checked against the inventory before it is confirmed.
func (s *serviceImpl) UpdateBooking(ctx context.Context, lodgeID, bookingID int64, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByBooking(bookingID, lodgeID, model.TableName)

	proofs, err := s.uploadIDProofs(ctx, lodgeID, req.IDProofs)
	if err != nil {
		return res, err
	}

	var booking model.Booking

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockLodgeTx(ctx, tx, lodgeID); err != nil {
			return fmt.Errorf("failed to lock lodge: %w", err)
		}

		current, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if current.BookingID == 0 {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		switch current.Status {
		case model.StatusBilled, model.StatusCancel:
			return failure.BadRequestFromString(fmt.Sprintf("booking with status %s cannot be updated", current.Status)) // nolint:wrapcheck
		case model.StatusPreBooked:
			if current.BookedRoom.RoomCount() == 0 {
				return failure.BadRequestFromString("assign rooms with update-date before confirming the pre-booking") // nolint:wrapcheck
			}

			err := s.availability.VerifyAllocationTx(ctx, tx, lodgeID, current.CheckIn, current.CheckOut, current.BookedRoom, current.BookingID)
			if err != nil {
				return err
			}
		}

		merged := append(append([]string{}, current.IDProof...), proofs...)
		if len(merged) == 0 {
			return failure.BadRequestFromString("at least one id proof is required") // nolint:wrapcheck
		}

		if err := s.repo.UpdateTx(ctx, tx, req.Fields(user, merged), filter); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		booking, err = s.repo.GetTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to reload booking: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("lodge_id", lodgeID).Int64("booking_id", bookingID).Msg("failed to update booking")

		go s.discardIDProofs(context.WithoutCancel(ctx), lodgeID, proofs)

		return res, err
	}

	s.invalidate(ctx, lodgeID, bookingID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateBookingDate(ctx context.Context, req dto.UpdateBookingDateRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Window()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByBooking(req.BookingID, req.LodgeID, model.TableName)

	var booking model.Booking

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockLodgeTx(ctx, tx, req.LodgeID); err != nil {
			return fmt.Errorf("failed to lock lodge: %w", err)
		}

		current, err := s.repo.GetForUpdateTx(ctx, tx, filter, model.FieldBookingID, model.FieldStatus)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if current.BookingID == 0 {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if current.Status == model.StatusBilled || current.Status == model.StatusCancel {
			return failure.BadRequestFromString(fmt.Sprintf("booking with status %s cannot be rescheduled", current.Status)) // nolint:wrapcheck
		}

		err = s.availability.VerifyAllocationTx(ctx, tx, req.LodgeID, checkIn, checkOut, req.UpdatedRooms, req.BookingID)
		if err != nil {
			return err
		}

		fields := map[string]any{
			model.FieldCheckIn:       checkIn,
			model.FieldCheckOut:      checkOut,
			model.FieldBookedRoom:    req.UpdatedRooms,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update booking dates: %w", err)
		}

		booking, err = s.repo.GetTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to reload booking: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("lodge_id", req.LodgeID).Int64("booking_id", req.BookingID).Msg("failed to update booking dates")

		return res, err
	}

	s.invalidate(ctx, req.LodgeID, req.BookingID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, lodgeID, bookingID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheGetBooking, lodgeID, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByBooking(bookingID, lodgeID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.BookingID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByLodge(ctx context.Context, lodgeID int64, params gDto.QueryParams, statuses ...string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByLodge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := repository.FilterByStatus(lodgeID, statuses...)

	if params.SortBy == constant.Empty {
		params.SortBy = model.FieldBookingID
		params.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(model.CacheGetBookings, lodgeID), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// DeleteIDProofs removes uploaded proofs from object storage. Every URL is
// attempted; the error reports how many could not be removed.
func (s *serviceImpl) DeleteIDProofs(ctx context.Context, lodgeID int64, urls []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteIDProofs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName := s.cfg.External.S3.BucketName
	failed := 0

	for _, url := range urls {
		objectName := s.s3.GetObjectNameFromURL(bucketName, url)
		if objectName == constant.Empty {
			log.Warn().Str("url", url).Int64("lodge_id", lodgeID).Msg("failed to extract object name from URL")

			continue
		}

		if err := s.s3.DeleteFile(ctx, bucketName, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete id proof")

			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d files", ErrDeleteIDProofs, failed)
	}

	return nil
}

func (s *serviceImpl) ensureLodge(ctx context.Context, lodgeID int64) error {
	exists, err := s.lodgeRepo.Exist(ctx, shared.FilterByID(lodgeID, lodgeModel.FieldLodgeID, lodgeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if lodge exists")

		return fmt.Errorf("failed to check if lodge exists: %w", err)
	}

	if !exists {
		return failure.NotFound("lodge not found") // nolint:wrapcheck
	}

	return nil
}

// postPayments records the advance and the deposit as separate income rows.
func (s *serviceImpl) postPayments(ctx context.Context, tx *sqlx.Tx, booking model.Booking, entryType string) error {
	payments := []struct {
		amount      float64
		description string
	}{
		{booking.Advance, fmt.Sprintf("Advance for booking #%d", booking.BookingID)},
		{booking.Deposit, fmt.Sprintf("Deposit for booking #%d", booking.BookingID)},
	}

	for _, payment := range payments {
		if payment.amount <= 0 {
			continue
		}

		posting := ledgerDto.Posting{
			LodgeID:     booking.LodgeID,
			BookingID:   booking.BookingID,
			UserID:      booking.UserID,
			Type:        entryType,
			Amount:      payment.amount,
			Description: payment.description,
		}

		if err := s.ledger.PostIncomeTx(ctx, tx, posting); err != nil {
			return fmt.Errorf("failed to post income: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) uploadIDProofs(ctx context.Context, lodgeID int64, files []dto.IDProofFile) ([]string, error) {
	bucketName := s.cfg.External.S3.BucketName
	directory := path.Join(model.IDProofDirectory, fmt.Sprint(lodgeID))
	urls := make([]string, 0, len(files))

	for _, file := range files {
		fileName := uuid.NewString() + filepath.Ext(file.Header.Filename)

		url, err := s.s3.UploadFile(ctx, bucketName, directory, file.File, file.Header, fileName)
		if err != nil {
			log.Error().Err(err).Str("file", file.Header.Filename).Msg("failed to upload id proof")

			go s.discardIDProofs(context.WithoutCancel(ctx), lodgeID, urls)

			return nil, fmt.Errorf("failed to upload id proof: %w", err)
		}

		urls = append(urls, url)
	}

	return urls, nil
}

func (s *serviceImpl) discardIDProofs(ctx context.Context, lodgeID int64, urls []string) {
	if len(urls) == 0 {
		return
	}

	if err := s.DeleteIDProofs(ctx, lodgeID, urls); err != nil {
		log.Error().Err(err).Int64("lodge_id", lodgeID).Msg("failed to discard uploaded id proofs")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, lodgeID, bookingID int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		InvalidateCaches(c, s.cache, lodgeID, bookingID)
	}()
}

// InvalidateCaches drops the cached views of one booking and the lodge's booking lists.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, lodgeID, bookingID int64) {
	if err := redisCache.Delete(ctx, shared.BuildCacheKey(model.CacheGetBooking, lodgeID, bookingID)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking cache")
	}

	shared.InvalidateCaches(ctx, redisCache, shared.BuildCacheKey(model.CacheGetBookings, lodgeID))
}
