package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodgehub/config"
	"lodgehub/infras/otel/mocks"
	pgMocks "lodgehub/infras/postgres/mocks"
	s3Mocks "lodgehub/infras/s3/mocks"
	availabilityMocks "lodgehub/internal/domains/availability/mocks"
	bookingMocks "lodgehub/internal/domains/booking/mocks"
	"lodgehub/internal/domains/booking/model"
	"lodgehub/internal/domains/booking/model/dto"
	"lodgehub/internal/domains/booking/service"
	ledgerMocks "lodgehub/internal/domains/ledger/mocks"
	ledgerModel "lodgehub/internal/domains/ledger/model"
	ledgerDto "lodgehub/internal/domains/ledger/model/dto"
	lodgeMocks "lodgehub/internal/domains/lodge/mocks"
	cacheMocks "lodgehub/shared/cache/mocks"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
)

type deps struct {
	repo         *bookingMocks.MockBooking
	lodge        *lodgeMocks.MockLodge
	availability *availabilityMocks.MockAvailability
	ledger       *ledgerMocks.MockLedger
	tx           *pgMocks.MockTransactor
	s3           *s3Mocks.MockS3
	cache        *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (deps, service.Booking) {
	ctrl := gomock.NewController(t)

	d := deps{
		repo:         bookingMocks.NewMockBooking(ctrl),
		lodge:        lodgeMocks.NewMockLodge(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		ledger:       ledgerMocks.NewMockLedger(ctrl),
		tx:           pgMocks.NewMockTransactor(ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "lodgehub"

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	}).AnyTimes()

	svc := service.New(d.repo, d.lodge, d.availability, d.ledger, d.tx, d.s3, cfg, d.cache, mocks.NewOtel())

	return d, svc
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
}

func bookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		LodgeID:     6,
		Name:        "Asha",
		Phone:       "9999999999",
		CheckIn:     "2025-06-01 12:00",
		CheckOut:    "2025-06-03 11:00",
		BookedRooms: model.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101"}}},
		Rooms:       model.RoomAmounts{{RoomName: "Deluxe", RoomType: "AC", RoomCount: 1, BaseAmountPerRoom: 500, GroupTotalBaseAmount: 1000}},
		BaseAmount:  1000,
		GST:         180,
		Amount:      1180,
		Advance:     500,
		Deposit:     200,
		Balance:     480,
		IDProofs:    []dto.IDProofFile{{Header: &multipart.FileHeader{Filename: "aadhar.png"}}},
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	t.Run("books rooms and posts advance and deposit", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.s3.EXPECT().UploadFile(gomock.Any(), "lodgehub", "id-proofs/6", gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/id-proofs/6/a.png", nil)
		d.repo.EXPECT().LockLodgeTx(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
		d.availability.EXPECT().VerifyAllocationTx(gomock.Any(), gomock.Any(), int64(6), gomock.Any(), gomock.Any(), gomock.Any(), int64(0)).Return(nil)
		d.repo.EXPECT().NextBookingIDTx(gomock.Any(), gomock.Any(), int64(6)).Return(int64(12), nil)
		d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, b model.Booking) error {
			assert.Equal(t, model.StatusBooked, b.Status)
			assert.Equal(t, int64(12), b.BookingID)
			assert.Equal(t, []string{"https://cdn.example.com/id-proofs/6/a.png"}, []string(b.IDProof))

			return nil
		})

		var postings []ledgerDto.Posting

		d.ledger.EXPECT().PostIncomeTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p ledgerDto.Posting) error {
			postings = append(postings, p)

			return nil
		}).Times(2)

		res, err := svc.CreateBooking(userContext(), bookingRequest())

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, int64(12), res.BookingID)
		assert.Equal(t, "staff-1", res.UserID)
		require.Len(t, postings, 2)
		assert.Equal(t, ledgerModel.TypeBooking, postings[0].Type)
		assert.InDelta(t, 500.0, postings[0].Amount, 0.001)
		assert.Equal(t, ledgerModel.TypeBooking, postings[1].Type)
		assert.InDelta(t, 200.0, postings[1].Amount, 0.001)
	})

	t.Run("id proof is required", func(t *testing.T) {
		_, svc := newService(t)

		req := bookingRequest()
		req.IDProofs = nil

		_, err := svc.CreateBooking(userContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("check_out before check_in", func(t *testing.T) {
		_, svc := newService(t)

		req := bookingRequest()
		req.CheckOut = "2025-05-30 11:00"

		_, err := svc.CreateBooking(userContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("no rooms", func(t *testing.T) {
		_, svc := newService(t)

		req := bookingRequest()
		req.BookedRooms = nil

		_, err := svc.CreateBooking(userContext(), req)

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("lodge not found", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.CreateBooking(userContext(), bookingRequest())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("conflicting allocation discards uploaded proofs", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/id-proofs/6/a.png", nil)
		d.repo.EXPECT().LockLodgeTx(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
		d.availability.EXPECT().VerifyAllocationTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(failure.Conflict("room number 101 is already booked for the selected dates"))
		d.s3.EXPECT().GetObjectNameFromURL("lodgehub", "https://cdn.example.com/id-proofs/6/a.png").Return("id-proofs/6/a.png").AnyTimes()
		d.s3.EXPECT().DeleteFile(gomock.Any(), "lodgehub", constant.Empty, "id-proofs/6/a.png").Return(nil).AnyTimes()

		_, err := svc.CreateBooking(userContext(), bookingRequest())

		time.Sleep(10 * time.Millisecond)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("upload failure", func(t *testing.T) {
		d, svc := newService(t)

		d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(constant.Empty, errors.New("storage down"))

		_, err := svc.CreateBooking(userContext(), bookingRequest())

		time.Sleep(10 * time.Millisecond)

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestBookingService_CreatePreBooking(t *testing.T) {
	d, svc := newService(t)

	req := bookingRequest()
	req.IDProofs = nil
	req.Deposit = 0
	req.BookedRooms = nil

	d.lodge.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	d.repo.EXPECT().NextBookingIDTx(gomock.Any(), gomock.Any(), int64(6)).Return(int64(3), nil)
	d.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, b model.Booking) error {
		assert.Equal(t, model.StatusPreBooked, b.Status)
		assert.Empty(t, b.IDProof)
		assert.Empty(t, b.BookedRoom)

		return nil
	})
	d.ledger.EXPECT().PostIncomeTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p ledgerDto.Posting) error {
		assert.Equal(t, ledgerModel.TypePreBook, p.Type)
		assert.Equal(t, int64(3), p.BookingID)

		return nil
	})

	res, err := svc.CreatePreBooking(userContext(), req)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, model.StatusPreBooked, res.Status)
}

func TestBookingService_UpdateBooking(t *testing.T) {
	preBooked := model.Booking{
		BookingID:  3,
		LodgeID:    6,
		Status:     model.StatusPreBooked,
		CheckIn:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC),
		BookedRoom: model.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"101"}}},
		IDProof:    model.IDProofs{"https://cdn.example.com/id-proofs/6/old.png"},
	}

	guests := 2
	req := dto.UpdateBookingRequest{NumberOfGuest: &guests}

	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
	}{
		{
			name: "confirms a pre-booking",
			setupMock: func(d deps) {
				d.repo.EXPECT().LockLodgeTx(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(preBooked, nil)
				d.availability.EXPECT().VerifyAllocationTx(gomock.Any(), gomock.Any(), int64(6), preBooked.CheckIn, preBooked.CheckOut, preBooked.BookedRoom, int64(3)).Return(nil)
				d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusBooked, fields[model.FieldStatus])
						assert.Equal(t, 2, fields[model.FieldNumberOfGuest])
						assert.Equal(t, model.IDProofs{"https://cdn.example.com/id-proofs/6/old.png"}, fields[model.FieldIDProof])

						return nil
					})

				confirmed := preBooked
				confirmed.Status = model.StatusBooked
				d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(confirmed, nil)
			},
		},
		{
			name: "booking not found",
			setupMock: func(d deps) {
				d.repo.EXPECT().LockLodgeTx(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "billed booking cannot be updated",
			setupMock: func(d deps) {
				billed := preBooked
				billed.Status = model.StatusBilled

				d.repo.EXPECT().LockLodgeTx(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(billed, nil)
			},
			wantCode: 400,
		},
		{
			name: "pre-booking without rooms cannot be confirmed",
			setupMock: func(d deps) {
				hold := preBooked
				hold.BookedRoom = nil

				d.repo.EXPECT().LockLodgeTx(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(hold, nil)
			},
			wantCode: 400,
		},
		{
			name: "confirming without any id proof",
			setupMock: func(d deps) {
				bare := preBooked
				bare.Status = model.StatusBooked
				bare.IDProof = nil

				d.repo.EXPECT().LockLodgeTx(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
				d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bare, nil)
			},
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc := newService(t)
			tt.setupMock(d)

			res, err := svc.UpdateBooking(userContext(), 6, 3, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, model.StatusBooked, res.Status)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestBookingService_UpdateBookingDate(t *testing.T) {
	req := dto.UpdateBookingDateRequest{
		BookingID:    12,
		LodgeID:      6,
		CheckIn:      "2025-06-05 12:00",
		CheckOut:     "2025-06-07 11:00",
		UpdatedRooms: model.Allocation{{RoomName: "Deluxe", RoomType: "AC", RoomNumbers: []string{"102"}}},
	}

	t.Run("reschedules and reallocates", func(t *testing.T) {
		d, svc := newService(t)

		d.repo.EXPECT().LockLodgeTx(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
		d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Booking{BookingID: 12, Status: model.StatusBooked}, nil)
		d.availability.EXPECT().VerifyAllocationTx(gomock.Any(), gomock.Any(), int64(6), gomock.Any(), gomock.Any(), req.UpdatedRooms, int64(12)).Return(nil)
		d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, req.UpdatedRooms, fields[model.FieldBookedRoom])

				return nil
			})
		d.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Booking{BookingID: 12, LodgeID: 6, Status: model.StatusBooked, BookedRoom: req.UpdatedRooms}, nil)

		res, err := svc.UpdateBookingDate(userContext(), req)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, req.UpdatedRooms, res.BookedRoom)
	})

	t.Run("check_out must be after check_in", func(t *testing.T) {
		_, svc := newService(t)

		bad := req
		bad.CheckOut = bad.CheckIn

		_, err := svc.UpdateBookingDate(userContext(), bad)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("cancelled booking cannot be rescheduled", func(t *testing.T) {
		d, svc := newService(t)

		d.repo.EXPECT().LockLodgeTx(gomock.Any(), gomock.Any(), int64(6)).Return(nil)
		d.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Booking{BookingID: 12, Status: model.StatusCancel}, nil)

		_, err := svc.UpdateBookingDate(userContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		d, svc := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{BookingID: 12, LodgeID: 6, Status: model.StatusBooked}, nil)

		res, err := svc.Get(context.Background(), 6, 12)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, int64(12), res.BookingID)
	})

	t.Run("not found", func(t *testing.T) {
		d, svc := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), 6, 12)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_GetByLodge(t *testing.T) {
	d, svc := newService(t)

	d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Cond(func(params gDto.QueryParams) bool { return params.SortBy == model.FieldBookingID }), gomock.Any()).Return([]model.Booking{{BookingID: 2}, {BookingID: 1}}, nil)

	res, err := svc.GetByLodge(context.Background(), 6, gDto.QueryParams{Page: 1, Limit: 10}, model.StatusBooked)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Bookings, 2)
}

func TestBookingService_DeleteIDProofs(t *testing.T) {
	d, svc := newService(t)

	d.s3.EXPECT().GetObjectNameFromURL("lodgehub", "https://cdn.example.com/a.png").Return("a.png")
	d.s3.EXPECT().GetObjectNameFromURL("lodgehub", "not-a-url").Return(constant.Empty)
	d.s3.EXPECT().DeleteFile(gomock.Any(), "lodgehub", constant.Empty, "a.png").Return(errors.New("boom"))

	err := svc.DeleteIDProofs(context.Background(), 6, []string{"https://cdn.example.com/a.png", "not-a-url"})

	assert.ErrorIs(t, err, service.ErrDeleteIDProofs)
}
