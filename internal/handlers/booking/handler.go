package booking

import (
	"net/http"

	"lodgehub/infras/otel"
	availabilityDto "lodgehub/internal/domains/availability/model/dto"
	availabilityService "lodgehub/internal/domains/availability/service"
	"lodgehub/internal/domains/booking/model/dto"
	"lodgehub/internal/domains/booking/service"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/failure"
	"lodgehub/shared/validator"
	"lodgehub/transport/http/request"
	"lodgehub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Booking
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Booking, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking", func(routerGroup chi.Router) {
		routerGroup.Post("/check-availability", handler.CheckAvailability)
		routerGroup.Get("/available-rooms/{lodgeId}", handler.GetAvailableRooms)
		routerGroup.Post("/create", handler.CreateBooking)
		routerGroup.Post("/pre-book", handler.CreatePreBooking)
		routerGroup.Put("/update-date", handler.UpdateBookingDate)
		routerGroup.Get("/lodge/{lodgeId}", handler.GetBookingsByLodge)
		routerGroup.Get("/{lodgeId}/{bookingId}", handler.GetBooking)
		routerGroup.Put("/{lodgeId}/{bookingId}", handler.UpdateBooking)
	})
}

// CheckAvailability checks requested room counts against the stay window.
// @Summary Check room availability
// @Description Compare the requested rooms per category with what is free for the stay.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body availabilityDto.CheckAvailabilityRequest true "Check Availability Request"
// @Success 200 {object} availabilityDto.CheckAvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/check-availability [post]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := availabilityDto.CheckAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := shared.CheckLodgeAccess(ctx, req.LodgeID); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.availability.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailableRooms lists free rooms of every category for a stay.
// @Summary Get available rooms
// @Tags Booking
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param check_in query string true "Check-in (RFC3339)"
// @Param check_out query string true "Check-out (RFC3339)"
// @Success 200 {object} availabilityDto.AvailableRoomsResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/available-rooms/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	checkIn := r.URL.Query().Get(constant.RequestParamCheckIn)
	checkOut := r.URL.Query().Get(constant.RequestParamCheckOut)

	if checkIn == constant.Empty || checkOut == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("check_in and check_out are required"))

		return
	}

	res, err := handler.availability.GetAvailableRooms(ctx, lodgeID, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateBooking books rooms and stores the guest's id proofs.
// @Summary Create a booking
// @Description Multipart form: "payload" carries the booking JSON, "id_proofs" the identity documents.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param payload formData string true "CreateBookingRequest as JSON"
// @Param id_proofs formData file true "Identity documents"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/create [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := request.Payload(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking payload")

		response.WithError(w, err)

		return
	}

	if err := shared.CheckLodgeAccess(ctx, req.LodgeID); err != nil {
		response.WithError(w, err)

		return
	}

	files, closeFiles, err := idProofFiles(r)
	if err != nil {
		response.WithError(w, err)

		return
	}
	defer closeFiles()

	req.IDProofs = files

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate id proofs")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// CreatePreBooking holds rooms without id proofs.
// @Summary Create a pre-booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/pre-book [post]
// @Security BearerAuth
func (handler *Handler) CreatePreBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePreBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := shared.CheckLodgeAccess(ctx, req.LodgeID); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreatePreBooking(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pre-booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Pre-booking created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateBooking confirms a booking, appending new id proofs.
// @Summary Update a booking
// @Description Multipart form: "payload" carries the update JSON, "id_proofs" extra identity documents.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param bookingId path int true "Booking ID"
// @Param payload formData string true "UpdateBookingRequest as JSON"
// @Param id_proofs formData file false "Identity documents"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/{lodgeId}/{bookingId} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	lodgeID, bookingID, err := bookingKey(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateBookingRequest{}

	if err := request.Payload(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking payload")

		response.WithError(w, err)

		return
	}

	files, closeFiles, err := idProofFiles(r)
	if err != nil {
		response.WithError(w, err)

		return
	}
	defer closeFiles()

	req.IDProofs = files

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate id proofs")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateBooking(ctx, lodgeID, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateBookingDate moves a stay and reallocates its rooms.
// @Summary Update booking dates
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.UpdateBookingDateRequest true "Update Booking Date Request"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/update-date [put]
// @Security BearerAuth
func (handler *Handler) UpdateBookingDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingDate")
	defer scope.End()

	req := dto.UpdateBookingDateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := shared.CheckLodgeAccess(ctx, req.LodgeID); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateBookingDate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking date")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking date updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingsByLodge lists bookings of a lodge.
// @Summary Get bookings of a lodge
// @Tags Booking
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param status query string false "Filter by status (PREBOOKED, BOOKED, BILLED, CANCEL)"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetBookingsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/lodge/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingsByLodge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByLodge")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	statuses := []string{}
	if status := r.URL.Query().Get(constant.RequestParamStatus); status != constant.Empty {
		statuses = append(statuses, status)
	}

	res, err := handler.service.GetByLodge(ctx, lodgeID, queryParams, statuses...)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBooking retrieves one booking.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/booking/{lodgeId}/{bookingId} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	lodgeID, bookingID, err := bookingKey(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, lodgeID, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func bookingKey(r *http.Request) (int64, int64, error) {
	lodgeID, err := request.LodgeID(r)
	if err != nil {
		return 0, 0, err // nolint:wrapcheck
	}

	bookingID, err := request.Int64Param(r, constant.RequestParamBookingID)
	if err != nil {
		return 0, 0, err // nolint:wrapcheck
	}

	return lodgeID, bookingID, nil
}

// idProofFiles opens every uploaded id proof. The returned func closes them.
func idProofFiles(r *http.Request) ([]dto.IDProofFile, func(), error) {
	files := []dto.IDProofFile{}
	closeAll := func() {
		for _, file := range files {
			_ = file.File.Close()
		}
	}

	if r.MultipartForm == nil {
		return files, closeAll, nil
	}

	for _, header := range r.MultipartForm.File[constant.FormFieldIDProofs] {
		file, err := header.Open()
		if err != nil {
			closeAll()

			return nil, func() {}, failure.BadRequestFromString("failed to read id proof " + header.Filename) // nolint:wrapcheck
		}

		files = append(files, dto.IDProofFile{Header: header, File: file})
	}

	return files, closeAll, nil
}
