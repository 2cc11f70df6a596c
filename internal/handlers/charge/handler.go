package charge

import (
	"context"
	"net/http"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/charge/model"
	"lodgehub/internal/domains/charge/model/dto"
	"lodgehub/internal/domains/charge/service"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/shared/validator"
	"lodgehub/transport/http/request"
	"lodgehub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Charge
	otel    otel.Otel
}

func New(service service.Charge, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/charges", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCharge)
		routerGroup.Get("/{lodgeId}", handler.GetCharges)
		routerGroup.Get("/{lodgeId}/grouped", handler.GetChargesGroupedByBooking)
		routerGroup.Get("/{lodgeId}/booking-status/{bookingId}", handler.CheckBookingIsBooked)
		routerGroup.Get("/{lodgeId}/{id}", handler.GetChargeByID)
		routerGroup.Patch("/{lodgeId}/{id}", handler.UpdateCharge)
		routerGroup.Delete("/{lodgeId}/{id}", handler.DeleteCharge)
	})
}

// CreateCharge adds an extra charge to a booking.
// @Summary Create a charge
// @Tags Charge
// @Accept json
// @Produce json
// @Param request body dto.CreateChargeRequest true "Create Charge Request"
// @Success 201 {object} dto.ChargeResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/charges [post]
// @Security BearerAuth
func (handler *Handler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCharge")
	defer scope.End()

	req := dto.CreateChargeRequest{}

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

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create charge")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Charge created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetCharges lists the charges of a lodge.
// @Summary Get charges
// @Tags Charge
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetChargesResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/charges/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetCharges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharges")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, lodgeID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get charges")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetChargesGroupedByBooking lists charges per booking.
// @Summary Get charges grouped by booking
// @Tags Charge
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Success 200 {array} dto.BookingCharges
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/charges/{lodgeId}/grouped [get]
// @Security BearerAuth
func (handler *Handler) GetChargesGroupedByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChargesGroupedByBooking")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GroupedByBooking(ctx, lodgeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get grouped charges")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CheckBookingIsBooked tells whether charges can be added to a booking.
// @Summary Check booking status for charges
// @Tags Charge
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} dto.BookingStatusResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/charges/{lodgeId}/booking-status/{bookingId} [get]
// @Security BearerAuth
func (handler *Handler) CheckBookingIsBooked(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckBookingIsBooked")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	bookingID, err := request.Int64Param(r, constant.RequestParamBookingID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckBookingIsBooked(ctx, lodgeID, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check booking status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetChargeByID retrieves one charge.
// @Summary Get a charge
// @Tags Charge
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param id path string true "Charge ID"
// @Success 200 {object} dto.ChargeResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/charges/{lodgeId}/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetChargeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChargeByID")
	defer scope.End()

	charge, err := handler.owned(ctx, r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get charge")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, charge)
}

// UpdateCharge changes the reason, amount or status of a charge.
// @Summary Update a charge
// @Tags Charge
// @Accept json
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param id path string true "Charge ID"
// @Param request body dto.UpdateChargeRequest true "Update Charge Request"
// @Success 200 {object} dto.ChargeResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/charges/{lodgeId}/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCharge")
	defer scope.End()

	req := dto.UpdateChargeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	charge, err := handler.owned(ctx, r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, charge.ID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update charge")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Charge updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteCharge removes a charge.
// @Summary Delete a charge
// @Tags Charge
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param id path string true "Charge ID"
// @Success 200 {object} response.Message "Charge deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/charges/{lodgeId}/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCharge")
	defer scope.End()

	charge, err := handler.owned(ctx, r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, charge.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete charge")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Charge deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Charge deleted successfully")
}

func (handler *Handler) owned(ctx context.Context, r *http.Request) (dto.ChargeResponse, error) {
	lodgeID, err := request.LodgeID(r)
	if err != nil {
		return dto.ChargeResponse{}, err // nolint:wrapcheck
	}

	charge, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		return dto.ChargeResponse{}, err // nolint:wrapcheck
	}

	return charge, request.Owned(lodgeID, charge.LodgeID, model.EntityName) // nolint:wrapcheck
}
