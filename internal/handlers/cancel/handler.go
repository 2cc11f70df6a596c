package cancel

import (
	"net/http"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/cancel/model/dto"
	"lodgehub/internal/domains/cancel/service"
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
	service service.Cancel
	otel    otel.Otel
}

func New(service service.Cancel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cancels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCancel)
		routerGroup.Post("/partial", handler.PartialCancel)
		routerGroup.Post("/cancel-price", handler.CalculateCancelCharge)
		routerGroup.Get("/lodge/{lodgeId}", handler.GetCancelsByLodge)
		routerGroup.Get("/partial/lodge/{lodgeId}", handler.GetPartialCancelsByLodge)
	})
}

// CreateCancel cancels a whole booking and records the refund.
// @Summary Cancel a booking
// @Tags Cancel
// @Accept json
// @Produce json
// @Param request body dto.CreateCancelRequest true "Create Cancel Request"
// @Success 201 {object} dto.CancelResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cancels [post]
// @Security BearerAuth
func (handler *Handler) CreateCancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCancel")
	defer scope.End()

	req := dto.CreateCancelRequest{}

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

	res, err := handler.service.CreateCancel(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// PartialCancel releases some rooms of a booking.
// @Summary Partially cancel a booking
// @Tags Cancel
// @Accept json
// @Produce json
// @Param request body dto.PartialCancelRequest true "Partial Cancel Request"
// @Success 201 {object} dto.PartialCancelResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cancels/partial [post]
// @Security BearerAuth
func (handler *Handler) PartialCancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PartialCancel")
	defer scope.End()

	req := dto.PartialCancelRequest{}

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

	res, err := handler.service.PartialCancel(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to partially cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking partially cancelled successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// CalculateCancelCharge quotes the cancellation charge for a booking or a check-in date.
// @Summary Calculate cancellation charge
// @Tags Cancel
// @Accept json
// @Produce json
// @Param request body dto.CalculateCancelChargeRequest true "Calculate Cancel Charge Request"
// @Success 200 {object} dto.CancelChargeResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cancels/cancel-price [post]
// @Security BearerAuth
func (handler *Handler) CalculateCancelCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CalculateCancelCharge")
	defer scope.End()

	req := dto.CalculateCancelChargeRequest{}

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

	res, err := handler.service.CalculateCancelCharge(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to calculate cancel charge")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCancelsByLodge lists full cancellations of a lodge.
// @Summary Get cancellations of a lodge
// @Tags Cancel
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetCancelsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cancels/lodge/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetCancelsByLodge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCancelsByLodge")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetCancelsByLodge(ctx, lodgeID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cancels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPartialCancelsByLodge lists partial cancellations of a lodge.
// @Summary Get partial cancellations of a lodge
// @Tags Cancel
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetPartialCancelsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cancels/partial/lodge/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetPartialCancelsByLodge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPartialCancelsByLodge")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetPartialCancelsByLodge(ctx, lodgeID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get partial cancels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
