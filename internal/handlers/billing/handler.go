package billing

import (
	"net/http"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/billing/model/dto"
	"lodgehub/internal/domains/billing/service"
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
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/billings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBilling)
		routerGroup.Get("/lodge/{lodgeId}", handler.GetBillingsByLodge)
	})
}

// CreateBilling checks a guest out and settles the balance.
// @Summary Bill a booking
// @Description Settles a BOOKED booking. Leaving before the scheduled checkout moves check_out to now.
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.CreateBillingRequest true "Create Billing Request"
// @Success 201 {object} dto.BillingResult
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billings [post]
// @Security BearerAuth
func (handler *Handler) CreateBilling(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBilling")
	defer scope.End()

	req := dto.CreateBillingRequest{}

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

	res, err := handler.service.CreateBillingAndUpdateStatus(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create billing")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking billed successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBillingsByLodge lists billing rows of a lodge.
// @Summary Get billings of a lodge
// @Tags Billing
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetBillingsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/billings/lodge/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetBillingsByLodge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBillingsByLodge")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetByLodge(ctx, lodgeID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get billings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
