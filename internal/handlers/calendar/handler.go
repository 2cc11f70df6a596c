package calendar

import (
	"net/http"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/calendar/service"
	pricingDto "lodgehub/internal/domains/pricing/model/dto"
	pricingService "lodgehub/internal/domains/pricing/service"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	"lodgehub/shared/failure"
	"lodgehub/shared/validator"
	"lodgehub/transport/http/request"
	"lodgehub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Calendar
	pricing pricingService.Pricing
	otel    otel.Otel
}

func New(service service.Calendar, pricing pricingService.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		pricing: pricing,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Post("/calculate-pricing", handler.CalculatePricing)
		routerGroup.Post("/room-price", handler.CalculateRoomPrice)
		routerGroup.Post("/update-pricing", handler.UpdatePricing)
		routerGroup.Get("/next-days/{lodgeId}", handler.GetNextDays)
		routerGroup.Get("/occupancy/{lodgeId}", handler.GetOccupancy)
		routerGroup.Get("/room/book/{lodgeId}", handler.GetBookingsByRoom)
		routerGroup.Get("/stats/{lodgeId}", handler.GetLodgeStats)
		routerGroup.Get("/finance/{lodgeId}", handler.GetFinance)
	})
}

// CalculatePricing prices a stay from the lodge tariffs.
// @Summary Calculate pricing
// @Description Rent per category for the stay, switching to peak tariffs when a peak day falls inside it.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body pricingDto.CalculatePricingRequest true "Calculate Pricing Request"
// @Success 200 {object} pricingDto.PricingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/calculate-pricing [post]
// @Security BearerAuth
func (handler *Handler) CalculatePricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CalculatePricing")
	defer scope.End()

	req := pricingDto.CalculatePricingRequest{}

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

	res, err := handler.pricing.CalculatePricing(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to calculate pricing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CalculateRoomPrice prices a number of rooms of a single category.
// @Summary Calculate room price
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body pricingDto.RoomPriceRequest true "Room Price Request"
// @Success 200 {object} pricingDto.PricingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/room-price [post]
// @Security BearerAuth
func (handler *Handler) CalculateRoomPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CalculateRoomPrice")
	defer scope.End()

	req := pricingDto.RoomPriceRequest{}

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

	res, err := handler.pricing.CalculateRoomPrice(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to calculate room price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdatePricing re-prices a stay with a tariff chosen by staff.
// @Summary Update pricing
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body pricingDto.UpdatePricingRequest true "Update Pricing Request"
// @Success 200 {object} pricingDto.PricingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/update-pricing [post]
// @Security BearerAuth
func (handler *Handler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePricing")
	defer scope.End()

	req := pricingDto.UpdatePricingRequest{}

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

	res, err := handler.pricing.UpdatePricing(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pricing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetNextDays counts free rooms per category for the coming days.
// @Summary Room counts for the next days
// @Tags Calendar
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param now query string false "Reference instant (RFC3339), defaults to the server clock"
// @Success 200 {object} dto.NextDaysResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/next-days/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetNextDays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNextDays")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.RoomCountsForNextDays(ctx, lodgeID, r.URL.Query().Get(constant.RequestParamNow))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room counts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetOccupancy reports occupied and free rooms right now.
// @Summary Current occupancy
// @Tags Calendar
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param now query string false "Reference instant (RFC3339), defaults to the server clock"
// @Success 200 {object} dto.OccupancyResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/occupancy/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.CurrentOccupancy(ctx, lodgeID, r.URL.Query().Get(constant.RequestParamNow))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBookingsByRoom lists active bookings holding rooms of a category.
// @Summary Bookings by room category
// @Tags Calendar
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param roomName query string true "Room name"
// @Param roomType query string true "Room type"
// @Success 200 {object} dto.RoomBookingsResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/room/book/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingsByRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByRoom")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	roomName := r.URL.Query().Get(constant.RequestParamRoomName)
	roomType := r.URL.Query().Get(constant.RequestParamRoomType)

	if roomName == constant.Empty || roomType == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("roomName and roomType are required"))

		return
	}

	res, err := handler.service.BookingsByRoom(ctx, lodgeID, roomName, roomType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings by room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetLodgeStats summarises bookings, cancellations and money of a lodge.
// @Summary Lodge statistics
// @Tags Calendar
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Success 200 {object} dto.LodgeStatsResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/stats/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetLodgeStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLodgeStats")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.LodgeStats(ctx, lodgeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lodge stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetFinance returns total income, expense and balance of a lodge.
// @Summary Finance summary
// @Tags Calendar
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Success 200 {object} ledgerDto.FinanceSummaryResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/calendar/finance/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetFinance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFinance")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Finance(ctx, lodgeID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get finance summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
