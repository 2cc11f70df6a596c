package peakhour

import (
	"context"
	"net/http"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/peakhour/model"
	"lodgehub/internal/domains/peakhour/model/dto"
	"lodgehub/internal/domains/peakhour/service"
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
	service service.PeakHour
	otel    otel.Otel
}

func New(service service.PeakHour, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/peak-hours", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePeakHour)
		routerGroup.Get("/{lodgeId}", handler.GetPeakHours)
		routerGroup.Get("/{lodgeId}/{id}", handler.GetPeakHourByID)
		routerGroup.Delete("/{lodgeId}/{id}", handler.DeletePeakHour)
	})
}

// CreatePeakHour marks a date as a peak day with its rent.
// @Summary Create a peak day
// @Tags PeakHour
// @Accept json
// @Produce json
// @Param request body dto.CreatePeakHourRequest true "Create Peak Hour Request"
// @Success 201 {object} dto.PeakHourResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/peak-hours [post]
// @Security BearerAuth
func (handler *Handler) CreatePeakHour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePeakHour")
	defer scope.End()

	req := dto.CreatePeakHourRequest{}

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
		log.Error().Err(err).Msg("failed to create peak hour")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Peak hour created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPeakHours lists the peak days of a lodge.
// @Summary Get peak days
// @Tags PeakHour
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetPeakHoursResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/peak-hours/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetPeakHours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPeakHours")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams, shared.FilterByLodge(lodgeID, model.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get peak hours")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPeakHourByID retrieves a peak day.
// @Summary Get a peak day
// @Tags PeakHour
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param id path string true "Peak hour ID"
// @Success 200 {object} dto.PeakHourResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/peak-hours/{lodgeId}/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPeakHourByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPeakHourByID")
	defer scope.End()

	peak, err := handler.owned(ctx, r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get peak hour")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, peak)
}

// DeletePeakHour removes a peak day.
// @Summary Delete a peak day
// @Tags PeakHour
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param id path string true "Peak hour ID"
// @Success 200 {object} response.Message "Peak hour deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/peak-hours/{lodgeId}/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePeakHour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePeakHour")
	defer scope.End()

	peak, err := handler.owned(ctx, r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, peak.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete peak hour")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Peak hour deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Peak hour deleted successfully")
}

func (handler *Handler) owned(ctx context.Context, r *http.Request) (dto.PeakHourResponse, error) {
	lodgeID, err := request.LodgeID(r)
	if err != nil {
		return dto.PeakHourResponse{}, err // nolint:wrapcheck
	}

	peak, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		return dto.PeakHourResponse{}, err // nolint:wrapcheck
	}

	return peak, request.Owned(lodgeID, peak.LodgeID, "peak hour") // nolint:wrapcheck
}
