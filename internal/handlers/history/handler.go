package history

import (
	"context"
	"net/http"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/history/model/dto"
	"lodgehub/internal/domains/history/service"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/transport/http/request"
	"lodgehub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.History
	otel    otel.Otel
}

func New(service service.History, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

type view func(ctx context.Context, lodgeID int64, params gDto.QueryParams) (dto.GetHistoryResponse, error)

func (handler *Handler) Router(router chi.Router) {
	router.Route("/history/{lodgeId}", func(routerGroup chi.Router) {
		routerGroup.Get("/booked", handler.GetBooked)
		routerGroup.Get("/cancelled", handler.GetCancelled)
		routerGroup.Get("/partial-cancelled", handler.GetPartialCancelled)
		routerGroup.Get("/prebooked", handler.GetPreBooked)
	})
}

// GetBooked lists booked and billed stays.
// @Summary Booked history
// @Tags History
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetHistoryResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history/{lodgeId}/booked [get]
// @Security BearerAuth
func (handler *Handler) GetBooked(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "GetBooked", handler.service.Booked)
}

// GetCancelled lists fully cancelled bookings with their cancellation.
// @Summary Cancelled history
// @Tags History
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Success 200 {object} dto.GetHistoryResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history/{lodgeId}/cancelled [get]
// @Security BearerAuth
func (handler *Handler) GetCancelled(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "GetCancelled", handler.service.Cancelled)
}

// GetPartialCancelled lists bookings that released some of their rooms.
// @Summary Partially cancelled history
// @Tags History
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Success 200 {object} dto.GetHistoryResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history/{lodgeId}/partial-cancelled [get]
// @Security BearerAuth
func (handler *Handler) GetPartialCancelled(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "GetPartialCancelled", handler.service.PartialCancelled)
}

// GetPreBooked lists pre-bookings.
// @Summary Pre-booked history
// @Tags History
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Success 200 {object} dto.GetHistoryResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/history/{lodgeId}/prebooked [get]
// @Security BearerAuth
func (handler *Handler) GetPreBooked(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "GetPreBooked", handler.service.PreBooked)
}

func (handler *Handler) serve(w http.ResponseWriter, r *http.Request, name string, load view) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := load(ctx, lodgeID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("view", name).Msg("failed to get booking history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
