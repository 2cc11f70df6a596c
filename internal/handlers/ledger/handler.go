package ledger

import (
	"context"
	"net/http"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/ledger/model"
	"lodgehub/internal/domains/ledger/model/dto"
	"lodgehub/internal/domains/ledger/service"
	"lodgehub/shared"
	"lodgehub/shared/constant"
	gDto "lodgehub/shared/dto"
	"lodgehub/transport/http/request"
	"lodgehub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

type lister func(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntriesResponse, error)

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ledger/{lodgeId}", func(routerGroup chi.Router) {
		routerGroup.Get("/incomes", handler.GetIncomes)
		routerGroup.Get("/expenses", handler.GetExpenses)
	})
}

// GetIncomes lists money received by a lodge.
// @Summary Get incomes
// @Tags Ledger
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param type query string false "Filter by type (BOOKING, PREBOOK, BILLING, ...)"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetEntriesResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/{lodgeId}/incomes [get]
// @Security BearerAuth
func (handler *Handler) GetIncomes(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "GetIncomes", model.IncomeTableName, handler.service.GetIncomes)
}

// GetExpenses lists money paid out by a lodge.
// @Summary Get expenses
// @Tags Ledger
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param type query string false "Filter by type (BILLING, CANCEL, PARTIAL_CANCEL, ...)"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetEntriesResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ledger/{lodgeId}/expenses [get]
// @Security BearerAuth
func (handler *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "GetExpenses", model.ExpenseTableName, handler.service.GetExpenses)
}

func (handler *Handler) serve(w http.ResponseWriter, r *http.Request, name, table string, list lister) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := shared.FilterByLodge(lodgeID, table)

	if typ := r.URL.Query().Get(model.FieldType); typ != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    typ,
			Table:    table,
		})
	}

	res, err := list(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ledger entries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
