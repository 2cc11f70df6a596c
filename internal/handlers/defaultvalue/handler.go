package defaultvalue

import (
	"context"
	"net/http"

	"lodgehub/infras/otel"
	"lodgehub/internal/domains/defaultvalue/model"
	"lodgehub/internal/domains/defaultvalue/model/dto"
	"lodgehub/internal/domains/defaultvalue/service"
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
	service service.DefaultValue
	otel    otel.Otel
}

func New(service service.DefaultValue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/default-values", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDefaultValues)
		routerGroup.Get("/{lodgeId}", handler.GetDefaultValues)
		routerGroup.Get("/{lodgeId}/{id}", handler.GetDefaultValueByID)
		routerGroup.Patch("/{lodgeId}/{id}", handler.UpdateDefaultValue)
		routerGroup.Delete("/{lodgeId}/{id}", handler.DeleteDefaultValue)
	})
}

// CreateDefaultValues stores tariffs of one type, replacing existing reasons.
// @Summary Create default values
// @Description Upserts reason/amount pairs of one type, e.g. rents, GST or cancellation percentages.
// @Tags DefaultValue
// @Accept json
// @Produce json
// @Param request body dto.CreateDefaultValuesRequest true "Create Default Values Request"
// @Success 201 {object} response.Message "Default values saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/default-values [post]
// @Security BearerAuth
func (handler *Handler) CreateDefaultValues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDefaultValues")
	defer scope.End()

	req := dto.CreateDefaultValuesRequest{}

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

	if err := handler.service.CreateMultiple(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create default values")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Default values saved successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Default values saved successfully")
}

// GetDefaultValues lists the tariffs of a lodge.
// @Summary Get default values
// @Tags DefaultValue
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param type query string false "Filter by type"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetDefaultValuesResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/default-values/{lodgeId} [get]
// @Security BearerAuth
func (handler *Handler) GetDefaultValues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDefaultValues")
	defer scope.End()

	lodgeID, err := request.LodgeID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := shared.FilterByLodge(lodgeID, model.TableName)

	if typ := r.URL.Query().Get(model.FieldType); typ != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    typ,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get default values")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetDefaultValueByID retrieves one tariff.
// @Summary Get a default value
// @Tags DefaultValue
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param id path string true "Default value ID"
// @Success 200 {object} dto.DefaultValueResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/default-values/{lodgeId}/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDefaultValueByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDefaultValueByID")
	defer scope.End()

	value, err := handler.owned(ctx, r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get default value")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, value)
}

// UpdateDefaultValue updates one tariff.
// @Summary Update a default value
// @Tags DefaultValue
// @Accept json
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param id path string true "Default value ID"
// @Param request body dto.UpdateDefaultValueRequest true "Update Default Value Request"
// @Success 200 {object} response.Message "Default value updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/default-values/{lodgeId}/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDefaultValue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDefaultValue")
	defer scope.End()

	req := dto.UpdateDefaultValueRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	value, err := handler.owned(ctx, r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, value.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update default value")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Default value updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Default value updated successfully")
}

// DeleteDefaultValue removes one tariff.
// @Summary Delete a default value
// @Tags DefaultValue
// @Produce json
// @Param lodgeId path int true "Lodge ID"
// @Param id path string true "Default value ID"
// @Success 200 {object} response.Message "Default value deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/default-values/{lodgeId}/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDefaultValue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDefaultValue")
	defer scope.End()

	value, err := handler.owned(ctx, r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, value.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete default value")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Default value deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Default value deleted successfully")
}

func (handler *Handler) owned(ctx context.Context, r *http.Request) (dto.DefaultValueResponse, error) {
	lodgeID, err := request.LodgeID(r)
	if err != nil {
		return dto.DefaultValueResponse{}, err // nolint:wrapcheck
	}

	value, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		return dto.DefaultValueResponse{}, err // nolint:wrapcheck
	}

	return value, request.Owned(lodgeID, value.LodgeID, "default value") // nolint:wrapcheck
}
