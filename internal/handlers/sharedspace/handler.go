package sharedspace

import (
	"net/http"
	"sharedhouse/infras/otel"
	"sharedhouse/internal/domains/sharedspace/service"
	"sharedhouse/shared/constant"
	"sharedhouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.SharedSpace
	otel    otel.Otel
}

func New(service service.SharedSpace, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/shared-spaces", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSharedSpaces)
		routerGroup.Get("/{id}", handler.GetSharedSpaceByID)
	})
}

// GetSharedSpaces lists every bookable shared space.
// @Summary List shared spaces
// @Description List the shared spaces ordered by name code, with their booking policy.
// @Tags SharedSpace
// @Produce json
// @Success 200 {object} response.Data[dto.GetSharedSpacesResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shared-spaces [get]
// @Security BearerAuth
func (handler *Handler) GetSharedSpaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSharedSpaces")
	defer scope.End()

	spaces, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shared spaces")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, spaces)
}

// GetSharedSpaceByID retrieves a shared space by its ID.
// @Summary Get a shared space
// @Description Retrieve a shared space and its booking policy.
// @Tags SharedSpace
// @Produce json
// @Param id path string true "Shared space ID"
// @Success 200 {object} response.Data[dto.SharedSpaceResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shared-spaces/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetSharedSpaceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSharedSpaceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	space, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get shared space by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, space)
}
