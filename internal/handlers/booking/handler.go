package booking

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sharedhouse/config"
	"sharedhouse/infras/otel"
	"sharedhouse/internal/domains/booking/model/dto"
	"sharedhouse/internal/domains/booking/service"
	"sharedhouse/internal/notification"
	"sharedhouse/shared/constant"
	"sharedhouse/shared/failure"
	"sharedhouse/shared/logger"
	"sharedhouse/shared/validator"
	"sharedhouse/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Booking
	stream  notification.Stream
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Booking, stream notification.Stream, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		stream:  stream,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/mine", handler.GetMyBookings)
		routerGroup.Get("/events", handler.StreamEvents)
		routerGroup.Get("/shared-spaces/{id}", handler.GetBookingsInRange)
		routerGroup.Get("/shared-spaces/{id}/count", handler.CountActiveBookings)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

// CreateBooking proposes a new booking for the authenticated user.
// @Summary Create a booking
// @Description Book a shared space. The interval must be in the future, within the space's working hours and duration cap, free of overlaps and within the user's quota.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(r.Context()).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.ProposeBooking(ctx, req.ToProposal(), false)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(r.Context()).Error().Err(err).Str("sharedSpaceId", req.SharedSpaceID).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + booking.UserID)

	response.WithJSON(w, http.StatusCreated, booking)
}

// UpdateBooking moves one of the authenticated user's bookings.
// @Summary Update a booking
// @Description Change the interval of an owned booking. The booking stays in its shared space; the same rules as creation apply, ignoring the booking itself.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(r.Context()).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.ProposeBooking(ctx, req.ToProposal(id), true)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully by user " + booking.UserID)

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking removes one of the authenticated user's bookings.
// @Summary Delete a booking
// @Description Delete an owned booking, past or upcoming.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteBooking(ctx, id); err != nil {
		scope.TraceError(err)
		logger.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// GetBookingsInRange lists a space's bookings between two calendar days.
// @Summary List bookings of a shared space
// @Description List bookings intersecting [startDate - 1 day, endDate + 2 days) with their owners. Times are shown in the application timezone.
// @Tags Booking
// @Produce json
// @Param id path string true "Shared space ID"
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/shared-spaces/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingsInRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsInRange")
	defer scope.End()

	query := dto.RangeQuery{
		SharedSpaceID: chi.URLParam(r, constant.RequestParamID),
		StartDate:     r.URL.Query().Get(constant.RequestParamStartDate),
		EndDate:       r.URL.Query().Get(constant.RequestParamEndDate),
	}

	bookings, err := handler.service.ListInRange(ctx, query)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(r.Context()).Error().Err(err).Str("sharedSpaceId", query.SharedSpaceID).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// CountActiveBookings reports the authenticated user's quota usage for a space.
// @Summary Count my active bookings in a shared space
// @Description Count the user's bookings that have not ended yet, with the space's maximum.
// @Tags Booking
// @Produce json
// @Param id path string true "Shared space ID"
// @Success 200 {object} response.Data[dto.CountResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/shared-spaces/{id}/count [get]
// @Security BearerAuth
func (handler *Handler) CountActiveBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CountActiveBookings")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	count, err := handler.service.CountActive(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(r.Context()).Error().Err(err).Str("sharedSpaceId", id).Msg("failed to count bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, count)
}

// GetMyBookings lists the authenticated user's active bookings.
// @Summary List my bookings
// @Description List the user's bookings that have not ended yet, across all shared spaces.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	bookings, err := handler.service.ListMine(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(r.Context()).Error().Err(err).Msg("failed to list my bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// StreamEvents pushes booking events to the client as server-sent events.
// @Summary Stream booking events
// @Description Server-sent events named newBooking, updatedBooking and deletedBooking. Pass sharedSpaceId to receive one space only.
// @Tags Booking
// @Produce text/event-stream
// @Param sharedSpaceId query string false "Shared space ID"
// @Success 200 {object} notification.Event
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/events [get]
// @Security BearerAuth
func (handler *Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.WithError(w, failure.InternalError(fmt.Errorf("streaming unsupported by %T", w)))

		return
	}

	events, err := handler.stream.Subscribe(ctx)
	if err != nil {
		logger.Ctx(r.Context()).Error().Err(err).Msg("failed to subscribe to booking events")

		response.WithError(w, failure.InternalError(err))

		return
	}

	spaceID := r.URL.Query().Get(constant.RequestParamSharedSpaceID)

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeEventStream)
	w.Header().Set(constant.RequestHeaderCacheControl, "no-cache")
	w.Header().Set(constant.RequestHeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(time.Duration(max(handler.cfg.Notification.HeartbeatSeconds, 1)) * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case event, ok := <-events:
			if !ok {
				return
			}

			if spaceID != constant.Empty && event.SharedSpaceID != spaceID {
				continue
			}

			if err := writeEvent(w, event); err != nil {
				logger.Ctx(r.Context()).Warn().Err(err).Msg("booking event stream closed")

				return
			}
		}

		flusher.Flush()
	}
}

func writeEvent(w http.ResponseWriter, event notification.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	return nil
}
