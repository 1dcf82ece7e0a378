package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"sharedhouse/config"
	"sharedhouse/infras/otel"
	"sharedhouse/infras/s3"
	"sharedhouse/internal/domains/booking/model"
	"sharedhouse/internal/domains/booking/model/dto"
	"sharedhouse/internal/domains/booking/repository"
	spaceService "sharedhouse/internal/domains/sharedspace/service"
	userModel "sharedhouse/internal/domains/user/model"
	userService "sharedhouse/internal/domains/user/service"
	"sharedhouse/internal/notification"
	"sharedhouse/shared"
	"sharedhouse/shared/cache"
	"sharedhouse/shared/constant"
	gDto "sharedhouse/shared/dto"
	"sharedhouse/shared/failure"
	"sharedhouse/shared/timezone"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheBookingRange = "booking:range"
	cacheRangeVersion = "ver"
)

// Booking decides whether booking intents may be committed.
type Booking interface {
	// ProposeBooking validates a create (isUpdate=false) or update intent of
	// the acting user and commits it when every rule passes.
	ProposeBooking(ctx context.Context, req dto.ProposeBookingRequest, isUpdate bool) (dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	ListInRange(ctx context.Context, query dto.RangeQuery) (dto.GetBookingsResponse, error)
	// CountActive uses the same predicate as the quota rule.
	CountActive(ctx context.Context, sharedSpaceID string) (dto.CountResponse, error)
	ListMine(ctx context.Context) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	spaces spaceService.SharedSpace
	users  userService.User
	sink   notification.Sink
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	s3     s3.S3
}

func New(
	repo repository.Booking,
	spaces spaceService.SharedSpace,
	users userService.User,
	sink notification.Sink,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Booking {
	return &serviceImpl{
		repo:   repo,
		spaces: spaces,
		users:  users,
		sink:   sink,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		s3:     s3,
	}
}

func actingUser(ctx context.Context) (string, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return "", failure.Unauthenticated("authentication required") //nolint:wrapcheck
	}

	return userID, nil
}

func (s *serviceImpl) ProposeBooking(ctx context.Context, req dto.ProposeBookingRequest, isUpdate bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ProposeBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := actingUser(ctx)
	if err != nil {
		return res, err
	}

	if err = checkPresence(req, isUpdate); err != nil {
		return res, err
	}

	now := timezone.Now()
	spaceID := req.SharedSpaceID

	var existing model.Booking

	if isUpdate {
		existing, err = s.findOwned(ctx, req.BookingID, userID)
		if err != nil {
			return res, err
		}

		spaceID = existing.SharedSpaceID
	}

	space, err := s.spaces.FindByID(ctx, spaceID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	iv, err := parseInterval(req)
	if err != nil {
		return res, err
	}

	if err = checkTiming(space, iv, now); err != nil {
		return res, err
	}

	owner, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if failure.Is(err, failure.CodeNotFound) {
			return res, failure.Unauthorized("your account is no longer active") //nolint:wrapcheck
		}

		return res, err //nolint:wrapcheck
	}

	booking := model.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		SharedSpaceID: spaceID,
	}
	booking.CreatedAt = now

	if isUpdate {
		booking = existing
	}

	booking.StartDate = iv.start
	booking.EndDate = iv.end
	booking.UpdatedAt = now

	err = s.repo.WithSpaceLock(ctx, spaceID, func(tx *sqlx.Tx) error {
		overlap, err := s.repo.FindOverlappingTx(ctx, tx, spaceID, iv.start, iv.end, existing.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if overlap.ID != constant.Empty {
			return failure.Conflict("time slot already booked") //nolint:wrapcheck
		}

		count, err := s.repo.CountActiveTx(ctx, tx, spaceID, userID, now, existing.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if count >= space.MaxBookingByUser {
			return failure.QuotaExceeded(fmt.Sprintf( //nolint:wrapcheck
				"you already hold %d of %d active bookings for this space", count, space.MaxBookingByUser))
		}

		if isUpdate {
			return s.repo.UpdateTx(ctx, tx, map[string]any{ //nolint:wrapcheck
				model.FieldStartDate:    booking.StartDate,
				model.FieldEndDate:      booking.EndDate,
				constant.FieldUpdatedAt: booking.UpdatedAt,
			}, ownedBy(booking.ID, userID))
		}

		return s.repo.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})
	if err != nil {
		if isUpdate && failure.Is(err, failure.CodeNotFound) {
			return res, failure.Unauthorized("unauthorized or booking not found") //nolint:wrapcheck
		}

		if failure.As(err) == nil {
			log.Error().Err(err).Str("sharedSpaceId", spaceID).Msg("failed to commit booking")
		}

		return res, failure.Storage(err) //nolint:wrapcheck
	}

	s.bumpRangeVersion(ctx, spaceID)

	pictureURL := s.pictureURL(ctx, owner.Picture())
	res = dto.NewBookingResponse(booking, owner.Owner(), pictureURL)

	eventName := constant.EventNewBooking
	if isUpdate {
		eventName = constant.EventUpdatedBooking
	}

	s.afterCommit(ctx, eventName, spaceID, dto.ToNotificationPayload(booking, owner.Owner(), pictureURL))

	return res, nil
}

func (s *serviceImpl) DeleteBooking(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.DeleteBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	if bookingID == constant.Empty {
		return failure.DataMissing("booking id is required") //nolint:wrapcheck
	}

	booking, err := s.findByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if booking.UserID != userID {
		return failure.Forbidden("you are not allowed to delete this booking") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, ownedBy(booking.ID, userID)); err != nil {
		if failure.As(err) == nil {
			log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to delete booking")
		}

		return failure.Storage(err) //nolint:wrapcheck
	}

	s.bumpRangeVersion(ctx, booking.SharedSpaceID)

	go func() {
		c := context.WithoutCancel(ctx)

		var owner userModel.Owner

		if user, err := s.users.FindByID(c, userID); err != nil {
			log.Warn().Err(err).Str("userId", userID).Msg("deleted booking event sent without owner details")
		} else {
			owner = user.Owner()
		}

		s.emit(c, constant.EventDeletedBooking, booking.SharedSpaceID, dto.ToDeletedPayload(booking, owner))
	}()

	return nil
}

func (s *serviceImpl) ListInRange(ctx context.Context, query dto.RangeQuery) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListInRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if query.SharedSpaceID == constant.Empty || query.StartDate == constant.Empty || query.EndDate == constant.Empty {
		return res, failure.DataMissing("sharedSpaceId, startDate and endDate are required") //nolint:wrapcheck
	}

	lower, upper, err := query.Window()
	if err != nil {
		return res, failure.InvalidData("invalid date format, please use YYYY-MM-DD for startDate and endDate") //nolint:wrapcheck
	}

	if query.StartDate > query.EndDate {
		return res, failure.InvalidData("startDate must not be after endDate") //nolint:wrapcheck
	}

	if _, err = s.spaces.FindByID(ctx, query.SharedSpaceID); err != nil {
		return res, err //nolint:wrapcheck
	}

	// The version is read before the bookings so a listing that races a
	// commit is saved under the version the commit retires.
	version, cacheable := s.rangeVersion(ctx, query.SharedSpaceID)
	cacheKey := shared.BuildCacheKey(cacheBookingRange, query.SharedSpaceID,
		"v"+strconv.FormatInt(version, 10), query.StartDate, query.EndDate)

	if cacheable {
		if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
			log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking range")

			return res, nil
		}
	}

	details, err := s.repo.FindInRange(ctx, query.SharedSpaceID, lower, upper)
	if err != nil {
		log.Error().Err(err).Str("sharedSpaceId", query.SharedSpaceID).Msg("failed to list bookings in range")

		return res, failure.Storage(fmt.Errorf("failed to list bookings: %w", err)) //nolint:wrapcheck
	}

	res = dto.NewGetBookingsResponse(details)

	if !cacheable {
		return res, nil
	}

	go func(data dto.GetBookingsResponse) {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, data, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking range to cache")
		}
	}(res)

	return res, nil
}

func (s *serviceImpl) CountActive(ctx context.Context, sharedSpaceID string) (res dto.CountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CountActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := actingUser(ctx)
	if err != nil {
		return res, err
	}

	if sharedSpaceID == constant.Empty {
		return res, failure.DataMissing("shared space id is required") //nolint:wrapcheck
	}

	space, err := s.spaces.FindByID(ctx, sharedSpaceID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	count, err := s.repo.CountActive(ctx, sharedSpaceID, userID, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("sharedSpaceId", sharedSpaceID).Msg("failed to count active bookings")

		return res, failure.Storage(fmt.Errorf("failed to count bookings: %w", err)) //nolint:wrapcheck
	}

	return dto.NewCountResponse(count, space.MaxBookingByUser), nil
}

func (s *serviceImpl) ListMine(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := actingUser(ctx)
	if err != nil {
		return res, err
	}

	details, err := s.repo.FindActiveByUser(ctx, userID, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("failed to list user bookings")

		return res, failure.Storage(fmt.Errorf("failed to list bookings: %w", err)) //nolint:wrapcheck
	}

	return dto.NewGetBookingsResponse(details), nil
}

// findOwned resolves the booking to update. Missing and foreign bookings are
// reported alike so that other users' bookings are not disclosed.
func (s *serviceImpl) findOwned(ctx context.Context, bookingID, userID string) (model.Booking, error) {
	booking, err := s.findByID(ctx, bookingID)
	if err != nil {
		return booking, err
	}

	if booking.ID == constant.Empty || booking.UserID != userID {
		return model.Booking{}, failure.Unauthorized("unauthorized or booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

// findByID returns the zero booking when bookingID matches nothing.
func (s *serviceImpl) findByID(ctx context.Context, bookingID string) (model.Booking, error) {
	if uuid.Validate(bookingID) != nil {
		return model.Booking{}, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to get booking")

		return booking, failure.Storage(fmt.Errorf("failed to get booking: %w", err)) //nolint:wrapcheck
	}

	return booking, nil
}

func ownedBy(bookingID, userID string) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: model.TableName},
		gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: model.TableName},
	)
}

// afterCommit broadcasts the event without holding up the response.
func (s *serviceImpl) afterCommit(ctx context.Context, name, spaceID string, payload any) {
	go s.emit(context.WithoutCancel(ctx), name, spaceID, payload)
}

func rangeVersionKey(spaceID string) string {
	return shared.BuildCacheKey(cacheBookingRange, cacheRangeVersion, spaceID)
}

// rangeVersion returns the space's current listing version. A missing counter
// is version 0; any other cache failure disables caching for the call.
func (s *serviceImpl) rangeVersion(ctx context.Context, spaceID string) (int64, bool) {
	var version int64

	err := s.cache.Get(ctx, rangeVersionKey(spaceID), &version)
	if err == nil {
		return version, true
	}

	if errors.Is(err, cache.Nil) {
		return 0, true
	}

	log.Warn().Err(err).Str("sharedSpaceId", spaceID).Msg("booking range cache bypassed")

	return 0, false
}

// bumpRangeVersion retires every cached listing of the space. It runs before
// the mutation is acknowledged so the caller's next listing sees the change.
func (s *serviceImpl) bumpRangeVersion(ctx context.Context, spaceID string) {
	c := context.WithoutCancel(ctx)

	if _, err := s.cache.Increment(c, rangeVersionKey(spaceID), 0); err != nil {
		log.Error().Err(err).Str("sharedSpaceId", spaceID).Msg("failed to bump booking range version")

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheBookingRange, spaceID))
	}
}

func (s *serviceImpl) emit(ctx context.Context, name, spaceID string, payload any) {
	event, err := notification.NewEvent(name, spaceID, payload)
	if err != nil {
		log.Error().Err(err).Str("event", name).Msg("failed to build booking event")

		return
	}

	if err := s.sink.Emit(ctx, event); err != nil {
		log.Error().Err(err).Str("event", name).Str("sharedSpaceId", spaceID).Msg("failed to emit booking event")
	}
}

func (s *serviceImpl) pictureURL(ctx context.Context, key string) string {
	url, err := s.s3.ObjectURL(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve profile picture")

		return constant.Empty
	}

	return url
}
