//go:build wireinject
// +build wireinject

package di

import (
	"sharedhouse/config"
	"sharedhouse/infras/jwt"
	"sharedhouse/infras/kafka"
	"sharedhouse/infras/otel"
	"sharedhouse/infras/postgres"
	"sharedhouse/infras/redis"
	"sharedhouse/infras/s3"
	"sharedhouse/internal/notification"
	"sharedhouse/permissions"
	"sharedhouse/shared/cache"
	"sharedhouse/transport/http"
	"sharedhouse/transport/http/middleware"
	"sharedhouse/transport/http/router"

	bookingRepository "sharedhouse/internal/domains/booking/repository"
	bookingService "sharedhouse/internal/domains/booking/service"
	sharedSpaceRepository "sharedhouse/internal/domains/sharedspace/repository"
	sharedSpaceService "sharedhouse/internal/domains/sharedspace/service"
	userRepository "sharedhouse/internal/domains/user/repository"
	userService "sharedhouse/internal/domains/user/service"

	bookingHandler "sharedhouse/internal/handlers/booking"
	sharedSpaceHandler "sharedhouse/internal/handlers/sharedspace"
	userHandler "sharedhouse/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Load,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	notification.NewSink,
	notification.NewStream,
)

var sharedSpaceDomain = wire.NewSet(
	sharedSpaceRepository.New,
	sharedSpaceService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	sharedSpaceDomain,
	userDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	sharedSpaceHandler.New,
	userHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
