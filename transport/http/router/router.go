package router

import (
	"sharedhouse/internal/handlers/booking"
	"sharedhouse/internal/handlers/sharedspace"
	"sharedhouse/internal/handlers/user"
	"sharedhouse/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	SharedSpace sharedspace.Handler
	User        user.Handler
	Booking     booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.Recoverer,
		r.App.RequestID,
		r.App.Tracing,
		r.App.AccessLog,
		r.App.CORS(),
		r.App.RateLimit(),
	)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Auth, r.Auth.RBAC)

		r.DomainHandlers.SharedSpace.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
