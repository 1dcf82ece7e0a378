package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sharedhouse/config"
	"sharedhouse/infras/jwt"
	jwtMocks "sharedhouse/infras/jwt/mocks"
	"sharedhouse/infras/otel/mocks"
	"sharedhouse/permissions"
	cacheMocks "sharedhouse/shared/cache/mocks"
	"sharedhouse/shared/constant"
	"sharedhouse/transport/http/middleware"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func echoUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(constant.ContextKeyUserID).(string)
	role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

	_, _ = w.Write([]byte(userID + "|" + role))
}

func newAuthRouter(t *testing.T, jwtService jwt.JWT) chi.Router {
	t.Helper()

	table, err := permissions.NewTable(false,
		permissions.Route{Pattern: "/v1/shared-spaces", Method: http.MethodGet, Public: true},
		permissions.Route{Pattern: "/v1/admin/{id}", Method: http.MethodGet, Roles: []string{constant.RoleAdmin}},
	)
	require.NoError(t, err)

	auth := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), table)

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(auth.Auth, auth.RBAC)
		r.Get("/shared-spaces", echoUser)
		r.Get("/bookings/mine", echoUser)
		r.Get("/admin/{id}", echoUser)
	})

	return router
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(m *jwtMocks.MockJWT)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "public route needs no token",
			path:       "/v1/shared-spaces",
			setup:      func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusOK,
			wantBody:   "|",
		},
		{
			name:       "missing header",
			path:       "/v1/bookings/mine",
			setup:      func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			path:       "/v1/bookings/mine",
			header:     "Basic abc",
			setup:      func(*jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			path:   "/v1/bookings/mine",
			header: "Bearer old",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("old").Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token defaults to the user role",
			path:   "/v1/bookings/mine",
			header: "Bearer good",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("good").Return(&jwt.Claims{UserID: "u1", Username: "alice"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "u1|user",
		},
		{
			name:   "role not allowed",
			path:   "/v1/admin/42",
			header: "Bearer good",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("good").Return(&jwt.Claims{UserID: "u1", Role: constant.RoleUser}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "admin allowed",
			path:   "/v1/admin/42",
			header: "Bearer good",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("good").Return(&jwt.Claims{UserID: "u9", Role: constant.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "u9|admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := jwtMocks.NewMockJWT(gomock.NewController(t))
			tt.setup(jwtService)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			newAuthRouter(t, jwtService).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func newLimitedHandler(t *testing.T, redisCache *cacheMocks.MockRedisCache) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache)

	return app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestRateLimit(t *testing.T) {
	t.Run("within the window", func(t *testing.T) {
		redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		redisCache.EXPECT().Increment(gomock.Any(), "limiter:10.0.0.1:curl", 60).Return(int64(2), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/shared-spaces", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")
		req.Header.Set("User-Agent", "curl")

		rec := httptest.NewRecorder()
		newLimitedHandler(t, redisCache).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("over the limit", func(t *testing.T) {
		redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		redisCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)

		rec := httptest.NewRecorder()
		newLimitedHandler(t, redisCache).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOO_MANY_REQUESTS")
	})

	t.Run("counter store down", func(t *testing.T) {
		redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		redisCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("dial tcp"))

		rec := httptest.NewRecorder()
		newLimitedHandler(t, redisCache).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "req-1", seen)
}
