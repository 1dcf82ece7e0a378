package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"fmt"
	"sharedhouse/infras/otel"
	"sharedhouse/infras/s3"
	"sharedhouse/internal/domains/user/model"
	"sharedhouse/internal/domains/user/model/dto"
	"sharedhouse/internal/domains/user/repository"
	"sharedhouse/shared"
	"sharedhouse/shared/constant"
	"sharedhouse/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// User reads resident accounts. Reads always go to the store so that callers
// see the current username, room and avatar rather than a session copy.
type User interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	GetMe(ctx context.Context) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.User, otel otel.Otel, s3 s3.S3) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
		s3:   s3,
	}
}

// FindByID returns an active user, or NOT_FOUND.
func (s *serviceImpl) FindByID(ctx context.Context, id string) (res model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.FindByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.NotFound("user not found") //nolint:wrapcheck
	}

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("userId", id).Msg("failed to get user")

		return res, failure.Storage(fmt.Errorf("failed to get user: %w", err)) //nolint:wrapcheck
	}

	if res.ID == constant.Empty || !res.IsActive {
		return model.User{}, failure.NotFound("user not found") //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetMe(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetMe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthenticated("authentication required") //nolint:wrapcheck
	}

	user, err := s.FindByID(ctx, userID)
	if err != nil {
		if failure.Is(err, failure.CodeNotFound) {
			return res, failure.Unauthenticated("account is no longer active") //nolint:wrapcheck
		}

		return res, err
	}

	pictureURL, err := s.s3.ObjectURL(ctx, user.Picture())
	if err != nil {
		log.Warn().Err(err).Str("userId", userID).Msg("failed to resolve profile picture")

		pictureURL = constant.Empty
		err = nil
	}

	res.FromModel(user, pictureURL)

	return res, nil
}
