package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=SharedSpace=MockSharedSpaceService

import (
	"context"
	"fmt"
	"sharedhouse/config"
	"sharedhouse/infras/otel"
	"sharedhouse/infras/s3"
	"sharedhouse/internal/domains/sharedspace/model"
	"sharedhouse/internal/domains/sharedspace/model/dto"
	"sharedhouse/internal/domains/sharedspace/repository"
	"sharedhouse/shared"
	"sharedhouse/shared/cache"
	"sharedhouse/shared/constant"
	gDto "sharedhouse/shared/dto"
	"sharedhouse/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetSharedSpace = "sharedspace:get"
)

// SharedSpace is the catalog of bookable spaces.
type SharedSpace interface {
	// FindByID returns the space policy or a NOT_FOUND failure.
	FindByID(ctx context.Context, id string) (model.SharedSpace, error)
	Get(ctx context.Context, id string) (dto.SharedSpaceResponse, error)
	GetAll(ctx context.Context) (dto.GetSharedSpacesResponse, error)
}

type serviceImpl struct {
	repo  repository.SharedSpace
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.SharedSpace, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) SharedSpace {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) FindByID(ctx context.Context, id string) (res model.SharedSpace, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sharedspace.FindByID")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if uuid.Validate(id) != nil {
		return res, failure.NotFound("shared space not found") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetSharedSpace, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for shared space")

		return res, nil
	}

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("sharedSpaceId", id).Msg("failed to get shared space")

		return res, failure.Storage(fmt.Errorf("failed to get shared space: %w", err)) //nolint:wrapcheck
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("shared space not found") //nolint:wrapcheck
	}

	go func(space model.SharedSpace) {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, space, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save shared space to cache")
		}
	}(res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SharedSpaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sharedspace.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	space, err := s.FindByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(space, s.pictureURL(ctx, space.Picture))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetSharedSpacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sharedspace.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx, gDto.SortedBy(model.FieldNameCode, gDto.SortDirAsc), gDto.And())
	if err != nil {
		log.Error().Err(err).Msg("failed to get shared spaces")

		return res, failure.Storage(fmt.Errorf("failed to get shared spaces: %w", err)) //nolint:wrapcheck
	}

	res.SharedSpaces = make([]dto.SharedSpaceResponse, len(models))
	for i, space := range models {
		res.SharedSpaces[i].FromModel(space, s.pictureURL(ctx, space.Picture))
	}

	res.Total = len(models)

	return res, nil
}

// pictureURL degrades to an empty picture rather than failing the listing.
func (s *serviceImpl) pictureURL(ctx context.Context, key string) string {
	url, err := s.s3.ObjectURL(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("picture", key).Msg("failed to resolve shared space picture")

		return constant.Empty
	}

	return url
}
