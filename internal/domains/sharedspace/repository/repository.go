package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sharedhouse/infras/otel"
	"sharedhouse/infras/postgres"
	"sharedhouse/internal/domains/sharedspace/model"
	gDto "sharedhouse/shared/dto"
	gRepo "sharedhouse/shared/repository"
)

// SharedSpace is read only from the application's point of view; spaces are
// managed through migrations and administrative tooling.
type SharedSpace interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SharedSpace, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SharedSpace, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.SharedSpace]
}

func New(db *postgres.Connection, otel otel.Otel) SharedSpace {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SharedSpace](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
