package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sharedhouse/infras/otel"
	"sharedhouse/infras/postgres"
	"sharedhouse/internal/domains/booking/model"
	"sharedhouse/shared/constant"
	gDto "sharedhouse/shared/dto"
	"sharedhouse/shared/logger"
	gRepo "sharedhouse/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	// hashtextextended keeps the full uuid in the 64 bit lock key space.
	queryAdvisoryLock = "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))"

	argLower     = "lower_bound"
	argUpper     = "upper_bound"
	argNow       = "now"
	argExcludeID = "exclude_id"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	// WithSpaceLock runs fn in a write transaction holding the space's
	// advisory lock. Proposals for the same space are serialized.
	WithSpaceLock(ctx context.Context, spaceID string, fn func(tx *sqlx.Tx) error) error
	FindOverlappingTx(ctx context.Context, tx *sqlx.Tx, spaceID string, start, end time.Time, excludeID string) (model.Booking, error)
	CountActive(ctx context.Context, spaceID, userID string, now time.Time) (int, error)
	CountActiveTx(ctx context.Context, tx *sqlx.Tx, spaceID, userID string, now time.Time, excludeID string) (int, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error

	FindInRange(ctx context.Context, spaceID string, lower, upper time.Time) ([]model.BookingDetail, error)
	FindActiveByUser(ctx context.Context, userID string, now time.Time) ([]model.BookingDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	details gRepo.Repository[model.BookingDetail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.BookingDetail](model.EntityName+"_detail", model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) WithSpaceLock(ctx context.Context, spaceID string, fn func(tx *sqlx.Tx) error) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.WithSpaceLock")
	defer scope.End()

	scope.SetAttribute("shared_space_id", spaceID)

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, queryAdvisoryLock, spaceID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock shared space: %w", err)
		}

		return fn(tx)
	})

	scope.TraceIfError(err)

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) FindOverlappingTx(
	ctx context.Context, tx *sqlx.Tx, spaceID string, start, end time.Time, excludeID string,
) (model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindOverlappingTx")
	defer scope.End()

	return r.GetTx(ctx, tx, overlapFilter(spaceID, start, end, excludeID)) //nolint:wrapcheck
}

func (r *repositoryImpl) CountActive(ctx context.Context, spaceID, userID string, now time.Time) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountActive")
	defer scope.End()

	return r.Count(ctx, activeFilter(spaceID, userID, now, constant.Empty)) //nolint:wrapcheck
}

func (r *repositoryImpl) CountActiveTx(
	ctx context.Context, tx *sqlx.Tx, spaceID, userID string, now time.Time, excludeID string,
) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountActiveTx")
	defer scope.End()

	return r.CountTx(ctx, tx, activeFilter(spaceID, userID, now, excludeID)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindInRange(ctx context.Context, spaceID string, lower, upper time.Time) ([]model.BookingDetail, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindInRange")
	defer scope.End()

	filter := overlapFilter(spaceID, lower, upper, constant.Empty)

	return r.details.GetAll(ctx, byStartDate(), filter) //nolint:wrapcheck
}

func (r *repositoryImpl) FindActiveByUser(ctx context.Context, userID string, now time.Time) ([]model.BookingDetail, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindActiveByUser")
	defer scope.End()

	filter := gDto.And(
		gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: model.TableName},
		gDto.Filter{ArgName: argNow, Field: model.FieldEndDate, Operator: gDto.FilterOperatorGreaterEq, Value: now, Table: model.TableName},
	)

	return r.details.GetAll(ctx, byStartDate(), filter) //nolint:wrapcheck
}

func byStartDate() gDto.QueryParams {
	return gDto.SortedBy(model.TableName+"."+model.FieldStartDate, gDto.SortDirAsc)
}

// overlapFilter matches bookings of spaceID intersecting [start, end).
func overlapFilter(spaceID string, start, end time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldSharedSpaceID, Operator: gDto.FilterOperatorEq, Value: spaceID, Table: model.TableName},
		gDto.Filter{ArgName: argUpper, Field: model.FieldStartDate, Operator: gDto.FilterOperatorLess, Value: end, Table: model.TableName},
		gDto.Filter{ArgName: argLower, Field: model.FieldEndDate, Operator: gDto.FilterOperatorGreater, Value: start, Table: model.TableName},
	}

	return gDto.And(withExclusion(filters, excludeID)...)
}

// activeFilter matches the bookings counted against a user's quota.
func activeFilter(spaceID, userID string, now time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldSharedSpaceID, Operator: gDto.FilterOperatorEq, Value: spaceID, Table: model.TableName},
		gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: model.TableName},
		gDto.Filter{ArgName: argNow, Field: model.FieldEndDate, Operator: gDto.FilterOperatorGreaterEq, Value: now, Table: model.TableName},
	}

	return gDto.And(withExclusion(filters, excludeID)...)
}

func withExclusion(filters []any, excludeID string) []any {
	if excludeID == constant.Empty {
		return filters
	}

	return append(filters, gDto.Filter{
		ArgName:  argExcludeID,
		Field:    model.FieldID,
		Operator: gDto.FilterOperatorNotEq,
		Value:    excludeID,
		Table:    model.TableName,
	})
}
