package service_test

import (
	"context"
	"errors"
	"sharedhouse/internal/domains/booking/model"
	userModel "sharedhouse/internal/domains/user/model"
	gDto "sharedhouse/shared/dto"
	"sharedhouse/shared/failure"
	"slices"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

// memStore is an in-memory booking store. WithSpaceLock serializes callers
// per space the way the advisory lock does.
type memStore struct {
	mu       sync.Mutex
	locks    sync.Map
	bookings map[string]model.Booking
	users    map[string]userModel.User
	failWith error
}

func newMemStore(users ...userModel.User) *memStore {
	store := &memStore{
		bookings: map[string]model.Booking{},
		users:    map[string]userModel.User{},
	}

	for _, user := range users {
		store.users[user.ID] = user
	}

	return store
}

func (m *memStore) put(booking model.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings[booking.ID] = booking
}

func (m *memStore) snapshot() []model.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, b)
	}

	return out
}

func filterValue(filter gDto.FilterGroup, field string) string {
	for _, f := range filter.Filters {
		if flt, ok := f.(gDto.Filter); ok && flt.Field == field {
			value, _ := flt.Value.(string)

			return value
		}
	}

	return ""
}

func (m *memStore) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return model.Booking{}, m.failWith
	}

	return m.bookings[filterValue(filter, model.FieldID)], nil
}

func (m *memStore) Delete(_ context.Context, filter gDto.FilterGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return m.failWith
	}

	id := filterValue(filter, model.FieldID)

	booking, ok := m.bookings[id]
	if !ok || booking.UserID != filterValue(filter, model.FieldUserID) {
		return failure.NotFound("booking not found")
	}

	delete(m.bookings, id)

	return nil
}

func (m *memStore) WithSpaceLock(_ context.Context, spaceID string, fn func(tx *sqlx.Tx) error) error {
	lock, _ := m.locks.LoadOrStore(spaceID, &sync.Mutex{})
	spaceLock, _ := lock.(*sync.Mutex)

	spaceLock.Lock()
	defer spaceLock.Unlock()

	return fn(nil)
}

func (m *memStore) FindOverlappingTx(
	_ context.Context, _ *sqlx.Tx, spaceID string, start, end time.Time, excludeID string,
) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return model.Booking{}, m.failWith
	}

	for _, b := range m.bookings {
		if b.SharedSpaceID == spaceID && b.ID != excludeID && b.Overlaps(start, end) {
			return b, nil
		}
	}

	return model.Booking{}, nil
}

func (m *memStore) countActive(spaceID, userID string, now time.Time, excludeID string) int {
	count := 0

	for _, b := range m.bookings {
		if b.SharedSpaceID == spaceID && b.UserID == userID && b.ID != excludeID && b.IsActive(now) {
			count++
		}
	}

	return count
}

func (m *memStore) CountActive(_ context.Context, spaceID, userID string, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return 0, m.failWith
	}

	return m.countActive(spaceID, userID, now, ""), nil
}

func (m *memStore) CountActiveTx(
	_ context.Context, _ *sqlx.Tx, spaceID, userID string, now time.Time, excludeID string,
) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return 0, m.failWith
	}

	return m.countActive(spaceID, userID, now, excludeID), nil
}

func (m *memStore) InsertTx(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bookings[booking.ID]; ok {
		return errors.New("duplicate key")
	}

	m.bookings[booking.ID] = booking

	return nil
}

func (m *memStore) UpdateTx(_ context.Context, _ *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := filterValue(filter, model.FieldID)

	booking, ok := m.bookings[id]
	if !ok || booking.UserID != filterValue(filter, model.FieldUserID) {
		return failure.NotFound("booking not found")
	}

	booking.StartDate, _ = req[model.FieldStartDate].(time.Time)
	booking.EndDate, _ = req[model.FieldEndDate].(time.Time)
	m.bookings[id] = booking

	return nil
}

func (m *memStore) details(match func(model.Booking) bool) []model.BookingDetail {
	out := []model.BookingDetail{}

	for _, b := range m.bookings {
		if !match(b) {
			continue
		}

		user := m.users[b.UserID]
		out = append(out, model.BookingDetail{
			Booking:        b,
			Username:       user.Username,
			RoomNumber:     user.RoomNumber,
			ProfilePicture: user.ProfilePicture,
		})
	}

	slices.SortFunc(out, func(a, b model.BookingDetail) int {
		return a.StartDate.Compare(b.StartDate)
	})

	return out
}

func (m *memStore) FindInRange(_ context.Context, spaceID string, lower, upper time.Time) ([]model.BookingDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}

	return m.details(func(b model.Booking) bool {
		return b.SharedSpaceID == spaceID && b.Overlaps(lower, upper)
	}), nil
}

func (m *memStore) FindActiveByUser(_ context.Context, userID string, now time.Time) ([]model.BookingDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return nil, m.failWith
	}

	return m.details(func(b model.Booking) bool {
		return b.UserID == userID && b.IsActive(now)
	}), nil
}
