package dto_test

import (
	"encoding/json"
	"sharedhouse/internal/domains/booking/model"
	"sharedhouse/internal/domains/booking/model/dto"
	userModel "sharedhouse/internal/domains/user/model"
	"sharedhouse/shared/constant"
	"sharedhouse/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var booking = model.Booking{
	ID:            "b1",
	UserID:        "u1",
	SharedSpaceID: "s1",
	StartDate:     time.Date(2030, 5, 10, 10, 0, 0, 0, time.UTC),
	EndDate:       time.Date(2030, 5, 10, 11, 0, 0, 0, time.UTC),
}

var owner = userModel.Owner{ID: "u1", Username: "alice", RoomNumber: "201"}

func TestRangeQuery_Window(t *testing.T) {
	lower, upper, err := dto.RangeQuery{StartDate: "2030-05-10", EndDate: "2030-05-10"}.Window()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 5, 9, 0, 0, 0, 0, time.UTC), lower)
	assert.Equal(t, time.Date(2030, 5, 12, 0, 0, 0, 0, time.UTC), upper)

	_, _, err = dto.RangeQuery{StartDate: "2030-5-10", EndDate: "2030-05-10"}.Window()
	assert.Error(t, err)

	_, _, err = dto.RangeQuery{StartDate: "2030-05-10", EndDate: "2030-05-10T00:00:00Z"}.Window()
	assert.Error(t, err)
}

func TestNewCountResponse(t *testing.T) {
	assert.Equal(t, dto.CountResponse{Count: 1, Max: 2, Remaining: 1}, dto.NewCountResponse(1, 2))
	// a lowered quota never reports a negative remainder
	assert.Equal(t, dto.CountResponse{Count: 3, Max: 2, Remaining: 0}, dto.NewCountResponse(3, 2))
}

func TestToNotificationPayload(t *testing.T) {
	payload := dto.ToNotificationPayload(booking, owner, "https://cdn.example.com/u1.png")

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "b1", decoded["id"])
	assert.Equal(t, "alice", decoded["username"])
	assert.Equal(t, "201", decoded["roomNumber"])
	assert.Equal(t, "https://cdn.example.com/u1.png", decoded["picture"])
	assert.Equal(t, "2030-05-10T10:00:00Z", decoded["startDate"])
	assert.Equal(t, timezone.Format(booking.StartDate, constant.DisplayDateFormat), decoded["startDateLocal"])
	assert.Equal(t, timezone.Format(booking.EndDate, constant.DisplayDateFormat), decoded["endDateLocal"])
}

func TestToDeletedPayload(t *testing.T) {
	assert.Equal(t,
		dto.DeletedPayload{ID: "b1", SharedSpaceID: "s1", RoomNumber: "201"},
		dto.ToDeletedPayload(booking, owner),
	)

	// owner details may be unavailable once the booking is gone
	assert.Equal(t, "", dto.ToDeletedPayload(booking, userModel.Owner{}).RoomNumber)
}

func TestNewGetBookingsResponse(t *testing.T) {
	res := dto.NewGetBookingsResponse([]model.BookingDetail{{Booking: booking, Username: "alice", RoomNumber: "201"}})

	require.Equal(t, 1, res.Total)
	assert.Equal(t, "alice", res.Bookings[0].Username)
	assert.Equal(t, timezone.Format(booking.StartDate, constant.DisplayDateFormat), res.Bookings[0].StartDate)

	empty := dto.NewGetBookingsResponse(nil)

	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bookings":[],"total":0}`, string(raw))
}
