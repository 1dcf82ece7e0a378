package model_test

import (
	"sharedhouse/internal/domains/booking/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2030, 5, 10, hour, minute, 0, 0, time.UTC)
}

func TestBooking_Overlaps(t *testing.T) {
	booking := model.Booking{StartDate: at(10, 0), EndDate: at(11, 0)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical", at(10, 0), at(11, 0), true},
		{"inside", at(10, 15), at(10, 45), true},
		{"covers", at(9, 0), at(12, 0), true},
		{"starts inside", at(10, 30), at(11, 30), true},
		{"ends inside", at(9, 30), at(10, 30), true},
		{"touches end", at(11, 0), at(12, 0), false},
		{"touches start", at(9, 0), at(10, 0), false},
		{"disjoint", at(13, 0), at(14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	booking := model.Booking{StartDate: at(10, 0), EndDate: at(11, 0)}

	assert.True(t, booking.IsActive(at(9, 0)))
	assert.True(t, booking.IsActive(at(10, 30)))
	assert.True(t, booking.IsActive(at(11, 0)))
	assert.False(t, booking.IsActive(at(11, 1)))
	assert.Equal(t, time.Hour, booking.Duration())
}

func TestBookingDetail_Owner(t *testing.T) {
	avatar := "avatars/bob.png"
	detail := model.BookingDetail{
		Booking:        model.Booking{ID: "b1", UserID: "u2"},
		Username:       "bob",
		RoomNumber:     "305",
		ProfilePicture: &avatar,
	}

	owner := detail.Owner()

	assert.Equal(t, "u2", owner.ID)
	assert.Equal(t, "bob", owner.Username)
	assert.Equal(t, "305", owner.RoomNumber)
	assert.Equal(t, "avatars/bob.png", owner.ProfilePicture)
	assert.Empty(t, model.BookingDetail{}.Owner().ProfilePicture)
}
