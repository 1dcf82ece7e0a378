package service

import (
	"sharedhouse/internal/domains/booking/model/dto"
	spaceModel "sharedhouse/internal/domains/sharedspace/model"
	"sharedhouse/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	iv, err := parseInterval(dto.ProposeBookingRequest{
		StartDate: "2030-05-10T19:00:00+09:00",
		EndDate:   "2030-05-10T10:30:00.000Z",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 5, 10, 10, 0, 0, 0, time.UTC), iv.start)
	assert.Equal(t, time.Date(2030, 5, 10, 10, 30, 0, 0, time.UTC), iv.end)

	_, err = parseInterval(dto.ProposeBookingRequest{StartDate: "2030-05-10", EndDate: "2030-05-10T10:30:00Z"})
	assert.True(t, failure.Is(err, failure.CodeInvalidData))

	_, err = parseInterval(dto.ProposeBookingRequest{StartDate: "2030-05-10T10:00:00Z", EndDate: "10:30"})
	assert.True(t, failure.Is(err, failure.CodeInvalidData))
}

func TestCheckTiming(t *testing.T) {
	theater := spaceModel.SharedSpace{
		StartDayTime:    spaceModel.NewDayTime(9, 0),
		EndDayTime:      spaceModel.NewDayTime(22, 0),
		MaxBookingHours: 3,
	}
	now := time.Date(2030, 5, 10, 9, 30, 0, 0, time.UTC)
	day := func(hour, minute int) time.Time {
		return time.Date(2030, 5, 10, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		iv       interval
		wantCode string
	}{
		{name: "starts now", iv: interval{start: now, end: day(10, 0)}},
		{name: "exactly the cap", iv: interval{start: day(19, 0), end: day(22, 0)}},
		{name: "started a second ago", iv: interval{start: now.Add(-time.Second), end: day(10, 0)}, wantCode: failure.CodeCannotBookPast},
		{name: "over the cap", iv: interval{start: day(10, 0), end: day(13, 1)}, wantCode: failure.CodeDurationInvalid},
		{name: "ends before start", iv: interval{start: day(11, 0), end: day(10, 0)}, wantCode: failure.CodeDurationInvalid},
		{name: "past closing", iv: interval{start: day(21, 30), end: day(22, 1)}, wantCode: failure.CodeOutsideWorkingHours},
		// the past rule wins over the others
		{name: "past and too long", iv: interval{start: day(1, 0), end: day(9, 0)}, wantCode: failure.CodeCannotBookPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkTiming(theater, tt.iv, now)

			if tt.wantCode == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetErrorCode(err))
		})
	}
}

func TestCheckPresence(t *testing.T) {
	full := dto.ProposeBookingRequest{BookingID: "b1", SharedSpaceID: "s1", StartDate: "x", EndDate: "y"}

	assert.NoError(t, checkPresence(full, false))
	assert.NoError(t, checkPresence(dto.ProposeBookingRequest{BookingID: "b1", StartDate: "x", EndDate: "y"}, true))
	assert.True(t, failure.Is(checkPresence(dto.ProposeBookingRequest{StartDate: "x", EndDate: "y"}, false), failure.CodeDataMissing))
	assert.True(t, failure.Is(checkPresence(dto.ProposeBookingRequest{SharedSpaceID: "s1", EndDate: "y"}, false), failure.CodeDataMissing))
}
