package timezone_test

import (
	"sharedhouse/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow_IsUTC(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, time.UTC, now.Location())
}

func TestSetClock(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	restore := timezone.SetClock(func() time.Time { return fixed })

	assert.True(t, timezone.Now().Equal(fixed))
	assert.Equal(t, 0, timezone.Now().Hour())

	restore()
	assert.NotEqual(t, fixed, timezone.Now())
}

func TestParseDay(t *testing.T) {
	day, err := timezone.ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), day)

	for _, bad := range []string{"2024-2-29", "29/02/2024", "2024-02-30", "", "2024-02-29T10:00:00Z"} {
		_, err := timezone.ParseDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-05-01T10:00:00Z", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01T10:00:00.000Z", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-05-01T19:00:00+09:00", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := timezone.ParseInstant(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), tt.in)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := timezone.ParseInstant("2024-05-01 10:00")
	assert.Error(t, err)
}

func TestStartOfUTCDay(t *testing.T) {
	in := time.Date(2024, 5, 2, 1, 30, 0, 0, time.FixedZone("JST", 9*60*60))

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), timezone.StartOfUTCDay(in))
}

func TestFormat_UsesAppLocation(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(testTime, time.DateTime)
	assert.Equal(t, testTime.In(timezone.GetLocation()).Format(time.DateTime), formatted)
}
