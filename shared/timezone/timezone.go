package timezone

import (
	"sharedhouse/config"
	"sync/atomic"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	clock       atomic.Pointer[func() time.Time]
)

func init() {
	now := time.Now
	clock.Store(&now)

	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Tokyo', 'UTC'")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current instant in UTC. Bookings are stored and compared in UTC;
// the application timezone is only used for display.
func Now() time.Time {
	return (*clock.Load())().UTC()
}

// SetClock replaces the time source and returns a function restoring the previous one.
func SetClock(fn func() time.Time) (restore func()) {
	prev := clock.Swap(&fn)

	return func() { clock.Store(prev) }
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDay parses a YYYY-MM-DD calendar day as midnight UTC.
func ParseDay(value string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, value, time.UTC)
}

// ParseInstant parses an ISO-8601 timestamp with offset and normalizes it to UTC.
func ParseInstant(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return t.UTC(), nil
}

// StartOfUTCDay truncates t to midnight of its UTC calendar day.
func StartOfUTCDay(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
