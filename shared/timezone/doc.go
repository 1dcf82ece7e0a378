// Package timezone centralizes time handling.
//
// All instants are compared and stored in UTC:
//
//	now := timezone.Now()
//	day := timezone.StartOfUTCDay(now)
//
// The application timezone (APP_TIMEZONE, default Asia/Tokyo) is only used
// when formatting values for display:
//
//	local := timezone.Format(booking.StartDate, time.DateTime)
//
// Tests can pin the clock with SetClock.
package timezone
