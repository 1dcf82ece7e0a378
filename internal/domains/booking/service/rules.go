package service

import (
	"fmt"
	"sharedhouse/internal/domains/booking/model/dto"
	spaceModel "sharedhouse/internal/domains/sharedspace/model"
	"sharedhouse/shared/failure"
	"sharedhouse/shared/timezone"
	"time"
)

// interval is a parsed proposal.
type interval struct {
	start time.Time
	end   time.Time
}

// checkPresence fails with DATA_MISSING when a required field is empty.
func checkPresence(req dto.ProposeBookingRequest, isUpdate bool) error {
	switch {
	case isUpdate && req.BookingID == "":
		return failure.DataMissing("bookingId is required") //nolint:wrapcheck
	case !isUpdate && req.SharedSpaceID == "":
		return failure.DataMissing("sharedSpaceId is required") //nolint:wrapcheck
	case req.StartDate == "" || req.EndDate == "":
		return failure.DataMissing("startDate and endDate are required") //nolint:wrapcheck
	}

	return nil
}

func parseInterval(req dto.ProposeBookingRequest) (interval, error) {
	start, err := timezone.ParseInstant(req.StartDate)
	if err != nil {
		return interval{}, failure.InvalidData("startDate must be an ISO-8601 date time") //nolint:wrapcheck
	}

	end, err := timezone.ParseInstant(req.EndDate)
	if err != nil {
		return interval{}, failure.InvalidData("endDate must be an ISO-8601 date time") //nolint:wrapcheck
	}

	return interval{start: start, end: end}, nil
}

// checkTiming applies the no past, duration and working hours rules in that order.
func checkTiming(space spaceModel.SharedSpace, iv interval, now time.Time) error {
	if iv.start.Before(now) {
		return failure.CannotBookPast("you can't book in the past") //nolint:wrapcheck
	}

	duration := iv.end.Sub(iv.start)
	if duration <= 0 || duration > space.MaxDuration() {
		return failure.DurationInvalid(fmt.Sprintf( //nolint:wrapcheck
			"the booking duration must be greater than 0 and at most %d hours", space.MaxBookingHours))
	}

	// Both bounds come from the start's UTC day, so a request crossing
	// midnight always ends after dayEnd.
	dayStart, dayEnd := space.Window(iv.start)
	if iv.start.Before(dayStart) || iv.end.After(dayEnd) {
		return failure.OutsideWorkingHours(fmt.Sprintf( //nolint:wrapcheck
			"please book between %s and %s UTC", space.StartDayTime, space.EndDayTime))
	}

	return nil
}
