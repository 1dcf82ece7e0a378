package model

import (
	"sharedhouse/shared/model"
	"time"
)

const (
	TableName  = "shared_spaces"
	EntityName = "shared_space"

	FieldID               = "id"
	FieldNameCode         = "name_code"
	FieldStartDayTime     = "start_day_time"
	FieldEndDayTime       = "end_day_time"
	FieldMaxBookingHours  = "max_booking_hours"
	FieldMaxBookingByUser = "max_booking_by_user"
)

// SharedSpace is a bookable communal resource and its booking policy.
type SharedSpace struct {
	ID               string  `db:"id"`
	NameCode         string  `db:"name_code"`
	NameEn           string  `db:"name_en"`
	NameJp           string  `db:"name_jp"`
	DescriptionEn    string  `db:"description_en"`
	DescriptionJp    string  `db:"description_jp"`
	StartDayTime     DayTime `db:"start_day_time"`
	EndDayTime       DayTime `db:"end_day_time"`
	MaxBookingHours  int     `db:"max_booking_hours"`
	MaxBookingByUser int     `db:"max_booking_by_user"`
	Picture          string  `db:"picture"`
	model.Metadata
}

// Window returns the bookable [dayStart, dayEnd] instants on the UTC calendar
// day containing day.
func (s SharedSpace) Window(day time.Time) (dayStart, dayEnd time.Time) {
	return s.StartDayTime.On(day), s.EndDayTime.On(day)
}

// MaxDuration is the longest single booking allowed.
func (s SharedSpace) MaxDuration() time.Duration {
	return time.Duration(s.MaxBookingHours) * time.Hour
}
