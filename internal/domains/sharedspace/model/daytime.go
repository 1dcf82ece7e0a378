package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sharedhouse/shared/timezone"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

var ErrInvalidDayTime = errors.New("invalid day time")

// DayTime is a wall clock time of day, stored as seconds after midnight.
// 24:00 is accepted as the end of the day.
type DayTime int

// NewDayTime builds a DayTime from hours and minutes.
func NewDayTime(hour, minute int) DayTime {
	return DayTime(hour*secondsPerHour + minute*secondsPerMinute)
}

// ParseDayTime accepts H:MM, HH:MM and HH:MM:SS, the text forms PostgreSQL
// and the seed data use for TIME columns.
func ParseDayTime(value string) (DayTime, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayTime, value)
	}

	limits := []int{24, 59, 59}
	fields := make([]int, 3)

	for i, part := range parts {
		if i == 2 {
			// Fractional seconds from TIME(p) columns are dropped.
			part = strings.SplitN(part, ".", 2)[0]
		}

		if !isDigits(part) || len(part) > 2 || (i > 0 && len(part) != 2) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDayTime, value)
		}

		n, err := strconv.Atoi(part)
		if err != nil || n > limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDayTime, value)
		}

		fields[i] = n
	}

	dt := DayTime(fields[0]*secondsPerHour + fields[1]*secondsPerMinute + fields[2])
	if dt > secondsPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayTime, value)
	}

	return dt, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// On anchors the time of day to the UTC calendar day containing day.
func (d DayTime) On(day time.Time) time.Time {
	return timezone.StartOfUTCDay(day).Add(time.Duration(d) * time.Second)
}

func (d DayTime) String() string {
	hours := int(d) / secondsPerHour
	minutes := (int(d) % secondsPerHour) / secondsPerMinute
	seconds := int(d) % secondsPerMinute

	if seconds != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// Scan implements sql.Scanner.
func (d *DayTime) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	case time.Time:
		*d = DayTime(v.Hour()*secondsPerHour + v.Minute()*secondsPerMinute + v.Second())

		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDayTime, src)
	}
}

// Value implements driver.Valuer.
func (d DayTime) Value() (driver.Value, error) {
	hours := int(d) / secondsPerHour
	minutes := (int(d) % secondsPerHour) / secondsPerMinute
	seconds := int(d) % secondsPerMinute

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds), nil
}

func (d DayTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String()) //nolint:wrapcheck
}

func (d *DayTime) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDayTime, err)
	}

	return d.parse(value)
}

func (d *DayTime) parse(value string) error {
	parsed, err := ParseDayTime(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
