package model

import (
	userModel "sharedhouse/internal/domains/user/model"
	"sharedhouse/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldSharedSpaceID = "shared_space_id"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
)

// Booking reserves a shared space for the half open interval [StartDate, EndDate).
type Booking struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	SharedSpaceID string    `db:"shared_space_id"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	model.Metadata
}

func (b Booking) Duration() time.Duration {
	return b.EndDate.Sub(b.StartDate)
}

// Overlaps reports whether b shares any instant with [start, end).
// Touching endpoints do not overlap.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.StartDate.Before(end) && b.EndDate.After(start)
}

// IsActive reports whether b still counts against its owner's quota at now.
func (b Booking) IsActive(now time.Time) bool {
	return !b.EndDate.Before(now)
}

// BookingDetail is a booking joined with its owner's display fields.
type BookingDetail struct {
	Booking
	Username       string  `db:"username"        table:"users"`
	RoomNumber     string  `db:"room_number"     table:"users"`
	ProfilePicture *string `db:"profile_picture" table:"users"`
}

func (BookingDetail) GetJoinQuery() string {
	return "INNER JOIN users ON users.id = bookings.user_id"
}

// Owner returns the display snapshot of the booking's owner.
func (d BookingDetail) Owner() userModel.Owner {
	owner := userModel.Owner{
		ID:         d.UserID,
		Username:   d.Username,
		RoomNumber: d.RoomNumber,
	}

	if d.ProfilePicture != nil {
		owner.ProfilePicture = *d.ProfilePicture
	}

	return owner
}
