package model

import "sharedhouse/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID             = "id"
	FieldUsername       = "username"
	FieldRoomNumber     = "room_number"
	FieldEmail          = "email"
	FieldProfilePicture = "profile_picture"
	FieldIsAdmin        = "is_admin"
	FieldIsActive       = "is_active"
)

// User is a resident account. Credentials live outside this service.
type User struct {
	ID             string  `db:"id"`
	Username       string  `db:"username"`
	RoomNumber     string  `db:"room_number"`
	Email          string  `db:"email"`
	ProfilePicture *string `db:"profile_picture"`
	IsAdmin        bool    `db:"is_admin"`
	IsActive       bool    `db:"is_active"`
	model.Metadata
}

// Picture returns the stored avatar key, or "" when the user has none.
func (u User) Picture() string {
	if u.ProfilePicture == nil {
		return ""
	}

	return *u.ProfilePicture
}

// Owner is the read only display snapshot of a user attached to bookings and
// booking events.
type Owner struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	RoomNumber     string `json:"roomNumber"`
	ProfilePicture string `json:"profilePicture"`
}

// Owner copies the display fields out of u.
func (u User) Owner() Owner {
	return Owner{
		ID:             u.ID,
		Username:       u.Username,
		RoomNumber:     u.RoomNumber,
		ProfilePicture: u.Picture(),
	}
}
