package dto

import (
	"sharedhouse/internal/domains/user/model"
	gDto "sharedhouse/shared/dto"
)

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	RoomNumber     string `json:"roomNumber"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	IsAdmin        bool   `json:"isAdmin"`
	gDto.Metadata
}

// FromModel fills the response; pictureURL is the resolved avatar URL.
func (r *UserResponse) FromModel(user model.User, pictureURL string) {
	r.ID = user.ID
	r.Username = user.Username
	r.RoomNumber = user.RoomNumber
	r.Email = user.Email
	r.ProfilePicture = pictureURL
	r.IsAdmin = user.IsAdmin
	r.Metadata.FromModel(user.Metadata)
}
