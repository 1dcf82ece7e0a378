package dto

import (
	"sharedhouse/internal/domains/sharedspace/model"
	gDto "sharedhouse/shared/dto"
)

type SharedSpaceResponse struct {
	ID               string        `json:"id"`
	NameCode         string        `json:"nameCode"`
	NameEn           string        `json:"nameEn"`
	NameJp           string        `json:"nameJp"`
	DescriptionEn    string        `json:"descriptionEn"`
	DescriptionJp    string        `json:"descriptionJp"`
	StartDayTime     model.DayTime `json:"startDayTime"     swaggertype:"string" example:"08:00"`
	EndDayTime       model.DayTime `json:"endDayTime"       swaggertype:"string" example:"23:00"`
	MaxBookingHours  int           `json:"maxBookingHours"`
	MaxBookingByUser int           `json:"maxBookingByUser"`
	Picture          string        `json:"picture"`
	gDto.Metadata
}

// FromModel fills the response; pictureURL is the resolved, browser loadable picture.
func (r *SharedSpaceResponse) FromModel(space model.SharedSpace, pictureURL string) {
	r.ID = space.ID
	r.NameCode = space.NameCode
	r.NameEn = space.NameEn
	r.NameJp = space.NameJp
	r.DescriptionEn = space.DescriptionEn
	r.DescriptionJp = space.DescriptionJp
	r.StartDayTime = space.StartDayTime
	r.EndDayTime = space.EndDayTime
	r.MaxBookingHours = space.MaxBookingHours
	r.MaxBookingByUser = space.MaxBookingByUser
	r.Picture = pictureURL
	r.Metadata.FromModel(space.Metadata)
}

type GetSharedSpacesResponse struct {
	SharedSpaces []SharedSpaceResponse `json:"sharedSpaces"`
	Total        int                   `json:"total"`
}
