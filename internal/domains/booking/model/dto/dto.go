package dto

import (
	"sharedhouse/internal/domains/booking/model"
	userModel "sharedhouse/internal/domains/user/model"
	"sharedhouse/shared/constant"
	gDto "sharedhouse/shared/dto"
	"sharedhouse/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	SharedSpaceID string `json:"sharedSpaceId" validate:"required"`
	StartDate     string `json:"startDate"     validate:"required,instant" example:"2030-05-10T10:00:00Z"`
	EndDate       string `json:"endDate"       validate:"required,instant" example:"2030-05-10T11:00:00Z"`
}

type UpdateBookingRequest struct {
	StartDate string `json:"startDate" validate:"required,instant" example:"2030-05-10T09:00:00Z"`
	EndDate   string `json:"endDate"   validate:"required,instant" example:"2030-05-10T10:00:00Z"`
}

// ProposeBookingRequest is a create or update intent. SharedSpaceID is
// ignored on update, BookingID on create.
type ProposeBookingRequest struct {
	BookingID     string
	SharedSpaceID string
	StartDate     string
	EndDate       string
}

func (r CreateBookingRequest) ToProposal() ProposeBookingRequest {
	return ProposeBookingRequest{
		SharedSpaceID: r.SharedSpaceID,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

func (r UpdateBookingRequest) ToProposal(bookingID string) ProposeBookingRequest {
	return ProposeBookingRequest{
		BookingID: bookingID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// BookingResponse is a committed booking with its owner's display fields.
type BookingResponse struct {
	ID            string `json:"id"`
	SharedSpaceID string `json:"sharedSpaceId"`
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	RoomNumber    string `json:"roomNumber"`
	Picture       string `json:"picture"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	gDto.Metadata
}

func NewBookingResponse(booking model.Booking, owner userModel.Owner, pictureURL string) BookingResponse {
	res := BookingResponse{
		ID:            booking.ID,
		SharedSpaceID: booking.SharedSpaceID,
		UserID:        booking.UserID,
		Username:      owner.Username,
		RoomNumber:    owner.RoomNumber,
		Picture:       pictureURL,
		StartDate:     booking.StartDate.UTC().Format(constant.DateFormat),
		EndDate:       booking.EndDate.UTC().Format(constant.DateFormat),
	}
	res.Metadata.FromModel(booking.Metadata)

	return res
}

// NotificationPayload is broadcast with newBooking and updatedBooking events.
type NotificationPayload struct {
	BookingResponse
	StartDateLocal string `json:"startDateLocal"`
	EndDateLocal   string `json:"endDateLocal"`
}

// ToNotificationPayload projects a committed booking and its owner into an
// event payload. It has no side effects.
func ToNotificationPayload(booking model.Booking, owner userModel.Owner, pictureURL string) NotificationPayload {
	return NotificationPayload{
		BookingResponse: NewBookingResponse(booking, owner, pictureURL),
		StartDateLocal:  timezone.Format(booking.StartDate, constant.DisplayDateFormat),
		EndDateLocal:    timezone.Format(booking.EndDate, constant.DisplayDateFormat),
	}
}

// DeletedPayload is broadcast with deletedBooking events.
type DeletedPayload struct {
	ID            string `json:"id"`
	SharedSpaceID string `json:"sharedSpaceId"`
	RoomNumber    string `json:"roomNumber"`
}

func ToDeletedPayload(booking model.Booking, owner userModel.Owner) DeletedPayload {
	return DeletedPayload{
		ID:            booking.ID,
		SharedSpaceID: booking.SharedSpaceID,
		RoomNumber:    owner.RoomNumber,
	}
}

// BookingEntry is one row of an availability listing. Dates are wall clock
// times in the application timezone.
type BookingEntry struct {
	ID            string `json:"id"`
	SharedSpaceID string `json:"sharedSpaceId"`
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	RoomNumber    string `json:"roomNumber"`
	StartDate     string `json:"startDate" example:"2030-05-10 19:00:00"`
	EndDate       string `json:"endDate"   example:"2030-05-10 20:00:00"`
}

func (e *BookingEntry) FromModel(detail model.BookingDetail) {
	e.ID = detail.ID
	e.SharedSpaceID = detail.SharedSpaceID
	e.UserID = detail.UserID
	e.Username = detail.Username
	e.RoomNumber = detail.RoomNumber
	e.StartDate = timezone.Format(detail.StartDate, constant.DisplayDateFormat)
	e.EndDate = timezone.Format(detail.EndDate, constant.DisplayDateFormat)
}

type GetBookingsResponse struct {
	Bookings []BookingEntry `json:"bookings"`
	Total    int            `json:"total"`
}

func NewGetBookingsResponse(details []model.BookingDetail) GetBookingsResponse {
	res := GetBookingsResponse{
		Bookings: make([]BookingEntry, len(details)),
		Total:    len(details),
	}

	for i, detail := range details {
		res.Bookings[i].FromModel(detail)
	}

	return res
}

// RangeQuery selects bookings of a space between two calendar days.
type RangeQuery struct {
	SharedSpaceID string `json:"sharedSpaceId" validate:"required"`
	StartDate     string `json:"startDate"     validate:"required,day"`
	EndDate       string `json:"endDate"       validate:"required,day"`
}

// Window returns the half open search window padded by one day on each side:
// [day(start) - 1d, day(end) + 2d).
func (q RangeQuery) Window() (lower, upper time.Time, err error) {
	start, err := timezone.ParseDay(q.StartDate)
	if err != nil {
		return lower, upper, err //nolint:wrapcheck
	}

	end, err := timezone.ParseDay(q.EndDate)
	if err != nil {
		return lower, upper, err //nolint:wrapcheck
	}

	return start.AddDate(0, 0, -1), end.AddDate(0, 0, 2), nil
}

type CountResponse struct {
	Count     int `json:"count"`
	Max       int `json:"max"`
	Remaining int `json:"remaining"`
}

func NewCountResponse(count, maxCount int) CountResponse {
	return CountResponse{
		Count:     count,
		Max:       maxCount,
		Remaining: max(maxCount-count, 0),
	}
}
