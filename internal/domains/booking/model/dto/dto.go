package dto

import (
	"fmt"
	"frontdesk/internal/domains/booking/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"strings"
)

type CreateBookingRequest struct {
	RoomID       string `json:"room_id"       validate:"required,max=20"`
	CustomerName string `json:"customer_name" validate:"required,max=100"`
	CheckIn      string `json:"check_in"      validate:"required,ddmmyyyy"`
	CheckOut     string `json:"check_out"     validate:"required,ddmmyyyy"`
}

// Normalize trims every field in place.
func (c *CreateBookingRequest) Normalize() {
	c.RoomID = strings.TrimSpace(c.RoomID)
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.CheckIn = strings.TrimSpace(c.CheckIn)
	c.CheckOut = strings.TrimSpace(c.CheckOut)
}

// ValidateStay rejects a check-out before the check-in. Same-day stays are allowed.
func (c *CreateBookingRequest) ValidateStay() error {
	checkIn, err := timezone.Parse(constant.StayDateFormat, c.CheckIn)
	if err != nil {
		return failure.InvalidInput(fmt.Sprintf("check_in must be a dd-mm-yyyy date, got %q", c.CheckIn))
	}

	checkOut, err := timezone.Parse(constant.StayDateFormat, c.CheckOut)
	if err != nil {
		return failure.InvalidInput(fmt.Sprintf("check_out must be a dd-mm-yyyy date, got %q", c.CheckOut))
	}

	if checkOut.Before(checkIn) {
		return failure.InvalidInput(fmt.Sprintf("check_out %s is before check_in %s", c.CheckOut, c.CheckIn))
	}

	return nil
}

func (c *CreateBookingRequest) ToModel(bookingID string) model.Booking {
	return model.Booking{
		ID:           bookingID,
		CustomerName: c.CustomerName,
		RoomID:       c.RoomID,
		CheckIn:      c.CheckIn,
		CheckOut:     c.CheckOut,
	}
}

type BookingResponse struct {
	ID           string `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	RoomID       string `json:"room_id"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerName = model.CustomerName
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CancelBookingResponse struct {
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id"`
}

// ReconcileReport lists what the repair pass changed or flagged.
type ReconcileReport struct {
	Freed      []string            `json:"freed"`
	Reoccupied []string            `json:"reoccupied"`
	Orphaned   []BookingResponse   `json:"orphaned"`
	Duplicates map[string][]string `json:"duplicates"`
}

func (r *ReconcileReport) Changed() bool {
	return len(r.Freed) > 0 || len(r.Reoccupied) > 0
}

func (r *ReconcileReport) Clean() bool {
	return !r.Changed() && len(r.Orphaned) == 0 && len(r.Duplicates) == 0
}

type AvailableRoomsResponse struct {
	Rooms []roomDto.RoomResponse `json:"rooms"`
}

// BookingEvent is published after a booking change has been saved.
type BookingEvent struct {
	Type       string           `json:"type"`
	Booking    *BookingResponse `json:"booking,omitempty"`
	Report     *ReconcileReport `json:"report,omitempty"`
	OccurredAt string           `json:"occurred_at"`
}
