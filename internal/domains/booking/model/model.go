package model

const (
	EntityName = "booking"

	FieldID           = "BookingID"
	FieldCustomerName = "CustomerName"
	FieldRoomID       = "RoomID"
	FieldCheckIn      = "CheckIn"
	FieldCheckOut     = "CheckOut"
)

// Booking is an active reservation. Cancelled bookings are removed, not flagged.
type Booking struct {
	ID           string `csv:"BookingID"`
	CustomerName string `csv:"CustomerName"`
	RoomID       string `csv:"RoomID"`
	CheckIn      string `csv:"CheckIn"`
	CheckOut     string `csv:"CheckOut"`
}
