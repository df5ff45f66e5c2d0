package model

const (
	EntityName = "customer"

	FieldID         = "CustomerID"
	FieldName       = "Name"
	FieldPhone      = "Phone"
	FieldEmail      = "Email"
	FieldRoomID     = "RoomID"
	FieldDaysOfStay = "DaysOfStay"
	FieldRegDate    = "RegDate"
)

type Customer struct {
	ID         string `csv:"CustomerID"`
	Name       string `csv:"Name"`
	Phone      string `csv:"Phone"`
	Email      string `csv:"Email"`
	RoomID     string `csv:"RoomID"`
	DaysOfStay string `csv:"DaysOfStay"`
	RegDate    string `csv:"RegDate"`
}
