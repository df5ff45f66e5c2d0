package model

const (
	EntityName = "bill"

	FieldID          = "BillID"
	FieldCustomerID  = "CustomerID"
	FieldName        = "Name"
	FieldRoomID      = "RoomID"
	FieldDaysOfStay  = "DaysOfStay"
	FieldPricePerDay = "PricePerDay"
	FieldTotalAmount = "TotalAmount"
	FieldBillDate    = "BillDate"
)

type Bill struct {
	ID          string `csv:"BillID"`
	CustomerID  string `csv:"CustomerID"`
	Name        string `csv:"Name"`
	RoomID      string `csv:"RoomID"`
	DaysOfStay  string `csv:"DaysOfStay"`
	PricePerDay string `csv:"PricePerDay"`
	TotalAmount string `csv:"TotalAmount"`
	BillDate    string `csv:"BillDate"`
}
