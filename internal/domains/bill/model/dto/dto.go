package dto

import (
	"frontdesk/internal/domains/bill/model"
	"frontdesk/shared"
)

type GenerateBillRequest struct {
	Key string `json:"key" validate:"required,max=100"`
}

type BillResponse struct {
	ID          string `json:"bill_id"`
	CustomerID  string `json:"customer_id"`
	Name        string `json:"name"`
	RoomID      string `json:"room_id"`
	DaysOfStay  int    `json:"days_of_stay"`
	PricePerDay string `json:"price_per_day"`
	TotalAmount string `json:"total_amount"`
	BillDate    string `json:"bill_date"`
}

func (r *BillResponse) FromModel(model model.Bill) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.Name = model.Name
	r.RoomID = model.RoomID
	r.DaysOfStay = shared.AtoiOrZero(model.DaysOfStay)
	r.PricePerDay = model.PricePerDay
	r.TotalAmount = model.TotalAmount
	r.BillDate = model.BillDate
}

type GetBillsResponse struct {
	Bills     []BillResponse `json:"bills"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetBillsResponse) FromModels(models []model.Bill, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bills = make([]BillResponse, len(models))
	for i, mod := range models {
		r.Bills[i].FromModel(mod)
	}
}
