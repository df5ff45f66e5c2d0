package dto

import (
	"frontdesk/internal/domains/customer/model"
	"frontdesk/shared"
	"frontdesk/shared/timezone"
	"strconv"
	"strings"
)

type CreateCustomerRequest struct {
	Name       string `json:"name"         validate:"required,max=100"`
	Phone      string `json:"phone"        validate:"required,phone"`
	Email      string `json:"email"        validate:"required,email"`
	RoomID     string `json:"room_id"      validate:"omitempty,max=20"`
	DaysOfStay int    `json:"days_of_stay" validate:"gte=0"`
}

// Normalize trims the text fields in place.
func (c *CreateCustomerRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.RoomID = strings.TrimSpace(c.RoomID)
}

func (c *CreateCustomerRequest) ToModel(customerID string) model.Customer {
	return model.Customer{
		ID:         customerID,
		Name:       strings.TrimSpace(c.Name),
		Phone:      strings.TrimSpace(c.Phone),
		Email:      strings.TrimSpace(c.Email),
		RoomID:     strings.TrimSpace(c.RoomID),
		DaysOfStay: strconv.Itoa(c.DaysOfStay),
		RegDate:    timezone.Today(),
	}
}

// UpdateCustomerRequest leaves blank fields untouched.
type UpdateCustomerRequest struct {
	Phone      string `csv:"Phone"      json:"phone"        validate:"omitempty,phone"`
	Email      string `csv:"Email"      json:"email"        validate:"omitempty,email"`
	RoomID     string `csv:"RoomID"     json:"room_id"      validate:"omitempty,max=20"`
	DaysOfStay string `csv:"DaysOfStay" json:"days_of_stay" validate:"omitempty,number"`
}

func (u *UpdateCustomerRequest) ToFields() map[string]string {
	return shared.TransformFields(*u)
}

type CustomerResponse struct {
	ID         string `json:"customer_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	RoomID     string `json:"room_id"`
	DaysOfStay int    `json:"days_of_stay"`
	RegDate    string `json:"reg_date"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.RoomID = model.RoomID
	r.DaysOfStay = shared.AtoiOrZero(model.DaysOfStay)
	r.RegDate = model.RegDate
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
