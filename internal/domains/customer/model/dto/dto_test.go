package dto_test

import (
	"testing"

	"frontdesk/internal/domains/customer/model"
	"frontdesk/internal/domains/customer/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateCustomerRequest_ToModel(t *testing.T) {
	req := dto.CreateCustomerRequest{Name: " Alice ", Phone: "5551234", Email: "alice@example.com", RoomID: "101", DaysOfStay: 3}

	customer := req.ToModel("C0001")

	assert.Equal(t, "C0001", customer.ID)
	assert.Equal(t, "Alice", customer.Name)
	assert.Equal(t, "3", customer.DaysOfStay)
	assert.NotEmpty(t, customer.RegDate)
}

func TestUpdateCustomerRequest_ToFields(t *testing.T) {
	req := dto.UpdateCustomerRequest{Phone: " 5559999 ", DaysOfStay: "4"}

	assert.Equal(t, map[string]string{
		model.FieldPhone:      "5559999",
		model.FieldDaysOfStay: "4",
	}, req.ToFields())
}

func TestCustomerResponse_FromModel(t *testing.T) {
	tests := []struct {
		name     string
		days     string
		wantDays int
	}{
		{name: "numeric days", days: "3", wantDays: 3},
		{name: "garbage days", days: "two", wantDays: 0},
		{name: "blank days", days: "", wantDays: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.CustomerResponse
			res.FromModel(model.Customer{ID: "C0001", Name: "Alice", DaysOfStay: tt.days})

			assert.Equal(t, tt.wantDays, res.DaysOfStay)
		})
	}
}
