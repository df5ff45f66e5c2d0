package dto_test

import (
	"testing"

	"frontdesk/internal/domains/staff/model"
	"frontdesk/internal/domains/staff/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateStaffRequest_ToModel(t *testing.T) {
	tests := []struct {
		name       string
		salary     string
		wantSalary string
	}{
		{name: "whole amount", salary: "25000", wantSalary: "25000.00"},
		{name: "one decimal", salary: " 1999.5 ", wantSalary: "1999.50"},
		{name: "rounded to cents", salary: "10.005", wantSalary: "10.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateStaffRequest{Name: " Dana ", Role: "Chef", Contact: "555-0100", Salary: tt.salary}

			staff := req.ToModel("S001")

			assert.Equal(t, "S001", staff.ID)
			assert.Equal(t, "Dana", staff.Name)
			assert.Equal(t, tt.wantSalary, staff.Salary)
			assert.NotEmpty(t, staff.JoinDate)
		})
	}
}

func TestUpdateStaffRequest_ToFields(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateStaffRequest
		want map[string]string
	}{
		{
			name: "salary only",
			req:  dto.UpdateStaffRequest{Salary: "30000"},
			want: map[string]string{model.FieldSalary: "30000.00"},
		},
		{
			name: "role only",
			req:  dto.UpdateStaffRequest{Role: "Manager"},
			want: map[string]string{model.FieldRole: "Manager"},
		},
		{
			name: "nothing to change",
			req:  dto.UpdateStaffRequest{Role: "  "},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.ToFields())
		})
	}
}
