package dto

import (
	"frontdesk/internal/domains/staff/model"
	"frontdesk/shared"
	"frontdesk/shared/timezone"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateStaffRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Role    string `json:"role"    validate:"required,max=50"`
	Contact string `json:"contact" validate:"required,max=50"`
	Salary  string `json:"salary"  validate:"required,decimal"`
}

func (c *CreateStaffRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Role = strings.TrimSpace(c.Role)
	c.Contact = strings.TrimSpace(c.Contact)
	c.Salary = strings.TrimSpace(c.Salary)
}

func (c *CreateStaffRequest) ToModel(staffID string) model.Staff {
	return model.Staff{
		ID:       staffID,
		Name:     strings.TrimSpace(c.Name),
		Role:     strings.TrimSpace(c.Role),
		Contact:  strings.TrimSpace(c.Contact),
		Salary:   formatSalary(c.Salary),
		JoinDate: timezone.Today(),
	}
}

// UpdateStaffRequest changes salary and role only; blank keeps the old value.
type UpdateStaffRequest struct {
	Salary string `csv:"Salary" json:"salary" validate:"omitempty,decimal"`
	Role   string `csv:"Role"   json:"role"   validate:"omitempty,max=50"`
}

func (u *UpdateStaffRequest) ToFields() map[string]string {
	fields := shared.TransformFields(*u)
	if salary, ok := fields[model.FieldSalary]; ok {
		fields[model.FieldSalary] = formatSalary(salary)
	}

	return fields
}

type StaffResponse struct {
	ID       string `json:"staff_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Contact  string `json:"contact"`
	Salary   string `json:"salary"`
	JoinDate string `json:"join_date"`
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Role = model.Role
	r.Contact = model.Contact
	r.Salary = model.Salary
	r.JoinDate = model.JoinDate
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}

// formatSalary stores salaries with two decimals, "25000" -> "25000.00".
func formatSalary(value string) string {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return strings.TrimSpace(value)
	}

	return amount.StringFixed(2)
}
