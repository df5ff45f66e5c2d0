package model

const (
	EntityName = "staff"

	FieldID       = "StaffID"
	FieldName     = "Name"
	FieldRole     = "Role"
	FieldContact  = "Contact"
	FieldSalary   = "Salary"
	FieldJoinDate = "JoinDate"
)

type Staff struct {
	ID       string `csv:"StaffID"`
	Name     string `csv:"Name"`
	Role     string `csv:"Role"`
	Contact  string `csv:"Contact"`
	Salary   string `csv:"Salary"`
	JoinDate string `csv:"JoinDate"`
}
