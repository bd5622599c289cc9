package directory

// DepartmentResponse is one entry in the department dropdown.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"departmentName"`
}

// EmployeeResponse is one entry in the employee dropdown.
type EmployeeResponse struct {
	Code           string `json:"employeeId"`
	Name           string `json:"employeeName"`
	DepartmentName string `json:"departmentName"`
}
