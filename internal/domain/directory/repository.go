package directory

import "context"

// DepartmentRepository defines data access for departments.
type DepartmentRepository interface {
	// List returns all departments ordered by name ascending.
	List(ctx context.Context) ([]Department, error)

	// GetByID retrieves one department.
	GetByID(ctx context.Context, id int64) (Department, error)

	// Count returns the number of departments, used by seed-if-empty.
	Count(ctx context.Context) (int, error)

	// Create inserts one department.
	Create(ctx context.Context, department Department) (Department, error)
}

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	// ListActiveByDepartment returns active employees of a department
	// ordered by name ascending, with the department name joined in.
	ListActiveByDepartment(ctx context.Context, departmentID int64) ([]Employee, error)

	// Create inserts one employee.
	Create(ctx context.Context, employee Employee) (Employee, error)
}
