package directory

import "context"

// DirectoryService serves the reference-data reads behind the check-in
// form, plus the startup seeding of defaults.
type DirectoryService interface {
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	ListEmployeesByDepartment(ctx context.Context, departmentID int64) ([]EmployeeResponse, error)

	// SeedDefaults inserts the default departments and employees when the
	// directory is empty. Idempotent across restarts.
	SeedDefaults(ctx context.Context) error
}
