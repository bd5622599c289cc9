package directory

import "time"

// Department is reference data owned by the administrative seeding
// process; the check-in flow only reads it.
type Department struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Employee is reference data. Employees are soft-deactivated via Active
// and never hard-deleted while attendance history references them.
type Employee struct {
	ID           int64
	Code         string
	Name         string
	DepartmentID int64
	Active       bool
	CreatedAt    time.Time

	// Joined for listings
	DepartmentName string
}
