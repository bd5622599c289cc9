package checkin

import (
	"context"
)

// AttendanceRepository defines data access for the attendance ledger.
// Dates are local calendar-date strings in "2006-01-02" form.
type AttendanceRepository interface {
	// Create appends one record. The store enforces at most one record per
	// (employee code, date) and per (device id, date); violations are
	// reported as ErrAlreadyCheckedIn and ErrDeviceAlreadyUsed so the
	// insert, not the preceding lookups, is the source of truth under
	// concurrent submissions.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// CountByEmployeeAndDate counts records for an employee on a date.
	CountByEmployeeAndDate(ctx context.Context, employeeCode string, date string) (int, error)

	// CountByDeviceAndDate counts records for a device on a date.
	CountByDeviceAndDate(ctx context.Context, deviceID string, date string) (int, error)

	// ListByDate returns a date's records, newest first.
	ListByDate(ctx context.Context, date string) ([]Attendance, error)
}
