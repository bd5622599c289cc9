package checkin

import (
	"time"
)

// Attendance is one accepted check-in. Employee and department names are
// denormalized snapshots taken at insert time and never updated afterwards.
type Attendance struct {
	ID             int64
	EmployeeCode   string
	EmployeeName   string
	DepartmentName string
	Rating         int
	DeviceID       string
	Latitude       *float64
	Longitude      *float64
	DistanceMeters *float64
	CheckInTime    time.Time // UTC instant of the accepted submission
	CheckInDate    string    // local calendar date ("2006-01-02"), the dedup key
	CreatedAt      time.Time
}
