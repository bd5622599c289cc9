package checkin

import (
	"github.com/attendly/checkin-backend-go/internal/pkg/validator"
)

// Location is a client-submitted coordinate in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CheckInRequest is one check-in submission. DeviceID is resolved
// server-side from request metadata, never taken from the body.
type CheckInRequest struct {
	EmployeeCode   string    `json:"employeeId"`
	EmployeeName   string    `json:"employeeName"`
	DepartmentName string    `json:"departmentName"`
	Rating         int       `json:"rating"`
	Location       *Location `json:"location,omitempty"`
	DeviceID       string    `json:"-"`
}

// Validate performs the structural checks: required identity fields, rating
// range, and coordinate ranges when a location is present.
func (r CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employee selection is required"})
	}
	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employeeName", Message: "employee name is required"})
	}
	if validator.IsEmpty(r.DepartmentName) {
		errs = append(errs, validator.ValidationError{Field: "departmentName", Message: "department is required"})
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating must be between 1 and 5 stars"})
	}
	if r.Location != nil {
		if !validator.IsValidLatitude(r.Location.Latitude) {
			errs = append(errs, validator.ValidationError{Field: "location.latitude", Message: "latitude must be within [-90, 90]"})
		}
		if !validator.IsValidLongitude(r.Location.Longitude) {
			errs = append(errs, validator.ValidationError{Field: "location.longitude", Message: "longitude must be within [-180, 180]"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckInResponse echoes an accepted submission.
type CheckInResponse struct {
	EmployeeCode   string   `json:"employeeId"`
	EmployeeName   string   `json:"employeeName"`
	DepartmentName string   `json:"departmentName"`
	Rating         int      `json:"rating"`
	CheckInTime    string   `json:"checkInTime"`
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`
}

// AttendanceResponse is one ledger row in listings and exports.
type AttendanceResponse struct {
	ID             int64    `json:"id"`
	EmployeeCode   string   `json:"employeeId"`
	EmployeeName   string   `json:"employeeName"`
	DepartmentName string   `json:"departmentName"`
	Rating         int      `json:"rating"`
	DeviceID       string   `json:"deviceId"`
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`
	CheckInTime    string   `json:"checkInTime"`
	CheckInDate    string   `json:"checkInDate"`
}
