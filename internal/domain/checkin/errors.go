package checkin

import "errors"

// Check-in rejection and fault errors. Services wrap these with detail
// (employee name, measured distance, window status) via fmt.Errorf and %w;
// the HTTP layer matches them with errors.Is to pick the reason code.
var (
	ErrOutsideTimeWindow = errors.New("check-in is outside the punch-in window")
	ErrLocationRequired  = errors.New("location is required to check in")
	ErrOutsideGeofence   = errors.New("you are outside the allowed office radius")
	ErrAlreadyCheckedIn  = errors.New("employee has already checked in today")
	ErrDeviceAlreadyUsed = errors.New("this device has already been used to check in today")

	// ErrStorageUnavailable marks transient store faults. A failed duplicate
	// lookup is never treated as "no duplicate found".
	ErrStorageUnavailable = errors.New("attendance storage is unavailable, please try again")
)
