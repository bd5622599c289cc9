package checkin

import (
	"context"
)

// CheckInService is the single authority deciding whether a check-in
// attempt is accepted, and why not when it is rejected.
type CheckInService interface {
	// CheckIn evaluates one submission in a fixed order: structural
	// validation, punch-in window, geofence (when enabled), employee daily
	// duplicate, device daily duplicate, then the insert.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// ListByDate returns the ledger for a date ("" means today, local
	// time). Records of deactivated employees remain readable.
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
}
