package response

import (
	"errors"
	"net/http"

	"github.com/attendly/checkin-backend-go/internal/domain/checkin"
	"github.com/attendly/checkin-backend-go/internal/domain/directory"
	"github.com/attendly/checkin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Policy rejections keep
// their stable reason codes and carry the service's message (which names
// the employee, the measured distance, or the window state).
func HandleError(w http.ResponseWriter, err error) {
	// Structural validation errors carry a field map.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Check-in policy rejections
	case errors.Is(err, checkin.ErrOutsideTimeWindow):
		Rejection(w, http.StatusForbidden, "OUTSIDE_TIME_WINDOW", err.Error())
	case errors.Is(err, checkin.ErrLocationRequired):
		Rejection(w, http.StatusBadRequest, "LOCATION_REQUIRED", err.Error())
	case errors.Is(err, checkin.ErrOutsideGeofence):
		Rejection(w, http.StatusForbidden, "OUTSIDE_GEOFENCE", err.Error())
	case errors.Is(err, checkin.ErrAlreadyCheckedIn):
		Rejection(w, http.StatusConflict, "ALREADY_CHECKED_IN", err.Error())
	case errors.Is(err, checkin.ErrDeviceAlreadyUsed):
		Rejection(w, http.StatusConflict, "DEVICE_ALREADY_USED", err.Error())
	case errors.Is(err, checkin.ErrStorageUnavailable):
		Rejection(w, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", checkin.ErrStorageUnavailable.Error())

	// Directory errors
	case errors.Is(err, directory.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
