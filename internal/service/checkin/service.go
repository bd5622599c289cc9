package checkin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/checkin-backend-go/internal/config"
	"github.com/attendly/checkin-backend-go/internal/domain/checkin"
	"github.com/attendly/checkin-backend-go/internal/pkg/punchwindow"
	"github.com/attendly/checkin-backend-go/internal/pkg/utils"
	"github.com/attendly/checkin-backend-go/internal/pkg/validator"
)

type CheckInServiceImpl struct {
	checkin.AttendanceRepository
	window punchwindow.Window
	office config.OfficeConfig
	now    func() time.Time
}

func NewCheckInService(
	attendanceRepo checkin.AttendanceRepository,
	window punchwindow.Window,
	office config.OfficeConfig,
) checkin.CheckInService {
	return &CheckInServiceImpl{
		AttendanceRepository: attendanceRepo,
		window:               window,
		office:               office,
		now:                  time.Now,
	}
}

// CheckIn implements checkin.CheckInService. The evaluation order is part
// of the contract: structural validation, punch-in window, geofence,
// employee duplicate, device duplicate, insert. The duplicate lookups are
// fast-path hints; the unique indexes behind Create settle races.
func (s *CheckInServiceImpl) CheckIn(ctx context.Context, req checkin.CheckInRequest) (checkin.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.CheckInResponse{}, err
	}

	nowUTC := s.now().UTC()

	status := s.window.Evaluate(nowUTC)
	if !status.Allowed {
		return checkin.CheckInResponse{}, fmt.Errorf("%w: %s", checkin.ErrOutsideTimeWindow, status.Message)
	}

	var distance *float64
	if s.office.GeofenceEnabled {
		if req.Location == nil {
			return checkin.CheckInResponse{}, checkin.ErrLocationRequired
		}
		d := utils.CalculateHaversineDistance(
			req.Location.Latitude, req.Location.Longitude,
			s.office.Latitude, s.office.Longitude,
		)
		if d > s.office.RadiusMeters {
			return checkin.CheckInResponse{}, fmt.Errorf(
				"%w: you are %.0fm away from the office, allowed radius is %.0fm",
				checkin.ErrOutsideGeofence, d, s.office.RadiusMeters,
			)
		}
		distance = &d
	}

	dateLocal := nowUTC.In(s.window.Location()).Format("2006-01-02")

	employeeCount, err := s.CountByEmployeeAndDate(ctx, req.EmployeeCode, dateLocal)
	if err != nil {
		return checkin.CheckInResponse{}, fmt.Errorf("%w: %v", checkin.ErrStorageUnavailable, err)
	}
	if employeeCount > 0 {
		return checkin.CheckInResponse{}, fmt.Errorf(
			"%w: %s (%s)", checkin.ErrAlreadyCheckedIn, req.EmployeeName, req.EmployeeCode,
		)
	}

	deviceCount, err := s.CountByDeviceAndDate(ctx, req.DeviceID, dateLocal)
	if err != nil {
		return checkin.CheckInResponse{}, fmt.Errorf("%w: %v", checkin.ErrStorageUnavailable, err)
	}
	if deviceCount > 0 {
		// Deliberately does not echo the device identifier back.
		return checkin.CheckInResponse{}, checkin.ErrDeviceAlreadyUsed
	}

	record := checkin.Attendance{
		EmployeeCode:   req.EmployeeCode,
		EmployeeName:   req.EmployeeName,
		DepartmentName: req.DepartmentName,
		Rating:         req.Rating,
		DeviceID:       req.DeviceID,
		DistanceMeters: distance,
		CheckInTime:    nowUTC,
		CheckInDate:    dateLocal,
	}
	if req.Location != nil {
		record.Latitude = &req.Location.Latitude
		record.Longitude = &req.Location.Longitude
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		// A lost race surfaces here as a constraint violation; report it
		// exactly like the fast-path rejection.
		if errors.Is(err, checkin.ErrAlreadyCheckedIn) {
			return checkin.CheckInResponse{}, fmt.Errorf(
				"%w: %s (%s)", checkin.ErrAlreadyCheckedIn, req.EmployeeName, req.EmployeeCode,
			)
		}
		if errors.Is(err, checkin.ErrDeviceAlreadyUsed) {
			return checkin.CheckInResponse{}, checkin.ErrDeviceAlreadyUsed
		}
		return checkin.CheckInResponse{}, fmt.Errorf("%w: %v", checkin.ErrStorageUnavailable, err)
	}

	return checkin.CheckInResponse{
		EmployeeCode:   created.EmployeeCode,
		EmployeeName:   created.EmployeeName,
		DepartmentName: created.DepartmentName,
		Rating:         created.Rating,
		CheckInTime:    created.CheckInTime.Format(time.RFC3339),
		DistanceMeters: created.DistanceMeters,
	}, nil
}

// ListByDate implements checkin.CheckInService.
func (s *CheckInServiceImpl) ListByDate(ctx context.Context, date string) ([]checkin.AttendanceResponse, error) {
	if date == "" {
		date = s.now().UTC().In(s.window.Location()).Format("2006-01-02")
	} else if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "date must be in YYYY-MM-DD form"},
		}
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", checkin.ErrStorageUnavailable, err)
	}

	responses := make([]checkin.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, checkin.AttendanceResponse{
			ID:             rec.ID,
			EmployeeCode:   rec.EmployeeCode,
			EmployeeName:   rec.EmployeeName,
			DepartmentName: rec.DepartmentName,
			Rating:         rec.Rating,
			DeviceID:       rec.DeviceID,
			DistanceMeters: rec.DistanceMeters,
			CheckInTime:    rec.CheckInTime.Format(time.RFC3339),
			CheckInDate:    rec.CheckInDate,
		})
	}

	return responses, nil
}
