package checkin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/attendly/checkin-backend-go/internal/config"
	"github.com/attendly/checkin-backend-go/internal/domain/checkin"
	"github.com/attendly/checkin-backend-go/internal/pkg/punchwindow"
	"github.com/attendly/checkin-backend-go/internal/pkg/utils"
	"github.com/attendly/checkin-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOfficeLat = 12.990461
	testOfficeLon = 80.220037
)

// memoryAttendanceRepo enforces the same first-writer-wins semantics as
// the unique indexes in the real store: duplicate detection and append
// happen under one lock inside Create.
type memoryAttendanceRepo struct {
	mu         sync.Mutex
	records    []checkin.Attendance
	nextID     int64
	failCounts bool
	failCreate bool
}

var errRepoDown = errors.New("connection refused")

func (m *memoryAttendanceRepo) Create(_ context.Context, record checkin.Attendance) (checkin.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failCreate {
		return checkin.Attendance{}, errRepoDown
	}
	for _, existing := range m.records {
		if existing.CheckInDate != record.CheckInDate {
			continue
		}
		if existing.EmployeeCode == record.EmployeeCode {
			return checkin.Attendance{}, checkin.ErrAlreadyCheckedIn
		}
		if existing.DeviceID == record.DeviceID {
			return checkin.Attendance{}, checkin.ErrDeviceAlreadyUsed
		}
	}

	m.nextID++
	record.ID = m.nextID
	record.CreatedAt = record.CheckInTime
	m.records = append(m.records, record)
	return record, nil
}

func (m *memoryAttendanceRepo) CountByEmployeeAndDate(_ context.Context, employeeCode string, date string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failCounts {
		return 0, errRepoDown
	}
	count := 0
	for _, rec := range m.records {
		if rec.EmployeeCode == employeeCode && rec.CheckInDate == date {
			count++
		}
	}
	return count, nil
}

func (m *memoryAttendanceRepo) CountByDeviceAndDate(_ context.Context, deviceID string, date string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failCounts {
		return 0, errRepoDown
	}
	count := 0
	for _, rec := range m.records {
		if rec.DeviceID == deviceID && rec.CheckInDate == date {
			count++
		}
	}
	return count, nil
}

func (m *memoryAttendanceRepo) ListByDate(_ context.Context, date string) ([]checkin.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []checkin.Attendance
	for _, rec := range m.records {
		if rec.CheckInDate == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memoryAttendanceRepo) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func testOffice() config.OfficeConfig {
	return config.OfficeConfig{
		Latitude:        testOfficeLat,
		Longitude:       testOfficeLon,
		RadiusMeters:    200,
		GeofenceEnabled: true,
	}
}

// newTestService returns a service whose clock is pinned to 09:10 IST,
// inside the default window.
func newTestService(t *testing.T, repo *memoryAttendanceRepo, office config.OfficeConfig) *CheckInServiceImpl {
	t.Helper()
	window, err := punchwindow.New("09:00", "09:45", "+05:30", "IST")
	require.NoError(t, err)

	svc := NewCheckInService(repo, window, office).(*CheckInServiceImpl)
	svc.now = func() time.Time {
		// 03:40 UTC == 09:10 IST
		return time.Date(2026, 9, 1, 3, 40, 0, 0, time.UTC)
	}
	return svc
}

func validRequest() checkin.CheckInRequest {
	return checkin.CheckInRequest{
		EmployeeCode:   "HR001",
		EmployeeName:   "John Smith",
		DepartmentName: "Human Resources",
		Rating:         4,
		DeviceID:       "203.0.113.7",
		Location:       &checkin.Location{Latitude: testOfficeLat, Longitude: testOfficeLon},
	}
}

func TestCheckIn_Success(t *testing.T) {
	repo := &memoryAttendanceRepo{}
	svc := newTestService(t, repo, testOffice())

	resp, err := svc.CheckIn(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "HR001", resp.EmployeeCode)
	assert.Equal(t, "John Smith", resp.EmployeeName)
	assert.Equal(t, "Human Resources", resp.DepartmentName)
	assert.Equal(t, 4, resp.Rating)
	assert.NotEmpty(t, resp.CheckInTime)
	require.NotNil(t, resp.DistanceMeters)
	assert.InDelta(t, 0, *resp.DistanceMeters, 0.001)
	assert.Equal(t, 1, repo.len())
	assert.Equal(t, "2026-09-01", repo.records[0].CheckInDate)
}

func TestCheckIn_StructuralValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*checkin.CheckInRequest)
		wantField string
	}{
		{"missing employee code", func(r *checkin.CheckInRequest) { r.EmployeeCode = "" }, "employeeId"},
		{"missing employee name", func(r *checkin.CheckInRequest) { r.EmployeeName = "   " }, "employeeName"},
		{"missing department", func(r *checkin.CheckInRequest) { r.DepartmentName = "" }, "departmentName"},
		{"rating below range", func(r *checkin.CheckInRequest) { r.Rating = 0 }, "rating"},
		{"rating above range", func(r *checkin.CheckInRequest) { r.Rating = 6 }, "rating"},
		{"latitude out of range", func(r *checkin.CheckInRequest) { r.Location.Latitude = 91 }, "location.latitude"},
		{"longitude out of range", func(r *checkin.CheckInRequest) { r.Location.Longitude = -181 }, "location.longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryAttendanceRepo{}
			svc := newTestService(t, repo, testOffice())

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.CheckIn(context.Background(), req)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
			assert.Zero(t, repo.len(), "rejected submission must not insert")
		})
	}
}

func TestCheckIn_RatingBoundariesAccepted(t *testing.T) {
	for _, rating := range []int{1, 5} {
		repo := &memoryAttendanceRepo{}
		svc := newTestService(t, repo, testOffice())

		req := validRequest()
		req.Rating = rating

		resp, err := svc.CheckIn(context.Background(), req)
		require.NoError(t, err, "rating %d should be accepted", rating)
		assert.Equal(t, rating, resp.Rating)
	}
}

func TestCheckIn_OutsideTimeWindow(t *testing.T) {
	repo := &memoryAttendanceRepo{}
	svc := newTestService(t, repo, testOffice())
	// 04:30 UTC == 10:00 IST, after the window.
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 4, 30, 0, 0, time.UTC)
	}

	_, err := svc.CheckIn(context.Background(), validRequest())

	require.ErrorIs(t, err, checkin.ErrOutsideTimeWindow)
	assert.Contains(t, err.Error(), "window has closed")
	assert.Zero(t, repo.len())
}

func TestCheckIn_LocationRequired(t *testing.T) {
	repo := &memoryAttendanceRepo{}
	svc := newTestService(t, repo, testOffice())

	req := validRequest()
	req.Location = nil

	_, err := svc.CheckIn(context.Background(), req)

	require.ErrorIs(t, err, checkin.ErrLocationRequired)
	assert.Zero(t, repo.len())
}

func TestCheckIn_GeofenceBoundary(t *testing.T) {
	// A point a few hundred meters north of the office; the radius is set
	// to the exact measured distance so the boundary itself is exercised.
	awayLat := testOfficeLat + 0.0018
	distance := utils.CalculateHaversineDistance(awayLat, testOfficeLon, testOfficeLat, testOfficeLon)

	t.Run("distance equal to radius is accepted", func(t *testing.T) {
		office := testOffice()
		office.RadiusMeters = distance

		repo := &memoryAttendanceRepo{}
		svc := newTestService(t, repo, office)

		req := validRequest()
		req.Location = &checkin.Location{Latitude: awayLat, Longitude: testOfficeLon}

		resp, err := svc.CheckIn(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.DistanceMeters)
		assert.InDelta(t, distance, *resp.DistanceMeters, 0.001)
	})

	t.Run("distance one meter past radius is rejected", func(t *testing.T) {
		office := testOffice()
		office.RadiusMeters = distance - 1

		repo := &memoryAttendanceRepo{}
		svc := newTestService(t, repo, office)

		req := validRequest()
		req.Location = &checkin.Location{Latitude: awayLat, Longitude: testOfficeLon}

		_, err := svc.CheckIn(context.Background(), req)
		require.ErrorIs(t, err, checkin.ErrOutsideGeofence)
		assert.Contains(t, err.Error(), "allowed radius")
		assert.Zero(t, repo.len())
	})
}

func TestCheckIn_GeofenceDisabledSkipsLocationChecks(t *testing.T) {
	office := testOffice()
	office.GeofenceEnabled = false

	repo := &memoryAttendanceRepo{}
	svc := newTestService(t, repo, office)

	req := validRequest()
	req.Location = nil

	resp, err := svc.CheckIn(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.DistanceMeters)
	assert.Equal(t, 1, repo.len())
}

func TestCheckIn_EmployeeDuplicateRejectedAcrossDevices(t *testing.T) {
	repo := &memoryAttendanceRepo{}
	svc := newTestService(t, repo, testOffice())

	_, err := svc.CheckIn(context.Background(), validRequest())
	require.NoError(t, err)

	// Same employee, different device.
	req := validRequest()
	req.DeviceID = "198.51.100.9"

	_, err = svc.CheckIn(context.Background(), req)
	require.ErrorIs(t, err, checkin.ErrAlreadyCheckedIn)
	assert.Contains(t, err.Error(), "John Smith (HR001)")
	assert.Equal(t, 1, repo.len())
}

func TestCheckIn_DeviceDuplicateRejectedAcrossEmployees(t *testing.T) {
	repo := &memoryAttendanceRepo{}
	svc := newTestService(t, repo, testOffice())

	_, err := svc.CheckIn(context.Background(), validRequest())
	require.NoError(t, err)

	// Different employee, same device.
	req := validRequest()
	req.EmployeeCode = "IT001"
	req.EmployeeName = "Mike Davis"
	req.DepartmentName = "Information Technology"

	_, err = svc.CheckIn(context.Background(), req)
	require.ErrorIs(t, err, checkin.ErrDeviceAlreadyUsed)
	assert.NotContains(t, err.Error(), "203.0.113.7", "device identifier must not leak to the user")
	assert.Equal(t, 1, repo.len())
}

func TestCheckIn_StorageFaultIsNotTreatedAsNoDuplicate(t *testing.T) {
	repo := &memoryAttendanceRepo{failCounts: true}
	svc := newTestService(t, repo, testOffice())

	_, err := svc.CheckIn(context.Background(), validRequest())

	require.ErrorIs(t, err, checkin.ErrStorageUnavailable)
	assert.Zero(t, repo.len(), "a failed duplicate lookup must not reach the insert")
}

func TestCheckIn_InsertFaultSurfacesAsStorageError(t *testing.T) {
	repo := &memoryAttendanceRepo{failCreate: true}
	svc := newTestService(t, repo, testOffice())

	_, err := svc.CheckIn(context.Background(), validRequest())

	require.ErrorIs(t, err, checkin.ErrStorageUnavailable)
}

// TestCheckIn_ConcurrentSameEmployee is the regression test for the
// check-then-insert race: all submissions pass the fast-path lookups at
// roughly the same time, and the store-level uniqueness must still admit
// exactly one.
func TestCheckIn_ConcurrentSameEmployee(t *testing.T) {
	const attempts = 25

	repo := &memoryAttendanceRepo{}
	svc := newTestService(t, repo, testOffice())

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(device int) {
			defer wg.Done()
			req := validRequest()
			// Distinct devices so only the employee key contends.
			req.DeviceID = fmt.Sprintf("203.0.113.%d", device+10)
			_, err := svc.CheckIn(context.Background(), req)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	accepted, rejected := 0, 0
	for err := range results {
		if err == nil {
			accepted++
			continue
		}
		require.ErrorIs(t, err, checkin.ErrAlreadyCheckedIn)
		rejected++
	}

	assert.Equal(t, 1, accepted)
	assert.Equal(t, attempts-1, rejected)
	assert.Equal(t, 1, repo.len())
}

func TestListByDate_DefaultsToToday(t *testing.T) {
	repo := &memoryAttendanceRepo{}
	svc := newTestService(t, repo, testOffice())

	_, err := svc.CheckIn(context.Background(), validRequest())
	require.NoError(t, err)

	records, err := svc.ListByDate(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "HR001", records[0].EmployeeCode)
	assert.Equal(t, "2026-09-01", records[0].CheckInDate)
}

func TestListByDate_RejectsMalformedDate(t *testing.T) {
	repo := &memoryAttendanceRepo{}
	svc := newTestService(t, repo, testOffice())

	_, err := svc.ListByDate(context.Background(), "01-09-2026")

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}
