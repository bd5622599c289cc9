package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/checkin-backend-go/internal/domain/checkin"
	"github.com/attendly/checkin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode      = "23505"
	employeeDateIndex        = "ux_attendance_employee_date"
	deviceDateIndex          = "ux_attendance_device_date"
	attendanceRecordsColumns = `id, employee_code, employee_name, department_name, rating, device_id,
			latitude, longitude, distance_meters, check_in_time, check_in_date, created_at`
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) checkin.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements checkin.AttendanceRepository. A unique-index violation
// is translated into the matching policy rejection so the insert is the
// source of truth for the daily duplicate invariants.
func (a *attendanceRepository) Create(ctx context.Context, record checkin.Attendance) (checkin.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_code, employee_name, department_name, rating, device_id,
			latitude, longitude, distance_meters, check_in_time, check_in_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeCode,
		record.EmployeeName,
		record.DepartmentName,
		record.Rating,
		record.DeviceID,
		record.Latitude,
		record.Longitude,
		record.DistanceMeters,
		record.CheckInTime,
		record.CheckInDate,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			switch pgErr.ConstraintName {
			case deviceDateIndex:
				return checkin.Attendance{}, checkin.ErrDeviceAlreadyUsed
			default:
				return checkin.Attendance{}, checkin.ErrAlreadyCheckedIn
			}
		}
		return checkin.Attendance{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return record, nil
}

// CountByEmployeeAndDate implements checkin.AttendanceRepository.
func (a *attendanceRepository) CountByEmployeeAndDate(ctx context.Context, employeeCode string, date string) (int, error) {
	q := GetQuerier(ctx, a.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE employee_code = $1 AND check_in_date = $2`,
		employeeCode, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance by employee and date: %w", err)
	}

	return count, nil
}

// CountByDeviceAndDate implements checkin.AttendanceRepository.
func (a *attendanceRepository) CountByDeviceAndDate(ctx context.Context, deviceID string, date string) (int, error) {
	q := GetQuerier(ctx, a.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE device_id = $1 AND check_in_date = $2`,
		deviceID, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance by device and date: %w", err)
	}

	return count, nil
}

// ListByDate implements checkin.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date string) ([]checkin.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records
		WHERE check_in_date = $1
		ORDER BY check_in_time DESC
	`, attendanceRecordsColumns)

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []checkin.Attendance
	for rows.Next() {
		var rec checkin.Attendance
		var checkInDate time.Time
		err := rows.Scan(
			&rec.ID, &rec.EmployeeCode, &rec.EmployeeName, &rec.DepartmentName,
			&rec.Rating, &rec.DeviceID,
			&rec.Latitude, &rec.Longitude, &rec.DistanceMeters,
			&rec.CheckInTime, &checkInDate, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.CheckInDate = checkInDate.Format("2006-01-02")
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}
