package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/checkin-backend-go/internal/domain/directory"
	"github.com/attendly/checkin-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) directory.EmployeeRepository {
	return &employeeRepository{db: db}
}

// ListActiveByDepartment implements directory.EmployeeRepository.
func (e *employeeRepository) ListActiveByDepartment(ctx context.Context, departmentID int64) ([]directory.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.employee_code, e.full_name, e.department_id, e.is_active, e.created_at,
			   d.name AS department_name
		FROM employees e
		INNER JOIN departments d ON d.id = e.department_id
		WHERE e.department_id = $1 AND e.is_active = TRUE
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []directory.Employee
	for rows.Next() {
		var emp directory.Employee
		err := rows.Scan(
			&emp.ID, &emp.Code, &emp.Name, &emp.DepartmentID, &emp.Active, &emp.CreatedAt,
			&emp.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

// Create implements directory.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, employee directory.Employee) (directory.Employee, error) {
	q := GetQuerier(ctx, e.db)

	err := q.QueryRow(ctx,
		`INSERT INTO employees (employee_code, full_name, department_id, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		employee.Code,
		employee.Name,
		employee.DepartmentID,
		employee.Active,
	).Scan(&employee.ID, &employee.CreatedAt)
	if err != nil {
		return directory.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}
