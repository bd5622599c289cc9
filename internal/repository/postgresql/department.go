package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/checkin-backend-go/internal/domain/directory"
	"github.com/attendly/checkin-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) directory.DepartmentRepository {
	return &departmentRepository{db: db}
}

// List implements directory.DepartmentRepository.
func (d *departmentRepository) List(ctx context.Context) ([]directory.Department, error) {
	q := GetQuerier(ctx, d.db)

	rows, err := q.Query(ctx,
		`SELECT id, name, created_at FROM departments ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []directory.Department
	for rows.Next() {
		var dept directory.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read departments: %w", err)
	}

	return departments, nil
}

// GetByID implements directory.DepartmentRepository.
func (d *departmentRepository) GetByID(ctx context.Context, id int64) (directory.Department, error) {
	q := GetQuerier(ctx, d.db)

	var dept directory.Department
	err := q.QueryRow(ctx,
		`SELECT id, name, created_at FROM departments WHERE id = $1`,
		id,
	).Scan(&dept.ID, &dept.Name, &dept.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return directory.Department{}, directory.ErrDepartmentNotFound
		}
		return directory.Department{}, fmt.Errorf("failed to get department by id: %w", err)
	}

	return dept, nil
}

// Count implements directory.DepartmentRepository.
func (d *departmentRepository) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, d.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}

	return count, nil
}

// Create implements directory.DepartmentRepository.
func (d *departmentRepository) Create(ctx context.Context, department directory.Department) (directory.Department, error) {
	q := GetQuerier(ctx, d.db)

	err := q.QueryRow(ctx,
		`INSERT INTO departments (name) VALUES ($1) RETURNING id, created_at`,
		department.Name,
	).Scan(&department.ID, &department.CreatedAt)
	if err != nil {
		return directory.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return department, nil
}
