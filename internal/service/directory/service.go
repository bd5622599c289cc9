package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/attendly/checkin-backend-go/internal/domain/directory"
	"github.com/attendly/checkin-backend-go/internal/fixtures"
	"github.com/attendly/checkin-backend-go/internal/pkg/database"
	"github.com/attendly/checkin-backend-go/internal/repository/postgresql"
)

type DirectoryServiceImpl struct {
	db *database.DB
	directory.DepartmentRepository
	directory.EmployeeRepository
}

func NewDirectoryService(
	db *database.DB,
	departmentRepo directory.DepartmentRepository,
	employeeRepo directory.EmployeeRepository,
) directory.DirectoryService {
	return &DirectoryServiceImpl{
		db:                   db,
		DepartmentRepository: departmentRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// ListDepartments implements directory.DirectoryService.
func (s *DirectoryServiceImpl) ListDepartments(ctx context.Context) ([]directory.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]directory.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, directory.DepartmentResponse{
			ID:   dept.ID,
			Name: dept.Name,
		})
	}

	return responses, nil
}

// ListEmployeesByDepartment implements directory.DirectoryService.
func (s *DirectoryServiceImpl) ListEmployeesByDepartment(ctx context.Context, departmentID int64) ([]directory.EmployeeResponse, error) {
	// Verify the department exists so an unknown ID is a 404, not an
	// empty list.
	if _, err := s.DepartmentRepository.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.ListActiveByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]directory.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, directory.EmployeeResponse{
			Code:           emp.Code,
			Name:           emp.Name,
			DepartmentName: emp.DepartmentName,
		})
	}

	return responses, nil
}

// SeedDefaults implements directory.DirectoryService. The whole seed runs
// in one transaction so a partially seeded directory never survives a
// failed startup.
func (s *DirectoryServiceImpl) SeedDefaults(ctx context.Context) error {
	count, err := s.DepartmentRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count departments: %w", err)
	}
	if count > 0 {
		slog.Info("directory already seeded, skipping defaults", "departments", count)
		return nil
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		departmentIDs := make(map[string]int64, len(fixtures.DefaultDepartments))
		for _, name := range fixtures.DefaultDepartments {
			created, err := s.DepartmentRepository.Create(txCtx, directory.Department{Name: name})
			if err != nil {
				return fmt.Errorf("failed to seed department %q: %w", name, err)
			}
			departmentIDs[name] = created.ID
		}

		for _, emp := range fixtures.DefaultEmployees {
			departmentID, ok := departmentIDs[emp.Department]
			if !ok {
				return fmt.Errorf("seed employee %s references unknown department %q", emp.Code, emp.Department)
			}
			_, err := s.EmployeeRepository.Create(txCtx, directory.Employee{
				Code:         emp.Code,
				Name:         emp.Name,
				DepartmentID: departmentID,
				Active:       true,
			})
			if err != nil {
				return fmt.Errorf("failed to seed employee %s: %w", emp.Code, err)
			}
		}

		slog.Info("seeded default directory",
			"departments", len(fixtures.DefaultDepartments),
			"employees", len(fixtures.DefaultEmployees),
		)
		return nil
	})
}
