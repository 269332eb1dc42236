package postgresql

import (
	"context"
	"fmt"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/employee"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id, branchID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_id, full_name, employment, attendance
		FROM employees
		WHERE id = $1 AND branch_id = $2
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, branchID).Scan(
		&emp.ID, &emp.BranchID, &emp.Name, &emp.Employment, &emp.Attendance,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// GetByBranch implements employee.EmployeeRepository.
func (r *employeeRepository) GetByBranch(ctx context.Context, branchID string, ids []string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_id, full_name, employment, attendance
		FROM employees
		WHERE branch_id = $1
		  AND ($2::text[] IS NULL OR id = ANY($2))
		ORDER BY id
	`

	var filter any
	if len(ids) > 0 {
		filter = ids
	}

	rows, err := q.Query(ctx, query, branchID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.BranchID, &emp.Name, &emp.Employment, &emp.Attendance); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}
