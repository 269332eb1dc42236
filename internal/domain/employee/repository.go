package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id, branchID string) (Employee, error)

	// GetByBranch returns the branch roster. When ids is non-empty the roster
	// is restricted to those employees.
	GetByBranch(ctx context.Context, branchID string, ids []string) ([]Employee, error)
}
