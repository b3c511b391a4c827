package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, code string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)
	ListByStatus(ctx context.Context, status EmploymentStatus) ([]Employee, error)
	Search(ctx context.Context, keyword string) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status EmploymentStatus) (int64, error)
	CountByDepartment(ctx context.Context, department string) (int64, error)
	// NextSequence returns the next value for employee code generation.
	NextSequence(ctx context.Context) (int64, error)
}
