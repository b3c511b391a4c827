package payroll

import "context"

type SalaryStructureRepository interface {
	Create(ctx context.Context, s *SalaryStructure) error
	GetByID(ctx context.Context, id string) (*SalaryStructure, error)
	GetByEmployee(ctx context.Context, employeeID string) (*SalaryStructure, error)
	List(ctx context.Context) ([]SalaryStructure, error)
	Update(ctx context.Context, s *SalaryStructure) error
	Delete(ctx context.Context, id string) error
}

type PayrollRepository interface {
	Create(ctx context.Context, p *Payroll) error
	GetByID(ctx context.Context, id string) (*Payroll, error)
	GetByEmployeeMonth(ctx context.Context, employeeID string, month, year int) (*Payroll, error)
	ListByMonth(ctx context.Context, month, year int) ([]Payroll, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	Update(ctx context.Context, p *Payroll) error
	Delete(ctx context.Context, id string) error
}
