package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/metrics"
)

// validTransitions maps each payroll status to the statuses it may
// move to. PAID and CANCELLED are terminal.
var validTransitions = map[payroll.Status][]payroll.Status{
	payroll.StatusPending:    {payroll.StatusProcessing, payroll.StatusCancelled},
	payroll.StatusProcessing: {payroll.StatusPaid, payroll.StatusCancelled},
}

func canTransition(from, to payroll.Status) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type PayrollService struct {
	payroll.SalaryStructureRepository
	payroll.PayrollRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewPayrollService(structureRepository payroll.SalaryStructureRepository, payrollRepository payroll.PayrollRepository, employeeRepository employee.EmployeeRepository) *PayrollService {
	return &PayrollService{
		SalaryStructureRepository: structureRepository,
		PayrollRepository:         payrollRepository,
		EmployeeRepository:        employeeRepository,
		now:                       time.Now,
	}
}

// ---- salary structures ----

// UpsertStructure creates the structure for an employee or replaces
// the existing one.
func (s *PayrollService) UpsertStructure(ctx context.Context, req payroll.UpsertSalaryStructureRequest) (*payroll.SalaryStructure, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	structure := req.ToStructure()

	existing, err := s.SalaryStructureRepository.GetByEmployee(ctx, req.EmployeeID)
	switch {
	case err == nil:
		structure.ID = existing.ID
		if err := s.SalaryStructureRepository.Update(ctx, structure); err != nil {
			return nil, fmt.Errorf("failed to update salary structure: %w", err)
		}
	case errors.Is(err, payroll.ErrStructureNotFound):
		structure.ID = uuid.NewString()
		if err := s.SalaryStructureRepository.Create(ctx, structure); err != nil {
			return nil, fmt.Errorf("failed to create salary structure: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return s.SalaryStructureRepository.GetByID(ctx, structure.ID)
}

func (s *PayrollService) GetStructure(ctx context.Context, id string) (*payroll.SalaryStructure, error) {
	return s.SalaryStructureRepository.GetByID(ctx, id)
}

func (s *PayrollService) GetStructureByEmployee(ctx context.Context, employeeID string) (*payroll.SalaryStructure, error) {
	return s.SalaryStructureRepository.GetByEmployee(ctx, employeeID)
}

func (s *PayrollService) ListStructures(ctx context.Context) ([]payroll.SalaryStructure, error) {
	return s.SalaryStructureRepository.List(ctx)
}

func (s *PayrollService) DeleteStructure(ctx context.Context, id string) error {
	return s.SalaryStructureRepository.Delete(ctx, id)
}

// CalculateComponent converts one component between percent-of-basic
// and absolute amount.
func (s *PayrollService) CalculateComponent(req payroll.CalculateComponentRequest) payroll.ComponentCalculationResponse {
	basic, _ := decimal.NewFromString(req.BasicSalary)

	var percent, amount decimal.Decimal
	if req.Percent != nil {
		percent, _ = decimal.NewFromString(*req.Percent)
		amount = payroll.AmountFromPercent(percent, basic)
	} else {
		amount, _ = decimal.NewFromString(*req.Amount)
		percent = payroll.PercentOfBasic(amount, basic)
	}

	return payroll.ComponentCalculationResponse{
		BasicSalary: basic.StringFixed(2),
		Percent:     percent.StringFixed(2),
		Amount:      amount.StringFixed(2),
	}
}

// ---- payroll generation ----

// Generate creates pay slips for one month. With an employee id it
// generates a single slip, otherwise one per active employee that has
// a salary structure. Amounts are snapshots of the structure.
func (s *PayrollService) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.Payroll, error) {
	var targets []employee.Employee
	if req.EmployeeID != nil {
		emp, err := s.EmployeeRepository.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return nil, err
		}
		targets = []employee.Employee{emp}
	} else {
		var err error
		targets, err = s.EmployeeRepository.ListByStatus(ctx, employee.EmploymentStatusActive)
		if err != nil {
			return nil, fmt.Errorf("failed to list active employees: %w", err)
		}
	}

	bonus := decimal.Zero
	if req.Bonus != nil {
		bonus, _ = decimal.NewFromString(*req.Bonus)
	}
	otherDeductions := decimal.Zero
	if req.OtherDeductions != nil {
		otherDeductions, _ = decimal.NewFromString(*req.OtherDeductions)
	}

	var generated []payroll.Payroll
	for _, emp := range targets {
		if _, err := s.PayrollRepository.GetByEmployeeMonth(ctx, emp.ID, req.Month, req.Year); err == nil {
			if req.EmployeeID != nil {
				return nil, payroll.ErrPayrollExists
			}
			continue
		} else if !errors.Is(err, payroll.ErrPayrollNotFound) {
			return nil, fmt.Errorf("failed to check existing payroll: %w", err)
		}

		structure, err := s.SalaryStructureRepository.GetByEmployee(ctx, emp.ID)
		if err != nil {
			if errors.Is(err, payroll.ErrStructureNotFound) {
				if req.EmployeeID != nil {
					return nil, payroll.ErrStructureNotFound
				}
				continue
			}
			return nil, fmt.Errorf("failed to get salary structure: %w", err)
		}

		slip := payroll.Payroll{
			ID:                 uuid.NewString(),
			EmployeeID:         emp.ID,
			Month:              req.Month,
			Year:               req.Year,
			BasicSalary:        structure.BasicSalary,
			HRA:                structure.HRA,
			DA:                 structure.DA,
			MedicalAllowance:   structure.MedicalAllowance,
			TransportAllowance: structure.TransportAllowance,
			SpecialAllowance:   structure.SpecialAllowance,
			Bonus:              bonus,
			PFDeduction:        structure.PFDeduction,
			ProfessionalTax:    structure.ProfessionalTax,
			IncomeTax:          structure.IncomeTax,
			OtherDeductions:    otherDeductions,
			WorkingDays:        workingDaysInMonth(req.Year, time.Month(req.Month)),
			Status:             payroll.StatusPending,
		}
		slip.PaidDays = slip.WorkingDays
		slip.ComputeTotals()

		if err := s.PayrollRepository.Create(ctx, &slip); err != nil {
			return nil, fmt.Errorf("failed to create payroll: %w", err)
		}
		metrics.PayrollGeneratedTotal.Inc()

		full, err := s.PayrollRepository.GetByID(ctx, slip.ID)
		if err != nil {
			return nil, err
		}
		generated = append(generated, *full)
	}

	if generated == nil {
		generated = []payroll.Payroll{}
	}
	return generated, nil
}

func workingDaysInMonth(year int, month time.Month) int {
	day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	count := 0
	for day.Month() == month {
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

func (s *PayrollService) Get(ctx context.Context, id string) (*payroll.Payroll, error) {
	return s.PayrollRepository.GetByID(ctx, id)
}

func (s *PayrollService) ListByMonth(ctx context.Context, month, year int) ([]payroll.Payroll, error) {
	return s.PayrollRepository.ListByMonth(ctx, month, year)
}

func (s *PayrollService) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	return s.PayrollRepository.ListByEmployee(ctx, employeeID)
}

// ListMine returns pay slips for the employee linked to the calling
// user.
func (s *PayrollService) ListMine(ctx context.Context, userID string) ([]payroll.Payroll, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.PayrollRepository.ListByEmployee(ctx, emp.ID)
}

// UpdateStatus advances a pay slip through its lifecycle. Moving to
// PAID stamps the payment date.
func (s *PayrollService) UpdateStatus(ctx context.Context, id string, req payroll.UpdatePayrollStatusRequest) (*payroll.Payroll, error) {
	slip, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := payroll.Status(req.Status)
	if !canTransition(slip.Status, target) {
		return nil, payroll.ErrInvalidStatusTransition
	}

	slip.Status = target
	if target == payroll.StatusPaid {
		paymentDate := s.now()
		if req.PaymentDate != nil {
			paymentDate, _ = time.Parse("2006-01-02", *req.PaymentDate)
		}
		slip.PaymentDate = &paymentDate
	}

	if err := s.PayrollRepository.Update(ctx, slip); err != nil {
		return nil, fmt.Errorf("failed to update payroll: %w", err)
	}
	return s.PayrollRepository.GetByID(ctx, id)
}

func (s *PayrollService) Delete(ctx context.Context, id string) error {
	return s.PayrollRepository.Delete(ctx, id)
}
