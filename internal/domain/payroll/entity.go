package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusPaid       Status = "PAID"
	StatusCancelled  Status = "CANCELLED"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// SalaryStructure holds the monthly component breakdown for one employee.
// Earnings and deductions are stored as absolute monthly amounts.
type SalaryStructure struct {
	ID         string
	EmployeeID string

	BasicSalary        decimal.Decimal
	HRA                decimal.Decimal
	DA                 decimal.Decimal
	MedicalAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	SpecialAllowance   decimal.Decimal

	PFDeduction     decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal

	EffectiveFrom time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join fields
	EmployeeName *string
	EmployeeCode *string
}

// GrossSalary is the sum of all earning components.
func (s *SalaryStructure) GrossSalary() decimal.Decimal {
	return s.BasicSalary.
		Add(s.HRA).
		Add(s.DA).
		Add(s.MedicalAllowance).
		Add(s.TransportAllowance).
		Add(s.SpecialAllowance)
}

// TotalDeductions is the sum of all deduction components.
func (s *SalaryStructure) TotalDeductions() decimal.Decimal {
	return s.PFDeduction.
		Add(s.ProfessionalTax).
		Add(s.IncomeTax)
}

// NetSalary is gross minus deductions.
func (s *SalaryStructure) NetSalary() decimal.Decimal {
	return s.GrossSalary().Sub(s.TotalDeductions())
}

// Payroll is one generated pay slip for an employee and month. Amounts
// are snapshots taken from the salary structure at generation time and
// do not change if the structure is later edited.
type Payroll struct {
	ID         string
	EmployeeID string
	Month      int // 1..12
	Year       int

	BasicSalary        decimal.Decimal
	HRA                decimal.Decimal
	DA                 decimal.Decimal
	MedicalAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	SpecialAllowance   decimal.Decimal
	Bonus              decimal.Decimal

	PFDeduction     decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal
	OtherDeductions decimal.Decimal

	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	WorkingDays int
	PaidDays    int

	Status      Status
	PaymentDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
	Designation  *string
}

// ComputeTotals fills gross, total deductions and net from the
// component amounts.
func (p *Payroll) ComputeTotals() {
	p.GrossSalary = p.BasicSalary.
		Add(p.HRA).
		Add(p.DA).
		Add(p.MedicalAllowance).
		Add(p.TransportAllowance).
		Add(p.SpecialAllowance).
		Add(p.Bonus)
	p.TotalDeductions = p.PFDeduction.
		Add(p.ProfessionalTax).
		Add(p.IncomeTax).
		Add(p.OtherDeductions)
	p.NetSalary = p.GrossSalary.Sub(p.TotalDeductions)
}

// PercentOfBasic converts an absolute component amount into a
// percentage of basic salary, rounded to two decimals. A zero basic
// yields zero.
func PercentOfBasic(amount, basic decimal.Decimal) decimal.Decimal {
	if basic.IsZero() {
		return decimal.Zero
	}
	return amount.Div(basic).Mul(decimal.NewFromInt(100)).Round(2)
}

// AmountFromPercent converts a percentage of basic salary into an
// absolute amount, rounded to two decimals.
func AmountFromPercent(percent, basic decimal.Decimal) decimal.Decimal {
	return basic.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
}
