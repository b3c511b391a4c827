package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

// UpsertSalaryStructureRequest creates or replaces the structure for an
// employee. All amounts are monthly and sent as decimal strings.
type UpsertSalaryStructureRequest struct {
	EmployeeID         string `json:"employee_id"`
	BasicSalary        string `json:"basic_salary"`
	HRA                string `json:"hra"`
	DA                 string `json:"da"`
	MedicalAllowance   string `json:"medical_allowance"`
	TransportAllowance string `json:"transport_allowance"`
	SpecialAllowance   string `json:"special_allowance"`
	PFDeduction        string `json:"pf_deduction"`
	ProfessionalTax    string `json:"professional_tax"`
	IncomeTax          string `json:"income_tax"`
	EffectiveFrom      string `json:"effective_from"`
}

func (r *UpsertSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid uuid",
		})
	}
	amounts := map[string]string{
		"basic_salary":        r.BasicSalary,
		"hra":                 r.HRA,
		"da":                  r.DA,
		"medical_allowance":   r.MedicalAllowance,
		"transport_allowance": r.TransportAllowance,
		"special_allowance":   r.SpecialAllowance,
		"pf_deduction":        r.PFDeduction,
		"professional_tax":    r.ProfessionalTax,
		"income_tax":          r.IncomeTax,
	}
	for field, value := range amounts {
		if amount, err := decimal.NewFromString(value); err != nil || amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a non-negative decimal",
			})
		}
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToStructure builds the entity after a successful Validate.
func (r *UpsertSalaryStructureRequest) ToStructure() *SalaryStructure {
	parse := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	effectiveFrom, _ := time.Parse("2006-01-02", r.EffectiveFrom)
	return &SalaryStructure{
		EmployeeID:         r.EmployeeID,
		BasicSalary:        parse(r.BasicSalary),
		HRA:                parse(r.HRA),
		DA:                 parse(r.DA),
		MedicalAllowance:   parse(r.MedicalAllowance),
		TransportAllowance: parse(r.TransportAllowance),
		SpecialAllowance:   parse(r.SpecialAllowance),
		PFDeduction:        parse(r.PFDeduction),
		ProfessionalTax:    parse(r.ProfessionalTax),
		IncomeTax:          parse(r.IncomeTax),
		EffectiveFrom:      effectiveFrom,
	}
}

// CalculateComponentRequest converts one salary component between
// percent-of-basic and absolute amount. Exactly one of percent or
// amount must be set.
type CalculateComponentRequest struct {
	BasicSalary string  `json:"basic_salary"`
	Percent     *string `json:"percent,omitempty"`
	Amount      *string `json:"amount,omitempty"`
}

func (r *CalculateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if basic, err := decimal.NewFromString(r.BasicSalary); err != nil || basic.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must be a non-negative decimal",
		})
	}
	if (r.Percent == nil) == (r.Amount == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "percent",
			Message: "exactly one of percent or amount is required",
		})
	}
	if r.Percent != nil {
		if p, err := decimal.NewFromString(*r.Percent); err != nil || p.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "percent",
				Message: "percent must be a non-negative decimal",
			})
		}
	}
	if r.Amount != nil {
		if a, err := decimal.NewFromString(*r.Amount); err != nil || a.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "amount",
				Message: "amount must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComponentCalculationResponse struct {
	BasicSalary string `json:"basic_salary"`
	Percent     string `json:"percent"`
	Amount      string `json:"amount"`
}

// GeneratePayrollRequest creates pay slips for one employee or, when
// employee_id is omitted, for every active employee with a structure.
type GeneratePayrollRequest struct {
	EmployeeID      *string `json:"employee_id,omitempty"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	Bonus           *string `json:"bonus,omitempty"`
	OtherDeductions *string `json:"other_deductions,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid uuid",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	for field, value := range map[string]*string{"bonus": r.Bonus, "other_deductions": r.OtherDeductions} {
		if value == nil {
			continue
		}
		if amount, err := decimal.NewFromString(*value); err != nil || amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollStatusRequest struct {
	Status      string  `json:"status"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

func (r *UpdatePayrollStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PENDING, PROCESSING, PAID, CANCELLED",
		})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_date",
				Message: "payment_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryStructureResponse struct {
	ID                        string  `json:"id"`
	EmployeeID                string  `json:"employee_id"`
	EmployeeName              *string `json:"employee_name,omitempty"`
	EmployeeCode              *string `json:"employee_code,omitempty"`
	BasicSalary               string  `json:"basic_salary"`
	HRA                       string  `json:"hra"`
	HRAPercent                string  `json:"hra_percent"`
	DA                        string  `json:"da"`
	DAPercent                 string  `json:"da_percent"`
	MedicalAllowance          string  `json:"medical_allowance"`
	MedicalAllowancePercent   string  `json:"medical_allowance_percent"`
	TransportAllowance        string  `json:"transport_allowance"`
	TransportAllowancePercent string  `json:"transport_allowance_percent"`
	SpecialAllowance          string  `json:"special_allowance"`
	SpecialAllowancePercent   string  `json:"special_allowance_percent"`
	PFDeduction               string  `json:"pf_deduction"`
	PFDeductionPercent        string  `json:"pf_deduction_percent"`
	ProfessionalTax           string  `json:"professional_tax"`
	ProfessionalTaxPercent    string  `json:"professional_tax_percent"`
	IncomeTax                 string  `json:"income_tax"`
	IncomeTaxPercent          string  `json:"income_tax_percent"`
	GrossSalary               string  `json:"gross_salary"`
	TotalDeductions           string  `json:"total_deductions"`
	NetSalary                 string  `json:"net_salary"`
	EffectiveFrom             string  `json:"effective_from"`
}

// ToSalaryStructureResponse pairs every stored amount with its
// percentage of basic salary, so editors can work in either unit.
func ToSalaryStructureResponse(s *SalaryStructure) *SalaryStructureResponse {
	percent := func(amount decimal.Decimal) string {
		return PercentOfBasic(amount, s.BasicSalary).StringFixed(2)
	}
	return &SalaryStructureResponse{
		ID:                        s.ID,
		EmployeeID:                s.EmployeeID,
		EmployeeName:              s.EmployeeName,
		EmployeeCode:              s.EmployeeCode,
		BasicSalary:               s.BasicSalary.StringFixed(2),
		HRA:                       s.HRA.StringFixed(2),
		HRAPercent:                percent(s.HRA),
		DA:                        s.DA.StringFixed(2),
		DAPercent:                 percent(s.DA),
		MedicalAllowance:          s.MedicalAllowance.StringFixed(2),
		MedicalAllowancePercent:   percent(s.MedicalAllowance),
		TransportAllowance:        s.TransportAllowance.StringFixed(2),
		TransportAllowancePercent: percent(s.TransportAllowance),
		SpecialAllowance:          s.SpecialAllowance.StringFixed(2),
		SpecialAllowancePercent:   percent(s.SpecialAllowance),
		PFDeduction:               s.PFDeduction.StringFixed(2),
		PFDeductionPercent:        percent(s.PFDeduction),
		ProfessionalTax:           s.ProfessionalTax.StringFixed(2),
		ProfessionalTaxPercent:    percent(s.ProfessionalTax),
		IncomeTax:                 s.IncomeTax.StringFixed(2),
		IncomeTaxPercent:          percent(s.IncomeTax),
		GrossSalary:               s.GrossSalary().StringFixed(2),
		TotalDeductions:           s.TotalDeductions().StringFixed(2),
		NetSalary:                 s.NetSalary().StringFixed(2),
		EffectiveFrom:             s.EffectiveFrom.Format("2006-01-02"),
	}
}

func ToSalaryStructureResponses(structures []SalaryStructure) []SalaryStructureResponse {
	out := make([]SalaryStructureResponse, 0, len(structures))
	for i := range structures {
		out = append(out, *ToSalaryStructureResponse(&structures[i]))
	}
	return out
}

type PayrollResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       *string `json:"employee_name,omitempty"`
	EmployeeCode       *string `json:"employee_code,omitempty"`
	Department         *string `json:"department,omitempty"`
	Designation        *string `json:"designation,omitempty"`
	Month              int     `json:"month"`
	Year               int     `json:"year"`
	BasicSalary        string  `json:"basic_salary"`
	HRA                string  `json:"hra"`
	DA                 string  `json:"da"`
	MedicalAllowance   string  `json:"medical_allowance"`
	TransportAllowance string  `json:"transport_allowance"`
	SpecialAllowance   string  `json:"special_allowance"`
	Bonus              string  `json:"bonus"`
	PFDeduction        string  `json:"pf_deduction"`
	ProfessionalTax    string  `json:"professional_tax"`
	IncomeTax          string  `json:"income_tax"`
	OtherDeductions    string  `json:"other_deductions"`
	GrossSalary        string  `json:"gross_salary"`
	TotalDeductions    string  `json:"total_deductions"`
	NetSalary          string  `json:"net_salary"`
	WorkingDays        int     `json:"working_days"`
	PaidDays           int     `json:"paid_days"`
	Status             Status  `json:"status"`
	PaymentDate        *string `json:"payment_date,omitempty"`
}

func ToPayrollResponse(p *Payroll) *PayrollResponse {
	resp := &PayrollResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		EmployeeName:       p.EmployeeName,
		EmployeeCode:       p.EmployeeCode,
		Department:         p.Department,
		Designation:        p.Designation,
		Month:              p.Month,
		Year:               p.Year,
		BasicSalary:        p.BasicSalary.StringFixed(2),
		HRA:                p.HRA.StringFixed(2),
		DA:                 p.DA.StringFixed(2),
		MedicalAllowance:   p.MedicalAllowance.StringFixed(2),
		TransportAllowance: p.TransportAllowance.StringFixed(2),
		SpecialAllowance:   p.SpecialAllowance.StringFixed(2),
		Bonus:              p.Bonus.StringFixed(2),
		PFDeduction:        p.PFDeduction.StringFixed(2),
		ProfessionalTax:    p.ProfessionalTax.StringFixed(2),
		IncomeTax:          p.IncomeTax.StringFixed(2),
		OtherDeductions:    p.OtherDeductions.StringFixed(2),
		GrossSalary:        p.GrossSalary.StringFixed(2),
		TotalDeductions:    p.TotalDeductions.StringFixed(2),
		NetSalary:          p.NetSalary.StringFixed(2),
		WorkingDays:        p.WorkingDays,
		PaidDays:           p.PaidDays,
		Status:             p.Status,
	}
	if p.PaymentDate != nil {
		formatted := p.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &formatted
	}
	return resp
}

func ToPayrollResponses(payrolls []Payroll) []PayrollResponse {
	out := make([]PayrollResponse, 0, len(payrolls))
	for i := range payrolls {
		out = append(out, *ToPayrollResponse(&payrolls[i]))
	}
	return out
}
