package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.year,
	p.basic_salary, p.hra, p.da, p.medical_allowance, p.transport_allowance, p.special_allowance, p.bonus,
	p.pf_deduction, p.professional_tax, p.income_tax, p.other_deductions,
	p.gross_salary, p.total_deductions, p.net_salary,
	p.working_days, p.paid_days, p.status, p.payment_date,
	p.created_at, p.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.employee_code,
	e.department, e.designation
`

const payrollJoins = `
	FROM payrolls p
	INNER JOIN employees e ON e.id = p.employee_id
`

func scanPayroll(row pgx.Row) (*payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.Month,
		&p.Year,
		&p.BasicSalary,
		&p.HRA,
		&p.DA,
		&p.MedicalAllowance,
		&p.TransportAllowance,
		&p.SpecialAllowance,
		&p.Bonus,
		&p.PFDeduction,
		&p.ProfessionalTax,
		&p.IncomeTax,
		&p.OtherDeductions,
		&p.GrossSalary,
		&p.TotalDeductions,
		&p.NetSalary,
		&p.WorkingDays,
		&p.PaidDays,
		&p.Status,
		&p.PaymentDate,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.EmployeeName,
		&p.EmployeeCode,
		&p.Department,
		&p.Designation,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *payrollRepositoryImpl) collect(rows pgx.Rows) ([]payroll.Payroll, error) {
	defer rows.Close()
	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		payrolls = append(payrolls, *p)
	}
	return payrolls, rows.Err()
}

func (r *payrollRepositoryImpl) Create(ctx context.Context, p *payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO payrolls (
			id, employee_id, month, year,
			basic_salary, hra, da, medical_allowance, transport_allowance, special_allowance, bonus,
			pf_deduction, professional_tax, income_tax, other_deductions,
			gross_salary, total_deductions, net_salary,
			working_days, paid_days, status, payment_date,
			created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22,
			NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`
	return q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.Month, p.Year,
		p.BasicSalary, p.HRA, p.DA, p.MedicalAllowance, p.TransportAllowance, p.SpecialAllowance, p.Bonus,
		p.PFDeduction, p.ProfessionalTax, p.IncomeTax, p.OtherDeductions,
		p.GrossSalary, p.TotalDeductions, p.NetSalary,
		p.WorkingDays, p.PaidDays, p.Status, p.PaymentDate,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + payrollColumns + payrollJoins + ` WHERE p.id = $1`
	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, payroll.ErrPayrollNotFound
	}
	return p, err
}

func (r *payrollRepositoryImpl) GetByEmployeeMonth(ctx context.Context, employeeID string, month, year int) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + payrollColumns + payrollJoins + `
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3
	`
	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, payroll.ErrPayrollNotFound
	}
	return p, err
}

func (r *payrollRepositoryImpl) ListByMonth(ctx context.Context, month, year int) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + payrollColumns + payrollJoins + `
		WHERE p.month = $1 AND p.year = $2
		ORDER BY e.employee_code
	`
	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + payrollColumns + payrollJoins + `
		WHERE p.employee_id = $1
		ORDER BY p.year DESC, p.month DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *payrollRepositoryImpl) Update(ctx context.Context, p *payroll.Payroll) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE payrolls
		SET status = $2, payment_date = $3, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, p.ID, p.Status, p.PaymentDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}
