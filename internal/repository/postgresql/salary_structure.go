package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type salaryStructureRepositoryImpl struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepositoryImpl{db: db}
}

const salaryStructureColumns = `
	s.id, s.employee_id,
	s.basic_salary, s.hra, s.da, s.medical_allowance, s.transport_allowance, s.special_allowance,
	s.pf_deduction, s.professional_tax, s.income_tax,
	s.effective_from, s.created_at, s.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.employee_code
`

const salaryStructureJoins = `
	FROM salary_structures s
	INNER JOIN employees e ON e.id = s.employee_id
`

func scanSalaryStructure(row pgx.Row) (*payroll.SalaryStructure, error) {
	var s payroll.SalaryStructure
	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.BasicSalary,
		&s.HRA,
		&s.DA,
		&s.MedicalAllowance,
		&s.TransportAllowance,
		&s.SpecialAllowance,
		&s.PFDeduction,
		&s.ProfessionalTax,
		&s.IncomeTax,
		&s.EffectiveFrom,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.EmployeeName,
		&s.EmployeeCode,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *salaryStructureRepositoryImpl) Create(ctx context.Context, s *payroll.SalaryStructure) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO salary_structures (
			id, employee_id,
			basic_salary, hra, da, medical_allowance, transport_allowance, special_allowance,
			pf_deduction, professional_tax, income_tax,
			effective_from, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return q.QueryRow(ctx, query,
		s.ID, s.EmployeeID,
		s.BasicSalary, s.HRA, s.DA, s.MedicalAllowance, s.TransportAllowance, s.SpecialAllowance,
		s.PFDeduction, s.ProfessionalTax, s.IncomeTax,
		s.EffectiveFrom,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *salaryStructureRepositoryImpl) GetByID(ctx context.Context, id string) (*payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + salaryStructureColumns + salaryStructureJoins + ` WHERE s.id = $1`
	s, err := scanSalaryStructure(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, payroll.ErrStructureNotFound
	}
	return s, err
}

func (r *salaryStructureRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (*payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + salaryStructureColumns + salaryStructureJoins + ` WHERE s.employee_id = $1`
	s, err := scanSalaryStructure(q.QueryRow(ctx, query, employeeID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, payroll.ErrStructureNotFound
	}
	return s, err
}

func (r *salaryStructureRepositoryImpl) List(ctx context.Context) ([]payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + salaryStructureColumns + salaryStructureJoins + ` ORDER BY e.employee_code`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []payroll.SalaryStructure
	for rows.Next() {
		s, err := scanSalaryStructure(rows)
		if err != nil {
			return nil, err
		}
		structures = append(structures, *s)
	}
	return structures, rows.Err()
}

func (r *salaryStructureRepositoryImpl) Update(ctx context.Context, s *payroll.SalaryStructure) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE salary_structures SET
			basic_salary = $2, hra = $3, da = $4, medical_allowance = $5,
			transport_allowance = $6, special_allowance = $7,
			pf_deduction = $8, professional_tax = $9, income_tax = $10,
			effective_from = $11, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		s.ID, s.BasicSalary, s.HRA, s.DA, s.MedicalAllowance,
		s.TransportAllowance, s.SpecialAllowance,
		s.PFDeduction, s.ProfessionalTax, s.IncomeTax,
		s.EffectiveFrom,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrStructureNotFound
	}
	return nil
}

func (r *salaryStructureRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM salary_structures WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrStructureNotFound
	}
	return nil
}
