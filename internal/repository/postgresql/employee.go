package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, employee_code, first_name, last_name, email, phone_number,
	date_of_birth, gender, address, city, state, postal_code, country,
	department, designation, joining_date, employment_type, employment_status,
	basic_salary, manager_id, user_id, profile_image, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeCode,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.PhoneNumber,
		&e.DateOfBirth,
		&e.Gender,
		&e.Address,
		&e.City,
		&e.State,
		&e.PostalCode,
		&e.Country,
		&e.Department,
		&e.Designation,
		&e.JoiningDate,
		&e.EmploymentType,
		&e.EmploymentStatus,
		&e.BasicSalary,
		&e.ManagerID,
		&e.UserID,
		&e.ProfileImage,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) collect(rows pgx.Rows) ([]employee.Employee, error) {
	defer rows.Close()
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, email, phone_number,
			date_of_birth, gender, address, city, state, postal_code, country,
			department, designation, joining_date, employment_type, employment_status,
			basic_salary, manager_id, user_id, profile_image, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, NOW(), NOW()
		)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
		emp.DateOfBirth, emp.Gender, emp.Address, emp.City, emp.State, emp.PostalCode, emp.Country,
		emp.Department, emp.Designation, emp.JoiningDate, emp.EmploymentType, emp.EmploymentStatus,
		emp.BasicSalary, emp.ManagerID, emp.UserID, emp.ProfileImage,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	return emp, err
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(email) = LOWER($1)`
	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_code`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *employeeRepositoryImpl) ListByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE department = $1 ORDER BY employee_code`
	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *employeeRepositoryImpl) ListByStatus(ctx context.Context, status employee.EmploymentStatus) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employment_status = $1 ORDER BY employee_code`
	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *employeeRepositoryImpl) Search(ctx context.Context, keyword string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR employee_code ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		   OR department ILIKE '%' || $1 || '%'
		   OR designation ILIKE '%' || $1 || '%'
		ORDER BY employee_code
	`
	rows, err := q.Query(ctx, query, keyword)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, email = $4, phone_number = $5,
			date_of_birth = $6, gender = $7, address = $8, city = $9, state = $10,
			postal_code = $11, country = $12, department = $13, designation = $14,
			joining_date = $15, employment_type = $16, employment_status = $17,
			basic_salary = $18, manager_id = $19, user_id = $20, profile_image = $21,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
		emp.DateOfBirth, emp.Gender, emp.Address, emp.City, emp.State,
		emp.PostalCode, emp.Country, emp.Department, emp.Designation,
		emp.JoiningDate, emp.EmploymentType, emp.EmploymentStatus,
		emp.BasicSalary, emp.ManagerID, emp.UserID, emp.ProfileImage,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) CountByStatus(ctx context.Context, status employee.EmploymentStatus) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE employment_status = $1`, status).Scan(&count)
	return count, err
}

func (r *employeeRepositoryImpl) CountByDepartment(ctx context.Context, department string) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE department = $1`, department).Scan(&count)
	return count, err
}

func (r *employeeRepositoryImpl) NextSequence(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var next int64
	err := q.QueryRow(ctx, `SELECT nextval('employee_code_seq')`).Scan(&next)
	return next, err
}
