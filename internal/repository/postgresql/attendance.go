package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.clock_in_time, a.clock_out_time,
	a.working_hours, a.status, a.remarks, a.is_late, a.late_minutes,
	a.created_at, a.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.employee_code
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.ClockInTime,
		&a.ClockOutTime,
		&a.WorkingHours,
		&a.Status,
		&a.Remarks,
		&a.IsLate,
		&a.LateMinutes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeName,
		&a.EmployeeCode,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) collect(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()
	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO attendance (
			id, employee_id, date, clock_in_time, clock_out_time,
			working_hours, status, remarks, is_late, late_minutes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.ClockInTime, record.ClockOutTime,
		record.WorkingHours, record.Status, record.Remarks, record.IsLate, record.LateMinutes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	return record, err
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`
	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return a, err
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`
	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return a, err
}

func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY e.employee_code
	`
	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`
	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE attendance SET
			clock_in_time = $2, clock_out_time = $3, working_hours = $4,
			status = $5, remarks = $6, is_late = $7, late_minutes = $8,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		record.ID, record.ClockInTime, record.ClockOutTime, record.WorkingHours,
		record.Status, record.Remarks, record.IsLate, record.LateMinutes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}
