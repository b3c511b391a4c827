package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id, lr.from_date, lr.to_date,
	lr.number_of_days, lr.reason, lr.status, lr.approved_by, lr.approval_date,
	lr.rejection_reason, lr.created_at, lr.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name, e.employee_code,
	lt.name AS leave_type_name,
	ap.first_name || ' ' || ap.last_name AS approver_name
`

const leaveRequestJoins = `
	FROM leave_requests lr
	INNER JOIN employees e ON e.id = lr.employee_id
	INNER JOIN leave_types lt ON lt.id = lr.leave_type_id
	LEFT JOIN employees ap ON ap.id = lr.approved_by
`

func scanLeaveRequest(row pgx.Row) (*leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.LeaveTypeID,
		&lr.FromDate,
		&lr.ToDate,
		&lr.NumberOfDays,
		&lr.Reason,
		&lr.Status,
		&lr.ApprovedBy,
		&lr.ApprovalDate,
		&lr.RejectionReason,
		&lr.CreatedAt,
		&lr.UpdatedAt,
		&lr.EmployeeName,
		&lr.EmployeeCode,
		&lr.LeaveTypeName,
		&lr.ApproverName,
	)
	if err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *leaveRequestRepositoryImpl) collect(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()
	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *lr)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id, from_date, to_date,
			number_of_days, reason, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return q.QueryRow(ctx, query,
		lr.ID, lr.EmployeeID, lr.LeaveTypeID, lr.FromDate, lr.ToDate,
		lr.NumberOfDays, lr.Reason, lr.Status,
	).Scan(&lr.CreatedAt, &lr.UpdatedAt)
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + ` WHERE lr.id = $1`
	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, leave.ErrLeaveRequestNotFound
	}
	return lr, err
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, status *leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins
	args := []interface{}{}
	if status != nil {
		query += ` WHERE lr.status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *leaveRequestRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.employee_id = $1 AND lr.from_date <= $3 AND lr.to_date >= $2
		ORDER BY lr.from_date
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *leaveRequestRepositoryImpl) CountOverlapping(ctx context.Context, employeeID string, from, to time.Time, excludeID *string) (int, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE employee_id = $1
		  AND status IN ('PENDING', 'APPROVED')
		  AND from_date <= $3 AND to_date >= $2
	`
	args := []interface{}{employeeID, from, to}
	if excludeID != nil {
		query += ` AND id <> $4`
		args = append(args, *excludeID)
	}

	var count int
	err := q.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, lr *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approval_date = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, lr.ID, lr.Status, lr.ApprovedBy, lr.ApprovalDate, lr.RejectionReason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) CountByStatus(ctx context.Context, status leave.Status) (int, error) {
	q := GetQuerier(ctx, r.db)
	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}
