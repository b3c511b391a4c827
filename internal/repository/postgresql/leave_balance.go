package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

const leaveBalanceColumns = `
	lb.id, lb.employee_id, lb.leave_type_id, lb.year,
	lb.total_days, lb.used_days, lb.pending_days, lb.remaining_days,
	lb.created_at, lb.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	lt.name AS leave_type_name
`

const leaveBalanceJoins = `
	FROM leave_balances lb
	INNER JOIN employees e ON e.id = lb.employee_id
	INNER JOIN leave_types lt ON lt.id = lb.leave_type_id
`

func scanLeaveBalance(row pgx.Row) (*leave.LeaveBalance, error) {
	var lb leave.LeaveBalance
	err := row.Scan(
		&lb.ID,
		&lb.EmployeeID,
		&lb.LeaveTypeID,
		&lb.Year,
		&lb.TotalDays,
		&lb.UsedDays,
		&lb.PendingDays,
		&lb.RemainingDays,
		&lb.CreatedAt,
		&lb.UpdatedAt,
		&lb.EmployeeName,
		&lb.LeaveTypeName,
	)
	if err != nil {
		return nil, err
	}
	return &lb, nil
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, lb *leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_balances (
			id, employee_id, leave_type_id, year,
			total_days, used_days, pending_days, remaining_days,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return q.QueryRow(ctx, query,
		lb.ID, lb.EmployeeID, lb.LeaveTypeID, lb.Year,
		lb.TotalDays, lb.UsedDays, lb.PendingDays, lb.RemainingDays,
	).Scan(&lb.CreatedAt, &lb.UpdatedAt)
}

func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, employeeID, leaveTypeID string, year int) (*leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveBalanceColumns + leaveBalanceJoins + `
		WHERE lb.employee_id = $1 AND lb.leave_type_id = $2 AND lb.year = $3
	`
	lb, err := scanLeaveBalance(q.QueryRow(ctx, query, employeeID, leaveTypeID, year))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, leave.ErrBalanceNotFound
	}
	return lb, err
}

func (r *leaveBalanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveBalanceColumns + leaveBalanceJoins + `
		WHERE lb.employee_id = $1 AND lb.year = $2
		ORDER BY lt.name
	`
	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		lb, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, err
		}
		balances = append(balances, *lb)
	}
	return balances, rows.Err()
}

func (r *leaveBalanceRepositoryImpl) Update(ctx context.Context, lb *leave.LeaveBalance) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_balances
		SET total_days = $2, used_days = $3, pending_days = $4, remaining_days = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, lb.ID, lb.TotalDays, lb.UsedDays, lb.PendingDays, lb.RemainingDays)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}
	return nil
}
