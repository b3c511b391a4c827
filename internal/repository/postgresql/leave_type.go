package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

const leaveTypeColumns = `
	id, name, description, total_days, is_active, created_at, updated_at
`

func scanLeaveType(row pgx.Row) (*leave.LeaveType, error) {
	var lt leave.LeaveType
	err := row.Scan(
		&lt.ID,
		&lt.Name,
		&lt.Description,
		&lt.TotalDays,
		&lt.IsActive,
		&lt.CreatedAt,
		&lt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, lt *leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_types (id, name, description, total_days, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return q.QueryRow(ctx, query, lt.ID, lt.Name, lt.Description, lt.TotalDays, lt.IsActive).
		Scan(&lt.CreatedAt, &lt.UpdatedAt)
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE id = $1`
	lt, err := scanLeaveType(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, leave.ErrLeaveTypeNotFound
	}
	return lt, err
}

func (r *leaveTypeRepositoryImpl) GetByName(ctx context.Context, name string) (*leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE LOWER(name) = LOWER($1)`
	lt, err := scanLeaveType(q.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, leave.ErrLeaveTypeNotFound
	}
	return lt, err
}

func (r *leaveTypeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		lt, err := scanLeaveType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, *lt)
	}
	return types, rows.Err()
}

func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, lt *leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_types
		SET name = $2, description = $3, total_days = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, lt.ID, lt.Name, lt.Description, lt.TotalDays, lt.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}
