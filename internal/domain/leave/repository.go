package leave

import (
	"context"
	"time"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, lt *LeaveType) error
	GetByID(ctx context.Context, id string) (*LeaveType, error)
	GetByName(ctx context.Context, name string) (*LeaveType, error)
	List(ctx context.Context, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, lt *LeaveType) error
	Delete(ctx context.Context, id string) error
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, lr *LeaveRequest) error
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	List(ctx context.Context, status *Status) ([]LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
	CountOverlapping(ctx context.Context, employeeID string, from, to time.Time, excludeID *string) (int, error)
	Update(ctx context.Context, lr *LeaveRequest) error
	CountByStatus(ctx context.Context, status Status) (int, error)
}

type LeaveBalanceRepository interface {
	Create(ctx context.Context, lb *LeaveBalance) error
	Get(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error)
	ListByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	Update(ctx context.Context, lb *LeaveBalance) error
}
