package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for the attendance table
type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	Update(ctx context.Context, record Attendance) error
	Delete(ctx context.Context, id string) error
}
