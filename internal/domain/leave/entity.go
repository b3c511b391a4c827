package leave

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// LeaveType entity
type LeaveType struct {
	ID          string
	Name        string
	Description *string
	TotalDays   int // annual entitlement
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LeaveRequest entity. Once a request leaves PENDING it is terminal.
type LeaveRequest struct {
	ID              string
	EmployeeID      string
	LeaveTypeID     string
	FromDate        time.Time
	ToDate          time.Time
	NumberOfDays    int // inclusive span of FromDate..ToDate, always derived
	Reason          string
	Status          Status
	ApprovedBy      *string // approver's employee id
	ApprovalDate    *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join fields (for responses)
	EmployeeName  *string
	EmployeeCode  *string
	LeaveTypeName *string
	ApproverName  *string
}

// InclusiveDays returns the day count of from..to, both ends counted.
func InclusiveDays(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}

// LeaveBalance entity, keyed by (employee, leave type, year).
type LeaveBalance struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	Year          int
	TotalDays     int
	UsedDays      int
	PendingDays   int
	RemainingDays int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join fields (for responses)
	EmployeeName  *string
	LeaveTypeName *string
}

// Recalculate derives remaining days from the other three counters.
func (b *LeaveBalance) Recalculate() {
	b.RemainingDays = b.TotalDays - b.UsedDays - b.PendingDays
}
