package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusHalfDay Status = "HALF_DAY"
	StatusLeave   Status = "LEAVE"
	StatusHoliday Status = "HOLIDAY"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave, StatusHoliday:
		return true
	}
	return false
}

// Attendance is one employee's record for one calendar date. At most
// one record exists per (employee, date).
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time // date only, midnight UTC
	ClockInTime  *time.Time
	ClockOutTime *time.Time
	WorkingHours float64
	Status       Status
	Remarks      *string
	IsLate       bool
	LateMinutes  int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join fields (for responses)
	EmployeeName *string
	EmployeeCode *string
}
