package attendance

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest creates a record by hand (admin/HR), as opposed
// to the clock-in/clock-out flow.
type MarkAttendanceRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	ClockInTime  *string `json:"clock_in_time,omitempty"`  // "15:04"
	ClockOutTime *string `json:"clock_out_time,omitempty"` // "15:04"
	Status       string  `json:"status"`
	Remarks      *string `json:"remarks,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}
	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, HALF_DAY, LEAVE, HOLIDAY",
		})
	}
	for field, value := range map[string]*string{"clock_in_time": r.ClockInTime, "clock_out_time": r.ClockOutTime} {
		if value == nil {
			continue
		}
		if _, err := time.Parse("15:04", *value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid time (HH:MM)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest edits an existing record in place.
type UpdateAttendanceRequest struct {
	ClockInTime  *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	Status       string  `json:"status"`
	Remarks      *string `json:"remarks,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, HALF_DAY, LEAVE, HOLIDAY",
		})
	}
	for field, value := range map[string]*string{"clock_in_time": r.ClockInTime, "clock_out_time": r.ClockOutTime} {
		if value == nil {
			continue
		}
		if _, err := time.Parse("15:04", *value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid time (HH:MM)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	EmployeeCode *string    `json:"employee_code,omitempty"`
	Date         string     `json:"date"`
	ClockInTime  *time.Time `json:"clock_in_time,omitempty"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	WorkingHours float64    `json:"working_hours"`
	Status       string     `json:"status"`
	Remarks      *string    `json:"remarks,omitempty"`
	IsLate       bool       `json:"is_late"`
	LateMinutes  int        `json:"late_minutes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		EmployeeCode: a.EmployeeCode,
		Date:         a.Date.Format("2006-01-02"),
		ClockInTime:  a.ClockInTime,
		ClockOutTime: a.ClockOutTime,
		WorkingHours: a.WorkingHours,
		Status:       string(a.Status),
		Remarks:      a.Remarks,
		IsLate:       a.IsLate,
		LateMinutes:  a.LateMinutes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, ToResponse(a))
	}
	return out
}

// Summary aggregates one employee's records over a date range.
type Summary struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	Month                string  `json:"month"` // YYYY-MM of the range start
	TotalWorkingDays     int     `json:"total_working_days"`
	PresentDays          int     `json:"present_days"`
	AbsentDays           int     `json:"absent_days"`
	HalfDays             int     `json:"half_days"`
	LeaveDays            int     `json:"leave_days"`
	LateDays             int     `json:"late_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	TotalWorkingHours    float64 `json:"total_working_hours"`
}
