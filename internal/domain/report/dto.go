package report

// EmployeeReport aggregates one employee's activity over a date range.
// Sections that cannot be assembled degrade to their zero values so
// the rest of the report still renders.
type EmployeeReport struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	EmployeeCode string          `json:"employee_code"`
	Department   string          `json:"department"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Attendance   AttendanceBlock `json:"attendance"`
	Leave        []LeaveUsage    `json:"leave"`
	Payroll      PayrollBlock    `json:"payroll"`
}

type AttendanceBlock struct {
	PresentDays       int     `json:"present_days"`
	AbsentDays        int     `json:"absent_days"`
	HalfDays          int     `json:"half_days"`
	LeaveDays         int     `json:"leave_days"`
	LateDays          int     `json:"late_days"`
	TotalWorkingHours float64 `json:"total_working_hours"`
}

type LeaveUsage struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	TakenDays     int    `json:"taken_days"`
	PendingDays   int    `json:"pending_days"`
}

type PayrollBlock struct {
	SlipCount     int    `json:"slip_count"`
	TotalGrossPay string `json:"total_gross_pay"`
	TotalNetPay   string `json:"total_net_pay"`
}
