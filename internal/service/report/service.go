package report

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/report"
)

type ReportService struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	payroll.PayrollRepository
}

func NewReportService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	payrollRepository payroll.PayrollRepository,
) *ReportService {
	return &ReportService{
		EmployeeRepository:     employeeRepository,
		AttendanceRepository:   attendanceRepository,
		LeaveRequestRepository: leaveRequestRepository,
		PayrollRepository:      payrollRepository,
	}
}

// EmployeeReport assembles the employee's activity over the range.
// The employee itself must exist; each section that fails afterwards
// is left at its zero value instead of failing the whole report.
func (s *ReportService) EmployeeReport(ctx context.Context, employeeID string, start, end time.Time) (report.EmployeeReport, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return report.EmployeeReport{}, err
	}

	out := report.EmployeeReport{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		EmployeeCode: emp.EmployeeCode,
		Department:   emp.Department,
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		Leave:        []report.LeaveUsage{},
		Payroll: report.PayrollBlock{
			TotalGrossPay: "0.00",
			TotalNetPay:   "0.00",
		},
	}

	if records, err := s.AttendanceRepository.ListByEmployeeRange(ctx, employeeID, start, end); err == nil {
		out.Attendance = summarizeAttendance(records)
	}
	if requests, err := s.LeaveRequestRepository.ListByEmployeeRange(ctx, employeeID, start, end); err == nil {
		out.Leave = summarizeLeave(requests)
	}
	if slips, err := s.PayrollRepository.ListByEmployee(ctx, employeeID); err == nil {
		out.Payroll = summarizePayroll(slips, start, end)
	}

	return out, nil
}

func summarizeAttendance(records []attendance.Attendance) report.AttendanceBlock {
	var block report.AttendanceBlock
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			block.PresentDays++
		case attendance.StatusAbsent:
			block.AbsentDays++
		case attendance.StatusHalfDay:
			block.HalfDays++
		case attendance.StatusLeave:
			block.LeaveDays++
		}
		if r.IsLate {
			block.LateDays++
		}
		block.TotalWorkingHours += r.WorkingHours
	}
	block.TotalWorkingHours = math.Round(block.TotalWorkingHours*100) / 100
	return block
}

func summarizeLeave(requests []leave.LeaveRequest) []report.LeaveUsage {
	byType := map[string]*report.LeaveUsage{}
	order := []string{}
	for _, r := range requests {
		usage, ok := byType[r.LeaveTypeID]
		if !ok {
			usage = &report.LeaveUsage{LeaveTypeID: r.LeaveTypeID}
			if r.LeaveTypeName != nil {
				usage.LeaveTypeName = *r.LeaveTypeName
			}
			byType[r.LeaveTypeID] = usage
			order = append(order, r.LeaveTypeID)
		}
		switch r.Status {
		case leave.StatusApproved:
			usage.TakenDays += r.NumberOfDays
		case leave.StatusPending:
			usage.PendingDays += r.NumberOfDays
		}
	}

	out := make([]report.LeaveUsage, 0, len(order))
	for _, id := range order {
		out = append(out, *byType[id])
	}
	return out
}

// summarizePayroll totals paid slips whose pay month falls inside the
// range. Slips still moving through the lifecycle are not money spent.
func summarizePayroll(slips []payroll.Payroll, start, end time.Time) report.PayrollBlock {
	gross := decimal.Zero
	net := decimal.Zero
	count := 0
	for _, p := range slips {
		payMonth := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
		if payMonth.Before(time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)) || payMonth.After(end) {
			continue
		}
		if p.Status != payroll.StatusPaid {
			continue
		}
		gross = gross.Add(p.GrossSalary)
		net = net.Add(p.NetSalary)
		count++
	}
	return report.PayrollBlock{
		SlipCount:     count,
		TotalGrossPay: gross.StringFixed(2),
		TotalNetPay:   net.StringFixed(2),
	}
}
