package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/memory"
)

type fixture struct {
	svc        *ReportService
	attendance *memory.AttendanceRepository
	leaves     *memory.LeaveRequestRepository
	payrolls   *memory.PayrollRepository
	employeeID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	employees := memory.NewEmployeeRepository()
	f := &fixture{
		attendance: memory.NewAttendanceRepository(),
		leaves:     memory.NewLeaveRequestRepository(),
		payrolls:   memory.NewPayrollRepository(),
		employeeID: uuid.NewString(),
	}
	f.svc = NewReportService(employees, f.attendance, f.leaves, f.payrolls)

	employees.Seed(employee.Employee{
		ID:           f.employeeID,
		EmployeeCode: "EMP0001",
		FirstName:    "Asha",
		LastName:     "Verma",
		Department:   "Engineering",
	})
	return f
}

func day(d int) time.Time {
	return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestEmployeeReport(t *testing.T) {
	f := newFixture(t)

	f.attendance.Seed(attendance.Attendance{
		ID: uuid.NewString(), EmployeeID: f.employeeID, Date: day(1),
		Status: attendance.StatusPresent, WorkingHours: 8,
	})
	f.attendance.Seed(attendance.Attendance{
		ID: uuid.NewString(), EmployeeID: f.employeeID, Date: day(2),
		Status: attendance.StatusPresent, IsLate: true, LateMinutes: 20, WorkingHours: 7.5,
	})
	f.attendance.Seed(attendance.Attendance{
		ID: uuid.NewString(), EmployeeID: f.employeeID, Date: day(3),
		Status: attendance.StatusHalfDay, WorkingHours: 4,
	})
	f.attendance.Seed(attendance.Attendance{
		ID: uuid.NewString(), EmployeeID: f.employeeID, Date: day(4),
		Status: attendance.StatusLeave,
	})

	annualID := uuid.NewString()
	annualName := "Annual Leave"
	require.NoError(t, f.leaves.Create(context.Background(), &leave.LeaveRequest{
		ID: uuid.NewString(), EmployeeID: f.employeeID, LeaveTypeID: annualID,
		LeaveTypeName: &annualName,
		FromDate:      day(4), ToDate: day(4), NumberOfDays: 1,
		Status: leave.StatusApproved,
	}))
	require.NoError(t, f.leaves.Create(context.Background(), &leave.LeaveRequest{
		ID: uuid.NewString(), EmployeeID: f.employeeID, LeaveTypeID: annualID,
		LeaveTypeName: &annualName,
		FromDate:      day(22), ToDate: day(24), NumberOfDays: 3,
		Status: leave.StatusPending,
	}))

	f.payrolls.Seed(payroll.Payroll{
		ID: uuid.NewString(), EmployeeID: f.employeeID, Month: 6, Year: 2026,
		GrossSalary: decimal.NewFromInt(70000), NetSalary: decimal.NewFromInt(60300),
		Status: payroll.StatusPaid,
	})
	f.payrolls.Seed(payroll.Payroll{
		ID: uuid.NewString(), EmployeeID: f.employeeID, Month: 5, Year: 2026,
		GrossSalary: decimal.NewFromInt(70000), NetSalary: decimal.NewFromInt(60300),
		Status: payroll.StatusCancelled,
	})
	// outside the range
	f.payrolls.Seed(payroll.Payroll{
		ID: uuid.NewString(), EmployeeID: f.employeeID, Month: 1, Year: 2026,
		GrossSalary: decimal.NewFromInt(70000), NetSalary: decimal.NewFromInt(60300),
		Status: payroll.StatusPaid,
	})

	out, err := f.svc.EmployeeReport(context.Background(), f.employeeID, day(1), day(30))
	require.NoError(t, err)

	assert.Equal(t, "Asha Verma", out.EmployeeName)
	assert.Equal(t, "EMP0001", out.EmployeeCode)
	assert.Equal(t, "2026-06-01", out.StartDate)
	assert.Equal(t, "2026-06-30", out.EndDate)

	assert.Equal(t, 2, out.Attendance.PresentDays)
	assert.Equal(t, 1, out.Attendance.HalfDays)
	assert.Equal(t, 1, out.Attendance.LeaveDays)
	assert.Equal(t, 1, out.Attendance.LateDays)
	assert.InDelta(t, 19.5, out.Attendance.TotalWorkingHours, 0.001)

	require.Len(t, out.Leave, 1)
	assert.Equal(t, "Annual Leave", out.Leave[0].LeaveTypeName)
	assert.Equal(t, 1, out.Leave[0].TakenDays)
	assert.Equal(t, 3, out.Leave[0].PendingDays)

	assert.Equal(t, 1, out.Payroll.SlipCount)
	assert.Equal(t, "70000.00", out.Payroll.TotalGrossPay)
	assert.Equal(t, "60300.00", out.Payroll.TotalNetPay)
}

func TestEmployeeReportCountsOnlyPaidSlips(t *testing.T) {
	f := newFixture(t)

	f.payrolls.Seed(payroll.Payroll{
		ID: uuid.NewString(), EmployeeID: f.employeeID, Month: 6, Year: 2026,
		GrossSalary: decimal.NewFromInt(70000), NetSalary: decimal.NewFromInt(60300),
		Status: payroll.StatusPending,
	})
	f.payrolls.Seed(payroll.Payroll{
		ID: uuid.NewString(), EmployeeID: f.employeeID, Month: 6, Year: 2026,
		GrossSalary: decimal.NewFromInt(70000), NetSalary: decimal.NewFromInt(60300),
		Status: payroll.StatusProcessing,
	})

	out, err := f.svc.EmployeeReport(context.Background(), f.employeeID, day(1), day(30))
	require.NoError(t, err)

	assert.Equal(t, 0, out.Payroll.SlipCount)
	assert.Equal(t, "0.00", out.Payroll.TotalGrossPay)
	assert.Equal(t, "0.00", out.Payroll.TotalNetPay)
}

func TestEmployeeReportEmptySections(t *testing.T) {
	f := newFixture(t)

	out, err := f.svc.EmployeeReport(context.Background(), f.employeeID, day(1), day(30))
	require.NoError(t, err)

	assert.Zero(t, out.Attendance.PresentDays)
	assert.Empty(t, out.Leave)
	assert.Equal(t, 0, out.Payroll.SlipCount)
	assert.Equal(t, "0.00", out.Payroll.TotalGrossPay)
	assert.Equal(t, "0.00", out.Payroll.TotalNetPay)
}

func TestEmployeeReportUnknownEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.EmployeeReport(context.Background(), uuid.NewString(), day(1), day(30))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
