package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms-suite/hrms-backend-go/internal/config"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/memory"
)

type fixture struct {
	svc        *AttendanceService
	records    *memory.AttendanceRepository
	employees  *memory.EmployeeRepository
	employeeID string
	userID     string
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	f := &fixture{
		records:   memory.NewAttendanceRepository(),
		employees: memory.NewEmployeeRepository(),
	}
	f.svc = NewAttendanceService(f.records, f.employees, config.OfficeConfig{
		StartTime: "09:00",
		EndTime:   "18:00",
	})
	f.svc.now = func() time.Time { return now }

	f.userID = uuid.NewString()
	f.employeeID = uuid.NewString()
	f.employees.Seed(employee.Employee{
		ID:               f.employeeID,
		EmployeeCode:     "EMP0001",
		FirstName:        "Asha",
		LastName:         "Verma",
		EmploymentStatus: employee.EmploymentStatusActive,
		UserID:           &f.userID,
	})
	return f
}

func TestLateness(t *testing.T) {
	start := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		clockIn     time.Time
		wantLate    bool
		wantMinutes int
	}{
		{"on time", start, false, 0},
		{"early", start.Add(-30 * time.Minute), false, 0},
		{"ten minutes late", start.Add(10 * time.Minute), true, 10},
		{"two hours late", start.Add(2 * time.Hour), true, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isLate, minutes := Lateness(tt.clockIn, start)
			assert.Equal(t, tt.wantLate, isLate)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestWorkedHours(t *testing.T) {
	in := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 8.0, WorkedHours(in, in.Add(8*time.Hour)))
	assert.Equal(t, 8.5, WorkedHours(in, in.Add(8*time.Hour+30*time.Minute)))
	assert.Equal(t, 7.75, WorkedHours(in, in.Add(7*time.Hour+45*time.Minute)))
	// 7h20m = 7.3333.. rounds to 7.33
	assert.Equal(t, 7.33, WorkedHours(in, in.Add(7*time.Hour+20*time.Minute)))
}

func TestClockIn(t *testing.T) {
	t.Run("on time is not late", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 8, 55, 0, 0, time.UTC))

		record, err := f.svc.ClockIn(context.Background(), f.userID)
		require.NoError(t, err)

		assert.Equal(t, attendance.StatusPresent, record.Status)
		assert.False(t, record.IsLate)
		assert.Equal(t, 0, record.LateMinutes)
		require.NotNil(t, record.ClockInTime)
		assert.Nil(t, record.ClockOutTime)
	})

	t.Run("after office start is late", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 9, 25, 0, 0, time.UTC))

		record, err := f.svc.ClockIn(context.Background(), f.userID)
		require.NoError(t, err)

		assert.True(t, record.IsLate)
		assert.Equal(t, 25, record.LateMinutes)
	})

	t.Run("second clock-in same day is refused", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC))

		_, err := f.svc.ClockIn(context.Background(), f.userID)
		require.NoError(t, err)

		_, err = f.svc.ClockIn(context.Background(), f.userID)
		assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	})

	t.Run("holiday clock-in is marked as such", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 8, 15, 9, 0, 0, 0, time.UTC))

		record, err := f.svc.ClockIn(context.Background(), f.userID)
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusHoliday, record.Status)
	})

	t.Run("user without employee record fails", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC))

		_, err := f.svc.ClockIn(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestClockOut(t *testing.T) {
	t.Run("computes working hours", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC))
		_, err := f.svc.ClockIn(context.Background(), f.userID)
		require.NoError(t, err)

		f.svc.now = func() time.Time { return time.Date(2026, 6, 15, 17, 30, 0, 0, time.UTC) }
		record, err := f.svc.ClockOut(context.Background(), f.userID)
		require.NoError(t, err)

		require.NotNil(t, record.ClockOutTime)
		assert.Equal(t, 8.5, record.WorkingHours)
	})

	t.Run("without clock-in is refused", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 17, 0, 0, 0, time.UTC))

		_, err := f.svc.ClockOut(context.Background(), f.userID)
		assert.ErrorIs(t, err, attendance.ErrNoClockInToday)
	})

	t.Run("second clock-out is refused", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC))
		_, err := f.svc.ClockIn(context.Background(), f.userID)
		require.NoError(t, err)

		f.svc.now = func() time.Time { return time.Date(2026, 6, 15, 17, 0, 0, 0, time.UTC) }
		_, err = f.svc.ClockOut(context.Background(), f.userID)
		require.NoError(t, err)

		_, err = f.svc.ClockOut(context.Background(), f.userID)
		assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
	})
}

func TestMark(t *testing.T) {
	t.Run("creates record with clock times", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC))

		in := "09:40"
		out := "18:10"
		record, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
			EmployeeID:   f.employeeID,
			Date:         "2026-06-10",
			ClockInTime:  &in,
			ClockOutTime: &out,
			Status:       "PRESENT",
		})
		require.NoError(t, err)

		assert.True(t, record.IsLate)
		assert.Equal(t, 40, record.LateMinutes)
		assert.Equal(t, 8.5, record.WorkingHours)
	})

	t.Run("duplicate date is refused", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC))

		req := attendance.MarkAttendanceRequest{
			EmployeeID: f.employeeID,
			Date:       "2026-06-10",
			Status:     "ABSENT",
		}
		_, err := f.svc.Mark(context.Background(), req)
		require.NoError(t, err)

		_, err = f.svc.Mark(context.Background(), req)
		assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
	})

	t.Run("clock-out before clock-in is refused", func(t *testing.T) {
		f := newFixture(t, time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC))

		in := "10:00"
		out := "09:00"
		_, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
			EmployeeID:   f.employeeID,
			Date:         "2026-06-10",
			ClockInTime:  &in,
			ClockOutTime: &out,
			Status:       "PRESENT",
		})
		assert.ErrorIs(t, err, attendance.ErrClockOutBeforeClock)
	})
}

func TestMonthlySummary(t *testing.T) {
	f := newFixture(t, time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC))

	seed := func(day int, status attendance.Status, late bool, hours float64) {
		f.records.Seed(attendance.Attendance{
			ID:           uuid.NewString(),
			EmployeeID:   f.employeeID,
			Date:         time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC),
			Status:       status,
			IsLate:       late,
			WorkingHours: hours,
		})
	}
	seed(1, attendance.StatusPresent, false, 8)
	seed(2, attendance.StatusPresent, true, 7.5)
	seed(3, attendance.StatusHalfDay, false, 4)
	seed(4, attendance.StatusAbsent, false, 0)
	seed(5, attendance.StatusLeave, false, 0)

	summary, err := f.svc.MonthlySummary(context.Background(), f.employeeID, 2026, time.June)
	require.NoError(t, err)

	assert.Equal(t, "2026-06", summary.Month)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LeaveDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 19.5, summary.TotalWorkingHours)
	// June 2026 has 22 weekdays, none of them listed holidays.
	assert.Equal(t, 22, summary.TotalWorkingDays)
	// (2 present + 0.5 half) / 22
	assert.InDelta(t, 11.36, summary.AttendancePercentage, 0.01)
}
