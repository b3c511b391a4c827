package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/hrms-suite/hrms-backend-go/internal/config"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/metrics"
)

type AttendanceService struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	office config.OfficeConfig
	now    func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository, office config.OfficeConfig) *AttendanceService {
	return &AttendanceService{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		office:               office,
		now:                  time.Now,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// officeStart returns today's office start as an absolute time.
func (s *AttendanceService) officeStart(day time.Time) time.Time {
	start, err := time.Parse("15:04", s.office.StartTime)
	if err != nil {
		start = time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, day.Location())
}

// Lateness returns whether a clock-in is late relative to office start
// and by how many whole minutes.
func Lateness(clockIn, officeStart time.Time) (bool, int) {
	if !clockIn.After(officeStart) {
		return false, 0
	}
	return true, int(clockIn.Sub(officeStart).Minutes())
}

// WorkedHours converts a clock-in/clock-out span into hours rounded to
// two decimals.
func WorkedHours(clockIn, clockOut time.Time) float64 {
	minutes := clockOut.Sub(clockIn).Minutes()
	return math.Round(minutes/60*100) / 100
}

// ClockIn opens today's attendance record for the employee linked to
// the calling user. At most one record per day exists.
func (s *AttendanceService) ClockIn(ctx context.Context, userID string) (attendance.Attendance, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now()
	today := dateOnly(now)

	if _, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, today); err == nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	} else if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.Attendance{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	isLate, lateMinutes := Lateness(now, s.officeStart(now))

	status := attendance.StatusPresent
	if _, onHoliday := holiday.IsHoliday(today); onHoliday {
		status = attendance.StatusHoliday
	}

	record := attendance.Attendance{
		ID:          uuid.NewString(),
		EmployeeID:  emp.ID,
		Date:        today,
		ClockInTime: &now,
		Status:      status,
		IsLate:      isLate,
		LateMinutes: lateMinutes,
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	metrics.ClockInsTotal.Inc()

	return s.AttendanceRepository.GetByID(ctx, created.ID)
}

// ClockOut closes today's record and computes worked hours.
func (s *AttendanceService) ClockOut(ctx context.Context, userID string) (attendance.Attendance, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now()
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, dateOnly(now))
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.Attendance{}, attendance.ErrNoClockInToday
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if record.ClockInTime == nil {
		return attendance.Attendance{}, attendance.ErrNoClockInToday
	}
	if record.ClockOutTime != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}

	record.ClockOutTime = &now
	record.WorkingHours = WorkedHours(*record.ClockInTime, now)

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	metrics.ClockOutsTotal.Inc()

	return s.AttendanceRepository.GetByID(ctx, record.ID)
}

// GetToday returns today's record for the calling user, or
// ErrRecordNotFound when they have not clocked in.
func (s *AttendanceService) GetToday(ctx context.Context, userID string) (attendance.Attendance, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	return s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, dateOnly(s.now()))
}

// Mark creates a record by hand. Admin and HR only; the handler gates
// the role.
func (s *AttendanceService) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Attendance, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.Attendance{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	date = dateOnly(date)

	if _, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date); err == nil {
		return attendance.Attendance{}, attendance.ErrAlreadyMarked
	} else if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.Attendance{}, fmt.Errorf("failed to check attendance: %w", err)
	}

	record := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		Remarks:    req.Remarks,
	}
	if err := s.applyClockTimes(&record, date, req.ClockInTime, req.ClockOutTime); err != nil {
		return attendance.Attendance{}, err
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return s.AttendanceRepository.GetByID(ctx, created.ID)
}

// Update edits an existing record in place.
func (s *AttendanceService) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.Attendance{}, err
	}

	record.Status = attendance.Status(req.Status)
	record.Remarks = req.Remarks
	record.ClockInTime = nil
	record.ClockOutTime = nil
	record.WorkingHours = 0
	record.IsLate = false
	record.LateMinutes = 0
	if err := s.applyClockTimes(&record, record.Date, req.ClockInTime, req.ClockOutTime); err != nil {
		return attendance.Attendance{}, err
	}

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return s.AttendanceRepository.GetByID(ctx, id)
}

func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

func (s *AttendanceService) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return s.AttendanceRepository.GetByID(ctx, id)
}

func (s *AttendanceService) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return s.AttendanceRepository.ListByDate(ctx, dateOnly(date))
}

func (s *AttendanceService) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return s.AttendanceRepository.ListByEmployee(ctx, employeeID)
}

// ListMine returns the calling user's own history.
func (s *AttendanceService) ListMine(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.AttendanceRepository.ListByEmployee(ctx, emp.ID)
}

// MonthlySummary aggregates one employee's records for a month.
func (s *AttendanceService) MonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (attendance.Summary, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.Summary{}, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	records, err := s.AttendanceRepository.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := attendance.Summary{
		EmployeeID:   employeeID,
		EmployeeName: emp.FullName(),
		Month:        start.Format("2006-01"),
	}
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusLeave:
			summary.LeaveDays++
		}
		if r.IsLate {
			summary.LateDays++
		}
		summary.TotalWorkingHours += r.WorkingHours
	}
	summary.TotalWorkingDays = workingDaysInMonth(year, month)
	summary.TotalWorkingHours = math.Round(summary.TotalWorkingHours*100) / 100
	if summary.TotalWorkingDays > 0 {
		attended := float64(summary.PresentDays) + float64(summary.HalfDays)/2
		summary.AttendancePercentage = math.Round(attended/float64(summary.TotalWorkingDays)*10000) / 100
	}
	return summary, nil
}

// workingDaysInMonth counts weekdays that are not listed holidays.
func workingDaysInMonth(year int, month time.Month) int {
	day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	count := 0
	for day.Month() == month {
		weekday := day.Weekday()
		_, isHoliday := holiday.IsHoliday(day)
		if weekday != time.Saturday && weekday != time.Sunday && !isHoliday {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

func (s *AttendanceService) applyClockTimes(record *attendance.Attendance, date time.Time, in, out *string) error {
	atDate := func(clock string) (time.Time, error) {
		t, err := time.Parse("15:04", clock)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
	}

	if in != nil {
		clockIn, err := atDate(*in)
		if err != nil {
			return fmt.Errorf("invalid clock in time: %w", err)
		}
		record.ClockInTime = &clockIn
		record.IsLate, record.LateMinutes = Lateness(clockIn, s.officeStart(clockIn))
	}
	if out != nil {
		if record.ClockInTime == nil {
			return attendance.ErrNoClockInToday
		}
		clockOut, err := atDate(*out)
		if err != nil {
			return fmt.Errorf("invalid clock out time: %w", err)
		}
		if clockOut.Before(*record.ClockInTime) {
			return attendance.ErrClockOutBeforeClock
		}
		record.ClockOutTime = &clockOut
		record.WorkingHours = WorkedHours(*record.ClockInTime, clockOut)
	}
	return nil
}
