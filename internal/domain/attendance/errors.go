package attendance

import "errors"

var (
	ErrRecordNotFound      = errors.New("attendance record not found")
	ErrAlreadyClockedIn    = errors.New("employee already clocked in today")
	ErrAlreadyClockedOut   = errors.New("employee already clocked out today")
	ErrNoClockInToday      = errors.New("no clock-in record found for today")
	ErrAlreadyMarked       = errors.New("attendance already marked for this employee on this date")
	ErrInvalidDateRange    = errors.New("start date cannot be after end date")
	ErrClockOutBeforeClock = errors.New("clock-out time cannot be before clock-in time")
)
