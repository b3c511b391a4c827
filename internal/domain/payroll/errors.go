package payroll

import "errors"

var (
	ErrStructureNotFound       = errors.New("salary structure not found")
	ErrPayrollNotFound         = errors.New("payroll record not found")
	ErrPayrollExists           = errors.New("payroll already generated for employee and month")
	ErrInvalidStatusTransition = errors.New("invalid payroll status transition")
)
