package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      *string
	DateOfBirth      *time.Time
	Gender           *string
	Address          *string
	City             *string
	State            *string
	PostalCode       *string
	Country          *string
	Department       string
	Designation      string
	JoiningDate      time.Time
	EmploymentType   EmploymentType
	EmploymentStatus EmploymentStatus
	BasicSalary      decimal.Decimal
	ManagerID        *string
	UserID           *string
	ProfileImage     *string // data URI or URL
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "FULL_TIME"
	EmploymentTypePartTime EmploymentType = "PART_TIME"
	EmploymentTypeContract EmploymentType = "CONTRACT"
	EmploymentTypeIntern   EmploymentType = "INTERN"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "ACTIVE"
	EmploymentStatusInactive   EmploymentStatus = "INACTIVE"
	EmploymentStatusTerminated EmploymentStatus = "TERMINATED"
)

func ValidEmploymentType(t string) bool {
	switch EmploymentType(t) {
	case EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContract, EmploymentTypeIntern:
		return true
	}
	return false
}

func ValidEmploymentStatus(s string) bool {
	switch EmploymentStatus(s) {
	case EmploymentStatusActive, EmploymentStatusInactive, EmploymentStatusTerminated:
		return true
	}
	return false
}
