package employee

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	Address          *string `json:"address,omitempty"`
	City             *string `json:"city,omitempty"`
	State            *string `json:"state,omitempty"`
	PostalCode       *string `json:"postal_code,omitempty"`
	Country          *string `json:"country,omitempty"`
	Department       string  `json:"department"`
	Designation      string  `json:"designation"`
	JoiningDate      string  `json:"joining_date"`
	EmploymentType   string  `json:"employment_type"`
	EmploymentStatus string  `json:"employment_status"`
	BasicSalary      string  `json:"basic_salary"`
	ManagerID        *string `json:"manager_id,omitempty"`
	UserID           *string `json:"user_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if !ValidEmploymentType(r.EmploymentType) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type must be one of FULL_TIME, PART_TIME, CONTRACT, INTERN",
		})
	}
	if !ValidEmploymentStatus(r.EmploymentStatus) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of ACTIVE, INACTIVE, TERMINATED",
		})
	}

	if salary, err := decimal.NewFromString(r.BasicSalary); err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries the same shape as create; the employee
// code is immutable after creation.
type UpdateEmployeeRequest struct {
	CreateEmployeeRequest
}

// ProfileUpdateRequest is the self-service subset an employee may edit
// about themselves.
type ProfileUpdateRequest struct {
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	Country     *string `json:"country,omitempty"`
}

type ProfileImageRequest struct {
	Image string `json:"image"`
}

func (r *ProfileImageRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Image) {
		errs = append(errs, validator.ValidationError{
			Field:   "image",
			Message: "image is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string     `json:"id"`
	EmployeeCode     string     `json:"employee_code"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	PhoneNumber      *string    `json:"phone_number,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Gender           *string    `json:"gender,omitempty"`
	Address          *string    `json:"address,omitempty"`
	City             *string    `json:"city,omitempty"`
	State            *string    `json:"state,omitempty"`
	PostalCode       *string    `json:"postal_code,omitempty"`
	Country          *string    `json:"country,omitempty"`
	Department       string     `json:"department"`
	Designation      string     `json:"designation"`
	JoiningDate      time.Time  `json:"joining_date"`
	EmploymentType   string     `json:"employment_type"`
	EmploymentStatus string     `json:"employment_status"`
	BasicSalary      string     `json:"basic_salary"`
	ManagerID        *string    `json:"manager_id,omitempty"`
	UserID           *string    `json:"user_id,omitempty"`
	ProfileImage     *string    `json:"profile_image,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		FullName:         e.FullName(),
		Email:            e.Email,
		PhoneNumber:      e.PhoneNumber,
		DateOfBirth:      e.DateOfBirth,
		Gender:           e.Gender,
		Address:          e.Address,
		City:             e.City,
		State:            e.State,
		PostalCode:       e.PostalCode,
		Country:          e.Country,
		Department:       e.Department,
		Designation:      e.Designation,
		JoiningDate:      e.JoiningDate,
		EmploymentType:   string(e.EmploymentType),
		EmploymentStatus: string(e.EmploymentStatus),
		BasicSalary:      e.BasicSalary.StringFixed(2),
		ManagerID:        e.ManagerID,
		UserID:           e.UserID,
		ProfileImage:     e.ProfileImage,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToResponse(e))
	}
	return out
}
