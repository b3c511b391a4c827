package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
)

type EmployeeService struct {
	employee.EmployeeRepository
	user.UserRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, userRepository user.UserRepository) *EmployeeService {
	return &EmployeeService{
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
	}
}

// Create registers a new employee. The employee code is generated
// server side and never taken from the request.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	emp, err := s.fromRequest(req)
	if err != nil {
		return employee.Employee{}, err
	}

	if err := s.checkEmailFree(ctx, emp.Email, nil); err != nil {
		return employee.Employee{}, err
	}
	if emp.UserID != nil {
		if err := s.checkUserLinkable(ctx, *emp.UserID, nil); err != nil {
			return employee.Employee{}, err
		}
	}

	seq, err := s.EmployeeRepository.NextSequence(ctx)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee code sequence: %w", err)
	}

	emp.ID = uuid.NewString()
	emp.EmployeeCode = fmt.Sprintf("EMP%04d", seq)

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

func (s *EmployeeService) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByEmployeeCode(ctx, code)
}

// GetMyProfile resolves the employee record linked to a user account.
func (s *EmployeeService) GetMyProfile(ctx context.Context, userID string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByUserID(ctx, userID)
}

// List applies at most one filter; search wins over department over
// status.
func (s *EmployeeService) List(ctx context.Context, department, status, search string) ([]employee.Employee, error) {
	switch {
	case search != "":
		return s.EmployeeRepository.Search(ctx, search)
	case department != "":
		return s.EmployeeRepository.ListByDepartment(ctx, department)
	case status != "":
		if !employee.ValidEmploymentStatus(status) {
			return []employee.Employee{}, nil
		}
		return s.EmployeeRepository.ListByStatus(ctx, employee.EmploymentStatus(status))
	default:
		return s.EmployeeRepository.List(ctx)
	}
}

func (s *EmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	existing, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	updated, err := s.fromRequest(req.CreateEmployeeRequest)
	if err != nil {
		return employee.Employee{}, err
	}

	if err := s.checkEmailFree(ctx, updated.Email, &id); err != nil {
		return employee.Employee{}, err
	}
	if updated.UserID != nil {
		if err := s.checkUserLinkable(ctx, *updated.UserID, &id); err != nil {
			return employee.Employee{}, err
		}
	}

	updated.ID = existing.ID
	updated.EmployeeCode = existing.EmployeeCode
	updated.ProfileImage = existing.ProfileImage
	updated.CreatedAt = existing.CreatedAt

	if err := s.EmployeeRepository.Update(ctx, updated); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.EmployeeRepository.GetByID(ctx, id)
}

// UpdateMyProfile lets an employee edit their own contact details.
func (s *EmployeeService) UpdateMyProfile(ctx context.Context, userID string, req employee.ProfileUpdateRequest) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.City != nil {
		emp.City = req.City
	}
	if req.State != nil {
		emp.State = req.State
	}
	if req.PostalCode != nil {
		emp.PostalCode = req.PostalCode
	}
	if req.Country != nil {
		emp.Country = req.Country
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.EmployeeRepository.GetByID(ctx, emp.ID)
}

// UpdateProfileImage stores the uploaded image for the user's own
// employee record.
func (s *EmployeeService) UpdateProfileImage(ctx context.Context, userID string, image string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.ProfileImage = &image
	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update profile image: %w", err)
	}
	return s.EmployeeRepository.GetByID(ctx, emp.ID)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

// ListUnlinkedUsers returns accounts not yet tied to an employee
// record, for the employee-create picker.
func (s *EmployeeService) ListUnlinkedUsers(ctx context.Context) ([]user.User, error) {
	return s.UserRepository.ListUnlinked(ctx)
}

func (s *EmployeeService) checkEmailFree(ctx context.Context, email string, selfID *string) error {
	existing, err := s.EmployeeRepository.GetByEmail(ctx, email)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if selfID != nil && existing.ID == *selfID {
		return nil
	}
	return employee.ErrEmailExists
}

// checkUserLinkable enforces the one-to-one link between user accounts
// and employee records.
func (s *EmployeeService) checkUserLinkable(ctx context.Context, userID string, selfID *string) error {
	if _, err := s.UserRepository.GetByID(ctx, userID); err != nil {
		return err
	}

	linked, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check user link: %w", err)
	}
	if selfID != nil && linked.ID == *selfID {
		return nil
	}
	return employee.ErrUserAlreadyLinked
}

func (s *EmployeeService) fromRequest(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid joining date: %w", err)
	}
	basicSalary, err := decimal.NewFromString(req.BasicSalary)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("invalid basic salary: %w", err)
	}

	emp := employee.Employee{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Gender:           req.Gender,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		Country:          req.Country,
		Department:       req.Department,
		Designation:      req.Designation,
		JoiningDate:      joiningDate,
		EmploymentType:   employee.EmploymentType(req.EmploymentType),
		EmploymentStatus: employee.EmploymentStatus(req.EmploymentStatus),
		BasicSalary:      basicSalary,
		ManagerID:        req.ManagerID,
		UserID:           req.UserID,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid date of birth: %w", err)
		}
		emp.DateOfBirth = &dob
	}
	return emp, nil
}
