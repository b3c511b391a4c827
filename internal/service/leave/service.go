package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/metrics"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/postgresql"
)

type LeaveService struct {
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
	employee.EmployeeRepository
	user.UserRepository
	inTx func(ctx context.Context, fn func(context.Context) error) error
	now  func() time.Time
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
) *LeaveService {
	inTx := func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}
	if db != nil {
		inTx = func(ctx context.Context, fn func(context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		}
	}
	return &LeaveService{
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		EmployeeRepository:     employeeRepository,
		UserRepository:         userRepository,
		inTx:                   inTx,
		now:                    time.Now,
	}
}

// ---- leave types ----

func (s *LeaveService) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (*leave.LeaveType, error) {
	if _, err := s.LeaveTypeRepository.GetByName(ctx, req.Name); err == nil {
		return nil, leave.ErrLeaveTypeNameExists
	} else if !errors.Is(err, leave.ErrLeaveTypeNotFound) {
		return nil, fmt.Errorf("failed to check leave type name: %w", err)
	}

	lt := &leave.LeaveType{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		TotalDays:   req.TotalDays,
		IsActive:    true,
	}
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}
	if err := s.LeaveTypeRepository.Create(ctx, lt); err != nil {
		return nil, fmt.Errorf("failed to create leave type: %w", err)
	}
	return lt, nil
}

func (s *LeaveService) GetType(ctx context.Context, id string) (*leave.LeaveType, error) {
	return s.LeaveTypeRepository.GetByID(ctx, id)
}

func (s *LeaveService) ListTypes(ctx context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	return s.LeaveTypeRepository.List(ctx, activeOnly)
}

func (s *LeaveService) UpdateType(ctx context.Context, id string, req leave.UpdateLeaveTypeRequest) (*leave.LeaveType, error) {
	lt, err := s.LeaveTypeRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.LeaveTypeRepository.GetByName(ctx, req.Name); err == nil && existing.ID != id {
		return nil, leave.ErrLeaveTypeNameExists
	} else if err != nil && !errors.Is(err, leave.ErrLeaveTypeNotFound) {
		return nil, fmt.Errorf("failed to check leave type name: %w", err)
	}

	lt.Name = req.Name
	lt.Description = req.Description
	lt.TotalDays = req.TotalDays
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}
	if err := s.LeaveTypeRepository.Update(ctx, lt); err != nil {
		return nil, fmt.Errorf("failed to update leave type: %w", err)
	}
	return lt, nil
}

func (s *LeaveService) DeleteType(ctx context.Context, id string) error {
	return s.LeaveTypeRepository.Delete(ctx, id)
}

// ---- leave requests ----

// Apply files a leave request for the employee linked to the calling
// user and reserves the days as pending on their balance.
func (s *LeaveService) Apply(ctx context.Context, userID string, req leave.ApplyLeaveRequest) (*leave.LeaveRequest, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return nil, err
	}
	if !leaveType.IsActive {
		return nil, leave.ErrLeaveTypeInactive
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)
	if to.Before(from) {
		return nil, leave.ErrInvalidDateRange
	}
	days := leave.InclusiveDays(from, to)

	overlapping, err := s.LeaveRequestRepository.CountOverlapping(ctx, emp.ID, from, to, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if overlapping > 0 {
		return nil, leave.ErrOverlappingLeave
	}

	request := &leave.LeaveRequest{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		LeaveTypeID:  leaveType.ID,
		FromDate:     from,
		ToDate:       to,
		NumberOfDays: days,
		Reason:       req.Reason,
		Status:       leave.StatusPending,
	}

	err = s.inTx(ctx, func(txCtx context.Context) error {
		balance, err := s.balanceFor(txCtx, emp.ID, leaveType, from.Year())
		if err != nil {
			return err
		}
		if balance.RemainingDays < days {
			return leave.ErrInsufficientBalance
		}

		balance.PendingDays += days
		balance.Recalculate()
		if err := s.LeaveBalanceRepository.Update(txCtx, balance); err != nil {
			return fmt.Errorf("failed to update leave balance: %w", err)
		}

		if err := s.LeaveRequestRepository.Create(txCtx, request); err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.LeaveRequestRepository.GetByID(ctx, request.ID)
}

// Approve finalizes a pending request and moves the reserved days from
// pending to used.
func (s *LeaveService) Approve(ctx context.Context, requestID, approverUserID string) (*leave.LeaveRequest, error) {
	request, approverEmployeeID, err := s.loadForDecision(ctx, requestID, approverUserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	request.Status = leave.StatusApproved
	request.ApprovedBy = approverEmployeeID
	request.ApprovalDate = &now

	err = s.inTx(ctx, func(txCtx context.Context) error {
		leaveType, err := s.LeaveTypeRepository.GetByID(txCtx, request.LeaveTypeID)
		if err != nil {
			return err
		}
		balance, err := s.balanceFor(txCtx, request.EmployeeID, leaveType, request.FromDate.Year())
		if err != nil {
			return err
		}

		balance.PendingDays -= request.NumberOfDays
		if balance.PendingDays < 0 {
			balance.PendingDays = 0
		}
		balance.UsedDays += request.NumberOfDays
		balance.Recalculate()
		if err := s.LeaveBalanceRepository.Update(txCtx, balance); err != nil {
			return fmt.Errorf("failed to update leave balance: %w", err)
		}

		if err := s.LeaveRequestRepository.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.LeaveDecisionsTotal.WithLabelValues(string(leave.StatusApproved)).Inc()

	return s.LeaveRequestRepository.GetByID(ctx, requestID)
}

// Reject finalizes a pending request with a mandatory reason and
// releases the reserved days.
func (s *LeaveService) Reject(ctx context.Context, requestID, approverUserID, reason string) (*leave.LeaveRequest, error) {
	if reason == "" {
		return nil, leave.ErrRejectionReasonRequired
	}

	request, approverEmployeeID, err := s.loadForDecision(ctx, requestID, approverUserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	request.Status = leave.StatusRejected
	request.ApprovedBy = approverEmployeeID
	request.ApprovalDate = &now
	request.RejectionReason = &reason

	err = s.inTx(ctx, func(txCtx context.Context) error {
		leaveType, err := s.LeaveTypeRepository.GetByID(txCtx, request.LeaveTypeID)
		if err != nil {
			return err
		}
		balance, err := s.balanceFor(txCtx, request.EmployeeID, leaveType, request.FromDate.Year())
		if err != nil {
			return err
		}

		balance.PendingDays -= request.NumberOfDays
		if balance.PendingDays < 0 {
			balance.PendingDays = 0
		}
		balance.Recalculate()
		if err := s.LeaveBalanceRepository.Update(txCtx, balance); err != nil {
			return fmt.Errorf("failed to update leave balance: %w", err)
		}

		if err := s.LeaveRequestRepository.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.LeaveDecisionsTotal.WithLabelValues(string(leave.StatusRejected)).Inc()

	return s.LeaveRequestRepository.GetByID(ctx, requestID)
}

// Cancel lets the owner withdraw their own pending request.
func (s *LeaveService) Cancel(ctx context.Context, requestID, userID string) (*leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != leave.StatusPending {
		return nil, leave.ErrAlreadyProcessed
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if emp.ID != request.EmployeeID {
		return nil, leave.ErrNotRequestOwner
	}

	request.Status = leave.StatusCancelled

	err = s.inTx(ctx, func(txCtx context.Context) error {
		leaveType, err := s.LeaveTypeRepository.GetByID(txCtx, request.LeaveTypeID)
		if err != nil {
			return err
		}
		balance, err := s.balanceFor(txCtx, request.EmployeeID, leaveType, request.FromDate.Year())
		if err != nil {
			return err
		}

		balance.PendingDays -= request.NumberOfDays
		if balance.PendingDays < 0 {
			balance.PendingDays = 0
		}
		balance.Recalculate()
		if err := s.LeaveBalanceRepository.Update(txCtx, balance); err != nil {
			return fmt.Errorf("failed to update leave balance: %w", err)
		}

		if err := s.LeaveRequestRepository.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.LeaveRequestRepository.GetByID(ctx, requestID)
}

func (s *LeaveService) GetRequest(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return s.LeaveRequestRepository.GetByID(ctx, id)
}

func (s *LeaveService) ListRequests(ctx context.Context, status string) ([]leave.LeaveRequest, error) {
	if status == "" {
		return s.LeaveRequestRepository.List(ctx, nil)
	}
	if !leave.ValidStatus(status) {
		return []leave.LeaveRequest{}, nil
	}
	st := leave.Status(status)
	return s.LeaveRequestRepository.List(ctx, &st)
}

func (s *LeaveService) ListMyRequests(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.LeaveRequestRepository.ListByEmployee(ctx, emp.ID)
}

// ListByEmployee returns an employee's requests, limited to ones
// touching the given year when year is non-zero.
func (s *LeaveService) ListByEmployee(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	if year > 0 {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		return s.LeaveRequestRepository.ListByEmployeeRange(ctx, employeeID, from, to)
	}
	return s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
}

// ---- balances ----

// Balances returns the employee's balance per active leave type for a
// year, creating missing rows with the type's full entitlement.
func (s *LeaveService) Balances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	types, err := s.LeaveTypeRepository.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	for i := range types {
		if _, err := s.balanceFor(ctx, employeeID, &types[i], year); err != nil {
			return nil, err
		}
	}
	return s.LeaveBalanceRepository.ListByEmployee(ctx, employeeID, year)
}

// MyBalances resolves the calling user's employee record first.
func (s *LeaveService) MyBalances(ctx context.Context, userID string, year int) ([]leave.LeaveBalance, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Balances(ctx, emp.ID, year)
}

// balanceFor loads or lazily creates the balance row for one employee,
// leave type and year.
func (s *LeaveService) balanceFor(ctx context.Context, employeeID string, leaveType *leave.LeaveType, year int) (*leave.LeaveBalance, error) {
	balance, err := s.LeaveBalanceRepository.Get(ctx, employeeID, leaveType.ID, year)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, leave.ErrBalanceNotFound) {
		return nil, fmt.Errorf("failed to get leave balance: %w", err)
	}

	balance = &leave.LeaveBalance{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		LeaveTypeID: leaveType.ID,
		Year:        year,
		TotalDays:   leaveType.TotalDays,
	}
	balance.Recalculate()
	if err := s.LeaveBalanceRepository.Create(ctx, balance); err != nil {
		return nil, fmt.Errorf("failed to create leave balance: %w", err)
	}
	return balance, nil
}

// loadForDecision loads a pending request and checks that the caller
// may decide it: admins always may, HR and managers need a linked
// employee record, and nobody decides their own request.
func (s *LeaveService) loadForDecision(ctx context.Context, requestID, approverUserID string) (*leave.LeaveRequest, *string, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}
	if request.Status != leave.StatusPending {
		return nil, nil, leave.ErrAlreadyProcessed
	}

	approver, err := s.UserRepository.GetByID(ctx, approverUserID)
	if err != nil {
		return nil, nil, err
	}
	if !approver.CanApprove() {
		if approver.IsHR() || approver.HasRole(user.RoleManager) {
			return nil, nil, leave.ErrApproverIdentityRequired
		}
		return nil, nil, leave.ErrApprovalNotAllowed
	}
	if approver.EmployeeID != nil && *approver.EmployeeID == request.EmployeeID {
		return nil, nil, leave.ErrSelfApproval
	}

	return request, approver.EmployeeID, nil
}
