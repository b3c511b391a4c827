package leave

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/memory"
)

type fixture struct {
	svc        *LeaveService
	users      *memory.UserRepository
	employees  *memory.EmployeeRepository
	balances   *memory.LeaveBalanceRepository
	annual     *leave.LeaveType
	employeeID string
	userID     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:     memory.NewUserRepository(),
		employees: memory.NewEmployeeRepository(),
		balances:  memory.NewLeaveBalanceRepository(),
	}
	// nil db: transactional blocks run inline against the fakes
	f.svc = NewLeaveService(nil,
		memory.NewLeaveTypeRepository(),
		memory.NewLeaveRequestRepository(),
		f.balances,
		f.employees,
		f.users,
	)
	f.svc.now = func() time.Time { return time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC) }

	f.userID = uuid.NewString()
	f.employeeID = uuid.NewString()
	f.users.Seed(user.User{
		ID:         f.userID,
		Username:   "asha.verma",
		Email:      "asha.verma@example.com",
		Roles:      []user.Role{user.RoleEmployee},
		EmployeeID: &f.employeeID,
	})
	f.employees.Seed(employee.Employee{
		ID:               f.employeeID,
		EmployeeCode:     "EMP0001",
		FirstName:        "Asha",
		LastName:         "Verma",
		Email:            "asha.verma@example.com",
		Department:       "Engineering",
		Designation:      "Engineer",
		EmploymentStatus: employee.EmploymentStatusActive,
		UserID:           &f.userID,
	})

	annual, err := f.svc.CreateType(context.Background(), leave.CreateLeaveTypeRequest{
		Name:      "Annual Leave",
		TotalDays: 20,
	})
	require.NoError(t, err)
	f.annual = annual

	return f
}

// addUser registers another account, optionally with its own employee
// record, and returns the user id.
func (f *fixture) addUser(role user.Role, withEmployee bool) string {
	userID := uuid.NewString()
	u := user.User{
		ID:       userID,
		Username: "user-" + userID[:8],
		Roles:    []user.Role{role},
	}
	if withEmployee {
		employeeID := uuid.NewString()
		u.EmployeeID = &employeeID
		f.employees.Seed(employee.Employee{
			ID:               employeeID,
			EmployeeCode:     "EMP-" + employeeID[:8],
			FirstName:        "Heera",
			LastName:         "Rao",
			EmploymentStatus: employee.EmploymentStatusActive,
			UserID:           &userID,
		})
	}
	f.users.Seed(u)
	return userID
}

func (f *fixture) apply(t *testing.T, from, to string) *leave.LeaveRequest {
	t.Helper()
	request, err := f.svc.Apply(context.Background(), f.userID, leave.ApplyLeaveRequest{
		LeaveTypeID: f.annual.ID,
		FromDate:    from,
		ToDate:      to,
		Reason:      "family function",
	})
	require.NoError(t, err)
	return request
}

func (f *fixture) balance(t *testing.T) *leave.LeaveBalance {
	t.Helper()
	lb, err := f.balances.Get(context.Background(), f.employeeID, f.annual.ID, 2026)
	require.NoError(t, err)
	return lb
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"single day", "2026-06-01", "2026-06-01", 1},
		{"full week", "2026-06-01", "2026-06-07", 7},
		{"across month boundary", "2026-06-29", "2026-07-02", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, _ := time.Parse("2006-01-02", tt.from)
			to, _ := time.Parse("2006-01-02", tt.to)
			assert.Equal(t, tt.want, leave.InclusiveDays(from, to))
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("creates pending request and reserves balance", func(t *testing.T) {
		f := newFixture(t)

		request := f.apply(t, "2026-06-22", "2026-06-24")

		assert.Equal(t, leave.StatusPending, request.Status)
		assert.Equal(t, 3, request.NumberOfDays)

		lb := f.balance(t)
		assert.Equal(t, 20, lb.TotalDays)
		assert.Equal(t, 3, lb.PendingDays)
		assert.Equal(t, 0, lb.UsedDays)
		assert.Equal(t, 17, lb.RemainingDays)
	})

	t.Run("rejects overlapping request", func(t *testing.T) {
		f := newFixture(t)
		f.apply(t, "2026-06-22", "2026-06-24")

		_, err := f.svc.Apply(context.Background(), f.userID, leave.ApplyLeaveRequest{
			LeaveTypeID: f.annual.ID,
			FromDate:    "2026-06-24",
			ToDate:      "2026-06-26",
			Reason:      "second request",
		})
		assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
	})

	t.Run("rejects insufficient balance", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Apply(context.Background(), f.userID, leave.ApplyLeaveRequest{
			LeaveTypeID: f.annual.ID,
			FromDate:    "2026-06-01",
			ToDate:      "2026-06-30",
			Reason:      "a month off",
		})
		assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	})

	t.Run("rejects inactive leave type", func(t *testing.T) {
		f := newFixture(t)
		inactive := false
		_, err := f.svc.UpdateType(context.Background(), f.annual.ID, leave.UpdateLeaveTypeRequest{
			CreateLeaveTypeRequest: leave.CreateLeaveTypeRequest{
				Name:      "Annual Leave",
				TotalDays: 20,
				IsActive:  &inactive,
			},
		})
		require.NoError(t, err)

		_, err = f.svc.Apply(context.Background(), f.userID, leave.ApplyLeaveRequest{
			LeaveTypeID: f.annual.ID,
			FromDate:    "2026-06-22",
			ToDate:      "2026-06-22",
			Reason:      "one day",
		})
		assert.ErrorIs(t, err, leave.ErrLeaveTypeInactive)
	})
}

func TestListByEmployeeYearFilter(t *testing.T) {
	f := newFixture(t)
	f.apply(t, "2026-07-01", "2026-07-02")
	f.apply(t, "2027-01-05", "2027-01-06")

	all, err := f.svc.ListByEmployee(context.Background(), f.employeeID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	only2026, err := f.svc.ListByEmployee(context.Background(), f.employeeID, 2026)
	require.NoError(t, err)
	require.Len(t, only2026, 1)
	assert.Equal(t, "2026-07-01", only2026[0].FromDate.Format("2006-01-02"))
}

func TestApprove(t *testing.T) {
	t.Run("moves pending days to used", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-24")
		approverID := f.addUser(user.RoleHR, true)

		approved, err := f.svc.Approve(context.Background(), request.ID, approverID)
		require.NoError(t, err)

		assert.Equal(t, leave.StatusApproved, approved.Status)
		require.NotNil(t, approved.ApprovedBy)
		require.NotNil(t, approved.ApprovalDate)

		lb := f.balance(t)
		assert.Equal(t, 3, lb.UsedDays)
		assert.Equal(t, 0, lb.PendingDays)
		assert.Equal(t, 17, lb.RemainingDays)
	})

	t.Run("admin may approve without linked employee", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-22")
		adminID := f.addUser(user.RoleAdmin, false)

		approved, err := f.svc.Approve(context.Background(), request.ID, adminID)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, approved.Status)
		assert.Nil(t, approved.ApprovedBy)
	})

	t.Run("HR without linked employee is refused", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-22")
		hrID := f.addUser(user.RoleHR, false)

		_, err := f.svc.Approve(context.Background(), request.ID, hrID)
		assert.ErrorIs(t, err, leave.ErrApproverIdentityRequired)
	})

	t.Run("self approval is refused", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-22")

		// promote the requester to HR
		f.users.Seed(user.User{
			ID:         f.userID,
			Username:   "asha.verma",
			Roles:      []user.Role{user.RoleHR},
			EmployeeID: &f.employeeID,
		})

		_, err := f.svc.Approve(context.Background(), request.ID, f.userID)
		assert.ErrorIs(t, err, leave.ErrSelfApproval)
	})

	t.Run("plain employee may not approve", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-22")
		otherID := f.addUser(user.RoleEmployee, true)

		_, err := f.svc.Approve(context.Background(), request.ID, otherID)
		assert.ErrorIs(t, err, leave.ErrApprovalNotAllowed)
	})

	t.Run("processed request is immutable", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-22")
		approverID := f.addUser(user.RoleHR, true)

		_, err := f.svc.Approve(context.Background(), request.ID, approverID)
		require.NoError(t, err)

		_, err = f.svc.Approve(context.Background(), request.ID, approverID)
		assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

		_, err = f.svc.Reject(context.Background(), request.ID, approverID, "too late")
		assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
	})
}

func TestReject(t *testing.T) {
	t.Run("requires reason", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-22")
		approverID := f.addUser(user.RoleManager, true)

		_, err := f.svc.Reject(context.Background(), request.ID, approverID, "")
		assert.ErrorIs(t, err, leave.ErrRejectionReasonRequired)
	})

	t.Run("releases pending days", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-24")
		approverID := f.addUser(user.RoleManager, true)

		rejected, err := f.svc.Reject(context.Background(), request.ID, approverID, "project deadline")
		require.NoError(t, err)

		assert.Equal(t, leave.StatusRejected, rejected.Status)
		require.NotNil(t, rejected.RejectionReason)
		assert.Equal(t, "project deadline", *rejected.RejectionReason)

		lb := f.balance(t)
		assert.Equal(t, 0, lb.UsedDays)
		assert.Equal(t, 0, lb.PendingDays)
		assert.Equal(t, 20, lb.RemainingDays)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner withdraws pending request", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-24")

		cancelled, err := f.svc.Cancel(context.Background(), request.ID, f.userID)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, cancelled.Status)

		lb := f.balance(t)
		assert.Equal(t, 0, lb.PendingDays)
		assert.Equal(t, 20, lb.RemainingDays)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		f := newFixture(t)
		request := f.apply(t, "2026-06-22", "2026-06-24")
		otherID := f.addUser(user.RoleEmployee, true)

		_, err := f.svc.Cancel(context.Background(), request.ID, otherID)
		assert.ErrorIs(t, err, leave.ErrNotRequestOwner)
	})
}

func TestBalances(t *testing.T) {
	t.Run("auto-creates missing balance rows", func(t *testing.T) {
		f := newFixture(t)

		balances, err := f.svc.Balances(context.Background(), f.employeeID, 2026)
		require.NoError(t, err)
		require.Len(t, balances, 1)

		assert.Equal(t, 20, balances[0].TotalDays)
		assert.Equal(t, 0, balances[0].UsedDays)
		assert.Equal(t, 20, balances[0].RemainingDays)
	})

	t.Run("unknown employee fails", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Balances(context.Background(), uuid.NewString(), 2026)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestLeaveTypes(t *testing.T) {
	t.Run("duplicate name refused", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateType(context.Background(), leave.CreateLeaveTypeRequest{
			Name:      "Annual Leave",
			TotalDays: 10,
		})
		assert.ErrorIs(t, err, leave.ErrLeaveTypeNameExists)
	})
}
