// Package memory holds map-backed repository implementations. The
// service tests run against these instead of a live database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
)

// ---- users ----

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]user.User{}}
}

// Seed inserts a user directly, bypassing Create bookkeeping.
func (r *UserRepository) Seed(u user.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = u
	return u, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *UserRepository) ListUnlinked(_ context.Context) ([]user.User, error) {
	all, _ := r.List(context.Background())
	var out []user.User
	for _, u := range all {
		if u.EmployeeID == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *UserRepository) LinkOAuthAccount(_ context.Context, id, provider, providerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.OAuthProvider = &provider
	u.OAuthProviderID = &providerID
	r.users[id] = u
	return nil
}

// ---- employees ----

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
	seq       int64
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: map[string]employee.Employee{}}
}

func (r *EmployeeRepository) Seed(e employee.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[e.ID] = e
}

func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, emp := range r.employees {
		if emp.UserID != nil && *emp.UserID == userID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, emp := range r.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, emp := range r.employees {
		if strings.EqualFold(emp.Email, email) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeCode < out[j].EmployeeCode })
	return out, nil
}

func (r *EmployeeRepository) ListByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	all, _ := r.List(context.Background())
	var out []employee.Employee
	for _, emp := range all {
		if emp.Department == department {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) ListByStatus(_ context.Context, status employee.EmploymentStatus) ([]employee.Employee, error) {
	all, _ := r.List(context.Background())
	var out []employee.Employee
	for _, emp := range all {
		if emp.EmploymentStatus == status {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) Search(_ context.Context, keyword string) ([]employee.Employee, error) {
	all, _ := r.List(context.Background())
	needle := strings.ToLower(keyword)
	var out []employee.Employee
	for _, emp := range all {
		haystack := strings.ToLower(strings.Join([]string{
			emp.FirstName, emp.LastName, emp.EmployeeCode, emp.Email, emp.Department, emp.Designation,
		}, " "))
		if strings.Contains(haystack, needle) {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) Update(_ context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.UpdatedAt = time.Now()
	r.employees[emp.ID] = emp
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *EmployeeRepository) CountByStatus(ctx context.Context, status employee.EmploymentStatus) (int64, error) {
	list, _ := r.ListByStatus(ctx, status)
	return int64(len(list)), nil
}

func (r *EmployeeRepository) CountByDepartment(ctx context.Context, department string) (int64, error) {
	list, _ := r.ListByDepartment(ctx, department)
	return int64(len(list)), nil
}

func (r *EmployeeRepository) NextSequence(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

// ---- attendance ----

type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: map[string]attendance.Attendance{}}
}

func (r *AttendanceRepository) Seed(a attendance.Attendance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[a.ID] = a
}

func (r *AttendanceRepository) Create(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.records[record.ID] = record
	return record, nil
}

func (r *AttendanceRepository) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return record, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.Date.Equal(date) {
			return record, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrRecordNotFound
}

func (r *AttendanceRepository) ListByEmployee(_ context.Context, employeeID string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []attendance.Attendance
	for _, record := range r.records {
		if record.EmployeeID == employeeID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *AttendanceRepository) ListByDate(_ context.Context, date time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []attendance.Attendance
	for _, record := range r.records {
		if record.Date.Equal(date) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *AttendanceRepository) ListByEmployeeRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []attendance.Attendance
	for _, record := range r.records {
		if record.EmployeeID == employeeID && !record.Date.Before(start) && !record.Date.After(end) {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *AttendanceRepository) Update(_ context.Context, record attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	record.UpdatedAt = time.Now()
	r.records[record.ID] = record
	return nil
}

func (r *AttendanceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

// ---- leave types ----

type LeaveTypeRepository struct {
	mu    sync.RWMutex
	types map[string]leave.LeaveType
}

func NewLeaveTypeRepository() *LeaveTypeRepository {
	return &LeaveTypeRepository{types: map[string]leave.LeaveType{}}
}

func (r *LeaveTypeRepository) Create(_ context.Context, lt *leave.LeaveType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	lt.CreatedAt = now
	lt.UpdatedAt = now
	r.types[lt.ID] = *lt
	return nil
}

func (r *LeaveTypeRepository) GetByID(_ context.Context, id string) (*leave.LeaveType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lt, ok := r.types[id]
	if !ok {
		return nil, leave.ErrLeaveTypeNotFound
	}
	out := lt
	return &out, nil
}

func (r *LeaveTypeRepository) GetByName(_ context.Context, name string) (*leave.LeaveType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, lt := range r.types {
		if strings.EqualFold(lt.Name, name) {
			out := lt
			return &out, nil
		}
	}
	return nil, leave.ErrLeaveTypeNotFound
}

func (r *LeaveTypeRepository) List(_ context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []leave.LeaveType
	for _, lt := range r.types {
		if activeOnly && !lt.IsActive {
			continue
		}
		out = append(out, lt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *LeaveTypeRepository) Update(_ context.Context, lt *leave.LeaveType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[lt.ID]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	lt.UpdatedAt = time.Now()
	r.types[lt.ID] = *lt
	return nil
}

func (r *LeaveTypeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[id]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	delete(r.types, id)
	return nil
}

// ---- leave requests ----

type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: map[string]leave.LeaveRequest{}}
}

func (r *LeaveRequestRepository) Create(_ context.Context, lr *leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	lr.CreatedAt = now
	lr.UpdatedAt = now
	r.requests[lr.ID] = *lr
	return nil
}

func (r *LeaveRequestRepository) GetByID(_ context.Context, id string) (*leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lr, ok := r.requests[id]
	if !ok {
		return nil, leave.ErrLeaveRequestNotFound
	}
	out := lr
	return &out, nil
}

func (r *LeaveRequestRepository) List(_ context.Context, status *leave.Status) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		if status != nil && lr.Status != *status {
			continue
		}
		out = append(out, lr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *LeaveRequestRepository) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		if lr.EmployeeID == employeeID {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) ListByEmployeeRange(_ context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []leave.LeaveRequest
	for _, lr := range r.requests {
		if lr.EmployeeID == employeeID && !lr.FromDate.After(to) && !lr.ToDate.Before(from) {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) CountOverlapping(_ context.Context, employeeID string, from, to time.Time, excludeID *string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, lr := range r.requests {
		if lr.EmployeeID != employeeID {
			continue
		}
		if lr.Status != leave.StatusPending && lr.Status != leave.StatusApproved {
			continue
		}
		if excludeID != nil && lr.ID == *excludeID {
			continue
		}
		if !lr.FromDate.After(to) && !lr.ToDate.Before(from) {
			count++
		}
	}
	return count, nil
}

func (r *LeaveRequestRepository) Update(_ context.Context, lr *leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requests[lr.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	lr.UpdatedAt = time.Now()
	r.requests[lr.ID] = *lr
	return nil
}

func (r *LeaveRequestRepository) CountByStatus(_ context.Context, status leave.Status) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, lr := range r.requests {
		if lr.Status == status {
			count++
		}
	}
	return count, nil
}

// ---- leave balances ----

type LeaveBalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]leave.LeaveBalance
}

func NewLeaveBalanceRepository() *LeaveBalanceRepository {
	return &LeaveBalanceRepository{balances: map[string]leave.LeaveBalance{}}
}

func (r *LeaveBalanceRepository) Create(_ context.Context, lb *leave.LeaveBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	lb.CreatedAt = now
	lb.UpdatedAt = now
	r.balances[lb.ID] = *lb
	return nil
}

func (r *LeaveBalanceRepository) Get(_ context.Context, employeeID, leaveTypeID string, year int) (*leave.LeaveBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, lb := range r.balances {
		if lb.EmployeeID == employeeID && lb.LeaveTypeID == leaveTypeID && lb.Year == year {
			out := lb
			return &out, nil
		}
	}
	return nil, leave.ErrBalanceNotFound
}

func (r *LeaveBalanceRepository) ListByEmployee(_ context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []leave.LeaveBalance
	for _, lb := range r.balances {
		if lb.EmployeeID == employeeID && lb.Year == year {
			out = append(out, lb)
		}
	}
	return out, nil
}

func (r *LeaveBalanceRepository) Update(_ context.Context, lb *leave.LeaveBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[lb.ID]; !ok {
		return leave.ErrBalanceNotFound
	}
	lb.UpdatedAt = time.Now()
	r.balances[lb.ID] = *lb
	return nil
}

// ---- salary structures ----

type SalaryStructureRepository struct {
	mu         sync.RWMutex
	structures map[string]payroll.SalaryStructure
}

func NewSalaryStructureRepository() *SalaryStructureRepository {
	return &SalaryStructureRepository{structures: map[string]payroll.SalaryStructure{}}
}

func (r *SalaryStructureRepository) Create(_ context.Context, s *payroll.SalaryStructure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.structures[s.ID] = *s
	return nil
}

func (r *SalaryStructureRepository) GetByID(_ context.Context, id string) (*payroll.SalaryStructure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.structures[id]
	if !ok {
		return nil, payroll.ErrStructureNotFound
	}
	out := s
	return &out, nil
}

func (r *SalaryStructureRepository) GetByEmployee(_ context.Context, employeeID string) (*payroll.SalaryStructure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.structures {
		if s.EmployeeID == employeeID {
			out := s
			return &out, nil
		}
	}
	return nil, payroll.ErrStructureNotFound
}

func (r *SalaryStructureRepository) List(_ context.Context) ([]payroll.SalaryStructure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]payroll.SalaryStructure, 0, len(r.structures))
	for _, s := range r.structures {
		out = append(out, s)
	}
	return out, nil
}

func (r *SalaryStructureRepository) Update(_ context.Context, s *payroll.SalaryStructure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.structures[s.ID]; !ok {
		return payroll.ErrStructureNotFound
	}
	s.UpdatedAt = time.Now()
	r.structures[s.ID] = *s
	return nil
}

func (r *SalaryStructureRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.structures[id]; !ok {
		return payroll.ErrStructureNotFound
	}
	delete(r.structures, id)
	return nil
}

// ---- payrolls ----

type PayrollRepository struct {
	mu       sync.RWMutex
	payrolls map[string]payroll.Payroll
}

func NewPayrollRepository() *PayrollRepository {
	return &PayrollRepository{payrolls: map[string]payroll.Payroll{}}
}

func (r *PayrollRepository) Seed(p payroll.Payroll) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payrolls[p.ID] = p
}

func (r *PayrollRepository) Create(_ context.Context, p *payroll.Payroll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.payrolls[p.ID] = *p
	return nil
}

func (r *PayrollRepository) GetByID(_ context.Context, id string) (*payroll.Payroll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payrolls[id]
	if !ok {
		return nil, payroll.ErrPayrollNotFound
	}
	out := p
	return &out, nil
}

func (r *PayrollRepository) GetByEmployeeMonth(_ context.Context, employeeID string, month, year int) (*payroll.Payroll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payrolls {
		if p.EmployeeID == employeeID && p.Month == month && p.Year == year {
			out := p
			return &out, nil
		}
	}
	return nil, payroll.ErrPayrollNotFound
}

func (r *PayrollRepository) ListByMonth(_ context.Context, month, year int) ([]payroll.Payroll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []payroll.Payroll
	for _, p := range r.payrolls {
		if p.Month == month && p.Year == year {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PayrollRepository) ListByEmployee(_ context.Context, employeeID string) ([]payroll.Payroll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []payroll.Payroll
	for _, p := range r.payrolls {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PayrollRepository) Update(_ context.Context, p *payroll.Payroll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payrolls[p.ID]; !ok {
		return payroll.ErrPayrollNotFound
	}
	p.UpdatedAt = time.Now()
	r.payrolls[p.ID] = *p
	return nil
}

func (r *PayrollRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payrolls[id]; !ok {
		return payroll.ErrPayrollNotFound
	}
	delete(r.payrolls, id)
	return nil
}
