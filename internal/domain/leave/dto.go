package leave

import (
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	TotalDays   int     `json:"total_days"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.TotalDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_days",
			Message: "total_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	CreateLeaveTypeRequest
}

// ApplyLeaveRequest is submitted by the employee themselves.
type ApplyLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id"`
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	Reason      string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id must be a valid uuid",
		})
	}
	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid date (YYYY-MM-DD)",
		})
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid date (YYYY-MM-DD)",
		})
	}
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RejectLeaveRequest carries the mandatory rejection reason.
type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	if validator.IsEmpty(r.RejectionReason) {
		return validator.ValidationErrors{{
			Field:   "rejection_reason",
			Message: "rejection_reason is required",
		}}
	}
	return nil
}

type LeaveTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	TotalDays   int     `json:"total_days"`
	IsActive    bool    `json:"is_active"`
}

func ToLeaveTypeResponse(lt *LeaveType) *LeaveTypeResponse {
	return &LeaveTypeResponse{
		ID:          lt.ID,
		Name:        lt.Name,
		Description: lt.Description,
		TotalDays:   lt.TotalDays,
		IsActive:    lt.IsActive,
	}
}

func ToLeaveTypeResponses(lts []LeaveType) []LeaveTypeResponse {
	out := make([]LeaveTypeResponse, 0, len(lts))
	for i := range lts {
		out = append(out, *ToLeaveTypeResponse(&lts[i]))
	}
	return out
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	EmployeeCode    *string `json:"employee_code,omitempty"`
	LeaveTypeID     string  `json:"leave_type_id"`
	LeaveTypeName   *string `json:"leave_type_name,omitempty"`
	FromDate        string  `json:"from_date"`
	ToDate          string  `json:"to_date"`
	NumberOfDays    int     `json:"number_of_days"`
	Reason          string  `json:"reason"`
	Status          Status  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApproverName    *string `json:"approver_name,omitempty"`
	ApprovalDate    *string `json:"approval_date,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToLeaveRequestResponse(lr *LeaveRequest) *LeaveRequestResponse {
	resp := &LeaveRequestResponse{
		ID:              lr.ID,
		EmployeeID:      lr.EmployeeID,
		EmployeeName:    lr.EmployeeName,
		EmployeeCode:    lr.EmployeeCode,
		LeaveTypeID:     lr.LeaveTypeID,
		LeaveTypeName:   lr.LeaveTypeName,
		FromDate:        lr.FromDate.Format("2006-01-02"),
		ToDate:          lr.ToDate.Format("2006-01-02"),
		NumberOfDays:    lr.NumberOfDays,
		Reason:          lr.Reason,
		Status:          lr.Status,
		ApprovedBy:      lr.ApprovedBy,
		ApproverName:    lr.ApproverName,
		RejectionReason: lr.RejectionReason,
		CreatedAt:       lr.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if lr.ApprovalDate != nil {
		formatted := lr.ApprovalDate.Format("2006-01-02T15:04:05Z07:00")
		resp.ApprovalDate = &formatted
	}
	return resp
}

func ToLeaveRequestResponses(lrs []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(lrs))
	for i := range lrs {
		out = append(out, *ToLeaveRequestResponse(&lrs[i]))
	}
	return out
}

type LeaveBalanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	Year          int     `json:"year"`
	TotalDays     int     `json:"total_days"`
	UsedDays      int     `json:"used_days"`
	PendingDays   int     `json:"pending_days"`
	RemainingDays int     `json:"remaining_days"`
}

func ToLeaveBalanceResponse(lb *LeaveBalance) *LeaveBalanceResponse {
	return &LeaveBalanceResponse{
		ID:            lb.ID,
		EmployeeID:    lb.EmployeeID,
		EmployeeName:  lb.EmployeeName,
		LeaveTypeID:   lb.LeaveTypeID,
		LeaveTypeName: lb.LeaveTypeName,
		Year:          lb.Year,
		TotalDays:     lb.TotalDays,
		UsedDays:      lb.UsedDays,
		PendingDays:   lb.PendingDays,
		RemainingDays: lb.RemainingDays,
	}
}

func ToLeaveBalanceResponses(lbs []LeaveBalance) []LeaveBalanceResponse {
	out := make([]LeaveBalanceResponse, 0, len(lbs))
	for i := range lbs {
		out = append(out, *ToLeaveBalanceResponse(&lbs[i]))
	}
	return out
}
