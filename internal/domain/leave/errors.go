package leave

import "errors"

var (
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveTypeNameExists  = errors.New("leave type name already exists")
	ErrLeaveTypeInactive    = errors.New("leave type is inactive")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrBalanceNotFound      = errors.New("leave balance not found")

	ErrInvalidDateRange         = errors.New("from date must not be after to date")
	ErrOverlappingLeave         = errors.New("an overlapping leave request already exists")
	ErrInsufficientBalance      = errors.New("insufficient leave balance")
	ErrAlreadyProcessed         = errors.New("leave request has already been processed")
	ErrRejectionReasonRequired  = errors.New("rejection reason is required")
	ErrSelfApproval             = errors.New("cannot approve or reject your own leave request")
	ErrApproverIdentityRequired = errors.New("approver account is not linked to an employee record")
	ErrApprovalNotAllowed       = errors.New("not allowed to approve or reject leave requests")
	ErrNotRequestOwner          = errors.New("leave request belongs to another employee")
)
