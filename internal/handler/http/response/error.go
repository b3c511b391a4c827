package response

import (
	"errors"
	"net/http"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthUserUnknown):
		Forbidden(w, "No account registered for this Google email")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrHRPrivilegeRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Employee email already registered")
	case errors.Is(err, employee.ErrUserAlreadyLinked):
		Conflict(w, "User account already linked to another employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for this date")
	case errors.Is(err, attendance.ErrNoClockInToday):
		BadRequest(w, "No clock-in record found for today", nil)
	case errors.Is(err, attendance.ErrClockOutBeforeClock):
		BadRequest(w, "Clock-out time cannot be before clock-in time", nil)
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Start date cannot be after end date", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrLeaveTypeNameExists):
		Conflict(w, "Leave type name already exists")
	case errors.Is(err, leave.ErrLeaveTypeInactive):
		BadRequest(w, "Leave type is inactive", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "from_date cannot be after to_date", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Overlapping leave request already exists")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrRejectionReasonRequired):
		BadRequest(w, "Rejection reason is required", nil)
	case errors.Is(err, leave.ErrSelfApproval):
		Forbidden(w, "Cannot approve your own leave request")
	case errors.Is(err, leave.ErrApproverIdentityRequired),
		errors.Is(err, leave.ErrApprovalNotAllowed):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollExists):
		Conflict(w, "Payroll already generated for this month")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payroll status transition")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
