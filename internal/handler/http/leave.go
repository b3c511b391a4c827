package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
	leaveService "github.com/hrms-suite/hrms-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	// Leave types
	CreateType(w http.ResponseWriter, r *http.Request)
	GetType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)

	// Leave requests
	Apply(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	ByEmployee(w http.ResponseWriter, r *http.Request)

	// Balances
	Balances(w http.ResponseWriter, r *http.Request)
	MyBalances(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService *leaveService.LeaveService
}

func NewLeaveHandler(svc *leaveService.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: svc}
}

// ========== LEAVE TYPES ==========

func (h *leaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveService.CreateType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave type created successfully", leave.ToLeaveTypeResponse(created))
}

func (h *leaveHandlerImpl) GetType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	leaveType, err := h.leaveService.GetType(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToLeaveTypeResponse(leaveType))
}

func (h *leaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	types, err := h.leaveService.ListTypes(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToLeaveTypeResponses(types))
}

func (h *leaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	var req leave.UpdateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.leaveService.UpdateType(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToLeaveTypeResponse(updated))
}

func (h *leaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	if err := h.leaveService.DeleteType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}

// ========== LEAVE REQUESTS ==========

func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveService.Apply(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted successfully", leave.ToLeaveRequestResponse(created))
}

func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	approved, err := h.leaveService.Approve(r.Context(), id, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved", leave.ToLeaveRequestResponse(approved))
}

func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	rejected, err := h.leaveService.Reject(r.Context(), id, userID, req.RejectionReason)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request rejected", leave.ToLeaveRequestResponse(rejected))
}

func (h *leaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	cancelled, err := h.leaveService.Cancel(r.Context(), id, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request cancelled", leave.ToLeaveRequestResponse(cancelled))
}

func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	request, err := h.leaveService.GetRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToLeaveRequestResponse(request))
}

func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListRequests(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToLeaveRequestResponses(requests))
}

func (h *leaveHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListMyRequests(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToLeaveRequestResponses(requests))
}

func (h *leaveHandlerImpl) ByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year := 0
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	requests, err := h.leaveService.ListByEmployee(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToLeaveRequestResponses(requests))
}

// ========== BALANCES ==========

func yearParam(r *http.Request) (int, bool) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, false
	}
	return year, true
}

func (h *leaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	balances, err := h.leaveService.Balances(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToLeaveBalanceResponses(balances))
}

func (h *leaveHandlerImpl) MyBalances(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	balances, err := h.leaveService.MyBalances(r.Context(), userID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, leave.ToLeaveBalanceResponses(balances))
}
