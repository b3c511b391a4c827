package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
	payrollService "github.com/hrms-suite/hrms-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	// Salary structures
	UpsertStructure(w http.ResponseWriter, r *http.Request)
	GetStructure(w http.ResponseWriter, r *http.Request)
	GetStructureByEmployee(w http.ResponseWriter, r *http.Request)
	ListStructures(w http.ResponseWriter, r *http.Request)
	DeleteStructure(w http.ResponseWriter, r *http.Request)
	CalculateComponent(w http.ResponseWriter, r *http.Request)

	// Pay slips
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	ByEmployee(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService *payrollService.PayrollService
}

func NewPayrollHandler(svc *payrollService.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: svc}
}

// ========== SALARY STRUCTURES ==========

func (h *payrollHandlerImpl) UpsertStructure(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertSalaryStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	structure, err := h.payrollService.UpsertStructure(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Salary structure saved successfully", payroll.ToSalaryStructureResponse(structure))
}

func (h *payrollHandlerImpl) GetStructure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Structure ID is required", nil)
		return
	}

	structure, err := h.payrollService.GetStructure(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToSalaryStructureResponse(structure))
}

func (h *payrollHandlerImpl) GetStructureByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	structure, err := h.payrollService.GetStructureByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToSalaryStructureResponse(structure))
}

func (h *payrollHandlerImpl) ListStructures(w http.ResponseWriter, r *http.Request) {
	structures, err := h.payrollService.ListStructures(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToSalaryStructureResponses(structures))
}

func (h *payrollHandlerImpl) DeleteStructure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Structure ID is required", nil)
		return
	}

	if err := h.payrollService.DeleteStructure(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary structure deleted successfully", nil)
}

// CalculateComponent converts one component between percent-of-basic
// and absolute amount without persisting anything.
func (h *payrollHandlerImpl) CalculateComponent(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.payrollService.CalculateComponent(req))
}

// ========== PAY SLIPS ==========

func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	slips, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll generated successfully", payroll.ToPayrollResponses(slips))
}

func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	slip, err := h.payrollService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToPayrollResponse(slip))
}

// ListByMonth lists a month's pay slips. Defaults to the current month.
func (h *payrollHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		month = parsed
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	slips, err := h.payrollService.ListByMonth(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToPayrollResponses(slips))
}

func (h *payrollHandlerImpl) ByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	slips, err := h.payrollService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToPayrollResponses(slips))
}

func (h *payrollHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slips, err := h.payrollService.ListMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToPayrollResponses(slips))
}

func (h *payrollHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.UpdatePayrollStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	slip, err := h.payrollService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payroll.ToPayrollResponse(slip))
}

func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}
