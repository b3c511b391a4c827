package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
	reportService "github.com/hrms-suite/hrms-backend-go/internal/service/report"
)

type ReportHandler interface {
	EmployeeReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportService.ReportService
}

func NewReportHandler(svc *reportService.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: svc}
}

// EmployeeReport aggregates attendance, leave and payroll over
// ?start_date= and ?end_date=. Defaults to the current month.
func (h *reportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	if startStr := r.URL.Query().Get("start_date"); startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			response.BadRequest(w, "start_date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		start = parsed
	}
	if endStr := r.URL.Query().Get("end_date"); endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			response.BadRequest(w, "end_date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		end = parsed
	}
	if end.Before(start) {
		response.BadRequest(w, "start_date cannot be after end_date", nil)
		return
	}

	out, err := h.reportService.EmployeeReport(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, out)
}
