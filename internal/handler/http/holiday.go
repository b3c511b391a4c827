package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	Calendar(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct{}

func NewHolidayHandler() HolidayHandler {
	return &holidayHandlerImpl{}
}

// Calendar returns the holiday list for a year. Defaults to the
// current year; unmaintained years come back empty.
func (h *holidayHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	response.Success(w, holiday.ToResponses(holiday.Calendar(year)))
}

func (h *holidayHandlerImpl) Upcoming(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	response.Success(w, holiday.ToResponses(holiday.Upcoming(time.Now(), limit)))
}
