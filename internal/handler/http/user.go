package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/response"
	userService "github.com/hrms-suite/hrms-backend-go/internal/service/user"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListUnlinked(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService *userService.UserService
}

func NewUserHandler(svc *userService.UserService) UserHandler {
	return &userHandlerImpl{userService: svc}
}

func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, user.ToSummaries(users))
}

// ListUnlinked returns accounts without an employee record, for the
// employee-create picker.
func (h *userHandlerImpl) ListUnlinked(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUnlinked(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, user.ToSummaries(users))
}

func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	found, err := h.userService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, user.ToSummary(found))
}
