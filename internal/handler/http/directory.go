package http

import (
	"net/http"
	"strconv"

	"github.com/attendly/checkin-backend-go/internal/domain/directory"
	"github.com/attendly/checkin-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DirectoryHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type directoryHandlerImpl struct {
	directoryService directory.DirectoryService
}

func NewDirectoryHandler(directoryService directory.DirectoryService) DirectoryHandler {
	return &directoryHandlerImpl{
		directoryService: directoryService,
	}
}

// ListDepartments implements DirectoryHandler.
func (h *directoryHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.directoryService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// ListEmployees implements DirectoryHandler.
func (h *directoryHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	departmentID, err := strconv.ParseInt(chi.URLParam(r, "departmentID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid department id", nil)
		return
	}

	employees, err := h.directoryService.ListEmployeesByDepartment(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
