package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/attendly/checkin-backend-go/internal/domain/checkin"
	"github.com/attendly/checkin-backend-go/internal/handler/http/response"
	"github.com/attendly/checkin-backend-go/internal/pkg/clientip"
	"github.com/attendly/checkin-backend-go/internal/pkg/punchwindow"
	"github.com/xuri/excelize/v2"
)

type CheckInHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	ListToday(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	TimeStatus(w http.ResponseWriter, r *http.Request)
}

type checkInHandlerImpl struct {
	checkInService checkin.CheckInService
	window         punchwindow.Window
}

func NewCheckInHandler(checkInService checkin.CheckInService, window punchwindow.Window) CheckInHandler {
	return &checkInHandlerImpl{
		checkInService: checkInService,
		window:         window,
	}
}

// CheckIn implements CheckInHandler.
func (h *checkInHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkin.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode check-in request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The device identifier is always resolved server-side.
	req.DeviceID = clientip.FromRequest(r)

	result, err := h.checkInService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", result)
}

// ListToday implements CheckInHandler.
func (h *checkInHandlerImpl) ListToday(w http.ResponseWriter, r *http.Request) {
	records, err := h.checkInService.ListByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Export implements CheckInHandler. It streams a date's records as an
// Excel workbook.
func (h *checkInHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	records, err := h.checkInService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file := excelize.NewFile()
	sheet := file.GetSheetName(file.GetActiveSheetIndex())

	headers := []string{"No", "Employee ID", "Employee Name", "Department", "Rating", "Device", "Check-In Time", "Distance (m)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, header)
	}

	exportDate := date
	for i, rec := range records {
		if exportDate == "" {
			exportDate = rec.CheckInDate
		}
		row := i + 2
		_ = file.SetCellValue(sheet, "A"+strconv.Itoa(row), i+1)
		_ = file.SetCellValue(sheet, "B"+strconv.Itoa(row), rec.EmployeeCode)
		_ = file.SetCellValue(sheet, "C"+strconv.Itoa(row), rec.EmployeeName)
		_ = file.SetCellValue(sheet, "D"+strconv.Itoa(row), rec.DepartmentName)
		_ = file.SetCellValue(sheet, "E"+strconv.Itoa(row), rec.Rating)
		_ = file.SetCellValue(sheet, "F"+strconv.Itoa(row), rec.DeviceID)
		_ = file.SetCellValue(sheet, "G"+strconv.Itoa(row), rec.CheckInTime)
		if rec.DistanceMeters != nil {
			_ = file.SetCellValue(sheet, "H"+strconv.Itoa(row), *rec.DistanceMeters)
		}
	}
	if exportDate == "" {
		exportDate = "today"
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=attendance-%s.xlsx", exportDate))
	if err := file.Write(w); err != nil {
		slog.Error("Failed to write attendance export", "error", err)
	}
}

// TimeStatus implements CheckInHandler. The client polls this endpoint to
// keep its punch-window banner current.
func (h *checkInHandlerImpl) TimeStatus(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.window.Evaluate(time.Now()))
}
