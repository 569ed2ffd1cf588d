package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/graha-asri/presensi-backend-go/internal/domain/schedule"
	"github.com/graha-asri/presensi-backend-go/internal/handler/http/response"
	"github.com/graha-asri/presensi-backend-go/internal/pkg/timeutil"
)

type ScheduleHandler interface {
	GetDaySchedule(w http.ResponseWriter, r *http.Request)
	GetMonthlySchedule(w http.ResponseWriter, r *http.Request)
	SetOverride(w http.ResponseWriter, r *http.Request)
	DeleteOverride(w http.ResponseWriter, r *http.Request)
	ListOverrides(w http.ResponseWriter, r *http.Request)
	ListShiftCodes(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// GetDaySchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetDaySchedule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	targetDate, err := parseCivilDateQuery(r, "date")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	day, err := h.scheduleService.GetDaySchedule(r.Context(), employeeID, targetDate)
	if err != nil {
		slog.Error("GetDaySchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, day)
}

// GetMonthlySchedule implements ScheduleHandler.
func (h *ScheduleHandlerImpl) GetMonthlySchedule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year := parseIntQuery(r, "year", 0)
	monthNum := parseIntQuery(r, "month", 0)
	if year == 0 || monthNum < 1 || monthNum > 12 {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	month, err := h.scheduleService.GetMonthlySchedule(r.Context(), employeeID, year, time.Month(monthNum))
	if err != nil {
		slog.Error("GetMonthlySchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, month)
}

// SetOverride implements ScheduleHandler.
func (h *ScheduleHandlerImpl) SetOverride(w http.ResponseWriter, r *http.Request) {
	var req schedule.SetOverrideRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetOverride decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	override, err := h.scheduleService.SetOverride(r.Context(), req)
	if err != nil {
		slog.Error("SetOverride service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule override saved", override)
}

// DeleteOverride implements ScheduleHandler.
func (h *ScheduleHandlerImpl) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := r.URL.Query().Get("date")

	if err := h.scheduleService.DeleteOverride(r.Context(), employeeID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule override removed", nil)
}

// ListOverrides implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListOverrides(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	overrides, err := h.scheduleService.ListOverrides(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		slog.Error("ListOverrides service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overrides)
}

// ListShiftCodes implements ScheduleHandler. The shift table is static, so
// the response is assembled here rather than going through the service.
func (h *ScheduleHandlerImpl) ListShiftCodes(w http.ResponseWriter, r *http.Request) {
	infos := make([]schedule.ShiftCodeInfo, 0, len(schedule.ShiftCodeValues))
	for _, code := range schedule.ShiftCodeValues {
		info := schedule.ShiftCodeInfo{
			Code:  code,
			Label: schedule.ShiftLabelFor(schedule.ShiftCode(code)),
		}
		if st, ok := schedule.ShiftTimeFor(schedule.ShiftCode(code)); ok {
			start := fmt.Sprintf("%02d:%02d", st.StartHour, st.StartMinute)
			end := fmt.Sprintf("%02d:%02d", st.EndHour, st.EndMinute)
			info.StartTime = &start
			info.EndTime = &end
			info.Overnight = st.IsNextDayCheckout()
		}
		infos = append(infos, info)
	}

	response.Success(w, infos)
}

func parseCivilDateQuery(r *http.Request, key string) (time.Time, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return time.Time{}, schedule.ErrInvalidDateFormat
	}
	t, err := time.ParseInLocation("2006-01-02", v, timeutil.ClusterZone)
	if err != nil {
		return time.Time{}, schedule.ErrInvalidDateFormat
	}
	return t, nil
}
