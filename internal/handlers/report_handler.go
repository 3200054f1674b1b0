package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/report"
	"github.com/BruksfildServices01/plantoes/internal/dto"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/httpresp"
	"github.com/BruksfildServices01/plantoes/internal/middleware"
	"github.com/BruksfildServices01/plantoes/internal/money"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
	ucReport "github.com/BruksfildServices01/plantoes/internal/usecase/report"
)

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	calendar     *ucReport.Calendar
	history      *ucReport.History
	historyRange *ucReport.HistoryRange
	dashboard    *ucReport.Dashboard
	tz           string
}

func NewReportHandler(
	calendar *ucReport.Calendar,
	history *ucReport.History,
	historyRange *ucReport.HistoryRange,
	dashboard *ucReport.Dashboard,
	tz string,
) *ReportHandler {
	return &ReportHandler{
		calendar:     calendar,
		history:      history,
		historyRange: historyRange,
		dashboard:    dashboard,
		tz:           tz,
	}
}

// ======================================================
// RESPONSES
// ======================================================

type historyResponse struct {
	From       string                 `json:"from"`
	To         string                 `json:"to"`
	Shifts     []dto.ShiftListDTO     `json:"shifts"`
	Totals     dto.TotalsDTO          `json:"totals"`
	ByHospital []dto.HospitalTotalDTO `json:"by_hospital"`
}

func (h *ReportHandler) historyJSON(v *ucReport.HistoryView) historyResponse {
	return historyResponse{
		From:       timezone.FormatDate(v.From),
		To:         timezone.FormatDate(v.To),
		Shifts:     dto.FromShifts(v.Shifts, timezone.TodayIn(h.tz)),
		Totals:     dto.FromTotals(v.Totals),
		ByHospital: dto.FromHospitalTotals(v.ByHospital),
	}
}

func rangeFilter(c *gin.Context) ucReport.RangeFilter {
	return ucReport.RangeFilter{
		From:       c.Query("from"),
		To:         c.Query("to"),
		HospitalID: c.Query("hospital_id"),
		Status:     c.Query("status"),
	}
}

// ======================================================
// CALENDAR
// ======================================================

func (h *ReportHandler) Calendar(c *gin.Context) {
	year, month, err := yearMonth(c, h.tz)
	if err != nil {
		httperr.Respond(c, err, "Erro ao carregar calendário.")
		return
	}

	view, err := h.calendar.Execute(c.Request.Context(), middleware.Session(c), year, month, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err, "Erro ao carregar calendário.")
		return
	}

	httpresp.OK(c, gin.H{
		"year":     view.Year,
		"month":    int(view.Month),
		"days":     view.Days,
		"selected": timezone.FormatDate(view.Selected),
		"shifts":   dto.FromShifts(view.Shifts, timezone.TodayIn(h.tz)),

		"payment_days": view.PaymentDays,
		"payments":     dto.FromShifts(view.Payments, timezone.TodayIn(h.tz)),
	})
}

// ======================================================
// HISTORY
// ======================================================

func (h *ReportHandler) History(c *gin.Context) {
	year, month, err := yearMonth(c, h.tz)
	if err != nil {
		httperr.Respond(c, err, "Erro ao carregar histórico.")
		return
	}

	view, err := h.history.Execute(c.Request.Context(), middleware.Session(c), year, month)
	if err != nil {
		httperr.Respond(c, err, "Erro ao carregar histórico.")
		return
	}

	httpresp.OK(c, h.historyJSON(view))
}

func (h *ReportHandler) HistoryRange(c *gin.Context) {
	view, err := h.historyRange.Execute(c.Request.Context(), middleware.Session(c), rangeFilter(c))
	if err != nil {
		httperr.Respond(c, err, "Erro ao carregar histórico.")
		return
	}

	httpresp.OK(c, h.historyJSON(view))
}

// Export streams the same range as HistoryRange as a ";"-separated CSV.
func (h *ReportHandler) Export(c *gin.Context) {
	view, err := h.historyRange.Execute(c.Request.Context(), middleware.Session(c), rangeFilter(c))
	if err != nil {
		httperr.Respond(c, err, "Erro ao exportar histórico.")
		return
	}

	filename := fmt.Sprintf("plantoes_%s_%s.csv",
		timezone.FormatDate(view.From), timezone.FormatDate(view.To))

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := domain.WriteCSV(c.Writer, view.Shifts); err != nil {
		// headers are gone; only the log can tell
		_ = c.Error(err)
	}
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *ReportHandler) Dashboard(c *gin.Context) {
	today := timezone.TodayIn(h.tz)

	view, err := h.dashboard.Execute(c.Request.Context(), middleware.Session(c), today)
	if err != nil {
		httperr.Respond(c, err, "Erro ao carregar painel.")
		return
	}

	httpresp.OK(c, gin.H{
		"month":         view.Month.Format("2006-01"),
		"totals":        dto.FromTotals(view.Totals),
		"received_rate": view.ReceivedRate,
		"overdue": gin.H{
			"count":     view.Overdue.Count,
			"value":     view.Overdue.Value,
			"value_fmt": money.FormatBRL(view.Overdue.Value),
		},
		"upcoming":    dto.FromShifts(view.Upcoming, today),
		"by_hospital": dto.FromHospitalTotals(view.ByHospital),
	})
}
