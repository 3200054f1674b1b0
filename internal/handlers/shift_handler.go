package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/dto"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/httpresp"
	"github.com/BruksfildServices01/plantoes/internal/middleware"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
	ucShift "github.com/BruksfildServices01/plantoes/internal/usecase/shift"
)

// ======================================================
// HANDLER
// ======================================================

type ShiftHandler struct {
	record     *ucShift.RecordShift
	update     *ucShift.UpdateShift
	remove     *ucShift.DeleteShift
	forecast   *ucShift.ForecastShift
	receive    *ucShift.RecordReceipt
	conciliate *ucShift.ConciliateShift
	list       *ucShift.ListShifts
	get        *ucShift.GetShift
	tz         string
}

func NewShiftHandler(
	record *ucShift.RecordShift,
	update *ucShift.UpdateShift,
	remove *ucShift.DeleteShift,
	forecast *ucShift.ForecastShift,
	receive *ucShift.RecordReceipt,
	conciliate *ucShift.ConciliateShift,
	list *ucShift.ListShifts,
	get *ucShift.GetShift,
	tz string,
) *ShiftHandler {
	return &ShiftHandler{
		record:     record,
		update:     update,
		remove:     remove,
		forecast:   forecast,
		receive:    receive,
		conciliate: conciliate,
		list:       list,
		get:        get,
		tz:         tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ShiftRequest struct {
	HospitalID string           `json:"hospital_id" binding:"required"`
	Date       string           `json:"date" binding:"required"`
	StartTime  string           `json:"start_time"`
	EndTime    string           `json:"end_time"`
	Label      string           `json:"label"`
	GrossValue *decimal.Decimal `json:"gross_value"`
	Notes      string           `json:"notes"`
}

func (r ShiftRequest) fields() (domain.Fields, error) {
	hospitalID, err := parseHospitalID(r.HospitalID)
	if err != nil {
		return domain.Fields{}, err
	}
	return domain.Fields{
		HospitalID: hospitalID,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Label:      r.Label,
		Notes:      r.Notes,
		GrossValue: r.GrossValue,
	}, nil
}

type ForecastRequest struct {
	ExpectedPaymentDate string `json:"expected_payment_date"`
}

type ReceiptRequest struct {
	ReceivedValue *decimal.Decimal `json:"received_value" binding:"required"`
	ReceivedOn    string           `json:"received_on" binding:"required"`
	Conciliated   bool             `json:"conciliated"`
	ProofURL      string           `json:"proof_url"`
}

// ======================================================
// READ
// ======================================================

func (h *ShiftHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := domain.ShiftFilter{Status: c.Query("status"), Limit: limit}

	hospitalID, err := parseHospitalID(c.Query("hospital_id"))
	if err != nil {
		httperr.Respond(c, err, "Erro ao listar plantões.")
		return
	}
	if hospitalID != uuid.Nil {
		filter.HospitalID = &hospitalID
	}

	shifts, err := h.list.Execute(c.Request.Context(), middleware.Session(c), filter)
	if err != nil {
		httperr.Respond(c, err, "Erro ao listar plantões.")
		return
	}

	httpresp.List(c, dto.FromShifts(shifts, timezone.TodayIn(h.tz)))
}

func (h *ShiftHandler) Get(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "Erro ao carregar plantão.")
		return
	}
	httpresp.OK(c, dto.FromShift(*s, timezone.TodayIn(h.tz)))
}

// ======================================================
// WRITE
// ======================================================

func (h *ShiftHandler) Create(c *gin.Context) {
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	fields, err := req.fields()
	if err != nil {
		httperr.Respond(c, err, "Erro ao registrar plantão.")
		return
	}

	s, err := h.record.Execute(c.Request.Context(), middleware.Session(c), fields)
	if err != nil {
		httperr.Respond(c, err, "Erro ao registrar plantão.")
		return
	}

	httpresp.Created(c, dto.FromShift(*s, timezone.TodayIn(h.tz)))
}

func (h *ShiftHandler) Update(c *gin.Context) {
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	fields, err := req.fields()
	if err != nil {
		httperr.Respond(c, err, "Erro ao atualizar plantão.")
		return
	}

	s, err := h.update.Execute(c.Request.Context(), middleware.Session(c), c.Param("id"), fields)
	if err != nil {
		httperr.Respond(c, err, "Erro ao atualizar plantão.")
		return
	}

	httpresp.OK(c, dto.FromShift(*s, timezone.TodayIn(h.tz)))
}

func (h *ShiftHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		httperr.Respond(c, err, "Erro ao excluir plantão.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// STATUS CHANGES
// ======================================================

func (h *ShiftHandler) Forecast(c *gin.Context) {
	var req ForecastRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	s, err := h.forecast.Execute(c.Request.Context(), middleware.Session(c), c.Param("id"), req.ExpectedPaymentDate)
	if err != nil {
		httperr.Respond(c, err, "Erro ao registrar previsão de pagamento.")
		return
	}

	httpresp.OK(c, dto.FromShift(*s, timezone.TodayIn(h.tz)))
}

func (h *ShiftHandler) Receive(c *gin.Context) {
	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	s, err := h.receive.Execute(c.Request.Context(), middleware.Session(c), ucShift.RecordReceiptInput{
		ShiftID:       c.Param("id"),
		ReceivedValue: *req.ReceivedValue,
		ReceivedOn:    req.ReceivedOn,
		Conciliated:   req.Conciliated,
		ProofURL:      req.ProofURL,
	})
	if err != nil {
		httperr.Respond(c, err, "Erro ao registrar recebimento.")
		return
	}

	httpresp.Created(c, dto.FromShift(*s, timezone.TodayIn(h.tz)))
}

func (h *ShiftHandler) Conciliate(c *gin.Context) {
	s, err := h.conciliate.Execute(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "Erro ao conciliar recebimento.")
		return
	}

	httpresp.OK(c, dto.FromShift(*s, timezone.TodayIn(h.tz)))
}
