package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/httpresp"
	"github.com/BruksfildServices01/plantoes/internal/middleware"
	ucHospital "github.com/BruksfildServices01/plantoes/internal/usecase/hospital"
)

type HospitalHandler struct {
	create *ucHospital.CreateHospital
	update *ucHospital.UpdateHospital
	remove *ucHospital.DeleteHospital
	list   *ucHospital.ListHospitals
	get    *ucHospital.GetHospital
}

func NewHospitalHandler(
	create *ucHospital.CreateHospital,
	update *ucHospital.UpdateHospital,
	remove *ucHospital.DeleteHospital,
	list *ucHospital.ListHospitals,
	get *ucHospital.GetHospital,
) *HospitalHandler {
	return &HospitalHandler{
		create: create,
		update: update,
		remove: remove,
		list:   list,
		get:    get,
	}
}

type HospitalRequest struct {
	Name            string           `json:"name" binding:"required"`
	TaxID           string           `json:"tax_id"`
	PaymentTermDays int              `json:"payment_term_days"`
	CutoffDay       int              `json:"cutoff_day"`
	DefaultValue    *decimal.Decimal `json:"default_value"`
}

func (r HospitalRequest) input() ucHospital.HospitalInput {
	return ucHospital.HospitalInput{
		Name:            r.Name,
		TaxID:           r.TaxID,
		PaymentTermDays: r.PaymentTermDays,
		CutoffDay:       r.CutoffDay,
		DefaultValue:    r.DefaultValue,
	}
}

func (h *HospitalHandler) List(c *gin.Context) {
	hospitals, err := h.list.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.Respond(c, err, "Erro ao listar hospitais.")
		return
	}
	httpresp.List(c, hospitals)
}

func (h *HospitalHandler) Get(c *gin.Context) {
	hospital, err := h.get.Execute(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "Erro ao carregar hospital.")
		return
	}
	httpresp.OK(c, hospital)
}

func (h *HospitalHandler) Create(c *gin.Context) {
	var req HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	hospital, err := h.create.Execute(c.Request.Context(), middleware.Session(c), req.input())
	if err != nil {
		httperr.Respond(c, err, "Erro ao cadastrar hospital.")
		return
	}
	httpresp.Created(c, hospital)
}

func (h *HospitalHandler) Update(c *gin.Context) {
	var req HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	hospital, err := h.update.Execute(c.Request.Context(), middleware.Session(c), c.Param("id"), req.input())
	if err != nil {
		httperr.Respond(c, err, "Erro ao atualizar hospital.")
		return
	}
	httpresp.OK(c, hospital)
}

func (h *HospitalHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		httperr.Respond(c, err, "Erro ao excluir hospital.")
		return
	}
	c.Status(http.StatusNoContent)
}
