package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/middleware"
	ucAuth "github.com/BruksfildServices01/plantoes/internal/usecase/auth"
)

type MeHandler struct {
	get    *ucAuth.GetProfile
	update *ucAuth.UpdateProfile
}

func NewMeHandler(get *ucAuth.GetProfile, update *ucAuth.UpdateProfile) *MeHandler {
	return &MeHandler{get: get, update: update}
}

type UpdateMeRequest struct {
	Name           *string `json:"name"`
	CPF            *string `json:"cpf"`
	ClassCouncil   *string `json:"class_council"`
	RegistryNumber *string `json:"registry_number"`
	Specialty      *string `json:"specialty"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p, err := h.get.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.Respond(c, err, "Erro ao carregar perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"professional": professionalJSON(p)})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.Session(c), ucAuth.ProfileInput{
		Name:           req.Name,
		CPF:            req.CPF,
		ClassCouncil:   req.ClassCouncil,
		RegistryNumber: req.RegistryNumber,
		Specialty:      req.Specialty,
		Phone:          req.Phone,
		Address:        req.Address,
	})
	if err != nil {
		httperr.Respond(c, err, "Erro ao salvar perfil.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"professional": professionalJSON(p)})
}
