package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/middleware"
	"github.com/BruksfildServices01/plantoes/internal/models"
	ucAuth "github.com/BruksfildServices01/plantoes/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
	logout   *ucAuth.Logout
}

func NewAuthHandler(
	register *ucAuth.Register,
	login *ucAuth.Login,
	logout *ucAuth.Logout,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		logout:   logout,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	CPF            string `json:"cpf"`
	ClassCouncil   string `json:"class_council"`
	RegistryNumber string `json:"registry_number"`
	Specialty      string `json:"specialty"`
	Phone          string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		CPF:            req.CPF,
		ClassCouncil:   req.ClassCouncil,
		RegistryNumber: req.RegistryNumber,
		Specialty:      req.Specialty,
		Phone:          req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err, "Erro ao criar conta.")
		return
	}

	c.JSON(http.StatusCreated, authResponse(res))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err, "Erro ao entrar.")
		return
	}

	c.JSON(http.StatusOK, authResponse(res))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.Session(c)); err != nil {
		httperr.Respond(c, err, "Erro ao sair.")
		return
	}
	c.Status(http.StatusNoContent)
}

func authResponse(res *ucAuth.Result) gin.H {
	return gin.H{
		"professional": professionalJSON(res.Professional),
		"token":        res.Token,
		"expires_at":   res.Session.ExpiresAt,
	}
}

func professionalJSON(p *models.Professional) gin.H {
	return gin.H{
		"id":              p.ID,
		"name":            p.Name,
		"email":           p.Email,
		"cpf":             p.CPF,
		"class_council":   p.ClassCouncil,
		"registry_number": p.RegistryNumber,
		"specialty":       p.Specialty,
		"phone":           p.Phone,
		"address":         p.Address,
	}
}
