package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond writes err using the taxonomy above. action names what was being
// attempted ("Erro ao registrar recebimento.") and is used when the error
// carries no message of its own.
func Respond(c *gin.Context, err error, action string) {
	var (
		ve ValidationError
		nf NotFoundError
		be BusinessError
		ke BackendError
		ue UnauthorizedError
	)

	switch {
	case errors.As(err, &ue):
		Unauthorized(c, ue.Code, orDefault(ue.Message, action))
	case errors.As(err, &ve):
		BadRequest(c, ve.Code, orDefault(ve.Message, action))
	case errors.As(err, &nf):
		NotFound(c, nf.Code, orDefault(nf.Message, action))
	case errors.As(err, &be):
		Conflict(c, be.Code, orDefault(businessMessages[be.Code], action))
	case errors.As(err, &ke):
		log.Printf("%s: %v", ke.Code, ke.Err)
		Internal(c, ke.Code, action)
	default:
		log.Printf("unexpected error: %v", err)
		Internal(c, "internal_error", action)
	}
}

var businessMessages = map[string]string{
	"invalid_transition":   "Transição de status não permitida para este plantão.",
	"invalid_state":        "Plantão com status desconhecido.",
	"hospital_in_use":      "Hospital possui plantões vinculados e não pode ser excluído.",
	"shift_not_deletable":  "Apenas plantões lançados ou previstos podem ser excluídos.",
	"email_already_exists": "E-mail já cadastrado.",
	"receipt_missing":      "Plantão sem recebimento registrado.",
}

func orDefault(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}
