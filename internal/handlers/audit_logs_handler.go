package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/httpresp"
	"github.com/BruksfildServices01/plantoes/internal/middleware"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	sess := middleware.Session(c)
	if err := sess.Require(); err != nil {
		httperr.Respond(c, err, "Sessão inválida.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Filtros de data (inválidos são ignorados)
	// --------------------------------------------------

	q.From = optionalDate(c.Query("from"))
	q.To = optionalDate(c.Query("to"))

	logs, total, err := h.logger.List(c.Request.Context(), sess.ProfessionalID, q)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	q = q.Normalized()

	httpresp.Page(c, logs, q.Page, q.Limit, total)
}

func optionalDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	d, err := timezone.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &d
}
