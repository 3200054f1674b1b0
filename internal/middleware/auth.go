package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/plantoes/internal/config"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

const ContextSession = "session"

func AuthMiddleware(cfg *config.Config, revoker session.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Faça login para continuar.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		sess, err := session.Parse(c.Request.Context(), cfg.JWTSecret, parts[1], time.Now(), revoker)
		if err != nil {
			httperr.Respond(c, httperr.ErrBackend("session_check_failed", err), "Erro ao validar sessão.")
			c.Abort()
			return
		}

		if err := sess.Require(); err != nil {
			httperr.Respond(c, err, "Sessão inválida.")
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// Session returns the session stored by AuthMiddleware; routes outside
// the secured group get the zero (anonymous) session.
func Session(c *gin.Context) session.Session {
	if v, ok := c.Get(ContextSession); ok {
		if sess, ok := v.(session.Session); ok {
			return sess
		}
	}
	return session.Session{State: session.Anonymous}
}
