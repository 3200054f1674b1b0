package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
)

type State int

const (
	Anonymous State = iota
	Authenticated
	Expired
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Expired:
		return "expired"
	default:
		return "anonymous"
	}
}

var (
	ErrAnonymous = httperr.ErrUnauthorized("invalid_token", "Sessão inválida. Faça login novamente.")
	ErrExpired   = httperr.ErrUnauthorized("session_expired", "Sessão expirada. Faça login novamente.")
)

// Session is handed to every use case; there is no ambient current user.
type Session struct {
	ProfessionalID uuid.UUID
	TokenID        string
	ExpiresAt      time.Time
	State          State
}

func (s Session) Require() error {
	switch s.State {
	case Authenticated:
		return nil
	case Expired:
		return ErrExpired
	default:
		return ErrAnonymous
	}
}

// ===============================
// Tokens
// ===============================

// Issue signs an HS256 token for the professional and returns it with the
// session it represents.
func Issue(secret string, professionalID uuid.UUID, ttl time.Duration, now time.Time) (string, Session, error) {
	sess := Session{
		ProfessionalID: professionalID,
		TokenID:        uuid.NewString(),
		ExpiresAt:      now.Add(ttl),
		State:          Authenticated,
	}

	claims := jwt.RegisteredClaims{
		Subject:   professionalID.String(),
		ID:        sess.TokenID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", Session{}, err
	}

	return signed, sess, nil
}

// Parse maps a bad token to Anonymous and an expired or signed-out one to
// Expired, without an error. The error is reserved for the revoker being
// unreachable; the returned session is then Anonymous.
func Parse(ctx context.Context, secret, tokenString string, now time.Time, revoker Revoker) (Session, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		},
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{State: Expired}, nil
		}
		return Session{State: Anonymous}, nil
	}

	professionalID, perr := uuid.Parse(claims.Subject)
	if perr != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return Session{State: Anonymous}, nil
	}

	sess := Session{
		ProfessionalID: professionalID,
		TokenID:        claims.ID,
		ExpiresAt:      claims.ExpiresAt.Time,
		State:          Authenticated,
	}

	if revoker != nil {
		revoked, err := revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return Session{State: Anonymous}, err
		}
		if revoked {
			sess.State = Expired
		}
	}

	return sess, nil
}
