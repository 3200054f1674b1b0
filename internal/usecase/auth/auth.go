package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/professional"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
	"github.com/BruksfildServices01/plantoes/internal/validators"
)

var errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "E-mail ou senha inválidos.")

// Tokens holds what every auth use case needs to mint a session.
type Tokens struct {
	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func (t Tokens) issue(p models.Professional) (string, session.Session, error) {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	token, sess, err := session.Issue(t.Secret, p.ID, t.TTL, now())
	if err != nil {
		return "", session.Session{}, httperr.ErrBackend("token_issue_failed", err)
	}
	return token, sess, nil
}

type Result struct {
	Professional *models.Professional
	Token        string
	Session      session.Session
}

// ======================================================
// REGISTER
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string

	CPF            string
	ClassCouncil   string
	RegistryNumber string
	Specialty      string
	Phone          string
}

type Register struct {
	repo        domain.Repository
	tokens      Tokens
	audit       audit.Recorder
	checkDomain validators.DomainChecker
}

func NewRegister(
	repo domain.Repository,
	tokens Tokens,
	audit audit.Recorder,
	checkDomain validators.DomainChecker,
) *Register {
	return &Register{
		repo:        repo,
		tokens:      tokens,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Result, error) {
	email := validators.NormalizeEmail(in.Email)

	if !strings.Contains(email, "@") {
		return nil, httperr.ErrValidation("invalid_email", "E-mail inválido.")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.ErrValidation("invalid_name", "Informe seu nome.")
	}
	if len(in.Password) < 6 {
		return nil, httperr.ErrValidation("invalid_password", "A senha deve ter pelo menos 6 caracteres.")
	}
	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, httperr.ErrValidation("invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, httperr.ErrBackend("password_hash_failed", err)
	}

	p := &models.Professional{
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		PasswordHash:   string(hashed),
		CPF:            in.CPF,
		ClassCouncil:   in.ClassCouncil,
		RegistryNumber: in.RegistryNumber,
		Specialty:      in.Specialty,
		Phone:          in.Phone,
		Active:         true,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	token, sess, err := uc.tokens.issue(*p)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: p.ID,
		Action:         "professional_registered",
		Entity:         "professional",
		EntityID:       &p.ID,
	})

	return &Result{Professional: p, Token: token, Session: sess}, nil
}

// ======================================================
// LOGIN (signIn)
// ======================================================

type Login struct {
	repo   domain.Repository
	tokens Tokens
}

func NewLogin(repo domain.Repository, tokens Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Result, error) {
	p, err := uc.repo.FindByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !p.Active {
		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	token, sess, err := uc.tokens.issue(*p)
	if err != nil {
		return nil, err
	}

	return &Result{Professional: p, Token: token, Session: sess}, nil
}

// ======================================================
// LOGOUT (signOut)
// ======================================================

type Logout struct {
	revoker session.Revoker
}

func NewLogout(revoker session.Revoker) *Logout {
	return &Logout{revoker: revoker}
}

func (uc *Logout) Execute(ctx context.Context, sess session.Session) error {
	if err := sess.Require(); err != nil {
		return err
	}
	if err := uc.revoker.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		return httperr.ErrBackend("logout_failed", err)
	}
	return nil
}
