package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/professional"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

// ======================================================
// GET (getCurrentUser)
// ======================================================

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, sess session.Session) (*models.Professional, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}
	return uc.repo.Get(ctx, sess.ProfessionalID)
}

// ======================================================
// UPDATE
// ======================================================

// ProfileInput only changes the fields that are present.
type ProfileInput struct {
	Name           *string
	CPF            *string
	ClassCouncil   *string
	RegistryNumber *string
	Specialty      *string
	Phone          *string
	Address        *string
}

type UpdateProfile struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateProfile(repo domain.Repository, audit audit.Recorder) *UpdateProfile {
	return &UpdateProfile{repo: repo, audit: audit}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	sess session.Session,
	in ProfileInput,
) (*models.Professional, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	p, err := uc.repo.Get(ctx, sess.ProfessionalID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrValidation("invalid_name", "Informe seu nome.")
		}
		p.Name = name
	}
	set(&p.CPF, in.CPF)
	set(&p.ClassCouncil, in.ClassCouncil)
	set(&p.RegistryNumber, in.RegistryNumber)
	set(&p.Specialty, in.Specialty)
	set(&p.Phone, in.Phone)
	set(&p.Address, in.Address)

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: p.ID,
		Action:         "profile_updated",
		Entity:         "professional",
		EntityID:       &p.ID,
	})

	return p, nil
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
