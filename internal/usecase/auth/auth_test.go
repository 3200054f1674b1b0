package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/professional"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
	"github.com/BruksfildServices01/plantoes/internal/usecase/usecasetest"
)

type fakeRepo struct {
	byID map[uuid.UUID]models.Professional
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[uuid.UUID]models.Professional)}
}

func (f *fakeRepo) FindByEmail(_ context.Context, email string) (*models.Professional, error) {
	for _, p := range f.byID {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, httperr.ErrNotFound("professional_not_found", "")
}

func (f *fakeRepo) Get(_ context.Context, id uuid.UUID) (*models.Professional, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, httperr.ErrNotFound("professional_not_found", "")
	}
	return &p, nil
}

func (f *fakeRepo) Create(_ context.Context, p *models.Professional) error {
	for _, other := range f.byID {
		if other.Email == p.Email {
			return httperr.ErrBusiness("email_already_exists")
		}
	}
	p.ID = uuid.New()
	f.byID[p.ID] = *p
	return nil
}

func (f *fakeRepo) Update(_ context.Context, p *models.Professional) error {
	f.byID[p.ID] = *p
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

var tokens = Tokens{Secret: "test-secret", TTL: time.Hour}

func acceptAll(string) bool { return true }

func register(t *testing.T, repo *fakeRepo) *Result {
	t.Helper()
	res, err := NewRegister(repo, tokens, &usecasetest.Audit{}, acceptAll).Execute(context.Background(), RegisterInput{
		Name:     "Dra. Ana",
		Email:    "  Ana@Example.com ",
		Password: "segredo1",
	})
	require.NoError(t, err)
	return res
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeRepo()
	reg := register(t, repo)

	assert.Equal(t, "ana@example.com", reg.Professional.Email)
	assert.NotEqual(t, "segredo1", reg.Professional.PasswordHash)
	assert.NotEmpty(t, reg.Token)

	res, err := NewLogin(repo, tokens).Execute(context.Background(), "ANA@example.com", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, reg.Professional.ID, res.Session.ProfessionalID)

	sess, err := session.Parse(context.Background(), tokens.Secret, res.Token, time.Now(), nil)
	require.NoError(t, err)
	assert.Equal(t, session.Authenticated, sess.State)
}

func TestLoginRejects(t *testing.T) {
	repo := newFakeRepo()
	register(t, repo)
	uc := NewLogin(repo, tokens)

	_, err := uc.Execute(context.Background(), "ana@example.com", "errada")
	assert.ErrorIs(t, err, errInvalidCredentials)

	_, err = uc.Execute(context.Background(), "ninguem@example.com", "segredo1")
	assert.ErrorIs(t, err, errInvalidCredentials)
}

func TestRegisterRejects(t *testing.T) {
	repo := newFakeRepo()
	register(t, repo)

	_, err := NewRegister(repo, tokens, &usecasetest.Audit{}, acceptAll).Execute(context.Background(), RegisterInput{
		Name: "Outra", Email: "ana@example.com", Password: "segredo1",
	})
	assert.True(t, httperr.IsBusiness(err, "email_already_exists"))

	_, err = NewRegister(repo, tokens, &usecasetest.Audit{}, func(string) bool { return false }).Execute(context.Background(), RegisterInput{
		Name: "Outra", Email: "x@nowhere.invalid", Password: "segredo1",
	})
	assert.True(t, httperr.IsValidation(err))

	_, err = NewRegister(repo, tokens, &usecasetest.Audit{}, acceptAll).Execute(context.Background(), RegisterInput{
		Name: "Outra", Email: "b@example.com", Password: "123",
	})
	assert.True(t, httperr.IsValidation(err))
}

func TestLogoutRevokesToken(t *testing.T) {
	repo := newFakeRepo()
	reg := register(t, repo)
	revoker := session.NewMemoryRevoker()

	require.NoError(t, NewLogout(revoker).Execute(context.Background(), reg.Session))

	sess, err := session.Parse(context.Background(), tokens.Secret, reg.Token, time.Now(), revoker)
	require.NoError(t, err)
	assert.Equal(t, session.Expired, sess.State)

	_, err = NewGetProfile(repo).Execute(context.Background(), sess)
	assert.ErrorIs(t, err, session.ErrExpired)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeRepo()
	reg := register(t, repo)

	specialty := " Pediatria "
	p, err := NewUpdateProfile(repo, &usecasetest.Audit{}).Execute(context.Background(), reg.Session, ProfileInput{Specialty: &specialty})
	require.NoError(t, err)
	assert.Equal(t, "Pediatria", p.Specialty)
	assert.Equal(t, "Dra. Ana", p.Name)

	blank := "  "
	_, err = NewUpdateProfile(repo, &usecasetest.Audit{}).Execute(context.Background(), reg.Session, ProfileInput{Name: &blank})
	assert.True(t, httperr.IsValidation(err))
}
