package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
)

var (
	errShiftNotFound        = httperr.ErrNotFound("shift_not_found", "Plantão não encontrado.")
	errHospitalNotFound     = httperr.ErrNotFound("hospital_not_found", "Hospital não encontrado.")
	errProfessionalNotFound = httperr.ErrNotFound("professional_not_found", "Profissional não encontrado.")
)

// translate maps a gorm error to the taxonomy: missing rows become
// notFound, anything else is a backend failure tagged with code.
func translate(err error, notFound error, code string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return httperr.ErrBackend(code, err)
}

var errStaleStatus = httperr.ErrBusiness("invalid_transition")
