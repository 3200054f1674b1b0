package proof

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

// MaxSize is the largest proof accepted, before any conversion.
const MaxSize = 10 << 20

type Store interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// Converter turns an image proof into WebP no wider than maxWidth.
type Converter func(body []byte, maxWidth int) ([]byte, error)

type Result struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type UploadProof struct {
	store    Store
	convert  Converter
	maxWidth int
	audit    audit.Recorder
}

func NewUploadProof(store Store, convert Converter, maxWidth int, audit audit.Recorder) *UploadProof {
	return &UploadProof{
		store:    store,
		convert:  convert,
		maxWidth: maxWidth,
		audit:    audit,
	}
}

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Execute sniffs the content, converts images to WebP and stores the result
// under proofs/<professional>/<uuid>.<ext>.
func (uc *UploadProof) Execute(
	ctx context.Context,
	sess session.Session,
	body []byte,
) (*Result, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return nil, httperr.ErrValidation("empty_file", "Selecione um arquivo.")
	}
	if len(body) > MaxSize {
		return nil, httperr.ErrValidation("file_too_large", "O comprovante deve ter no máximo 10 MB.")
	}

	contentType := http.DetectContentType(body)
	ext := ""

	switch {
	case contentType == "application/pdf":
		ext = "pdf"
	case imageTypes[contentType]:
		converted, err := uc.convert(body, uc.maxWidth)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_image", "Não foi possível ler a imagem enviada.")
		}
		body = converted
		contentType = "image/webp"
		ext = "webp"
	default:
		return nil, httperr.ErrValidation("unsupported_file_type", "Envie um PDF ou uma imagem (JPEG, PNG ou WebP).")
	}

	key := "proofs/" + sess.ProfessionalID.String() + "/" + uuid.NewString() + "." + ext

	url, err := uc.store.Put(ctx, key, contentType, body)
	if err != nil {
		return nil, httperr.ErrBackend("proof_upload_failed", err)
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "proof_uploaded",
		Entity:         "proof",
		Metadata: map[string]any{
			"key":  key,
			"size": len(body),
		},
	})

	return &Result{URL: url, Key: key, ContentType: contentType, Size: len(body)}, nil
}
