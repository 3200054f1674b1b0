package proof

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/usecase/usecasetest"
)

type memStore struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Put(_ context.Context, key, contentType string, body []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.objects[key] = body
	m.types[key] = contentType
	return "https://cdn.example.com/" + key, nil
}

func fakeConvert(body []byte, maxWidth int) ([]byte, error) {
	return []byte("RIFF0000WEBPVP8 "), nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestUploadPDFKeptAsIs(t *testing.T) {
	store := newMemStore()
	sess := usecasetest.Authenticated()
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")

	res, err := NewUploadProof(store, fakeConvert, 1600, &usecasetest.Audit{}).Execute(context.Background(), sess, pdf)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", res.ContentType)
	assert.True(t, strings.HasPrefix(res.Key, "proofs/"+sess.ProfessionalID.String()+"/"))
	assert.True(t, strings.HasSuffix(res.Key, ".pdf"))
	assert.Equal(t, pdf, store.objects[res.Key])
	assert.Equal(t, "https://cdn.example.com/"+res.Key, res.URL)
}

func TestUploadImageConvertedToWebP(t *testing.T) {
	store := newMemStore()

	res, err := NewUploadProof(store, fakeConvert, 1600, &usecasetest.Audit{}).Execute(context.Background(), usecasetest.Authenticated(), pngBytes(t))
	require.NoError(t, err)

	assert.Equal(t, "image/webp", res.ContentType)
	assert.True(t, strings.HasSuffix(res.Key, ".webp"))
	assert.Equal(t, "image/webp", store.types[res.Key])
}

func TestUploadRejects(t *testing.T) {
	uc := NewUploadProof(newMemStore(), fakeConvert, 1600, &usecasetest.Audit{})
	sess := usecasetest.Authenticated()

	_, err := uc.Execute(context.Background(), sess, nil)
	assert.True(t, httperr.IsValidation(err))

	_, err = uc.Execute(context.Background(), sess, []byte("apenas texto"))
	assert.True(t, httperr.IsValidation(err))

	_, err = uc.Execute(context.Background(), sess, make([]byte, MaxSize+1))
	assert.True(t, httperr.IsValidation(err))

	broken := NewUploadProof(newMemStore(), func([]byte, int) ([]byte, error) { return nil, errors.New("bad") }, 1600, &usecasetest.Audit{})
	_, err = broken.Execute(context.Background(), sess, pngBytes(t))
	assert.True(t, httperr.IsValidation(err))
}

func TestUploadStoreFailure(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("timeout")

	_, err := NewUploadProof(store, fakeConvert, 1600, &usecasetest.Audit{}).Execute(context.Background(), usecasetest.Authenticated(), []byte("%PDF-1.4\n"))

	var be httperr.BackendError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "proof_upload_failed", be.Code)
}
