package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/httpresp"
	"github.com/BruksfildServices01/plantoes/internal/middleware"
	ucProof "github.com/BruksfildServices01/plantoes/internal/usecase/proof"
)

type ProofHandler struct {
	upload *ucProof.UploadProof
}

// NewProofHandler accepts a nil use case when S3 is not configured; uploads
// then answer 503.
func NewProofHandler(upload *ucProof.UploadProof) *ProofHandler {
	return &ProofHandler{upload: upload}
}

func (h *ProofHandler) Upload(c *gin.Context) {
	if h.upload == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "proofs_disabled", "Envio de comprovantes indisponível.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Selecione um arquivo.")
		return
	}
	if fh.Size > ucProof.MaxSize {
		httperr.BadRequest(c, "file_too_large", "O comprovante deve ter no máximo 10 MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Não foi possível ler o arquivo.")
		return
	}
	defer f.Close()

	// one extra byte lets the use case see an oversized body
	body, err := io.ReadAll(io.LimitReader(f, ucProof.MaxSize+1))
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Não foi possível ler o arquivo.")
		return
	}

	res, err := h.upload.Execute(c.Request.Context(), middleware.Session(c), body)
	if err != nil {
		httperr.Respond(c, err, "Erro ao enviar comprovante.")
		return
	}

	httpresp.Created(c, gin.H{
		"url":          res.URL,
		"key":          res.Key,
		"content_type": res.ContentType,
		"size":         res.Size,
	})
}
