package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"LANCADO", "PREVISTO", "RECEBIDO", "CONCILIADO"} {
		st, ok := ParseStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, Status(s), st)
	}

	for _, s := range []string{"", "lancado", "ATRASADO", "PAGO", "recebido "} {
		_, ok := ParseStatus(s)
		assert.False(t, ok, "expected %q to be rejected", s)
	}
}

func TestLabelAndColor(t *testing.T) {
	tests := []struct {
		status string
		label  string
		color  string
	}{
		{status: "LANCADO", label: "Lançado", color: "bg-gray-100 text-gray-800"},
		{status: "PREVISTO", label: "Previsto", color: "bg-blue-100 text-blue-800"},
		{status: "RECEBIDO", label: "Recebido", color: "bg-green-100 text-green-800"},
		{status: "CONCILIADO", label: "Conciliado", color: "bg-emerald-100 text-emerald-800"},
		{status: "ATRASADO", label: "Atrasado", color: "bg-red-100 text-red-800"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, Label(tt.status))
		assert.Equal(t, tt.color, Color(tt.status))
	}
}

func TestLabelAndColorUnknownFallback(t *testing.T) {
	for _, s := range []string{"", "pago", "???", "LANÇADO"} {
		assert.NotPanics(t, func() {
			assert.Equal(t, "Desconhecido", Label(s))
			assert.Equal(t, "bg-gray-100 text-gray-800", Color(s))
		})
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusLancado, InitialStatus())
}

func TestCanDelete(t *testing.T) {
	assert.NoError(t, CanDelete("LANCADO"))
	assert.NoError(t, CanDelete("PREVISTO"))

	assert.True(t, httperr.IsBusiness(CanDelete("RECEBIDO"), "shift_not_deletable"))
	assert.True(t, httperr.IsBusiness(CanDelete("CONCILIADO"), "shift_not_deletable"))
	assert.True(t, httperr.IsBusiness(CanDelete("whatever"), "invalid_state"))
}
