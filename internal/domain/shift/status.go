package shift

import "github.com/BruksfildServices01/plantoes/internal/httperr"

// ===============================
// Shift Status
// ===============================

type Status string

const (
	StatusLancado    Status = "LANCADO"
	StatusPrevisto   Status = "PREVISTO"
	StatusRecebido   Status = "RECEBIDO"
	StatusConciliado Status = "CONCILIADO"
)

// DisplayOverdue only exists on read. It is never stored.
const DisplayOverdue = "ATRASADO"

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusLancado, StatusPrevisto, StatusRecebido, StatusConciliado:
		return Status(s), true
	}
	return "", false
}

func InitialStatus() Status {
	return StatusLancado
}

// awaitingPayment covers the states in which no receipt was recorded yet.
func awaitingPayment(st Status) bool {
	return st == StatusLancado || st == StatusPrevisto
}

// CanDelete define se um plantão pode ser excluído
func CanDelete(current string) error {
	st, ok := ParseStatus(current)
	if !ok {
		return httperr.ErrBusiness("invalid_state")
	}
	if !awaitingPayment(st) {
		return httperr.ErrBusiness("shift_not_deletable")
	}
	return nil
}

// ===============================
// Presentation lookups
// ===============================

const (
	labelUnknown = "Desconhecido"
	colorNeutral = "bg-gray-100 text-gray-800"
)

var labels = map[string]string{
	string(StatusLancado):    "Lançado",
	string(StatusPrevisto):   "Previsto",
	string(StatusRecebido):   "Recebido",
	string(StatusConciliado): "Conciliado",
	DisplayOverdue:           "Atrasado",
}

var colors = map[string]string{
	string(StatusLancado):    colorNeutral,
	string(StatusPrevisto):   "bg-blue-100 text-blue-800",
	string(StatusRecebido):   "bg-green-100 text-green-800",
	string(StatusConciliado): "bg-emerald-100 text-emerald-800",
	DisplayOverdue:           "bg-red-100 text-red-800",
}

func Label(status string) string {
	if l, ok := labels[status]; ok {
		return l
	}
	return labelUnknown
}

func Color(status string) string {
	if c, ok := colors[status]; ok {
		return c
	}
	return colorNeutral
}
