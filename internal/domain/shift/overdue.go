package shift

import (
	"time"

	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

// IsOverdue compares calendar days: the expected date already passed and no
// receipt exists.
func IsOverdue(today time.Time, expected *time.Time, hasReceipt bool) bool {
	if expected == nil || hasReceipt {
		return false
	}
	return timezone.BeforeDay(*expected, today)
}

// DisplayStatus is the read-time projection of a shift's status. A recorded
// receipt wins over a stale stored status; unknown values pass through.
func DisplayStatus(stored string, expected *time.Time, hasReceipt bool, today time.Time) string {
	st, ok := ParseStatus(stored)
	if !ok || !awaitingPayment(st) {
		return stored
	}
	if hasReceipt {
		return string(StatusRecebido)
	}
	if IsOverdue(today, expected, false) {
		return DisplayOverdue
	}
	return stored
}
