package shift

import (
	"time"

	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

// ExpectedPaymentDate derives the previsão de pagamento from the hospital
// terms. With a cutoff day the billing cycle closes on that day of the
// shift's month, or of the next month when the shift falls after it. The
// term is counted from the cycle close. Nil when the hospital has no terms.
func ExpectedPaymentDate(shiftDate time.Time, termDays, cutoffDay int) *time.Time {
	if termDays <= 0 && cutoffDay <= 0 {
		return nil
	}

	day := timezone.DateOf(shiftDate)
	closing := day

	if cutoffDay > 0 {
		y, m, d := day.Date()
		if d <= clampDay(y, m, cutoffDay) {
			closing = time.Date(y, m, clampDay(y, m, cutoffDay), 0, 0, 0, 0, time.UTC)
		} else {
			next := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
			ny, nm, _ := next.Date()
			closing = time.Date(ny, nm, clampDay(ny, nm, cutoffDay), 0, 0, 0, 0, time.UTC)
		}
	}

	if termDays < 0 {
		termDays = 0
	}

	expected := closing.AddDate(0, 0, termDays)
	return &expected
}

func clampDay(y int, m time.Month, day int) int {
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
