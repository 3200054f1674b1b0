package shift

import "github.com/BruksfildServices01/plantoes/internal/httperr"

type Event string

const (
	EventForecast           Event = "forecast"
	EventReceive            Event = "receive"
	EventReceiveConciliated Event = "receive_conciliated"
	EventConciliate         Event = "conciliate"
)

// SideEffect is what the caller must persist together with the new status.
type SideEffect string

const (
	EffectSetExpectedPayment SideEffect = "set_expected_payment"
	EffectCreateReceipt      SideEffect = "create_receipt"
	EffectConciliateReceipt  SideEffect = "conciliate_receipt"
)

type rule struct {
	from    []Status
	to      Status
	effects []SideEffect
}

var rules = map[Event]rule{
	EventForecast: {
		from:    []Status{StatusLancado, StatusPrevisto},
		to:      StatusPrevisto,
		effects: []SideEffect{EffectSetExpectedPayment},
	},
	EventReceive: {
		from:    []Status{StatusLancado, StatusPrevisto},
		to:      StatusRecebido,
		effects: []SideEffect{EffectCreateReceipt},
	},
	EventReceiveConciliated: {
		from:    []Status{StatusLancado, StatusPrevisto},
		to:      StatusConciliado,
		effects: []SideEffect{EffectCreateReceipt},
	},
	EventConciliate: {
		from:    []Status{StatusRecebido},
		to:      StatusConciliado,
		effects: []SideEffect{EffectConciliateReceipt},
	},
}

// Transition is the single place where a shift changes status.
func Transition(current string, ev Event) (Status, []SideEffect, error) {
	st, ok := ParseStatus(current)
	if !ok {
		return "", nil, httperr.ErrBusiness("invalid_state")
	}

	r, ok := rules[ev]
	if !ok {
		return "", nil, httperr.ErrBusiness("invalid_transition")
	}

	for _, from := range r.from {
		if from == st {
			effects := make([]SideEffect, len(r.effects))
			copy(effects, r.effects)
			return r.to, effects, nil
		}
	}

	return "", nil, httperr.ErrBusiness("invalid_transition")
}

// ReceiveEvent maps the "conciliado" flag of the receipt form.
func ReceiveEvent(conciliated bool) Event {
	if conciliated {
		return EventReceiveConciliated
	}
	return EventReceive
}

func HasEffect(effects []SideEffect, want SideEffect) bool {
	for _, e := range effects {
		if e == want {
			return true
		}
	}
	return false
}
