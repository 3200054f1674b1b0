package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
)

func TestTransitionAllowed(t *testing.T) {
	tests := []struct {
		from   string
		event  Event
		to     Status
		effect SideEffect
	}{
		{from: "LANCADO", event: EventForecast, to: StatusPrevisto, effect: EffectSetExpectedPayment},
		{from: "PREVISTO", event: EventForecast, to: StatusPrevisto, effect: EffectSetExpectedPayment},
		{from: "LANCADO", event: EventReceive, to: StatusRecebido, effect: EffectCreateReceipt},
		{from: "PREVISTO", event: EventReceive, to: StatusRecebido, effect: EffectCreateReceipt},
		{from: "LANCADO", event: EventReceiveConciliated, to: StatusConciliado, effect: EffectCreateReceipt},
		{from: "PREVISTO", event: EventReceiveConciliated, to: StatusConciliado, effect: EffectCreateReceipt},
		{from: "RECEBIDO", event: EventConciliate, to: StatusConciliado, effect: EffectConciliateReceipt},
	}

	for _, tt := range tests {
		got, effects, err := Transition(tt.from, tt.event)
		require.NoError(t, err, "%s --%s-->", tt.from, tt.event)
		assert.Equal(t, tt.to, got)
		assert.True(t, HasEffect(effects, tt.effect))
	}
}

func TestTransitionRejected(t *testing.T) {
	tests := []struct {
		from  string
		event Event
	}{
		{from: "RECEBIDO", event: EventReceive},
		{from: "RECEBIDO", event: EventForecast},
		{from: "CONCILIADO", event: EventReceive},
		{from: "CONCILIADO", event: EventConciliate},
		{from: "LANCADO", event: EventConciliate},
		{from: "PREVISTO", event: EventConciliate},
		{from: "LANCADO", event: Event("edit_status")},
	}

	for _, tt := range tests {
		_, effects, err := Transition(tt.from, tt.event)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"), "%s --%s-->", tt.from, tt.event)
		assert.Nil(t, effects)
	}
}

func TestTransitionUnknownCurrentStatus(t *testing.T) {
	_, _, err := Transition("ATRASADO", EventReceive)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTransitionEffectsAreNotShared(t *testing.T) {
	_, effects, err := Transition("LANCADO", EventReceive)
	require.NoError(t, err)
	effects[0] = "mutated"

	_, again, err := Transition("LANCADO", EventReceive)
	require.NoError(t, err)
	assert.Equal(t, []SideEffect{EffectCreateReceipt}, again)
}

func TestReceiveEvent(t *testing.T) {
	assert.Equal(t, EventReceive, ReceiveEvent(false))
	assert.Equal(t, EventReceiveConciliated, ReceiveEvent(true))
}
