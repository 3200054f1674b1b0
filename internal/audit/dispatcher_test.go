package audit

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingSink struct {
	started chan struct{}
	release chan struct{}

	mu      sync.Mutex
	written []string
	once    sync.Once
}

func newBlockingSink() *blockingSink {
	return &blockingSink{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *blockingSink) write(ev Event) error {
	s.once.Do(func() { close(s.started) })
	<-s.release

	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = append(s.written, ev.Action)
	return nil
}

func (s *blockingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.written...)
}

func TestDispatcherDropsWhenQueueIsFull(t *testing.T) {
	sink := newBlockingSink()
	d := newDispatcher(sink.write, 1)
	owner := uuid.New()

	// the worker holds the first event
	d.Dispatch(Event{ProfessionalID: owner, Action: "shift_recorded"})
	select {
	case <-sink.started:
	case <-time.After(time.Second):
		t.Fatal("worker never picked up the first event")
	}

	d.Dispatch(Event{ProfessionalID: owner, Action: "receipt_recorded"}) // queued
	d.Dispatch(Event{ProfessionalID: owner, Action: "shift_updated"})    // dropped
	d.Dispatch(Event{ProfessionalID: owner, Action: "shift_deleted"})    // dropped

	assert.Equal(t, int64(2), d.Dropped())

	close(sink.release)

	require.Eventually(t, func() bool {
		return len(sink.actions()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"shift_recorded", "receipt_recorded"}, sink.actions())
}

func TestDispatcherKeepsGoingAfterWriteError(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	d := newDispatcher(func(ev Event) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, ev.Action)
		if ev.Action == "first" {
			return errors.New("insert failed")
		}
		return nil
	}, 4)

	d.Dispatch(Event{Action: "first"})
	d.Dispatch(Event{Action: "second"})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Zero(t, d.Dropped())
}
