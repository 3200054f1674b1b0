package audit

import (
	"log"
	"sync/atomic"

	"github.com/google/uuid"
)

type Event struct {
	ProfessionalID uuid.UUID
	Action         string
	Entity         string
	EntityID       *uuid.UUID
	Metadata       any
}

// Recorder is what the use cases depend on.
type Recorder interface {
	Dispatch(ev Event)
}

const queueSize = 100

type Dispatcher struct {
	write   func(Event) error
	queue   chan Event
	dropped atomic.Int64
}

func NewDispatcher(logger *Logger) *Dispatcher {
	return newDispatcher(logger.write, queueSize)
}

func newDispatcher(write func(Event) error, size int) *Dispatcher {
	d := &Dispatcher{
		write: write,
		queue: make(chan Event, size),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.write(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.dropped.Add(1)
		log.Println("audit queue full, dropping event:", ev.Action)
	}
}

// Dropped counts events discarded because the queue was full.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

var _ Recorder = (*Dispatcher)(nil)
