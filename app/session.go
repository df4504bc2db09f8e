package app

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mbolis/quick-form/machine"
	"github.com/mbolis/quick-form/metrics"
	"github.com/mbolis/quick-form/repository"
)

var ErrSessionClosed = errors.New("session closed")

type request struct {
	fn   func(*machine.Machine)
	done chan any
}

// Session owns a Machine on a single goroutine. Every access to the machine
// and to the store behind it goes through Do, so intents are processed one
// at a time and to completion.
type Session struct {
	machine  *machine.Machine
	requests chan request
	quit     chan struct{}
	once     sync.Once
}

func NewSession(m *machine.Machine) *Session {
	s := &Session{
		machine:  m,
		requests: make(chan request),
		quit:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Session) run() {
	for {
		select {
		case req := <-s.requests:
			req.done <- s.call(req.fn)
		case <-s.quit:
			return
		}
	}
}

func (s *Session) call(fn func(*machine.Machine)) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	fn(s.machine)
	return nil
}

// Do runs fn on the session goroutine and waits for it. A panic in fn is
// raised again in the caller.
func (s *Session) Do(fn func(*machine.Machine)) error {
	done := make(chan any, 1)
	select {
	case s.requests <- request{fn: fn, done: done}:
	case <-s.quit:
		return ErrSessionClosed
	}
	if p := <-done; p != nil {
		panic(fmt.Sprintf("session: %v", p))
	}
	return nil
}

func (s *Session) Dispatch(in machine.Intent) (state machine.State, err error) {
	if doErr := s.Do(func(m *machine.Machine) {
		state, err = m.Dispatch(in)
	}); doErr != nil {
		return state, doErr
	}
	observe(in.Name(), err)
	return
}

func (s *Session) Retry() (state machine.State, err error) {
	if doErr := s.Do(func(m *machine.Machine) {
		state, err = m.Retry()
	}); doErr != nil {
		return state, doErr
	}
	observe("Retry", err)
	return
}

func (s *Session) State() (state machine.State, err error) {
	err = s.Do(func(m *machine.Machine) {
		state = m.State()
	})
	return
}

func (s *Session) Close() {
	s.once.Do(func() {
		close(s.quit)
	})
}

func observe(intent string, err error) {
	var verr *machine.ValidationError
	outcome := "ok"
	switch {
	case err == nil:
	case errors.As(err, &verr):
		outcome = "validation_failure"
	case repository.IsStorageFault(err):
		outcome = "storage_fault"
		metrics.StorageFaults.Inc()
	default:
		outcome = "rejected"
	}
	metrics.Intents.WithLabelValues(intent, outcome).Inc()
}
