// Package machine is the application state machine: it holds the current
// State, turns intents into the next State and persists what changed.
package machine

import (
	"github.com/pkg/errors"

	"github.com/mbolis/quick-form/log"
	"github.com/mbolis/quick-form/model"
)

// Repository is what the Machine needs from the data layer.
type Repository interface {
	Reader
	ListForms() ([]model.Form, error)
	UpsertForm(form model.Form) error
	DeleteForm(formID string) error
	AppendResponse(response model.Response) error
	UpdateResponse(response model.Response) error
	UpdateResponseAt(index int, response model.Response) error
}

type Option func(*Machine)

func WithEnv(env Env) Option {
	return func(m *Machine) {
		m.env = env
	}
}

// WithPositionalUpdates makes edited responses overwrite the response at
// the position recorded when editing started, rather than the one with the same id.
func WithPositionalUpdates() Option {
	return func(m *Machine) {
		m.positional = true
	}
}

// Machine is not safe for concurrent use: intents must be dispatched one at a time.
type Machine struct {
	repo       Repository
	env        Env
	positional bool
	state      State
	pending    []Effect

	// notice of the intent whose effects are pending
	pendingNotice string
}

// New starts a machine in the list view.
func New(repo Repository, opts ...Option) (*Machine, error) {
	m := &Machine{
		repo:  repo,
		env:   DefaultEnv(),
		state: State{View: ListView},
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Machine) State() State {
	return m.state
}

// Pending returns the effects left unapplied by a storage fault.
func (m *Machine) Pending() []Effect {
	return append([]Effect{}, m.pending...)
}

// Dispatch processes one intent to completion. The next state is committed
// before its effects are written: when a write fails the returned
// StorageFault leaves the state as is and the unwritten effects pending.
func (m *Machine) Dispatch(in Intent) (State, error) {
	logger := log.WithField("intent", in.Name()).WithField("view", m.state.View.String())
	logger.Debug("dispatch")

	if err := validateIntent(in); err != nil {
		logger.Debugf("machine.dispatch.invalid: %s", err)
		return m.state, err
	}

	next, effects, err := Transition(m.state, in, m.repo, m.env)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			m.state = next
		}
		logger.Debugf("machine.dispatch.rejected: %s", err)
		return m.state, err
	}

	if len(m.pending) > 0 {
		logger.Warnf("machine.dispatch: dropping %d unapplied effects", len(m.pending))
		m.pending = nil
	}
	m.state = next

	if err := m.apply(effects); err != nil {
		m.pendingNotice = m.state.Notice
		return m.state, m.fault(err)
	}
	return m.state, m.refresh()
}

// Retry writes again the effects left pending by the last storage fault.
func (m *Machine) Retry() (State, error) {
	effects := m.pending
	m.pending = nil
	if err := m.apply(effects); err != nil {
		return m.state, m.fault(err)
	}
	if len(effects) > 0 {
		m.state.Notice = m.pendingNotice
		m.pendingNotice = ""
	}
	return m.state, m.refresh()
}

// fault reloads the listed data, so the view shows what is actually stored,
// and replaces the outcome notice.
func (m *Machine) fault(err error) error {
	m.state.Notice = NoticeSaveFailed
	if rerr := m.refresh(); rerr != nil {
		log.Warnf("machine.fault.refresh: %s", rerr)
	}
	return err
}

func (m *Machine) apply(effects []Effect) error {
	for i, e := range effects {
		if err := m.applyOne(e); err != nil {
			log.Errorf("machine.apply %s: %s", e, err)
			m.pending = effects[i:]
			return err
		}
		log.Debugf("machine.apply %s", e)
	}
	return nil
}

func (m *Machine) applyOne(e Effect) error {
	switch e := e.(type) {
	case PutForm:
		return m.repo.UpsertForm(e.Form)
	case DropForm:
		return m.repo.DeleteForm(e.FormID)
	case AppendResponse:
		return m.repo.AppendResponse(e.Response)
	case ReplaceResponse:
		if m.positional {
			return m.repo.UpdateResponseAt(e.Index, e.Response)
		}
		return m.repo.UpdateResponse(e.Response)
	}
	return errors.Errorf("unknown effect %T", e)
}

// refresh loads the data the current view lists.
func (m *Machine) refresh() (err error) {
	switch m.state.View {
	case ListView:
		m.state.Forms, err = m.repo.ListForms()
	case ResponsesView:
		m.state.Responses, err = m.repo.ResponsesFor(m.state.Form.ID)
	}
	return
}
