package machine

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/mbolis/quick-form/model"
)

type View int

const (
	ListView View = iota
	BuilderView
	ResponsesView
	EditResponseView
)

func (v View) String() string {
	switch v {
	case ListView:
		return "list"
	case BuilderView:
		return "builder"
	case ResponsesView:
		return "responses"
	case EditResponseView:
		return "edit-response"
	}
	return "unknown"
}

type Mode int

const (
	Edit Mode = iota
	Preview
)

func (m Mode) String() string {
	if m == Preview {
		return "preview"
	}
	return "edit"
}

// State is the whole application state. Which fields are meaningful depends on View:
//
//	ListView          Forms
//	BuilderView       Form, Mode
//	ResponsesView     Form, Responses
//	EditResponseView  Form, Response, Index
//
// Notice and Errors describe the outcome of the last intent.
type State struct {
	View      View
	Mode      Mode
	Form      model.Form
	Response  model.Response
	Index     int
	Forms     []model.Form
	Responses []model.Response
	Notice    string
	Errors    []string
}

const (
	NoticeFormNotFound     = "Form not found"
	NoticeFieldNotFound    = "Field not found"
	NoticeResponseNotFound = "Response not found"
	NoticeNoResponses      = "No responses yet"
	NoticeSubmitted        = "Response submitted"
	NoticeResponseUpdated  = "Response updated"
	NoticeFormDeleted      = "Form deleted"
	NoticeSaveFailed       = "Changes could not be saved"
)

const (
	DefaultFieldLabel = "New Field"
	optionLabel       = "Option %d"
)

// Env supplies the non-deterministic inputs of a transition.
type Env struct {
	Now   func() time.Time
	NewID func() string
}

func DefaultEnv() Env {
	return Env{
		Now: time.Now,
		NewID: func() string {
			return uuid.Must(uuid.NewV4()).String()
		},
	}
}
