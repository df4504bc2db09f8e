package machine

import (
	"fmt"

	"github.com/mbolis/quick-form/model"
)

// Effect is a write the Machine performs after a transition.
type Effect interface {
	fmt.Stringer
	effect()
}

type PutForm struct {
	Form model.Form
}

type DropForm struct {
	FormID string
}

type AppendResponse struct {
	Response model.Response
}

// ReplaceResponse overwrites an edited response. Index is its position in
// the Responses collection when the edit started.
type ReplaceResponse struct {
	Index    int
	Response model.Response
}

func (e PutForm) String() string         { return "PutForm " + e.Form.ID }
func (e DropForm) String() string        { return "DropForm " + e.FormID }
func (e AppendResponse) String() string  { return "AppendResponse " + e.Response.ID }
func (e ReplaceResponse) String() string { return fmt.Sprintf("ReplaceResponse %s@%d", e.Response.ID, e.Index) }

func (PutForm) effect()         {}
func (DropForm) effect()        {}
func (AppendResponse) effect()  {}
func (ReplaceResponse) effect() {}
