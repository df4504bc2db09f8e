// Package view turns a machine.State into a Screen: a technology-neutral
// description of what to display and which intent each control triggers.
package view

type Kind string

const (
	KindHeading  Kind = "heading"
	KindText     Kind = "text"
	KindGroup    Kind = "group"
	KindButton   Kind = "button"
	KindInput    Kind = "input"
	KindSelect   Kind = "select"
	KindCheckbox Kind = "checkbox"
	KindRadio    Kind = "radio"
	KindSummary  Kind = "summary"
)

// Element is one node of the display tree. ID is stable across renders of
// the same data. Interactive elements name the Intent they trigger with its
// fixed Params; Bind names the parameter that receives the user's input.
type Element struct {
	ID       string         `json:"id"`
	Kind     Kind           `json:"kind"`
	Label    string         `json:"label,omitempty"`
	Name     string         `json:"name,omitempty"`
	Value    string         `json:"value,omitempty"`
	Options  []string       `json:"options,omitempty"`
	Selected []string       `json:"selected,omitempty"`
	Checked  bool           `json:"checked,omitempty"`
	Required bool           `json:"required,omitempty"`
	Intent   string         `json:"intent,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
	Bind     string         `json:"bind,omitempty"`
	Children []Element      `json:"children,omitempty"`
}

type Screen struct {
	View     string    `json:"view"`
	Mode     string    `json:"mode,omitempty"`
	Title    string    `json:"title"`
	Notice   string    `json:"notice,omitempty"`
	Errors   []string  `json:"errors,omitempty"`
	Elements []Element `json:"elements"`
}

// Find returns the element with the given id, searching children too.
func (s Screen) Find(id string) (Element, bool) {
	return find(s.Elements, id)
}

func find(elements []Element, id string) (Element, bool) {
	for _, e := range elements {
		if e.ID == id {
			return e, true
		}
		if found, ok := find(e.Children, id); ok {
			return found, true
		}
	}
	return Element{}, false
}
