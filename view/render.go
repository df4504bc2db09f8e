package view

import (
	"fmt"

	"github.com/mbolis/quick-form/machine"
	"github.com/mbolis/quick-form/model"
)

const timeLayout = "2006-01-02 15:04:05"

var fieldTypes = []string{string(model.FieldText), string(model.FieldRadio), string(model.FieldCheckbox)}

// Render describes the screen for state. It has no side effects.
func Render(state machine.State) Screen {
	screen := Screen{
		View:   state.View.String(),
		Notice: state.Notice,
		Errors: state.Errors,
	}

	switch state.View {
	case machine.ListView:
		screen.Title = "Form Builder"
		screen.Elements = renderList(state.Forms)
	case machine.BuilderView:
		screen.Mode = state.Mode.String()
		screen.Title = state.Form.Name
		if state.Mode == machine.Preview {
			screen.Elements = renderPreview(state.Form)
		} else {
			screen.Elements = renderBuilder(state.Form)
		}
	case machine.ResponsesView:
		screen.Title = "Responses: " + state.Form.Name
		screen.Elements = renderResponses(state.Form, state.Responses)
	case machine.EditResponseView:
		screen.Title = "Edit response: " + state.Form.Name
		screen.Elements = renderEditResponse(state.Form, state.Response)
	}
	return screen
}

func button(id, label string, in machine.Intent, params map[string]any) Element {
	return Element{ID: id, Kind: KindButton, Label: label, Intent: in.Name(), Params: params}
}

func renderList(forms []model.Form) []Element {
	elements := []Element{
		button("create-form", "Create New Form", machine.CreateForm{}, nil),
	}
	elements[0].Bind = "name"

	for _, f := range forms {
		params := map[string]any{"formId": f.ID}
		elements = append(elements, Element{
			ID:    "form:" + f.ID,
			Kind:  KindGroup,
			Label: f.Name,
			Children: []Element{
				button("form:"+f.ID+":preview", "Preview Form", machine.OpenForPreview{}, params),
				button("form:"+f.ID+":responses", "View Responses", machine.ViewResponses{}, params),
				button("form:"+f.ID+":delete", "Delete", machine.DeleteForm{}, params),
			},
		})
	}
	return elements
}

func renderBuilder(form model.Form) []Element {
	elements := []Element{
		button("add-field", "Add Field", machine.AddField{}, nil),
		button("toggle-preview", "Preview Form", machine.TogglePreview{}, nil),
	}
	for _, f := range form.Fields {
		elements = append(elements, renderFieldEditor(f))
	}
	return append(elements, button("back", "Back to Forms", machine.BackToList{}, nil))
}

func renderFieldEditor(f model.Field) Element {
	prefix := "field:" + f.ID
	params := map[string]any{"fieldId": f.ID}

	children := []Element{
		{ID: prefix + ":label", Kind: KindInput, Label: "Field Label", Value: f.Label,
			Intent: machine.SetFieldLabel{}.Name(), Params: params, Bind: "label"},
		{ID: prefix + ":type", Kind: KindSelect, Label: "Type", Value: string(f.Type), Options: fieldTypes,
			Intent: machine.SetFieldType{}.Name(), Params: params, Bind: "type"},
		{ID: prefix + ":required", Kind: KindCheckbox, Label: "Required", Checked: f.Required.Bool(),
			Intent: machine.SetFieldRequired{}.Name(), Params: params, Bind: "required"},
	}

	if f.Type.HasOptions() {
		for i, option := range f.Options {
			optionParams := map[string]any{"fieldId": f.ID, "index": i}
			id := fmt.Sprintf("%s:option:%d", prefix, i)
			children = append(children, Element{ID: id, Kind: KindInput, Label: fmt.Sprintf("Option %d", i+1), Value: option,
				Intent: machine.SetOption{}.Name(), Params: optionParams, Bind: "value"})
			// the first option always stays
			if i > 0 {
				children = append(children, button(id+":delete", "Remove", machine.DeleteOption{}, optionParams))
			}
		}
		children = append(children, button(prefix+":add-option", "Add Option", machine.AddOption{}, params))
	}

	children = append(children, button(prefix+":delete", "Delete", machine.DeleteField{}, params))
	return Element{ID: prefix, Kind: KindGroup, Label: f.Label, Children: children}
}

func renderPreview(form model.Form) []Element {
	elements := []Element{
		button("toggle-preview", "Edit Form", machine.TogglePreview{}, nil),
	}
	for _, f := range form.Fields {
		elements = append(elements, renderInput(f, model.Answer{}))
	}
	if len(form.Fields) > 0 {
		submit := button("submit", "Submit Form", machine.SubmitForm{}, nil)
		submit.Bind = "values"
		elements = append(elements, submit)
	}
	return append(elements, button("back", "Back to Forms", machine.BackToList{}, nil))
}

// renderInput describes the input for f, pre-filled with answer.
func renderInput(f model.Field, answer model.Answer) Element {
	e := Element{ID: "field:" + f.ID, Name: f.ID, Label: f.Label, Required: f.Required.Bool()}
	switch f.Type {
	case model.FieldRadio:
		e.Kind = KindRadio
		e.Options = f.Options
		e.Value = answer.Text()
	case model.FieldCheckbox:
		e.Kind = KindCheckbox
		e.Options = f.Options
		e.Selected = answer.Values()
	default:
		e.Kind = KindInput
		e.Value = answer.Text()
	}
	return e
}

func renderResponses(form model.Form, responses []model.Response) []Element {
	var elements []Element
	for _, r := range responses {
		prefix := "response:" + r.ID
		children := []Element{
			{ID: prefix + ":submitted", Kind: KindText, Label: "Submitted", Value: r.SubmittedAt.Time().Format(timeLayout)},
		}
		for _, f := range form.Fields {
			answer, ok := r.Responses[f.ID]
			if !ok {
				continue
			}
			children = append(children, Element{ID: prefix + ":" + f.ID, Kind: KindText, Label: f.Label, Value: answer.String()})
		}
		children = append(children, button(prefix+":edit", "Edit", machine.EditResponse{}, map[string]any{"responseId": r.ID}))
		elements = append(elements, Element{ID: prefix, Kind: KindSummary, Children: children})
	}
	return append(elements, button("back", "Back to Forms", machine.BackToList{}, nil))
}

func renderEditResponse(form model.Form, response model.Response) []Element {
	var elements []Element
	for _, f := range form.Fields {
		elements = append(elements, renderInput(f, response.Responses[f.ID]))
	}
	save := button("save", "Save", machine.SaveEdit{}, nil)
	save.Bind = "values"
	return append(elements, save, button("cancel", "Cancel", machine.Cancel{}, nil))
}
