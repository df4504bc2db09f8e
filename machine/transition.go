package machine

import (
	"fmt"
	"strings"

	"github.com/mbolis/quick-form/model"
)

// Reader is the read side of the data repository used while deciding a transition.
type Reader interface {
	Form(id string) (model.Form, bool, error)
	ResponsesFor(formID string) ([]model.Response, error)
	Response(id string) (model.Response, int, bool, error)
	ListResponses() ([]model.Response, error)
}

// Transition computes the state that follows s when in happens, and the
// writes needed to persist it. It reads through r but never writes.
// On error the returned state is to be discarded, except for a
// *ValidationError, where it carries the messages to show.
func Transition(s State, in Intent, r Reader, env Env) (State, []Effect, error) {
	next := s
	next.Notice = ""
	next.Errors = nil

	switch s.View {
	case ListView:
		return onList(next, in, r, env)
	case BuilderView:
		return onBuilder(next, in, env)
	case ResponsesView:
		return onResponses(next, in, r)
	case EditResponseView:
		return onEditResponse(next, in)
	}
	return s, nil, notAllowed(in, s)
}

func listView(notice string) State {
	return State{View: ListView, Notice: notice}
}

func onList(s State, in Intent, r Reader, env Env) (State, []Effect, error) {
	switch in := in.(type) {
	case CreateForm:
		form := model.Form{
			ID:        env.NewID(),
			Name:      strings.TrimSpace(in.FormName),
			Fields:    []model.Field{},
			CreatedAt: model.MillisOf(env.Now()),
		}
		return State{View: BuilderView, Mode: Edit, Form: form}, []Effect{PutForm{Form: form}}, nil

	case OpenForPreview:
		form, ok, err := r.Form(in.FormID)
		if err != nil {
			return s, nil, err
		}
		if !ok {
			s.Notice = NoticeFormNotFound
			return s, nil, nil
		}
		return State{View: BuilderView, Mode: Preview, Form: form}, nil, nil

	case DeleteForm:
		_, ok, err := r.Form(in.FormID)
		if err != nil {
			return s, nil, err
		}
		if !ok {
			s.Notice = NoticeFormNotFound
			return s, nil, nil
		}
		return listView(NoticeFormDeleted), []Effect{DropForm{FormID: in.FormID}}, nil

	case ViewResponses:
		form, ok, err := r.Form(in.FormID)
		if err != nil {
			return s, nil, err
		}
		if !ok {
			s.Notice = NoticeFormNotFound
			return s, nil, nil
		}
		responses, err := r.ResponsesFor(form.ID)
		if err != nil {
			return s, nil, err
		}
		if len(responses) == 0 {
			s.Notice = NoticeNoResponses
			return s, nil, nil
		}
		return State{View: ResponsesView, Form: form, Responses: responses}, nil, nil
	}
	return s, nil, notAllowed(in, s)
}

func onBuilder(s State, in Intent, env Env) (State, []Effect, error) {
	switch in.(type) {
	case TogglePreview:
		if s.Mode == Edit {
			s.Mode = Preview
		} else {
			s.Mode = Edit
		}
		return s, nil, nil

	case BackToList:
		return listView(""), nil, nil
	}

	if s.Mode == Preview {
		submit, ok := in.(SubmitForm)
		if !ok {
			return s, nil, notAllowed(in, s)
		}
		answers, err := collectAnswers(s.Form, submit.Values)
		if err != nil {
			s.Errors = err.(*ValidationError).Messages()
			return s, nil, err
		}
		response := model.Response{
			ID:          env.NewID(),
			FormID:      s.Form.ID,
			Responses:   answers,
			SubmittedAt: model.MillisOf(env.Now()),
		}
		return listView(NoticeSubmitted), []Effect{AppendResponse{Response: response}}, nil
	}

	switch in := in.(type) {
	case AddField:
		form := s.Form.Clone()
		form.Fields = append(form.Fields, model.Field{
			ID:       env.NewID(),
			Type:     model.FieldText,
			Label:    DefaultFieldLabel,
			Required: model.FlagOf(false),
			Order:    len(form.Fields),
		})
		return withForm(s, form)

	case DeleteField:
		form := s.Form.Clone()
		kept := form.Fields[:0]
		for _, f := range form.Fields {
			if f.ID != in.FieldID {
				kept = append(kept, f)
			}
		}
		if len(kept) == len(s.Form.Fields) {
			s.Notice = NoticeFieldNotFound
			return s, nil, nil
		}
		form.Fields = kept
		return withForm(s, form)

	case SetFieldLabel:
		return mutateField(s, in.FieldID, func(f *model.Field) error {
			f.Label = in.Label
			return nil
		})

	case SetFieldType:
		return mutateField(s, in.FieldID, func(f *model.Field) error {
			f.Type = in.Type
			if !f.Type.HasOptions() {
				f.Options = nil
			} else if len(f.Options) == 0 {
				f.Options = []string{fmt.Sprintf(optionLabel, 1)}
			}
			return nil
		})

	case SetFieldRequired:
		return mutateField(s, in.FieldID, func(f *model.Field) error {
			f.Required = model.FlagOf(in.Required)
			return nil
		})

	case SetOption:
		return mutateField(s, in.FieldID, func(f *model.Field) error {
			if err := checkOption(in, *f, in.Index); err != nil {
				return err
			}
			f.Options[in.Index] = in.Value
			return nil
		})

	case AddOption:
		return mutateField(s, in.FieldID, func(f *model.Field) error {
			if !f.Type.HasOptions() {
				return invalid(in, "%s fields have no options", f.Type)
			}
			f.Options = append(f.Options, fmt.Sprintf(optionLabel, len(f.Options)+1))
			return nil
		})

	case DeleteOption:
		return mutateField(s, in.FieldID, func(f *model.Field) error {
			if err := checkOption(in, *f, in.Index); err != nil {
				return err
			}
			if in.Index == 0 {
				return ErrProtectedOption
			}
			f.Options = append(f.Options[:in.Index], f.Options[in.Index+1:]...)
			return nil
		})
	}
	return s, nil, notAllowed(in, s)
}

func checkOption(in Intent, f model.Field, index int) error {
	if !f.Type.HasOptions() {
		return invalid(in, "%s fields have no options", f.Type)
	}
	if index < 0 || index >= len(f.Options) {
		return invalid(in, "option %d out of range", index)
	}
	return nil
}

func withForm(s State, form model.Form) (State, []Effect, error) {
	s.Form = form
	return s, []Effect{PutForm{Form: form}}, nil
}

// mutateField applies fn to a copy of the field, so s is untouched when fn fails.
func mutateField(s State, fieldID string, fn func(*model.Field) error) (State, []Effect, error) {
	form := s.Form.Clone()
	for i := range form.Fields {
		if form.Fields[i].ID != fieldID {
			continue
		}
		if err := fn(&form.Fields[i]); err != nil {
			return s, nil, err
		}
		return withForm(s, form)
	}
	s.Notice = NoticeFieldNotFound
	return s, nil, nil
}

func onResponses(s State, in Intent, r Reader) (State, []Effect, error) {
	switch in := in.(type) {
	case EditResponse:
		response, index, ok, err := lookupResponse(r, in)
		if err != nil {
			return s, nil, err
		}
		if !ok || response.FormID != s.Form.ID {
			s.Notice = NoticeResponseNotFound
			return s, nil, nil
		}
		return State{View: EditResponseView, Form: s.Form, Response: response, Index: index}, nil, nil

	case BackToList:
		return listView(""), nil, nil
	}
	return s, nil, notAllowed(in, s)
}

func lookupResponse(r Reader, in EditResponse) (model.Response, int, bool, error) {
	if in.ResponseID != "" {
		return r.Response(in.ResponseID)
	}
	responses, err := r.ListResponses()
	if err != nil {
		return model.Response{}, -1, false, err
	}
	if in.Index < 0 || in.Index >= len(responses) {
		return model.Response{}, -1, false, nil
	}
	return responses[in.Index], in.Index, true, nil
}

func onEditResponse(s State, in Intent) (State, []Effect, error) {
	switch in := in.(type) {
	case SaveEdit:
		answers, err := collectAnswers(s.Form, in.Values)
		if err != nil {
			s.Errors = err.(*ValidationError).Messages()
			return s, nil, err
		}
		updated := s.Response.Clone()
		updated.Responses = answers
		next := State{View: ResponsesView, Form: s.Form, Notice: NoticeResponseUpdated}
		return next, []Effect{ReplaceResponse{Index: s.Index, Response: updated}}, nil

	case Cancel:
		return State{View: ResponsesView, Form: s.Form}, nil, nil
	}
	return s, nil, notAllowed(in, s)
}
