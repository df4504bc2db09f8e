package machine

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/mbolis/quick-form/model"
)

// Intent is a user action. The set is closed: only the types below implement it.
type Intent interface {
	Name() string
	intent()
}

// Values are the submitted inputs keyed by field id. Text and radio fields
// use the first value, checkbox fields use them all in order.
type Values map[string][]string

// UnmarshalJSON accepts each value as a single string or as a list of strings.
func (v *Values) UnmarshalJSON(data []byte) error {
	var answers map[string]model.Answer
	if err := json.Unmarshal(data, &answers); err != nil {
		return err
	}
	if answers == nil {
		*v = nil
		return nil
	}
	values := make(Values, len(answers))
	for id, answer := range answers {
		values[id] = answer.Values()
	}
	*v = values
	return nil
}

type CreateForm struct {
	FormName string `json:"name" validate:"notblank"`
}

type OpenForPreview struct {
	FormID string `json:"formId" validate:"required"`
}

type DeleteForm struct {
	FormID string `json:"formId" validate:"required"`
}

type ViewResponses struct {
	FormID string `json:"formId" validate:"required"`
}

type AddField struct{}

type DeleteField struct {
	FieldID string `json:"fieldId" validate:"required"`
}

type SetFieldLabel struct {
	FieldID string `json:"fieldId" validate:"required"`
	Label   string `json:"label"`
}

type SetFieldType struct {
	FieldID string          `json:"fieldId" validate:"required"`
	Type    model.FieldType `json:"type" validate:"required,oneof=text radio checkbox"`
}

type SetFieldRequired struct {
	FieldID  string `json:"fieldId" validate:"required"`
	Required bool   `json:"required"`
}

type SetOption struct {
	FieldID string `json:"fieldId" validate:"required"`
	Index   int    `json:"index" validate:"min=0"`
	Value   string `json:"value"`
}

type AddOption struct {
	FieldID string `json:"fieldId" validate:"required"`
}

type DeleteOption struct {
	FieldID string `json:"fieldId" validate:"required"`
	Index   int    `json:"index" validate:"min=0"`
}

type TogglePreview struct{}

type SubmitForm struct {
	Values Values `json:"values"`
}

// EditResponse opens a response for editing. ResponseID wins over Index,
// which addresses the whole Responses collection by position.
type EditResponse struct {
	ResponseID string `json:"responseId"`
	Index      int    `json:"index" validate:"min=0"`
}

type SaveEdit struct {
	Values Values `json:"values"`
}

type Cancel struct{}

type BackToList struct{}

func (CreateForm) Name() string       { return "CreateForm" }
func (OpenForPreview) Name() string   { return "OpenForPreview" }
func (DeleteForm) Name() string       { return "DeleteForm" }
func (ViewResponses) Name() string    { return "ViewResponses" }
func (AddField) Name() string         { return "AddField" }
func (DeleteField) Name() string      { return "DeleteField" }
func (SetFieldLabel) Name() string    { return "SetFieldLabel" }
func (SetFieldType) Name() string     { return "SetFieldType" }
func (SetFieldRequired) Name() string { return "SetFieldRequired" }
func (SetOption) Name() string        { return "SetOption" }
func (AddOption) Name() string        { return "AddOption" }
func (DeleteOption) Name() string     { return "DeleteOption" }
func (TogglePreview) Name() string    { return "TogglePreview" }
func (SubmitForm) Name() string       { return "SubmitForm" }
func (EditResponse) Name() string     { return "EditResponse" }
func (SaveEdit) Name() string         { return "SaveEdit" }
func (Cancel) Name() string           { return "Cancel" }
func (BackToList) Name() string       { return "BackToList" }

func (CreateForm) intent()       {}
func (OpenForPreview) intent()   {}
func (DeleteForm) intent()       {}
func (ViewResponses) intent()    {}
func (AddField) intent()         {}
func (DeleteField) intent()      {}
func (SetFieldLabel) intent()    {}
func (SetFieldType) intent()     {}
func (SetFieldRequired) intent() {}
func (SetOption) intent()        {}
func (AddOption) intent()        {}
func (DeleteOption) intent()     {}
func (TogglePreview) intent()    {}
func (SubmitForm) intent()       {}
func (EditResponse) intent()     {}
func (SaveEdit) intent()         {}
func (Cancel) intent()           {}
func (BackToList) intent()       {}

var decoders = map[string]func([]byte) (Intent, error){
	"CreateForm":       decodeAs[CreateForm],
	"OpenForPreview":   decodeAs[OpenForPreview],
	"DeleteForm":       decodeAs[DeleteForm],
	"ViewResponses":    decodeAs[ViewResponses],
	"AddField":         decodeAs[AddField],
	"DeleteField":      decodeAs[DeleteField],
	"SetFieldLabel":    decodeAs[SetFieldLabel],
	"SetFieldType":     decodeAs[SetFieldType],
	"SetFieldRequired": decodeAs[SetFieldRequired],
	"SetOption":        decodeAs[SetOption],
	"AddOption":        decodeAs[AddOption],
	"DeleteOption":     decodeAs[DeleteOption],
	"TogglePreview":    decodeAs[TogglePreview],
	"SubmitForm":       decodeAs[SubmitForm],
	"EditResponse":     decodeAs[EditResponse],
	"SaveEdit":         decodeAs[SaveEdit],
	"Cancel":           decodeAs[Cancel],
	"BackToList":       decodeAs[BackToList],
}

// DecodeIntent builds the intent called name from its JSON parameters.
func DecodeIntent(name string, params []byte) (Intent, error) {
	decode, ok := decoders[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownIntent, "%q", name)
	}
	in, err := decode(params)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidIntent, "%s: %v", name, err)
	}
	return in, nil
}

func decodeAs[T Intent](params []byte) (Intent, error) {
	var in T
	if len(params) > 0 && string(params) != "null" {
		if err := json.Unmarshal(params, &in); err != nil {
			return nil, err
		}
	}
	return in, nil
}
