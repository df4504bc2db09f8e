package model

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
)

func ParseFieldType(s string) (FieldType, error) {
	switch t := FieldType(s); t {
	case FieldText, FieldRadio, FieldCheckbox:
		return t, nil
	}
	return "", fmt.Errorf("unknown field type %q", s)
}

func (t *FieldType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFieldType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// HasOptions tells whether fields of this type carry a list of options.
func (t FieldType) HasOptions() bool {
	return t == FieldRadio || t == FieldCheckbox
}

// Millis is a timestamp in milliseconds since the Unix epoch.
type Millis int64

func MillisOf(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

// Field is one question of a Form.
// Options is nil for text fields. Required defaults to false when absent.
type Field struct {
	ID       string    `json:"id" validate:"required"`
	Type     FieldType `json:"type" validate:"required,oneof=text radio checkbox"`
	Label    string    `json:"label"`
	Options  []string  `json:"options,omitempty"`
	Required Flag      `json:"required,omitempty"`
	Order    int       `json:"order" validate:"min=0"`
}

// fieldJSON is the stored shape of a Field: options and required are
// written only when present, an empty options list included.
type fieldJSON struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Options  *[]string `json:"options,omitempty"`
	Required *bool     `json:"required,omitempty"`
	Order    int       `json:"order"`
}

func (f Field) MarshalJSON() ([]byte, error) {
	w := fieldJSON{
		ID:       f.ID,
		Type:     f.Type,
		Label:    f.Label,
		Required: f.Required.ptr(),
		Order:    f.Order,
	}
	if f.Options != nil {
		w.Options = &f.Options
	}
	return json.Marshal(w)
}

func (f *Field) UnmarshalJSON(data []byte) error {
	var w fieldJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*f = Field{
		ID:       w.ID,
		Type:     w.Type,
		Label:    w.Label,
		Required: flagFrom(w.Required),
		Order:    w.Order,
	}
	if w.Options != nil {
		f.Options = *w.Options
	}
	return nil
}

type Form struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Fields    []Field `json:"fields" validate:"dive"`
	CreatedAt Millis  `json:"createdAt"`
}

// Field returns the field with the given id.
func (f Form) Field(id string) (Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

// Clone returns a deep copy, so mutating the copy never touches the original fields.
func (f Form) Clone() Form {
	clone := f
	if f.Fields != nil {
		clone.Fields = make([]Field, len(f.Fields))
		for i, field := range f.Fields {
			if field.Options != nil {
				field.Options = append([]string{}, field.Options...)
			}
			clone.Fields[i] = field
		}
	}
	return clone
}

type Response struct {
	ID          string            `json:"id" validate:"required"`
	FormID      string            `json:"formId" validate:"required"`
	Responses   map[string]Answer `json:"responses"`
	SubmittedAt Millis            `json:"submittedAt"`
}

func (r Response) Clone() Response {
	clone := r
	if r.Responses != nil {
		clone.Responses = make(map[string]Answer, len(r.Responses))
		for k, v := range r.Responses {
			clone.Responses[k] = v.clone()
		}
	}
	return clone
}
