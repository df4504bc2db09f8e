package model

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
)

// Answer is the value submitted for one field: a single string for text
// and radio fields, an ordered list of selected options for checkboxes.
type Answer struct {
	values []string
	multi  bool
}

func Text(value string) Answer {
	return Answer{values: []string{value}}
}

func Choices(values ...string) Answer {
	return Answer{values: append([]string{}, values...), multi: true}
}

func (a Answer) IsList() bool {
	return a.multi
}

// Values returns the selected options, or the single text value.
func (a Answer) Values() []string {
	return append([]string{}, a.values...)
}

func (a Answer) Text() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

func (a Answer) String() string {
	return strings.Join(a.values, ", ")
}

func (a Answer) clone() Answer {
	return Answer{values: append([]string{}, a.values...), multi: a.multi}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		return json.Marshal(a.values)
	}
	return json.Marshal(a.Text())
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*a = Choices(values...)
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*a = Text(value)
	return nil
}
