package machine

import (
	"strings"

	"github.com/go-playground/validator"

	"github.com/mbolis/quick-form/model"
)

var intentValidator = newIntentValidator()

func newIntentValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func validateIntent(in Intent) error {
	if err := intentValidator.Struct(in); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return invalid(in, "%v", err)
		}
	}
	return nil
}

// collectAnswers checks the submitted values against the required fields of
// form and builds the responses mapping. Every unmet field is reported.
func collectAnswers(form model.Form, values Values) (map[string]model.Answer, error) {
	var missed []*FieldError
	answers := map[string]model.Answer{}

	for _, field := range form.Fields {
		submitted := values[field.ID]

		if field.Type == model.FieldCheckbox {
			selected := make([]string, 0, len(submitted))
			for _, v := range submitted {
				if v != "" {
					selected = append(selected, v)
				}
			}
			if field.Required.Bool() && len(selected) == 0 {
				missed = append(missed, missing(field))
				continue
			}
			answers[field.ID] = model.Choices(selected...)
			continue
		}

		value := ""
		if len(submitted) > 0 {
			value = submitted[0]
		}
		if field.Required.Bool() && strings.TrimSpace(value) == "" {
			missed = append(missed, missing(field))
			continue
		}
		if len(submitted) > 0 {
			answers[field.ID] = model.Text(value)
		}
	}

	if len(missed) > 0 {
		return nil, NewValidationError(missed...)
	}
	return answers, nil
}

func missing(field model.Field) *FieldError {
	label := field.Label
	if strings.TrimSpace(label) == "" {
		label = "Untitled field"
	}
	return &FieldError{FieldID: field.ID, Label: label}
}
