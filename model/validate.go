package model

import (
	"github.com/go-playground/validator"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(fieldOptionsValidator, Field{})
	v.RegisterStructValidation(uniqueFieldsValidator, Form{})
	return v
}

// Validate checks the struct tags of a Form, Field or Response together with
// the invariants that tags cannot express: radio and checkbox fields carry at
// least one option, text fields carry none, field ids are unique in a form.
func Validate(entity any) error {
	return validate.Struct(entity)
}

func fieldOptionsValidator(sl validator.StructLevel) {
	field := sl.Current().Interface().(Field)
	switch {
	case field.Type.HasOptions() && len(field.Options) == 0:
		sl.ReportError(field.Options, "options", "Options", "min_options", "1")
	case !field.Type.HasOptions() && field.Options != nil:
		sl.ReportError(field.Options, "options", "Options", "no_options", "")
	}
}

func uniqueFieldsValidator(sl validator.StructLevel) {
	form := sl.Current().Interface().(Form)
	seen := make(map[string]bool, len(form.Fields))
	for _, field := range form.Fields {
		if seen[field.ID] {
			sl.ReportError(form.Fields, "fields", "Fields", "unique_ids", field.ID)
			return
		}
		seen[field.ID] = true
	}
}
