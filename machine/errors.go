package machine

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var (
	ErrUnknownIntent    = errors.New("unknown intent")
	ErrInvalidIntent    = errors.New("invalid intent")
	ErrIntentNotAllowed = errors.New("intent not allowed here")
	ErrProtectedOption  = errors.New("the first option cannot be deleted")
)

// FieldError is one unmet requirement of a submission.
type FieldError struct {
	FieldID string
	Label   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Label)
}

// ValidationError collects every FieldError of a rejected submission, in field order.
type ValidationError struct {
	errs *multierror.Error
}

// NewValidationError aggregates the given field errors.
func NewValidationError(fields ...*FieldError) *ValidationError {
	var result *multierror.Error
	for _, f := range fields {
		result = multierror.Append(result, f)
	}
	if result == nil {
		result = &multierror.Error{}
	}
	result.ErrorFormat = listFormat
	return &ValidationError{errs: result}
}

func (e *ValidationError) Error() string {
	return e.errs.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.errs
}

func (e *ValidationError) Messages() []string {
	messages := make([]string, len(e.errs.Errors))
	for i, err := range e.errs.Errors {
		messages[i] = err.Error()
	}
	return messages
}

func (e *ValidationError) Fields() []*FieldError {
	fields := make([]*FieldError, 0, len(e.errs.Errors))
	for _, err := range e.errs.Errors {
		var fe *FieldError
		if errors.As(err, &fe) {
			fields = append(fields, fe)
		}
	}
	return fields
}

func listFormat(errs []error) string {
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func notAllowed(in Intent, s State) error {
	return errors.Wrapf(ErrIntentNotAllowed, "%s in %s view", in.Name(), s.View)
}

func invalid(in Intent, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidIntent, "%s: "+format, append([]any{in.Name()}, args...)...)
}
