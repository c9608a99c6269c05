package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with required-struct checks enabled.
type Validator struct {
	cli *validator.Validate
}

// ValidationError is one failed field.
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

func New() *Validator {
	return &Validator{
		cli: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateStruct returns the failed fields of s, or nil when s is valid.
func (v *Validator) ValidateStruct(s interface{}) []ValidationError {
	err := v.cli.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "", Tag: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.StructField(), Tag: fe.Tag()})
	}
	return out
}
