// Package validate provides form-field validation with field-keyed error
// reporting. Validators accumulate errors instead of failing fast so a whole
// form can be reported back in one pass.
package validate

import (
	"strings"
	"unicode/utf8"
)

// Errors maps a field name to its validation message. A nil map means the
// input was valid.
type Errors map[string]string

// Validator accumulates field validation errors. The zero value is not
// usable; call New.
type Validator struct {
	errs Errors
}

// New creates an empty validator.
func New() *Validator {
	return &Validator{errs: make(Errors)}
}

// Add records an error for a field. The first error per field wins, so rule
// order at the call site controls which message the user sees.
func (v *Validator) Add(field, message string) {
	if _, exists := v.errs[field]; exists {
		return
	}
	v.errs[field] = message
}

// Require adds an error if the value is empty after trimming whitespace.
func (v *Validator) Require(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, message)
	}
}

// MinLen adds an error if the trimmed value is shorter than min characters.
// Length is counted in runes so accented names are not over-counted.
func (v *Validator) MinLen(field, value string, min int, message string) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		v.Add(field, message)
	}
}

// Enum adds an error if the value is not one of the allowed values.
func (v *Validator) Enum(field, value, message string, allowed ...string) {
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	v.Add(field, message)
}

// Valid reports whether no errors have been recorded.
func (v *Validator) Valid() bool {
	return len(v.errs) == 0
}

// Errors returns the accumulated errors, or nil if the input was valid.
func (v *Validator) Errors() Errors {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// Merge combines two error maps. On conflicting fields a's message wins.
// Returns nil when both are empty.
func Merge(a, b Errors) Errors {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	merged := make(Errors, len(a)+len(b))
	for field, msg := range b {
		merged[field] = msg
	}
	for field, msg := range a {
		merged[field] = msg
	}
	return merged
}
