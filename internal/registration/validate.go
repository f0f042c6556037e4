package registration

import (
	"sort"
	"strings"
)

// FieldError is the failure reported for one field.
type FieldError struct {
	Key     MessageKey
	Message string
}

// Result maps each failing field to its error. A field absent from the map is
// valid.
type Result map[Field]FieldError

// Valid reports whether no field has an error.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Message returns the error text for f, or "" when f is valid.
func (r Result) Message(f Field) string {
	return r[f].Message
}

// Has reports whether f carries an error.
func (r Result) Has(f Field) bool {
	_, ok := r[f]
	return ok
}

// Fields returns the failing fields in display order.
func (r Result) Fields() []Field {
	out := make([]Field, 0, len(r))
	for f := range r {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders the result as "field: message" lines.
func (r Result) String() string {
	var b strings.Builder
	for i, f := range r.Fields() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.String())
		b.WriteString(": ")
		b.WriteString(r[f].Message)
	}
	return b.String()
}

// Validator evaluates the rule set and resolves messages through an injected
// table.
type Validator struct {
	messages Messages
	rules    []FieldRules
	cross    []CrossRule
}

// NewValidator returns a Validator using msgs for display text.
// A nil msgs falls back to DefaultMessages.
func NewValidator(msgs Messages) *Validator {
	if msgs == nil {
		msgs = DefaultMessages
	}
	return &Validator{
		messages: msgs,
		rules:    DefaultRules,
		cross:    []CrossRule{PasswordsMatch},
	}
}

// Messages returns the table the validator resolves keys with.
func (v *Validator) Messages() Messages {
	return v.messages
}

// Validate checks every field. Within a field the first failing rule wins;
// cross-field rules only report on fields that passed their own rules.
func (v *Validator) Validate(in Input) Result {
	result := make(Result)
	for _, fr := range v.rules {
		for _, rule := range fr.Rules {
			if !rule.Check(in) {
				result[fr.Field] = v.fieldError(rule.Key)
				break
			}
		}
	}
	for _, cr := range v.cross {
		if result.Has(cr.Field) {
			continue
		}
		if !cr.Check(in) {
			result[cr.Field] = v.fieldError(cr.Key)
		}
	}
	return result
}

func (v *Validator) fieldError(key MessageKey) FieldError {
	return FieldError{Key: key, Message: v.messages.Message(key)}
}

var defaultValidator = NewValidator(DefaultMessages)

// Validate checks in against the rule set with the built-in English messages.
func Validate(in Input) Result {
	return defaultValidator.Validate(in)
}
