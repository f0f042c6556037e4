// Package registration defines the registration record and the fixed rule set
// that validates it.
//
// The rule set is data: every field owns an ordered list of rules and the
// first failing rule supplies that field's error. A single cross-field rule
// (password confirmation) runs after the per-field pass.
package registration

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a field name does not belong to the record.
var ErrUnknownField = errors.New("unknown field")

// Field identifies one input of the registration record.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldPhone
	FieldAge
	FieldGender
	FieldPassword
	FieldConfirmPassword
	FieldTerms
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldAge,
	FieldGender,
	FieldPassword,
	FieldConfirmPassword,
	FieldTerms,
}

var fieldNames = map[Field]string{
	FieldName:            "name",
	FieldEmail:           "email",
	FieldPhone:           "phone",
	FieldAge:             "age",
	FieldGender:          "gender",
	FieldPassword:        "password",
	FieldConfirmPassword: "confirmPassword",
	FieldTerms:           "terms",
}

// String returns the boundary name of the field (e.g. "confirmPassword").
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps a boundary name to its Field.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Gender is the enumerated gender selection. The zero value means "not chosen".
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the selectable values in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Valid reports whether g is one of the selectable values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Input is the registration record as typed by the user.
// Age stays textual; it is only coerced during validation.
type Input struct {
	Name            string `yaml:"name" json:"name"`
	Email           string `yaml:"email" json:"email"`
	Phone           string `yaml:"phone" json:"phone"`
	Age             string `yaml:"age" json:"age"`
	Gender          Gender `yaml:"gender" json:"gender"`
	Password        string `yaml:"password" json:"password"`
	ConfirmPassword string `yaml:"confirmPassword" json:"confirmPassword"`
	Terms           bool   `yaml:"terms" json:"terms"`
}

// IsZero reports whether the record is the empty form.
func (in Input) IsZero() bool {
	return in == Input{}
}

// Value returns the textual form of a field's current value.
func (in Input) Value(f Field) string {
	switch f {
	case FieldName:
		return in.Name
	case FieldEmail:
		return in.Email
	case FieldPhone:
		return in.Phone
	case FieldAge:
		return in.Age
	case FieldGender:
		return string(in.Gender)
	case FieldPassword:
		return in.Password
	case FieldConfirmPassword:
		return in.ConfirmPassword
	case FieldTerms:
		if in.Terms {
			return "true"
		}
		return "false"
	}
	return ""
}

// Set assigns a textual value to a field.
// Terms accepts the usual boolean spellings; gender accepts an enum value or "".
func (in *Input) Set(f Field, value string) error {
	switch f {
	case FieldName:
		in.Name = value
	case FieldEmail:
		in.Email = value
	case FieldPhone:
		in.Phone = value
	case FieldAge:
		in.Age = value
	case FieldGender:
		g := Gender(strings.ToLower(strings.TrimSpace(value)))
		if g != GenderUnset && !g.Valid() {
			return fmt.Errorf("gender %q: must be one of male, female, other", value)
		}
		in.Gender = g
	case FieldPassword:
		in.Password = value
	case FieldConfirmPassword:
		in.ConfirmPassword = value
	case FieldTerms:
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("terms: %w", err)
		}
		in.Terms = b
	default:
		return fmt.Errorf("%w: %v", ErrUnknownField, f)
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// Redacted returns a copy safe for logging, with both password fields masked.
func (in Input) Redacted() Input {
	if in.Password != "" {
		in.Password = "***"
	}
	if in.ConfirmPassword != "" {
		in.ConfirmPassword = "***"
	}
	return in
}
