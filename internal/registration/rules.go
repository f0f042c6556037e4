package registration

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

const (
	NameMinLength     = 3
	NameMaxLength     = 50
	PasswordMinLength = 6
	MinimumAge        = 18
)

var (
	phonePattern = regexp.MustCompile(`^09\d{7,9}$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)

	emailCheckerOnce sync.Once
	emailChecker     *validator.Validate
)

// Rule is a single predicate with the message reported when it fails.
type Rule struct {
	Key   MessageKey
	Check func(Input) bool
}

// FieldRules binds an ordered rule list to a field.
type FieldRules struct {
	Field Field
	Rules []Rule
}

// CrossRule is a predicate over several fields whose failure is reported on
// Field.
type CrossRule struct {
	Field Field
	Key   MessageKey
	Check func(Input) bool
}

// Length counts UTF-16 code units, the way browser form limits count. A
// Burmese syllable built from a consonant and its marks counts once per code
// point.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// ParseAge coerces the textual age. ok is false for anything that is not a
// finite number.
func ParseAge(s string) (age float64, ok bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func validEmail(s string) bool {
	emailCheckerOnce.Do(func() {
		emailChecker = validator.New()
	})
	return emailChecker.Var(s, "required,email") == nil
}

// DefaultRules is the fixed per-field rule set in declaration order.
var DefaultRules = []FieldRules{
	{Field: FieldName, Rules: []Rule{
		{KeyNameTooShort, func(in Input) bool { return Length(in.Name) >= NameMinLength }},
		{KeyNameTooLong, func(in Input) bool { return Length(in.Name) <= NameMaxLength }},
	}},
	{Field: FieldEmail, Rules: []Rule{
		{KeyEmailRequired, func(in Input) bool { return in.Email != "" }},
		{KeyEmailInvalid, func(in Input) bool { return validEmail(in.Email) }},
	}},
	{Field: FieldPhone, Rules: []Rule{
		{KeyPhoneRequired, func(in Input) bool { return in.Phone != "" }},
		{KeyPhoneInvalid, func(in Input) bool { return phonePattern.MatchString(in.Phone) }},
	}},
	{Field: FieldAge, Rules: []Rule{
		{KeyAgeRequired, func(in Input) bool { return strings.TrimSpace(in.Age) != "" }},
		{KeyAgeNotNumber, func(in Input) bool {
			_, ok := ParseAge(in.Age)
			return ok
		}},
		{KeyAgeTooYoung, func(in Input) bool {
			age, _ := ParseAge(in.Age)
			return age >= MinimumAge
		}},
	}},
	{Field: FieldGender, Rules: []Rule{
		{KeyGenderRequired, func(in Input) bool { return in.Gender.Valid() }},
	}},
	{Field: FieldPassword, Rules: []Rule{
		{KeyPasswordTooShort, func(in Input) bool { return Length(in.Password) >= PasswordMinLength }},
		{KeyPasswordUppercase, func(in Input) bool { return upperPattern.MatchString(in.Password) }},
		{KeyPasswordDigit, func(in Input) bool { return digitPattern.MatchString(in.Password) }},
	}},
	{Field: FieldConfirmPassword, Rules: []Rule{
		{KeyConfirmRequired, func(in Input) bool { return in.ConfirmPassword != "" }},
	}},
	{Field: FieldTerms, Rules: []Rule{
		{KeyTermsRequired, func(in Input) bool { return in.Terms }},
	}},
}

// PasswordsMatch is the only cross-field rule.
var PasswordsMatch = CrossRule{
	Field: FieldConfirmPassword,
	Key:   KeyPasswordMismatch,
	Check: func(in Input) bool { return in.Password == in.ConfirmPassword },
}
