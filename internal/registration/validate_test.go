package registration

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// validInput returns a record that passes every rule.
func validInput() Input {
	return Input{
		Name:            "Aung Aung",
		Email:           "aung@example.com",
		Phone:           "0912345678",
		Age:             "25",
		Gender:          GenderMale,
		Password:        "Abcdef1",
		ConfirmPassword: "Abcdef1",
		Terms:           true,
	}
}

func TestValidate_ValidInput(t *testing.T) {
	result := Validate(validInput())
	require.True(t, result.Valid(), "unexpected errors:\n%s", result)
}

func TestValidate_EmptyInputReportsEveryField(t *testing.T) {
	result := Validate(Input{})

	require.Equal(t, KeyNameTooShort, result[FieldName].Key)
	require.Equal(t, KeyEmailRequired, result[FieldEmail].Key)
	require.Equal(t, KeyPhoneRequired, result[FieldPhone].Key)
	require.Equal(t, KeyAgeRequired, result[FieldAge].Key)
	require.Equal(t, KeyGenderRequired, result[FieldGender].Key)
	require.Equal(t, KeyPasswordTooShort, result[FieldPassword].Key)
	require.Equal(t, KeyConfirmRequired, result[FieldConfirmPassword].Key)
	require.Equal(t, KeyTermsRequired, result[FieldTerms].Key)
	require.Len(t, result, len(Fields))
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		field  Field
		want   MessageKey // empty means the field must be valid
	}{
		{"name too short", func(in *Input) { in.Name = "Ab" }, FieldName, KeyNameTooShort},
		{"name min boundary", func(in *Input) { in.Name = "Abc" }, FieldName, ""},
		{"name max boundary", func(in *Input) { in.Name = strings.Repeat("a", 50) }, FieldName, ""},
		{"name too long", func(in *Input) { in.Name = strings.Repeat("a", 51) }, FieldName, KeyNameTooLong},
		{"name burmese syllable", func(in *Input) { in.Name = "ကို" }, FieldName, ""},
		{"name burmese stacked marks", func(in *Input) { in.Name = "မြင့်" }, FieldName, ""},
		{"name counts code points not bytes", func(in *Input) { in.Name = "ကက" }, FieldName, KeyNameTooShort},
		{"name astral symbol counts twice", func(in *Input) { in.Name = "a😀" }, FieldName, ""},
		{"email empty", func(in *Input) { in.Email = "" }, FieldEmail, KeyEmailRequired},
		{"email malformed", func(in *Input) { in.Email = "not-an-email" }, FieldEmail, KeyEmailInvalid},
		{"email missing domain", func(in *Input) { in.Email = "user@" }, FieldEmail, KeyEmailInvalid},
		{"phone 10 digits", func(in *Input) { in.Phone = "0912345678" }, FieldPhone, ""},
		{"phone 9 digits", func(in *Input) { in.Phone = "091234567" }, FieldPhone, ""},
		{"phone 11 digits", func(in *Input) { in.Phone = "09123456789" }, FieldPhone, ""},
		{"phone too short", func(in *Input) { in.Phone = "091234" }, FieldPhone, KeyPhoneInvalid},
		{"phone too long", func(in *Input) { in.Phone = "091234567890" }, FieldPhone, KeyPhoneInvalid},
		{"phone wrong prefix", func(in *Input) { in.Phone = "19123456789" }, FieldPhone, KeyPhoneInvalid},
		{"phone partial match", func(in *Input) { in.Phone = "x0912345678" }, FieldPhone, KeyPhoneInvalid},
		{"phone empty", func(in *Input) { in.Phone = "" }, FieldPhone, KeyPhoneRequired},
		{"age 17", func(in *Input) { in.Age = "17" }, FieldAge, KeyAgeTooYoung},
		{"age 18", func(in *Input) { in.Age = "18" }, FieldAge, ""},
		{"age decimal", func(in *Input) { in.Age = "18.5" }, FieldAge, ""},
		{"age padded", func(in *Input) { in.Age = " 30 " }, FieldAge, ""},
		{"age text", func(in *Input) { in.Age = "abc" }, FieldAge, KeyAgeNotNumber},
		{"age infinity", func(in *Input) { in.Age = "Inf" }, FieldAge, KeyAgeNotNumber},
		{"age NaN", func(in *Input) { in.Age = "NaN" }, FieldAge, KeyAgeNotNumber},
		{"age empty", func(in *Input) { in.Age = "" }, FieldAge, KeyAgeRequired},
		{"gender unset", func(in *Input) { in.Gender = GenderUnset }, FieldGender, KeyGenderRequired},
		{"gender bogus", func(in *Input) { in.Gender = "robot" }, FieldGender, KeyGenderRequired},
		{"gender other", func(in *Input) { in.Gender = GenderOther }, FieldGender, ""},
		{"password lowercase only", func(in *Input) {
			in.Password, in.ConfirmPassword = "abcdef", "abcdef"
		}, FieldPassword, KeyPasswordUppercase},
		{"password no digit", func(in *Input) {
			in.Password, in.ConfirmPassword = "Abcdef", "Abcdef"
		}, FieldPassword, KeyPasswordDigit},
		{"password too short wins", func(in *Input) {
			in.Password, in.ConfirmPassword = "Ab1", "Ab1"
		}, FieldPassword, KeyPasswordTooShort},
		{"password burmese marks count", func(in *Input) {
			in.Password, in.ConfirmPassword = "Aက္ခ1ာ", "Aက္ခ1ာ"
		}, FieldPassword, ""},
		{"password complete", func(in *Input) {
			in.Password, in.ConfirmPassword = "Abcdef1", "Abcdef1"
		}, FieldPassword, ""},
		{"terms declined", func(in *Input) { in.Terms = false }, FieldTerms, KeyTermsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			result := Validate(in)
			if tt.want == "" {
				require.False(t, result.Has(tt.field), "unexpected error: %s", result.Message(tt.field))
				return
			}
			require.Equal(t, tt.want, result[tt.field].Key)
		})
	}
}

func TestValidate_AgeMessagesAreDistinct(t *testing.T) {
	young := validInput()
	young.Age = "17"
	text := validInput()
	text.Age = "abc"

	require.NotEqual(t, Validate(young).Message(FieldAge), Validate(text).Message(FieldAge))
}

func TestValidate_PasswordMismatch(t *testing.T) {
	in := validInput()
	in.ConfirmPassword = "Abcdef2"

	result := Validate(in)
	require.Equal(t, KeyPasswordMismatch, result[FieldConfirmPassword].Key)
	require.False(t, result.Has(FieldPassword))
}

func TestValidate_MismatchUsesCurrentPassword(t *testing.T) {
	in := validInput()
	require.True(t, Validate(in).Valid())

	// Changing only the password invalidates the untouched confirmation.
	in.Password = "Zyxwvu9"
	require.Equal(t, KeyPasswordMismatch, Validate(in)[FieldConfirmPassword].Key)
}

func TestValidate_ConfirmOwnRuleBeatsMismatch(t *testing.T) {
	in := validInput()
	in.ConfirmPassword = ""

	require.Equal(t, KeyConfirmRequired, Validate(in)[FieldConfirmPassword].Key)
}

func TestValidate_MismatchWithInvalidPassword(t *testing.T) {
	in := validInput()
	in.Password = "abc"
	in.ConfirmPassword = "abd"

	result := Validate(in)
	require.Equal(t, KeyPasswordTooShort, result[FieldPassword].Key)
	require.Equal(t, KeyPasswordMismatch, result[FieldConfirmPassword].Key)
}

func TestValidator_InjectedMessages(t *testing.T) {
	v := NewValidator(MessageTable{KeyNameTooShort: "short!"})

	in := validInput()
	in.Name = "A"
	result := v.Validate(in)
	require.Equal(t, "short!", result.Message(FieldName))

	// Missing keys fall back to the key itself.
	in.Terms = false
	require.Equal(t, string(KeyTermsRequired), v.Validate(in).Message(FieldTerms))
}

func TestValidator_NilMessagesUsesDefaults(t *testing.T) {
	v := NewValidator(nil)
	result := v.Validate(Input{})
	require.Equal(t, DefaultMessages[KeyTermsRequired], result.Message(FieldTerms))
}

func TestResult_StringIsOrdered(t *testing.T) {
	in := validInput()
	in.Name = ""
	in.Terms = false

	require.Equal(t,
		"name: "+DefaultMessages[KeyNameTooShort]+"\nterms: "+DefaultMessages[KeyTermsRequired],
		Validate(in).String())
}

func TestDefaultMessages_CoverEveryRule(t *testing.T) {
	for _, fr := range DefaultRules {
		for _, rule := range fr.Rules {
			require.Contains(t, DefaultMessages, rule.Key, "field %s", fr.Field)
		}
	}
	require.Contains(t, DefaultMessages, PasswordsMatch.Key)
}

// --- Property tests ---

func TestProperty_NameLengthBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 80).Draw(t, "length")
		in := validInput()
		in.Name = strings.Repeat("n", n)

		hasErr := Validate(in).Has(FieldName)
		if n < NameMinLength || n > NameMaxLength {
			if !hasErr {
				t.Fatalf("length %d: expected name error", n)
			}
		} else if hasErr {
			t.Fatalf("length %d: unexpected name error", n)
		}
	})
}

func TestProperty_PhonePattern(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		digits := rapid.StringMatching(`[0-9]{7,9}`).Draw(t, "digits")
		in := validInput()
		in.Phone = "09" + digits
		if Validate(in).Has(FieldPhone) {
			t.Fatalf("%q should be valid", in.Phone)
		}

		prefix := rapid.StringMatching(`[1-8][0-9]`).Draw(t, "prefix")
		in.Phone = prefix + digits
		if !Validate(in).Has(FieldPhone) {
			t.Fatalf("%q should be invalid", in.Phone)
		}
	})
}

func TestProperty_AgeThreshold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		age := rapid.IntRange(0, 150).Draw(t, "age")
		in := validInput()
		in.Age = strconv.Itoa(age)

		result := Validate(in)
		if age < MinimumAge {
			if result[FieldAge].Key != KeyAgeTooYoung {
				t.Fatalf("age %d: want too_young, got %q", age, result[FieldAge].Key)
			}
		} else if result.Has(FieldAge) {
			t.Fatalf("age %d: unexpected error", age)
		}
	})
}

func TestProperty_ValidateIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := Input{
			Name:            rapid.String().Draw(t, "name"),
			Email:           rapid.String().Draw(t, "email"),
			Phone:           rapid.StringMatching(`0?9?[0-9]{0,12}`).Draw(t, "phone"),
			Age:             rapid.String().Draw(t, "age"),
			Gender:          rapid.SampledFrom([]Gender{GenderUnset, GenderMale, GenderFemale, GenderOther}).Draw(t, "gender"),
			Password:        rapid.String().Draw(t, "password"),
			ConfirmPassword: rapid.String().Draw(t, "confirm"),
			Terms:           rapid.Bool().Draw(t, "terms"),
		}
		first := Validate(in)
		second := Validate(in)
		require.Equal(t, first, second)
	})
}

func TestProperty_MismatchAlwaysFlagsConfirm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pw := rapid.StringMatching(`[A-Z][a-z]{4,8}[0-9]`).Draw(t, "password")
		other := rapid.StringMatching(`[A-Z][a-z]{4,8}[0-9]`).Draw(t, "other")
		in := validInput()
		in.Password = pw
		in.ConfirmPassword = other

		result := Validate(in)
		if pw == other {
			require.True(t, result.Valid())
		} else {
			require.Equal(t, KeyPasswordMismatch, result[FieldConfirmPassword].Key)
		}
	})
}
