package registration

// MessageKey identifies a validation message independently of its language.
type MessageKey string

const (
	KeyNameTooShort      MessageKey = "name.too_short"
	KeyNameTooLong       MessageKey = "name.too_long"
	KeyEmailRequired     MessageKey = "email.required"
	KeyEmailInvalid      MessageKey = "email.invalid"
	KeyPhoneRequired     MessageKey = "phone.required"
	KeyPhoneInvalid      MessageKey = "phone.invalid"
	KeyAgeRequired       MessageKey = "age.required"
	KeyAgeNotNumber      MessageKey = "age.not_number"
	KeyAgeTooYoung       MessageKey = "age.too_young"
	KeyGenderRequired    MessageKey = "gender.required"
	KeyPasswordTooShort  MessageKey = "password.too_short"
	KeyPasswordUppercase MessageKey = "password.uppercase"
	KeyPasswordDigit     MessageKey = "password.digit"
	KeyConfirmRequired   MessageKey = "confirm.required"
	KeyPasswordMismatch  MessageKey = "confirm.mismatch"
	KeyTermsRequired     MessageKey = "terms.required"
)

// Messages resolves a message key to display text.
type Messages interface {
	Message(key MessageKey) string
}

// MessageTable is a Messages backed by a plain map. Missing keys resolve to
// the key itself so an incomplete table never hides an error.
type MessageTable map[MessageKey]string

// Message implements Messages.
func (t MessageTable) Message(key MessageKey) string {
	if s, ok := t[key]; ok && s != "" {
		return s
	}
	return string(key)
}

// DefaultMessages is the built-in English table.
var DefaultMessages = MessageTable{
	KeyNameTooShort:      "Name must be at least 3 characters",
	KeyNameTooLong:       "Name must be at most 50 characters",
	KeyEmailRequired:     "Email is required",
	KeyEmailInvalid:      "Email address is not valid",
	KeyPhoneRequired:     "Phone number is required",
	KeyPhoneInvalid:      "Phone must start with 09 and have 9-11 digits",
	KeyAgeRequired:       "Age is required",
	KeyAgeNotNumber:      "Age must be a number",
	KeyAgeTooYoung:       "You must be at least 18 years old",
	KeyGenderRequired:    "Please select a gender",
	KeyPasswordTooShort:  "Password must be at least 6 characters",
	KeyPasswordUppercase: "Password must contain an uppercase letter",
	KeyPasswordDigit:     "Password must contain a digit",
	KeyConfirmRequired:   "Please confirm your password",
	KeyPasswordMismatch:  "Passwords do not match",
	KeyTermsRequired:     "You must accept the terms",
}
