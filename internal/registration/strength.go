package registration

// Strength is the advisory password-strength bucket. It only looks at length.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	default:
		return "none"
	}
}

// PasswordStrength buckets a password by length: empty, 1-5, 6-9, 10+.
func PasswordStrength(password string) Strength {
	n := Length(password)
	switch {
	case n == 0:
		return StrengthNone
	case n < 6:
		return StrengthWeak
	case n < 10:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
