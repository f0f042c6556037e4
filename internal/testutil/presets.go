package testutil

import "github.com/zjrosen/signup/internal/registration"

// WithStandardAccounts adds a small set of accounts covering each gender.
func (b *Builder) WithStandardAccounts() *Builder {
	return b.
		WithAccount("aung@example.com").
		WithAccount("mya@example.com",
			Name("Mya Mya"), Gender(registration.GenderFemale), Age("31"), Password("Secret99")).
		WithAccount("kyaw@example.com",
			Name("Kyaw Kyaw"), Gender(registration.GenderOther), Phone("09123456789"), Password("LongerPass2024"))
}
