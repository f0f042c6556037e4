package testutil

import "github.com/zjrosen/signup/internal/registration"

// RecordOption configures a registration record during setup.
type RecordOption func(*registration.Input)

// ValidRecord returns a record that passes every rule, with opts applied.
func ValidRecord(opts ...RecordOption) registration.Input {
	in := registration.Input{
		Name:            "Aung Aung",
		Email:           "aung@example.com",
		Phone:           "0912345678",
		Age:             "25",
		Gender:          registration.GenderMale,
		Password:        "Abcdef1",
		ConfirmPassword: "Abcdef1",
		Terms:           true,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// Name sets the display name.
func Name(name string) RecordOption {
	return func(in *registration.Input) { in.Name = name }
}

// Email sets the email address.
func Email(email string) RecordOption {
	return func(in *registration.Input) { in.Email = email }
}

// Phone sets the phone number.
func Phone(phone string) RecordOption {
	return func(in *registration.Input) { in.Phone = phone }
}

// Age sets the textual age.
func Age(age string) RecordOption {
	return func(in *registration.Input) { in.Age = age }
}

// Gender sets the gender selection.
func Gender(g registration.Gender) RecordOption {
	return func(in *registration.Input) { in.Gender = g }
}

// Password sets both the password and its confirmation.
func Password(pw string) RecordOption {
	return func(in *registration.Input) {
		in.Password = pw
		in.ConfirmPassword = pw
	}
}

// Confirm sets only the confirmation, e.g. to build a mismatch.
func Confirm(pw string) RecordOption {
	return func(in *registration.Input) { in.ConfirmPassword = pw }
}

// Terms sets the terms acceptance.
func Terms(accepted bool) RecordOption {
	return func(in *registration.Input) { in.Terms = accepted }
}
