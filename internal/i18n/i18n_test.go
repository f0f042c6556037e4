package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/signup/internal/registration"
)

func TestLoad_BuiltinLocales(t *testing.T) {
	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{English, "button.submit", "Register"},
		{Burmese, "button.submit", "မှတ်ပုံတင်မယ်"},
		{Burmese, "confirm.mismatch", "Password နှစ်ခုမတူညီပါ"},
		{"", "title", "Create a new account"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.key, func(t *testing.T) {
			c, err := Load(tt.locale, "")
			require.NoError(t, err)
			require.Equal(t, tt.want, c.Get(tt.key))
		})
	}
}

func TestLoad_UnknownLocale(t *testing.T) {
	_, err := Load("fr", "")
	require.ErrorIs(t, err, ErrUnknownLocale)
	require.Panics(t, func() { MustLoad("fr") })
}

func TestCatalog_Fallbacks(t *testing.T) {
	c := MustLoad(Burmese)

	// Help text only exists in English.
	require.Equal(t, "quit", c.Get("help.quit"))
	require.Equal(t, "no.such.key", c.Get("no.such.key"))
}

func TestCatalog_CoversEveryMessageKey(t *testing.T) {
	for _, locale := range Locales {
		c := MustLoad(locale)
		for _, fr := range registration.DefaultRules {
			for _, rule := range fr.Rules {
				require.NotEqual(t, string(rule.Key), c.Message(rule.Key), "%s: %s", locale, rule.Key)
			}
		}
		require.NotEqual(t, string(registration.KeyPasswordMismatch), c.Message(registration.KeyPasswordMismatch))
		for _, f := range registration.Fields {
			require.NotEqual(t, "label."+f.String(), c.Label(f), "%s: %s", locale, f)
		}
	}
}

func TestCatalog_Accessors(t *testing.T) {
	c := MustLoad(English)

	require.Equal(t, English, c.Locale())
	require.Equal(t, "Confirm password", c.Label(registration.FieldConfirmPassword))
	require.Equal(t, "09xxxxxxxxx", c.Placeholder(registration.FieldPhone))
	require.Equal(t, "Select", c.Gender(registration.GenderUnset))
	require.Equal(t, "Female", c.Gender(registration.GenderFemale))
	require.Equal(t, "", c.Strength(registration.StrengthNone))
	require.Equal(t, "Strong", c.Strength(registration.StrengthStrong))
	require.Contains(t, c.Terms(), "# Terms and Privacy Policy")
}

func TestCatalog_ValidatorUsesLocale(t *testing.T) {
	result := MustLoad(Burmese).Validator().Validate(registration.Input{})
	require.Equal(t, "စည်းကမ်းချက်များကို သဘောတူရမည်", result.Message(registration.FieldTerms))
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("button.submit: Sign up\n"), 0o600))

	c, err := Load(English, path)
	require.NoError(t, err)
	require.Equal(t, "Sign up", c.Get("button.submit"))
	require.Equal(t, "Log in", c.Get("footer.login"))

	// Overrides never leak into the shared fallback.
	require.Equal(t, "Register", MustLoad(English).Get("button.submit"))
}

func TestLoad_OverrideErrors(t *testing.T) {
	_, err := Load(English, filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading messages file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- not\n- a map\n"), 0o600))
	_, err = Load(English, bad)
	require.ErrorContains(t, err, "parsing messages file")
}

func TestNext(t *testing.T) {
	require.Equal(t, Burmese, Next(English))
	require.Equal(t, English, Next(Burmese))
	require.Equal(t, DefaultLocale, Next("xx"))
}
