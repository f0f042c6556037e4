package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	switch cfg.Mode {
	case "":
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		return fmt.Errorf("unknown theme mode: %s", cfg.Mode)
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Same color for both modes once a theme is applied
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	targets := map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:          {&TextPrimaryColor},
		TokenTextMuted:            {&TextMutedColor},
		TokenTextPlaceholder:      {&TextPlaceholderColor},
		TokenBorderDefault:        {&BorderDefaultColor},
		TokenBorderFocus:          {&BorderFocusColor},
		TokenBorderHighlight:      {&BorderHighlightFocusColor},
		TokenStatusSuccess:        {&StatusSuccessColor},
		TokenStatusWarning:        {&StatusWarningColor},
		TokenStatusError:          {&StatusErrorColor},
		TokenButtonText:           {&ButtonTextColor},
		TokenButtonPrimaryBg:      {&ButtonPrimaryBgColor},
		TokenButtonPrimaryFocusBg: {&ButtonPrimaryFocusBgColor},
		TokenButtonDisabledBg:     {&ButtonDisabledBgColor},
		TokenFormLabel:            {&FormLabelColor},
		TokenFormLabelFocus:       {&FormLabelFocusedColor},
		TokenOverlayTitle:         {&OverlayTitleColor},
		TokenOverlayBorder:        {&OverlayBorderColor},
		TokenToastSuccess:         {&ToastBorderSuccessColor},
		TokenToastError:           {&ToastBorderErrorColor},
		TokenToastInfo:            {&ToastBorderInfoColor},
		TokenSpinner:              {&SpinnerColor},
	}

	for token, hex := range colors {
		for _, dst := range targets[token] {
			*dst = makeColor(hex)
		}
	}
}

// rebuildStyles recreates all Style objects with updated colors.
func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	SubtitleStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	LabelStyle = lipgloss.NewStyle().Foreground(FormLabelColor)
	LabelFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(FormLabelFocusedColor)
	RequiredStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	FieldErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	LinkStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(BorderHighlightFocusColor)
	SpinnerStyle = lipgloss.NewStyle().Foreground(SpinnerColor)

	baseButtonStyle := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	DisabledButtonStyle = baseButtonStyle.
		Foreground(TextMutedColor).
		Background(ButtonDisabledBgColor)

	DangerButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(StatusErrorColor)

	DangerButtonFocusedStyle = DangerButtonStyle.
		Underline(true).
		UnderlineSpaces(true)

	SecondaryButtonStyle = baseButtonStyle.
		Foreground(TextPrimaryColor).
		Background(ButtonDisabledBgColor)

	SecondaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(BorderDefaultColor).
		Underline(true).
		UnderlineSpaces(true)
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
