package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the base every theme starts from.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default signup theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenBorderHighlight: "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenButtonText:           "#FFFFFF",
		TokenButtonPrimaryBg:      "#1A5276",
		TokenButtonPrimaryFocusBg: "#3498DB",
		TokenButtonDisabledBg:     "#2D2D2D",

		TokenFormLabel:      "#8C8C8C",
		TokenFormLabelFocus: "#FFFFFF",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",

		TokenSpinner: "#FFFFFF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha theme.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CDD6F4",
		TokenTextMuted:       "#6C7086",
		TokenTextPlaceholder: "#585B70",

		TokenBorderDefault:   "#6C7086",
		TokenBorderFocus:     "#CDD6F4",
		TokenBorderHighlight: "#89B4FA",

		TokenStatusSuccess: "#A6E3A1",
		TokenStatusWarning: "#F9E2AF",
		TokenStatusError:   "#F38BA8",

		TokenButtonText:           "#1E1E2E",
		TokenButtonPrimaryBg:      "#89B4FA",
		TokenButtonPrimaryFocusBg: "#B4BEFE",
		TokenButtonDisabledBg:     "#313244",

		TokenFormLabel:      "#6C7086",
		TokenFormLabelFocus: "#CDD6F4",

		TokenOverlayTitle:  "#CDD6F4",
		TokenOverlayBorder: "#6C7086",

		TokenToastSuccess: "#A6E3A1",
		TokenToastError:   "#F38BA8",
		TokenToastInfo:    "#89B4FA",

		TokenSpinner: "#CBA6F7",
	},
}

// CatppuccinLattePreset is the Catppuccin Latte theme.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#4C4F69",
		TokenTextMuted:       "#9CA0B0",
		TokenTextPlaceholder: "#ACB0BE",

		TokenBorderDefault:   "#9CA0B0",
		TokenBorderFocus:     "#4C4F69",
		TokenBorderHighlight: "#1E66F5",

		TokenStatusSuccess: "#40A02B",
		TokenStatusWarning: "#DF8E1D",
		TokenStatusError:   "#D20F39",

		TokenButtonText:           "#EFF1F5",
		TokenButtonPrimaryBg:      "#1E66F5",
		TokenButtonPrimaryFocusBg: "#7287FD",
		TokenButtonDisabledBg:     "#CCD0DA",

		TokenFormLabel:      "#9CA0B0",
		TokenFormLabelFocus: "#4C4F69",

		TokenOverlayTitle:  "#4C4F69",
		TokenOverlayBorder: "#9CA0B0",

		TokenToastSuccess: "#40A02B",
		TokenToastError:   "#D20F39",
		TokenToastInfo:    "#1E66F5",

		TokenSpinner: "#8839EF",
	},
}

// DraculaPreset is the Dracula theme.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#F8F8F2",
		TokenTextMuted:       "#6272A4",
		TokenTextPlaceholder: "#6272A4",

		TokenBorderDefault:   "#6272A4",
		TokenBorderFocus:     "#F8F8F2",
		TokenBorderHighlight: "#BD93F9",

		TokenStatusSuccess: "#50FA7B",
		TokenStatusWarning: "#F1FA8C",
		TokenStatusError:   "#FF5555",

		TokenButtonText:           "#282A36",
		TokenButtonPrimaryBg:      "#BD93F9",
		TokenButtonPrimaryFocusBg: "#FF79C6",
		TokenButtonDisabledBg:     "#44475A",

		TokenFormLabel:      "#6272A4",
		TokenFormLabelFocus: "#F8F8F2",

		TokenOverlayTitle:  "#F8F8F2",
		TokenOverlayBorder: "#6272A4",

		TokenToastSuccess: "#50FA7B",
		TokenToastError:   "#FF5555",
		TokenToastInfo:    "#8BE9FD",

		TokenSpinner: "#BD93F9",
	},
}

// NordPreset is the Nord theme.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4",
		TokenTextMuted:       "#4C566A",
		TokenTextPlaceholder: "#4C566A",

		TokenBorderDefault:   "#4C566A",
		TokenBorderFocus:     "#ECEFF4",
		TokenBorderHighlight: "#88C0D0",

		TokenStatusSuccess: "#A3BE8C",
		TokenStatusWarning: "#EBCB8B",
		TokenStatusError:   "#BF616A",

		TokenButtonText:           "#2E3440",
		TokenButtonPrimaryBg:      "#5E81AC",
		TokenButtonPrimaryFocusBg: "#81A1C1",
		TokenButtonDisabledBg:     "#3B4252",

		TokenFormLabel:      "#4C566A",
		TokenFormLabelFocus: "#ECEFF4",

		TokenOverlayTitle:  "#ECEFF4",
		TokenOverlayBorder: "#4C566A",

		TokenToastSuccess: "#A3BE8C",
		TokenToastError:   "#BF616A",
		TokenToastInfo:    "#81A1C1",

		TokenSpinner: "#88C0D0",
	},
}

// HighContrastPreset is the High contrast for accessibility theme.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextMuted:       "#FFFFFF",
		TokenTextPlaceholder: "#CCCCCC",

		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00",
		TokenBorderHighlight: "#00FFFF",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenButtonText:           "#000000",
		TokenButtonPrimaryBg:      "#00FFFF",
		TokenButtonPrimaryFocusBg: "#FFFFFF",
		TokenButtonDisabledBg:     "#404040",

		TokenFormLabel:      "#FFFFFF",
		TokenFormLabelFocus: "#FFFF00",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",

		TokenSpinner: "#FFFF00",
	},
}
