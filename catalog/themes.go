package catalog

// Theme is one entry of the theme table.
type Theme struct {
	Value string
	Label string

	// Style is the chroma style name closest to the theme.
	Style string
}

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = "github-light"

var themes = []Theme{
	{Value: "github-light", Label: "GitHub Light", Style: "github"},
	{Value: "min-light", Label: "Min Light", Style: "xcode"},
	{Value: "slack-ochin", Label: "Slack Ochin", Style: "tango"},
	{Value: "vitesse-light", Label: "Vitesse Light", Style: "solarized-light"},
	{Value: "catppuccin-latte", Label: "Catppuccin Latte", Style: "catppuccin-latte"},
	{Value: "rose-pine-dawn", Label: "Rose Pine Dawn", Style: "rose-pine-dawn"},
}

var themeIndex = indexOf(themes, func(t Theme) string { return t.Value })

// Themes returns the theme table in picker order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// LookupTheme returns the theme with the given identifier.
func LookupTheme(value string) (Theme, bool) {
	i, ok := themeIndex[value]
	if !ok {
		return Theme{}, false
	}
	return themes[i], true
}

// ThemeLabel returns the display label for value, or value itself when the
// identifier is unknown.
func ThemeLabel(value string) string {
	if t, ok := LookupTheme(value); ok {
		return t.Label
	}
	return value
}
