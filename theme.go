package sani

// Theme defines semantic color mappings for pager chrome using ANSI color
// indices (0-15). The user's terminal theme determines the actual RGB
// values. Rendered document styling is not themed: the core emits fixed
// SGR attribute codes only.
type Theme struct {
	Muted  int // status line, titles
	Accent int // scroll position
	Error  int // error messages
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Muted:  8,
		Accent: 5,
		Error:  1,
	}
}
