package gamedata

import "github.com/gdamore/tcell/v2"

// ThemeDef is the raw colour theme from theme.json.
type ThemeDef struct {
	Digits  []string `json:"digits"` // Colours for neighbour counts 0..8
	Flag    string   `json:"flag"`
	Mine    string   `json:"mine"`
	Covered string   `json:"covered"`
	Cursor  string   `json:"cursor"`
	Status  string   `json:"status"`
	Win     string   `json:"win"`
	Loss    string   `json:"loss"`
}

// Theme holds parsed colours ready for rendering.
type Theme struct {
	Digits  [9]tcell.Color
	Flag    tcell.Color
	Mine    tcell.Color
	Covered tcell.Color
	Cursor  tcell.Color
	Status  tcell.Color
	Win     tcell.Color
	Loss    tcell.Color
}

// DefaultTheme uses the terminal palette, for when theme.json is unusable.
func DefaultTheme() Theme {
	return Theme{
		Digits: [9]tcell.Color{
			tcell.ColorGray, tcell.ColorBlue, tcell.ColorGreen,
			tcell.ColorRed, tcell.ColorPurple, tcell.ColorMaroon,
			tcell.ColorTeal, tcell.ColorSilver, tcell.ColorDarkGray,
		},
		Flag:    tcell.ColorYellow,
		Mine:    tcell.ColorFuchsia,
		Covered: tcell.ColorSilver,
		Cursor:  tcell.ColorAqua,
		Status:  tcell.ColorWhite,
		Win:     tcell.ColorLime,
		Loss:    tcell.ColorRed,
	}
}

// Theme converts the definition, keeping DefaultTheme colours for missing or
// malformed entries.
func (d ThemeDef) Theme() Theme {
	t := DefaultTheme()
	for i := range t.Digits {
		if i < len(d.Digits) {
			t.Digits[i] = colorOr(d.Digits[i], t.Digits[i])
		}
	}
	t.Flag = colorOr(d.Flag, t.Flag)
	t.Mine = colorOr(d.Mine, t.Mine)
	t.Covered = colorOr(d.Covered, t.Covered)
	t.Cursor = colorOr(d.Cursor, t.Cursor)
	t.Status = colorOr(d.Status, t.Status)
	t.Win = colorOr(d.Win, t.Win)
	t.Loss = colorOr(d.Loss, t.Loss)
	return t
}

// LoadTheme loads theme.json.
func LoadTheme() (Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return DefaultTheme(), err
	}
	return def.Theme(), nil
}
