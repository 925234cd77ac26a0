package gamedata

import "fmt"

// DifficultyDef is one entry of the difficulty menu.
type DifficultyDef struct {
	Key   string `json:"key"`   // Menu key (e.g., "1")
	Level int    `json:"level"` // Difficulty level, 1..3
	Name  string `json:"name"`  // Display name (e.g., "easy")
}

// SizeDef is one entry of the board size menu.
type SizeDef struct {
	Key   string `json:"key"`
	Size  int    `json:"size"`
	Label string `json:"label"`
}

// Presets holds the menu choices and the in-game help text.
type Presets struct {
	Difficulties []DifficultyDef `json:"difficulties"`
	Sizes        []SizeDef       `json:"sizes"`
	Help         []string        `json:"help"`
}

// LoadPresets loads presets.json.
func LoadPresets() (*Presets, error) {
	p, err := Load[Presets]("presets.json")
	if err != nil {
		return nil, err
	}
	if len(p.Difficulties) == 0 || len(p.Sizes) == 0 {
		return nil, fmt.Errorf("presets.json: %d difficulties, %d sizes", len(p.Difficulties), len(p.Sizes))
	}
	return &p, nil
}

// DifficultyByKey returns the difficulty bound to key, or nil.
func (p *Presets) DifficultyByKey(key rune) *DifficultyDef {
	for i := range p.Difficulties {
		if p.Difficulties[i].Key == string(key) {
			return &p.Difficulties[i]
		}
	}
	return nil
}

// SizeByKey returns the board size bound to key, or nil.
func (p *Presets) SizeByKey(key rune) *SizeDef {
	for i := range p.Sizes {
		if p.Sizes[i].Key == string(key) {
			return &p.Sizes[i]
		}
	}
	return nil
}

// DifficultyOptions returns menu lines like "(1) easy".
func (p *Presets) DifficultyOptions() []string {
	opts := make([]string, len(p.Difficulties))
	for i, d := range p.Difficulties {
		opts[i] = fmt.Sprintf("(%s) %s", d.Key, d.Name)
	}
	return opts
}

// SizeOptions returns menu lines like "(1) 8x8".
func (p *Presets) SizeOptions() []string {
	opts := make([]string, len(p.Sizes))
	for i, s := range p.Sizes {
		opts[i] = fmt.Sprintf("(%s) %s", s.Key, s.Label)
	}
	return opts
}
