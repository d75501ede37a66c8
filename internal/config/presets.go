package config

import "sort"

// Presets are well-known regions of the set. Scales are chosen so the
// region fills a typical 80-column terminal; the deeper regions need a
// bigger iteration budget to resolve their filaments.
var Presets = map[string]*Config{
	"home": {
		Center: CenterConfig{Real: -0.5, Imag: 0.0},
		Scale:  3.0 / 80.0, MaxIter: 100,
	},
	"seahorse": {
		// Seahorse valley, dense repeating curls
		Center: CenterConfig{Real: -0.75, Imag: 0.10},
		Scale:  0.1 / 80.0, MaxIter: 500,
	},
	"elephant": {
		// Elephant valley, trunk-like tendrils
		Center: CenterConfig{Real: -1.80, Imag: -0.06},
		Scale:  0.1 / 80.0, MaxIter: 500,
	},
	"spiral": {
		// Minibrot with tight spiral arms
		Center: CenterConfig{Real: -0.74275, Imag: 0.13175},
		Scale:  0.0015 / 80.0, MaxIter: 1500,
	},
	"triple-spiral": {
		// Threefold symmetric spiral structure
		Center: CenterConfig{Real: -0.7465, Imag: 0.0965},
		Scale:  0.003 / 80.0, MaxIter: 1200,
	},
	"minibrot": {
		// Self-similar copy of the whole set
		Center: CenterConfig{Real: -1.73825, Imag: -0.02275},
		Scale:  0.0015 / 80.0, MaxIter: 1500,
	},
}

// GetPreset returns a named region, or nil if unknown. The returned config
// carries defaults for every presentation field not set by the preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Center = p.Center
	cfg.Scale = p.Scale
	cfg.MaxIter = p.MaxIter
	return cfg
}

// ListPresets returns the preset names in stable order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
