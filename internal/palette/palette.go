// Package palette holds the color ramps and density characters used to turn
// escape counts into styled terminal cells.
package palette

import "github.com/charmbracelet/lipgloss"

// Palette is an ordered color ramp plus a fixed color for interior points.
// Ramp entries run from dim to bright so escape speed reads as a gradient
// from the set boundary outward.
type Palette struct {
	Name   string
	Inside lipgloss.Color
	Ramp   []lipgloss.Color
}

var (
	// Electric mirrors the classic deep-blue look: black core, blue halo.
	Electric = Palette{
		Name:   "electric",
		Inside: lipgloss.Color("#000000"),
		Ramp: []lipgloss.Color{
			"#000022", "#000044", "#000066", "#000088",
			"#0000aa", "#0000cc", "#0000ff", "#3333ff",
			"#5555ff", "#7777ff", "#9999ff", "#bbbbff",
			"#ddddff", "#ffffff",
		},
	}

	Fire = Palette{
		Name:   "fire",
		Inside: lipgloss.Color("#000000"),
		Ramp: []lipgloss.Color{
			"#1a0000", "#330000", "#4d0000", "#660000",
			"#801a00", "#993300", "#b34d00", "#cc6600",
			"#e68000", "#ff9900", "#ffb333", "#ffcc66",
			"#ffe699", "#ffffcc",
		},
	}

	Phosphor = Palette{
		Name:   "phosphor",
		Inside: lipgloss.Color("#001100"),
		Ramp: []lipgloss.Color{
			"#002200", "#004400", "#006600", "#008800",
			"#00aa00", "#00cc00", "#00ee00", "#00ff00",
			"#44ff44", "#88ff88", "#ccffcc",
		},
	}

	Grayscale = Palette{
		Name:   "gray",
		Inside: lipgloss.Color("#000000"),
		Ramp: []lipgloss.Color{
			"#111111", "#222222", "#333333", "#444444",
			"#555555", "#666666", "#777777", "#888888",
			"#999999", "#aaaaaa", "#bbbbbb", "#cccccc",
			"#dddddd", "#eeeeee", "#ffffff",
		},
	}

	Palettes = []Palette{Electric, Fire, Phosphor, Grayscale}
)

// Get returns a palette by name, falling back to Electric.
func Get(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return Electric
}

// Names returns the available palette names.
func Names() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// Color maps an escape count to a ramp color by cycling, with interior
// points (n == maxIter) pinned to the inside color.
func (p Palette) Color(n, maxIter int) lipgloss.Color {
	if n >= maxIter {
		return p.Inside
	}
	return p.Ramp[n%len(p.Ramp)]
}

// Shade maps a normalized brightness in [0, 1] to a ramp color. Used by
// histogram coloring, where the whole ramp is an intensity gradient.
func (p Palette) Shade(b float64) lipgloss.Color {
	if b < 0 {
		b = 0
	}
	if b > 1 {
		b = 1
	}
	idx := int(b * float64(len(p.Ramp)-1))
	return p.Ramp[idx]
}

// densityRamp orders characters from sparse to dense for ASCII output.
const densityRamp = " .:-=+*#%@"

// Symbol returns a density character for an escape count. Interior points
// render as a solid block; escaping points get denser characters the longer
// they take to escape.
func Symbol(n, maxIter int) rune {
	if n >= maxIter {
		return '█'
	}
	ramp := []rune(densityRamp)
	idx := n * len(ramp) / maxIter
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return ramp[idx]
}
