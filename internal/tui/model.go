// Package tui implements the interactive viewer using the Bubble Tea
// framework.
//
// The loop is strictly sequential: a key event mutates the camera, one
// frame is rendered, and the frame is displayed. No frame is produced
// unless state changed.
//
// # Key Bindings
//
//	arrows / hjkl - pan
//	z / x         - zoom in / out
//	+ / -         - raise / lower the iteration budget
//	t             - cycle palettes
//	c             - toggle ramp / histogram coloring
//	b             - toggle half-block / ascii sampling
//	r             - reset the view
//	?             - toggle help overlay
//	q / esc       - quit
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mandelview/internal/config"
	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

const (
	// sidebarWidth is the screen space reserved for the stats panel,
	// including its border and padding.
	sidebarWidth = 38

	renderHistoryCap = 60
)

// Model holds the camera, the renderer, and the last rendered frame.
type Model struct {
	cam      viewport.Camera
	renderer *fractal.Renderer
	iterStep int

	dims  viewport.Dims
	frame fractal.Frame
	ready bool

	lastRender    time.Duration
	renderHistory []float64 // milliseconds, for the sidebar sparkline

	paletteIdx int
	showHelp   bool
}

// NewModel builds the viewer from a config. The first frame is rendered
// once the terminal reports its size.
func NewModel(cfg *config.Config) Model {
	r := fractal.New()
	r.Palette = palette.Get(cfg.Palette)
	if cfg.Sampling == "ascii" {
		r.Sampling = fractal.ASCII
	}
	if cfg.Coloring == "histogram" {
		r.Coloring = fractal.Histogram
	}

	idx := 0
	for i, name := range palette.Names() {
		if name == r.Palette.Name {
			idx = i
		}
	}

	step := cfg.IterStep
	if step <= 0 {
		step = config.DefaultIterStep
	}

	return Model{
		cam:           cfg.Camera(),
		renderer:      r,
		iterStep:      step,
		paletteIdx:    idx,
		renderHistory: make([]float64, 0, renderHistoryCap),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles input events. Navigation keys mutate the camera and
// trigger exactly one render; unrecognized keys are ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cols := msg.Width - sidebarWidth
		if cols < 0 {
			cols = 0
		}
		rows := msg.Height - 1
		if rows < 0 {
			rows = 0
		}
		m.dims = viewport.Dims{Rows: rows, Cols: cols}
		m.ready = true
		m.render()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.cam.Pan(viewport.Up, m.dims)
	case "down", "j":
		m.cam.Pan(viewport.Down, m.dims)
	case "left", "h":
		m.cam.Pan(viewport.Left, m.dims)
	case "right", "l":
		m.cam.Pan(viewport.Right, m.dims)
	case "z", "pgup":
		m.cam.ZoomIn()
	case "x", "pgdown":
		m.cam.ZoomOut()
	case "+", "=":
		m.cam.AdjustIter(m.iterStep)
	case "-", "_":
		m.cam.AdjustIter(-m.iterStep)
	case "r":
		m.cam.Reset()
	case "t":
		names := palette.Names()
		m.paletteIdx = (m.paletteIdx + 1) % len(names)
		m.renderer.Palette = palette.Get(names[m.paletteIdx])
	case "c":
		if m.renderer.Coloring == fractal.Ramp {
			m.renderer.Coloring = fractal.Histogram
		} else {
			m.renderer.Coloring = fractal.Ramp
		}
	case "b":
		if m.renderer.Sampling == fractal.HalfBlock {
			m.renderer.Sampling = fractal.ASCII
		} else {
			m.renderer.Sampling = fractal.HalfBlock
		}
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	default:
		return m, nil
	}
	m.render()
	return m, nil
}

// render computes the next frame synchronously and records its cost.
func (m *Model) render() {
	if !m.ready {
		return
	}
	start := time.Now()
	m.frame = m.renderer.Render(m.cam, m.dims)
	m.lastRender = time.Since(start)

	m.renderHistory = append(m.renderHistory, float64(m.lastRender.Microseconds())/1000)
	if len(m.renderHistory) > renderHistoryCap {
		m.renderHistory = m.renderHistory[1:]
	}
}

// Camera exposes the navigation state, mainly for tests.
func (m Model) Camera() viewport.Camera { return m.cam }

// Frame exposes the last rendered frame, mainly for tests.
func (m Model) Frame() fractal.Frame { return m.frame }

// Run starts the interactive viewer and blocks until the user quits.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
