package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/viewport"
)

// styleCache memoizes one lipgloss style per (fg, bg) pair. A frame only
// ever uses palette colors, so the cache stays small.
var styleCache = map[[2]lipgloss.Color]lipgloss.Style{}

func styleFor(fg, bg lipgloss.Color) lipgloss.Style {
	key := [2]lipgloss.Color{fg, bg}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(fg)
	if bg != "" {
		s = s.Background(bg)
	}
	styleCache[key] = s
	return s
}

// FrameString converts a frame to styled terminal output. Consecutive cells
// with identical colors are merged into one styled run to keep the escape
// sequence overhead down.
func FrameString(f fractal.Frame) string {
	var b strings.Builder
	var run strings.Builder
	for row := 0; row < f.Rows; row++ {
		runFg, runBg := lipgloss.Color(""), lipgloss.Color("")
		run.Reset()
		for col := 0; col < f.Cols; col++ {
			cell := f.At(row, col)
			if col > 0 && (cell.Fg != runFg || cell.Bg != runBg) {
				b.WriteString(styleFor(runFg, runBg).Render(run.String()))
				run.Reset()
			}
			runFg, runBg = cell.Fg, cell.Bg
			run.WriteRune(cell.Symbol)
		}
		if run.Len() > 0 {
			b.WriteString(styleFor(runFg, runBg).Render(run.String()))
		}
		if row < f.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// View renders the frame plus the stats sidebar.
func (m Model) View() string {
	if !m.ready {
		return "measuring terminal..."
	}

	canvas := FrameString(m.frame)

	var s strings.Builder
	s.WriteString(headerStyle.Render("MANDELVIEW") + "\n")

	s.WriteString(labelStyle.Render("Center") +
		valueStyle.Render(fmt.Sprintf("%.6f%+.6fi", real(m.cam.Center), imag(m.cam.Center))) + "\n")
	s.WriteString(labelStyle.Render("Scale") +
		valueStyle.Render(fmt.Sprintf("%.3e", m.cam.Scale)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") +
		valueStyle.Render(fmt.Sprintf("%.1fx", zoomDepth(m.cam.Scale))) + "\n")
	s.WriteString(labelStyle.Render("Iterations") +
		valueStyle.Render(fmt.Sprintf("%d", m.cam.MaxIter)) + "\n")
	s.WriteString(labelStyle.Render("Render") +
		valueStyle.Render(fmt.Sprintf("%.1fms", float64(m.lastRender.Microseconds())/1000)) + "\n")
	s.WriteString(labelStyle.Render("Palette") +
		valueStyle.Render(m.renderer.Palette.Name) + "\n")
	s.WriteString(labelStyle.Render("Coloring") +
		valueStyle.Render(m.renderer.Coloring.String()) + "\n")
	s.WriteString(labelStyle.Render("Sampling") +
		valueStyle.Render(m.renderer.Sampling.String()) + "\n")

	if len(m.renderHistory) > 1 {
		chart := asciigraph.Plot(m.renderHistory,
			asciigraph.Height(4),
			asciigraph.Width(26),
			asciigraph.Caption("render ms"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nhjkl:Pan Z/X:Zoom +/-:Iter\nT:Palette C:Color B:Mode\nR:Reset ?:Help Q:Quit"))

	sidebar := statsStyle.Render(s.String())
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvas, sidebar)

	if m.showHelp {
		return helpOverlay + "\n" + main
	}
	return main
}

// zoomDepth expresses the scale as a magnification of the startup view.
func zoomDepth(scale float64) float64 {
	if scale <= 0 {
		return 0
	}
	return math.Max(viewport.DefaultScale/scale, 0)
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Arrows/HJKL - Pan the view          ║
║  Z / PgUp    - Zoom in               ║
║  X / PgDn    - Zoom out              ║
║  + / -       - Iteration budget ±10  ║
║  T           - Cycle palettes        ║
║  C           - Ramp/histogram colors ║
║  B           - Half-block/ASCII      ║
║  R           - Reset view            ║
║  ?           - Toggle this help      ║
║  Q / Esc     - Quit                  ║
╚══════════════════════════════════════╝`
