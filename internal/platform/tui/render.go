package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// cellColors identifies a foreground/background pair.
type cellColors struct {
	fg, bg color.RGBA
}

// styleFor builds the lipgloss style for a color pair, caching per render.
func styleFor(cache map[cellColors]lipgloss.Style, c cellColors) lipgloss.Style {
	if style, ok := cache[c]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(core.Hex(c.fg))).
		Background(lipgloss.Color(core.Hex(c.bg)))
	cache[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	cache := make(map[cellColors]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(cache, start).Render(run.String()))
		}
	}
	return sb.String()
}
