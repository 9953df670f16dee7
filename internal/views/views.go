package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/schollz/termtab/internal/input"
	"github.com/schollz/termtab/internal/model"
	"github.com/schollz/termtab/internal/types"
)

const (
	accentHex = "#5fafd7"
	// gridTop is the screen row of the first grid line.
	gridTop = 2
)

// Common styles used across the screen
type ViewStyles struct {
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Label    lipgloss.Style
	Grid     lipgloss.Style
	Status   lipgloss.Style
	Mode     lipgloss.Style
	Message  lipgloss.Style
}

// getCommonStyles returns the standard style definitions. The grid color
// is the accent darkened halfway toward black.
func getCommonStyles() *ViewStyles {
	accent, err := colorful.Hex(accentHex)
	if err != nil {
		accent = colorful.Color{R: 0.37, G: 0.69, B: 0.84}
	}
	dim := accent.BlendLab(colorful.Color{}, 0.5).Clamped()

	return &ViewStyles{
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("7")).Foreground(lipgloss.Color("0")),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Grid:     lipgloss.NewStyle().Foreground(lipgloss.Color(dim.Hex())),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Mode:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent.Hex())),
		Message:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

type line struct {
	text  []rune
	style lipgloss.Style
}

// Render draws the whole screen: header, tablature grid and the status
// line on the last row, with the cursor cell highlighted.
func Render(m *model.Model) string {
	if m.TermHeight <= 0 || m.TermWidth <= 0 {
		return ""
	}
	styles := getCommonStyles()

	lines := make([]line, m.TermHeight)
	for i := range lines {
		lines[i].style = styles.Grid
	}
	body := m.TermHeight - 1

	if body > 0 {
		lines[0] = line{text: []rune(RenderHeader(m)), style: styles.Label}
	}
	layout := layoutGrid(m.Tab, m.TermWidth)
	for i, row := range layout.lines {
		y := i + gridTop
		if y >= body {
			break
		}
		lines[y].text = []rune(row)
	}
	lines[m.TermHeight-1] = statusLine(m, styles, pitchUnderCursor(m, layout))

	var sb strings.Builder
	for y, l := range lines {
		if y > 0 {
			sb.WriteString("\n")
		}
		text := fit(l.text, m.TermWidth)
		if y != m.Cursor.Y {
			sb.WriteString(l.style.Render(string(text)))
			continue
		}
		x := m.Cursor.X
		if x >= len(text) {
			x = len(text) - 1
		}
		sb.WriteString(l.style.Render(string(text[:x])))
		sb.WriteString(styles.Selected.Render(string(text[x])))
		sb.WriteString(l.style.Render(string(text[x+1:])))
	}
	return sb.String()
}

// RenderHeader describes the document being edited.
func RenderHeader(m *model.Model) string {
	inst := m.Tab.Instrument()
	path := m.Path
	if path == "" {
		path = "[No Name]"
	}
	return fmt.Sprintf("%s  %s (%d strings)  %d measures", path, inst.Name, inst.Strings(), m.Tab.Len())
}

// pitchUnderCursor names the sounding pitch of the note drawn under the
// cursor, or returns "" when the cursor is not on a note.
func pitchUnderCursor(m *model.Model, layout gridLayout) string {
	if m.Mode == types.CommandMode || m.Cursor.Y >= m.TermHeight-1 {
		return ""
	}
	n, ok := layout.noteAt(types.Position{X: m.Cursor.X, Y: m.Cursor.Y - gridTop})
	if !ok {
		return ""
	}
	p, err := m.Tab.Instrument().Pitch(n)
	if err != nil {
		return ""
	}
	return p.String()
}

// statusLine shows the command being typed, the mode, or the last message
// on the left; the pitch under the cursor, the mode and the cursor position
// go on the right.
func statusLine(m *model.Model, styles *ViewStyles, pitch string) line {
	var left string
	style := styles.Status
	switch m.Mode {
	case types.CommandMode:
		left = m.Command.String()
	case types.InsertMode:
		left = "-- INSERT --"
		style = styles.Mode
	default:
		if m.StatusMessage != "" {
			left = m.StatusMessage
			style = styles.Message
		} else {
			left = normalHint()
			style = styles.Label
		}
	}

	right := fmt.Sprintf("%s  %s", m.Mode, m.Cursor)
	if m.Mode == types.CommandMode && m.SavedCursor != nil {
		right = fmt.Sprintf("%s  %s", m.Mode, *m.SavedCursor)
	}
	if pitch != "" {
		right = pitch + "  " + right
	}
	pad := m.TermWidth - len([]rune(left)) - len(right)
	if pad < 1 {
		return line{text: []rune(left), style: style}
	}
	return line{text: []rune(left + strings.Repeat(" ", pad) + right), style: style}
}

// normalHint lists the mode-changing bindings; movement keys are left out
// to keep the cursor position visible on narrow terminals.
func normalHint() string {
	var parts []string
	for _, b := range input.NormalHelp()[:2] {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// fit pads or truncates text to exactly width cells.
func fit(text []rune, width int) []rune {
	if len(text) >= width {
		return text[:width]
	}
	out := make([]rune, width)
	copy(out, text)
	for i := len(text); i < width; i++ {
		out[i] = ' '
	}
	return out
}
