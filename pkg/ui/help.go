package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# Ketenprocessen

Alle openstaande taken van het hoofdproces van de zaak, nieuwste eerst.

## Navigatie

| Toets | Actie |
|-------|-------|
| j/k, ↑/↓ | Taak selecteren |
| g/G | Eerste/laatste taak |
| Enter | Taakformulier openen |
| r | Lijst verversen |

## Taken

| Toets | Actie |
|-------|-------|
| c | Taak toewijzen (claimen) |
| x | Taak annuleren |
| 1-9 | Procesbericht versturen |
| y | Taak-URL kopiëren |

Accorderings- en adviestaken kunnen alleen geclaimd worden zolang ze
niet zijn toegewezen.

## Overig

| Toets | Actie |
|-------|-------|
| ? | Deze hulp |
| q | Stoppen |
`

// HelpModel shows the keyboard reference, rendered from markdown.
type HelpModel struct {
	visible  bool
	width    int
	height   int
	theme    Theme
	rendered string
}

// NewHelpModel creates the help overlay.
func NewHelpModel(theme Theme) HelpModel {
	return HelpModel{theme: theme}
}

// Show makes the overlay visible.
func (m *HelpModel) Show() {
	m.visible = true
}

// IsVisible reports whether the overlay is showing.
func (m HelpModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions and invalidates the rendered text.
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.rendered = ""
}

// Update closes the overlay on any key.
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.visible = false
	}
	return m, nil
}

// View renders the help text.
func (m HelpModel) View() string {
	if !m.visible {
		return ""
	}

	if m.rendered == "" {
		width := 72
		if m.width > 0 && m.width < 80 {
			width = m.width - 8
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			if out, err := renderer.Render(helpMarkdown); err == nil {
				m.rendered = out
			}
		}
		if m.rendered == "" {
			m.rendered = helpMarkdown
		}
	}

	hintStyle := m.theme.Renderer.NewStyle().Faint(true)
	content := strings.TrimRight(m.rendered, "\n") + "\n\n" + hintStyle.Render("Druk op een toets om te sluiten")

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 2)
	box := boxStyle.Render(content)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
