package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/camunda"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

type accountsLoadedMsg struct {
	users  []model.User
	groups []model.Group
}

// pickerChoice is one selectable assignee. The value is the wire
// format of the claim endpoint: "user:" or "group:" plus the name.
type pickerChoice struct {
	value   string
	display string
}

// PickerModel selects a user or group assignee. Typing triggers a
// debounced backend lookup; the fetched accounts are then filtered
// fuzzily as the query narrows further.
type PickerModel struct {
	service *camunda.Service
	theme   Theme

	query    string
	choices  []pickerChoice
	filtered []pickerChoice
	cursor   int

	debouncer *Debouncer
	loading   bool

	width  int
	height int

	done   bool
	choice string
}

// NewPickerModel creates an assignee picker.
func NewPickerModel(service *camunda.Service, theme Theme) *PickerModel {
	return &PickerModel{
		service:   service,
		theme:     theme,
		debouncer: NewDebouncer(0),
		loading:   true,
	}
}

// Init implements tea.Model.
func (m *PickerModel) Init() tea.Cmd {
	return m.search("")
}

func (m *PickerModel) search(query string) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		users, err := service.GetAccounts(ctx, query)
		if err != nil {
			return errMsg{err: err}
		}
		groups, err := service.GetUserGroups(ctx, query)
		if err != nil {
			return errMsg{err: err}
		}
		return accountsLoadedMsg{users: users.Results, groups: groups.Results}
	}
}

// SetSize sets the modal dimensions.
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsDone reports whether the picker was closed.
func (m *PickerModel) IsDone() bool {
	return m.done
}

// Choice returns the selected assignee value, or "" when cancelled.
func (m *PickerModel) Choice() string {
	return m.choice
}

// Update implements tea.Model.
func (m *PickerModel) Update(msg tea.Msg) (*PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		m.loading = false
		m.choices = m.choices[:0]
		for _, user := range msg.users {
			m.choices = append(m.choices, pickerChoice{
				value:   "user:" + user.Username,
				display: user.DisplayName(),
			})
		}
		for _, group := range msg.groups {
			m.choices = append(m.choices, pickerChoice{
				value:   "group:" + group.Name,
				display: "Groep: " + group.Name,
			})
		}
		m.applyFilter()
		return m, nil

	case debounceMsg:
		if m.debouncer.Fired(msg) {
			m.loading = true
			return m, m.search(m.query)
		}
		return m, nil

	case errMsg:
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.done = true
			return m, nil
		case "enter":
			if m.cursor >= 0 && m.cursor < len(m.filtered) {
				m.choice = m.filtered[m.cursor].value
				m.done = true
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "backspace":
			if len(m.query) > 0 {
				m.query = m.query[:len(m.query)-1]
				m.applyFilter()
				return m, m.debouncer.Trigger()
			}
			return m, nil
		default:
			if len(msg.String()) == 1 {
				m.query += msg.String()
				m.applyFilter()
				return m, m.debouncer.Trigger()
			}
		}
	}
	return m, nil
}

// applyFilter narrows the loaded choices fuzzily on the current query.
func (m *PickerModel) applyFilter() {
	if m.query == "" {
		m.filtered = append(m.filtered[:0], m.choices...)
	} else {
		targets := make([]string, len(m.choices))
		for i, choice := range m.choices {
			targets[i] = choice.display
		}
		matches := fuzzy.Find(m.query, targets)
		m.filtered = m.filtered[:0]
		for _, match := range matches {
			m.filtered = append(m.filtered, m.choices[match.Index])
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m *PickerModel) View() string {
	titleStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	inputStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary)
	itemStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	selectedStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Bold(true)
	hintStyle := m.theme.Renderer.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Taak toewijzen") + "\n\n")
	b.WriteString(inputStyle.Render("> "+m.query+"█") + "\n\n")

	if m.loading && len(m.filtered) == 0 {
		b.WriteString(itemStyle.Render("Zoeken...") + "\n")
	}

	visible := m.filtered
	if len(visible) > 8 {
		visible = visible[:8]
	}
	for i, choice := range visible {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ "+choice.display) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+choice.display) + "\n")
		}
	}
	b.WriteString("\n" + hintStyle.Render("[Enter] Toewijzen  [Esc] Annuleren"))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Width(46)
	return boxStyle.Render(b.String())
}
