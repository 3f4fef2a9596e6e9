package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/camunda"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/format"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// PollInterval is how often the process list is refreshed while the
// dashboard is open.
const PollInterval = 5 * time.Second

type processesLoadedMsg struct {
	processes []model.KetenProces
	user      *model.User
}

type taskContextLoadedMsg struct {
	data *model.TaskContextData
}

type taskActionDoneMsg struct {
	status string
}

type pollTickMsg struct{}

type errMsg struct {
	err error
}

// TaskListModel is the process dashboard of a single case: every user
// task of the main process instance and its sub-processes, newest
// first, with the actions the signed-in user is allowed to take.
type TaskListModel struct {
	service *camunda.Service
	zaakURL string
	locale  format.Locale
	theme   Theme

	user      model.User
	processes []model.KetenProces
	tasks     []model.Task
	loaded    bool

	cursor int
	width  int
	height int

	loading bool
	spin    spinner.Model
	status  string
	err     error

	taskForm     *TaskFormModel
	showTaskForm bool

	picker     *PickerModel
	showPicker bool

	help HelpModel

	quitting bool
}

// NewTaskListModel creates the dashboard for the case behind zaakURL.
func NewTaskListModel(service *camunda.Service, zaakURL string, locale format.Locale, theme Theme) *TaskListModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Renderer.NewStyle().Foreground(theme.Primary)
	return &TaskListModel{
		service: service,
		zaakURL: zaakURL,
		locale:  locale,
		theme:   theme,
		loading: true,
		spin:    spin,
		help:    NewHelpModel(theme),
	}
}

// Init implements tea.Model.
func (m *TaskListModel) Init() tea.Cmd {
	return tea.Batch(m.loadProcesses(), m.pollTick(), m.spin.Tick)
}

// loadProcesses fetches the signed-in user and the process instances
// concurrently.
func (m *TaskListModel) loadProcesses() tea.Cmd {
	service := m.service
	zaakURL := m.zaakURL
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var (
			processes []model.KetenProces
			user      *model.User
		)
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			processes, err = service.GetProcesses(ctx, zaakURL)
			return err
		})
		g.Go(func() error {
			var err error
			user, err = service.GetCurrentUser(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return errMsg{err: err}
		}
		return processesLoadedMsg{processes: processes, user: user}
	}
}

func (m *TaskListModel) pollTick() tea.Cmd {
	return tea.Tick(PollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func (m *TaskListModel) openTask(taskID string) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		data, err := service.GetTaskContext(ctx, taskID)
		if err != nil {
			return errMsg{err: err}
		}
		return taskContextLoadedMsg{data: data}
	}
}

func (m *TaskListModel) claimTask(task model.Task, assignee string) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		form := model.ClaimTaskForm{Task: task.ID, Assignee: assignee}
		if err := service.ClaimTask(ctx, form); err != nil {
			return errMsg{err: err}
		}
		return taskActionDoneMsg{status: fmt.Sprintf("Taak %q toegewezen aan %s", task.Name, assignee)}
	}
}

func (m *TaskListModel) cancelTask(task model.Task) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := service.CancelTask(ctx, model.CancelTaskForm{Task: task.ID}); err != nil {
			return errMsg{err: err}
		}
		return taskActionDoneMsg{status: fmt.Sprintf("Taak %q geannuleerd", task.Name)}
	}
}

func (m *TaskListModel) sendMessage(processID, message string) tea.Cmd {
	service := m.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		form := model.SendMessageForm{ProcessInstanceID: processID, Message: message}
		if err := service.SendMessage(ctx, form); err != nil {
			return errMsg{err: err}
		}
		return taskActionDoneMsg{status: fmt.Sprintf("Bericht %q verstuurd", message)}
	}
}

// SelectedTask returns the task under the cursor.
func (m *TaskListModel) SelectedTask() *model.Task {
	if m.cursor >= 0 && m.cursor < len(m.tasks) {
		return &m.tasks[m.cursor]
	}
	return nil
}

// SetSize sets the terminal dimensions.
func (m *TaskListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.taskForm != nil {
		m.taskForm.SetSize(width, height)
	}
	if m.picker != nil {
		m.picker.SetSize(width, height)
	}
	m.help.SetSize(width, height)
}

// Update implements tea.Model.
func (m *TaskListModel) Update(msg tea.Msg) (*TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case processesLoadedMsg:
		m.loading = false
		m.err = nil
		m.processes = msg.processes
		if msg.user != nil {
			m.user = *msg.user
		}
		merged := camunda.MergeTaskData(msg.processes)
		// New-task detection is a between-polls signal; the first load
		// has no previous snapshot to compare against.
		var newTask *model.Task
		if m.loaded {
			newTask = camunda.FindNewTask(merged, m.tasks)
		}
		m.loaded = true
		m.tasks = merged
		if m.cursor >= len(m.tasks) {
			m.cursor = len(m.tasks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		// A task appearing right after an action is almost always
		// the follow-up step; open it without an extra keypress.
		if newTask != nil && newTask.HasForm && !m.showTaskForm && !m.showPicker {
			return m, m.openTask(newTask.ID)
		}
		return m, nil

	case pollTickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tea.Batch(m.loadProcesses(), m.pollTick())

	case taskContextLoadedMsg:
		form := NewTaskFormModel(m.service, msg.data, m.user, m.theme)
		form.SetSize(m.width, m.height)
		m.taskForm = form
		m.showTaskForm = true
		return m, form.Init()

	case taskActionDoneMsg:
		m.status = msg.status
		return m, m.loadProcesses()

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	if m.showPicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if m.picker.IsDone() {
			choice := m.picker.Choice()
			task := m.SelectedTask()
			m.showPicker = false
			m.picker = nil
			if choice != "" && task != nil {
				return m, m.claimTask(*task, choice)
			}
			return m, nil
		}
		return m, cmd
	}

	if m.showTaskForm {
		var cmd tea.Cmd
		m.taskForm, cmd = m.taskForm.Update(msg)
		if m.taskForm.IsDone() {
			m.showTaskForm = false
			m.status = m.taskForm.Status()
			m.taskForm = nil
			return m, m.loadProcesses()
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.tasks) - 1
		case "enter":
			if task := m.SelectedTask(); task != nil && task.HasForm {
				if !camunda.IsUserAllowedToExecuteTask(*task, m.user) {
					m.status = "Deze taak is aan iemand anders toegewezen."
					return m, nil
				}
				return m, m.openTask(task.ID)
			}
		case "c":
			if task := m.SelectedTask(); task != nil {
				if !camunda.IsUserAllowedToAssignTask(*task, m.user) {
					m.status = "Deze taak kan niet (opnieuw) worden toegewezen."
					return m, nil
				}
				picker := NewPickerModel(m.service, m.theme)
				picker.SetSize(m.width, m.height)
				m.picker = picker
				m.showPicker = true
				return m, picker.Init()
			}
		case "x":
			if task := m.SelectedTask(); task != nil {
				return m, m.cancelTask(*task)
			}
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if len(m.processes) > 0 {
				messages := m.processes[0].Messages
				idx := int(msg.String()[0] - '1')
				if idx < len(messages) {
					return m, m.sendMessage(m.processes[0].ID, messages[idx])
				}
			}
		case "y":
			if task := m.SelectedTask(); task != nil && task.ExecuteURL != "" {
				if err := clipboard.WriteAll(task.ExecuteURL); err == nil {
					m.status = "Taak-URL gekopieerd"
				}
			}
		case "r":
			m.loading = true
			return m, tea.Batch(m.loadProcesses(), m.spin.Tick)
		case "?":
			m.help.Show()
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *TaskListModel) View() string {
	if m.help.IsVisible() {
		return m.help.View()
	}

	base := m.renderBase()
	if m.showPicker && m.picker != nil {
		return overlayCentered(base, m.picker.View(), m.width, m.height)
	}
	if m.showTaskForm && m.taskForm != nil {
		return overlayCentered(base, m.taskForm.View(), m.width, m.height)
	}
	return base
}

func (m *TaskListModel) renderBase() string {
	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	subStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	errStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Danger)
	sepStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Border)

	title := "Ketenprocessen"
	if len(m.processes) > 0 && m.processes[0].Title != "" {
		title = m.processes[0].Title
	}
	b.WriteString(titleStyle.Render("◆ "+title) + "\n")

	if m.user.Username != "" {
		b.WriteString(subStyle.Render("Aangemeld als "+m.user.DisplayName()) + "\n")
	} else {
		b.WriteString(subStyle.Render("Niet aangemeld") + "\n")
	}
	b.WriteString(sepStyle.Render(strings.Repeat("─", max(m.width, 40))) + "\n")

	switch {
	case m.loading && len(m.tasks) == 0:
		b.WriteString(m.spin.View() + subStyle.Render("Processen laden...") + "\n")
	case m.err != nil:
		b.WriteString(errStyle.Render("Fout: "+m.err.Error()) + "\n")
	case len(m.tasks) == 0:
		b.WriteString(subStyle.Render("Geen openstaande taken.") + "\n")
	default:
		b.WriteString(m.renderTasks())
	}

	b.WriteString(sepStyle.Render(strings.Repeat("─", max(m.width, 40))) + "\n")
	if m.status != "" {
		b.WriteString(subStyle.Render(m.status) + "\n")
	}

	keyStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary)
	hintStyle := m.theme.Renderer.NewStyle().Faint(true)
	b.WriteString(keyStyle.Render("j/k") + hintStyle.Render(" nav  "))
	b.WriteString(keyStyle.Render("enter") + hintStyle.Render(" uitvoeren  "))
	b.WriteString(keyStyle.Render("c") + hintStyle.Render(" claim  "))
	b.WriteString(keyStyle.Render("x") + hintStyle.Render(" annuleren  "))
	b.WriteString(keyStyle.Render("1-9") + hintStyle.Render(" bericht  "))
	b.WriteString(keyStyle.Render("y") + hintStyle.Render(" kopieer  "))
	b.WriteString(keyStyle.Render("?") + hintStyle.Render(" help  "))
	b.WriteString(keyStyle.Render("q") + hintStyle.Render(" stoppen"))

	return b.String()
}

func (m *TaskListModel) renderTasks() string {
	var b strings.Builder

	cursorStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary)
	nameStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	selectedStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Bold(true)
	metaStyle := m.theme.Renderer.NewStyle().Faint(true)
	lockedStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Warning)

	for i, task := range m.tasks {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("▸ "))
		} else {
			b.WriteString("  ")
		}

		style := nameStyle
		if i == m.cursor {
			style = selectedStyle
		}
		b.WriteString(style.Render(truncate(task.Name, 40)))

		meta := "  " + format.Short(m.locale, task.Created)
		if task.Assignee != nil {
			meta += "  → " + task.Assignee.DisplayName()
		}
		b.WriteString(metaStyle.Render(meta))

		if !camunda.IsTaskActionableByUser(task, m.user) {
			b.WriteString(lockedStyle.Render("  (niet beschikbaar)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// overlayCentered places a modal on top of the base view.
func overlayCentered(base, modal string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	modalLines := strings.Split(modal, "\n")

	startRow := (height - len(modalLines)) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (width - maxLineWidth(modalLines)) / 2
	if startCol < 0 {
		startCol = 0
	}

	for len(baseLines) < startRow+len(modalLines) {
		baseLines = append(baseLines, "")
	}
	for i, line := range modalLines {
		baseLines[startRow+i] = strings.Repeat(" ", startCol) + line
	}
	return strings.Join(baseLines, "\n")
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := len(line); w > widest {
			widest = w
		}
	}
	return widest
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
