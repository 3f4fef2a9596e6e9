package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/camunda"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/client"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/format"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/forms"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

type taskSubmittedMsg struct{}

type taskSubmitFailedMsg struct {
	err error
}

// taskFormMode selects the rendering and input handling of the modal.
type taskFormMode int

const (
	modeAssignment taskFormMode = iota
	modeDocumentSelect
	modeUserSelect
	modeRedirect
	modeDynamic
)

// assignmentSection is the focused part of the review assignment form.
type assignmentSection int

const (
	sectionDocuments assignmentSection = iota
	sectionSteps
	sectionToelichting
)

// TaskFormModel renders and submits the form of one user task. The
// layout follows the form key of the task context: review assignment,
// document selection, user selection, a redirect notice, or the
// generic field-per-field fallback.
type TaskFormModel struct {
	service *camunda.Service
	data    *model.TaskContextData
	user    model.User
	theme   Theme

	mode taskFormMode

	// Review assignment state.
	assignment  *forms.Assignment
	section     assignmentSection
	docCursor   int
	stepCursor  int
	deadline    string
	editingDate bool
	toelichting textarea.Model
	picker      *PickerModel
	showPicker  bool

	// Document selection state.
	docChoices []forms.DocumentChoice

	// Dynamic form state.
	fields      []model.FormField
	fieldValues []string
	fieldCursor int

	width  int
	height int

	submitting bool
	errText    string
	done       bool
	status     string
}

// NewTaskFormModel builds the modal for a fetched task context.
func NewTaskFormModel(service *camunda.Service, data *model.TaskContextData, user model.User, theme Theme) *TaskFormModel {
	m := &TaskFormModel{
		service: service,
		data:    data,
		user:    user,
		theme:   theme,
	}

	switch ctx := data.Context.(type) {
	case model.ReviewConfigContext:
		m.mode = modeAssignment
		m.assignment = forms.NewAssignment(ctx)
		ta := textarea.New()
		ta.Placeholder = "Toelichting voor de beoordelaars..."
		ta.CharLimit = forms.MaxToelichting
		ta.SetWidth(50)
		ta.SetHeight(4)
		m.toelichting = ta
	case model.DocumentSelectContext:
		m.mode = modeDocumentSelect
		for _, doc := range ctx.Documents {
			m.docChoices = append(m.docChoices, forms.DocumentChoice{Document: doc})
		}
	case model.ValidSignContext:
		m.mode = modeDocumentSelect
		for _, doc := range ctx.Documents {
			m.docChoices = append(m.docChoices, forms.DocumentChoice{Document: doc})
		}
	case model.UserSelectContext:
		m.mode = modeUserSelect
		m.picker = NewPickerModel(service, theme)
		m.showPicker = true
	case model.RedirectContext:
		m.mode = modeRedirect
	default:
		m.mode = modeDynamic
		if dyn, ok := data.Context.(model.DynamicFormContext); ok {
			m.fields = dyn.FormFields
			m.fieldValues = make([]string, len(dyn.FormFields))
			for i, field := range dyn.FormFields {
				if s, ok := field.Value.(string); ok {
					m.fieldValues[i] = s
				}
			}
		}
	}
	return m
}

// Init implements tea.Model.
func (m *TaskFormModel) Init() tea.Cmd {
	if m.mode == modeUserSelect && m.picker != nil {
		return m.picker.Init()
	}
	return nil
}

// SetSize sets the modal dimensions.
func (m *TaskFormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.picker != nil {
		m.picker.SetSize(width, height)
	}
}

// IsDone reports whether the modal was closed.
func (m *TaskFormModel) IsDone() bool {
	return m.done
}

// Status returns the closing status line for the dashboard.
func (m *TaskFormModel) Status() string {
	return m.status
}

func (m *TaskFormModel) submit(variables map[string]any) tea.Cmd {
	service := m.service
	taskID := m.data.Task.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := service.PutTaskData(ctx, taskID, variables); err != nil {
			return taskSubmitFailedMsg{err: err}
		}
		return taskSubmittedMsg{}
	}
}

// Update implements tea.Model.
func (m *TaskFormModel) Update(msg tea.Msg) (*TaskFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case taskSubmittedMsg:
		if m.assignment != nil {
			m.assignment.MarkSuccess()
		}
		m.done = true
		m.status = fmt.Sprintf("Taak %q afgerond", m.data.Task.Name)
		return m, nil

	case taskSubmitFailedMsg:
		m.submitting = false
		if apiErr, ok := client.AsAPIError(msg.err); ok && m.assignment != nil {
			m.assignment.SetSubmitFailed(apiErr.FieldErrors)
			m.assignment.ResumeEditing()
		}
		m.errText = msg.err.Error()
		return m, nil
	}

	if m.submitting {
		return m, nil
	}

	switch m.mode {
	case modeAssignment:
		return m.updateAssignment(msg)
	case modeDocumentSelect:
		return m.updateDocumentSelect(msg)
	case modeUserSelect:
		return m.updateUserSelect(msg)
	case modeRedirect:
		return m.updateRedirect(msg)
	default:
		return m.updateDynamic(msg)
	}
}

func (m *TaskFormModel) updateAssignment(msg tea.Msg) (*TaskFormModel, tea.Cmd) {
	if m.showPicker && m.picker != nil {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if m.picker.IsDone() {
			if choice := m.picker.Choice(); choice != "" {
				step := &m.assignment.Steps[m.stepCursor]
				step.Users = append(step.Users, choice)
			}
			m.showPicker = false
			m.picker = nil
		}
		return m, cmd
	}

	if m.editingDate {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc":
				m.editingDate = false
				m.deadline = ""
			case "enter":
				parsed, err := time.Parse(format.ISODate, m.deadline)
				if err != nil {
					m.errText = "Datum moet als JJJJ-MM-DD worden ingevoerd."
					return m, nil
				}
				m.assignment.Steps[m.stepCursor].Deadline = parsed
				m.editingDate = false
				m.deadline = ""
				m.errText = ""
			case "backspace":
				if len(m.deadline) > 0 {
					m.deadline = m.deadline[:len(m.deadline)-1]
				}
			default:
				if len(key.String()) == 1 {
					m.deadline += key.String()
				}
			}
		}
		return m, nil
	}

	if m.section == sectionToelichting {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc":
				m.done = true
				return m, nil
			case "tab":
				m.assignment.Toelichting = m.toelichting.Value()
				m.section = sectionDocuments
				m.toelichting.Blur()
				return m, nil
			case "ctrl+s":
				m.assignment.Toelichting = m.toelichting.Value()
				return m, m.submitAssignment()
			}
		}
		var cmd tea.Cmd
		m.toelichting, cmd = m.toelichting.Update(msg)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc":
		m.done = true
	case "tab":
		switch m.section {
		case sectionDocuments:
			m.section = sectionSteps
		case sectionSteps:
			m.section = sectionToelichting
			m.toelichting.Focus()
			return m, textarea.Blink
		}
	case "j", "down":
		if m.section == sectionDocuments && m.docCursor < len(m.assignment.Documents)-1 {
			m.docCursor++
		}
		if m.section == sectionSteps && m.stepCursor < len(m.assignment.Steps)-1 {
			m.stepCursor++
		}
	case "k", "up":
		if m.section == sectionDocuments && m.docCursor > 0 {
			m.docCursor--
		}
		if m.section == sectionSteps && m.stepCursor > 0 {
			m.stepCursor--
		}
	case " ":
		if m.section == sectionDocuments {
			m.assignment.ToggleDocument(m.docCursor)
		}
		if m.section == sectionSteps {
			m.assignment.Steps[m.stepCursor].ExtraStep = !m.assignment.Steps[m.stepCursor].ExtraStep
		}
	case "u":
		if m.section == sectionSteps {
			picker := NewPickerModel(m.service, m.theme)
			picker.SetSize(m.width, m.height)
			m.picker = picker
			m.showPicker = true
			return m, picker.Init()
		}
	case "d":
		if m.section == sectionSteps {
			m.editingDate = true
			m.deadline = ""
		}
	case "+":
		if m.section == sectionSteps {
			if m.assignment.AddStep() {
				m.stepCursor = len(m.assignment.Steps) - 1
			}
		}
	case "-":
		if m.section == sectionSteps {
			if m.assignment.RemoveStep(m.stepCursor) && m.stepCursor >= len(m.assignment.Steps) {
				m.stepCursor = len(m.assignment.Steps) - 1
			}
		}
	case "ctrl+s":
		return m, m.submitAssignment()
	}
	return m, nil
}

func (m *TaskFormModel) submitAssignment() tea.Cmd {
	if err := m.assignment.Validate(time.Now()); err != nil {
		m.errText = "Formulier is niet compleet."
		return nil
	}
	m.errText = ""
	m.submitting = true
	m.assignment.MarkSubmitting()
	payload := m.assignment.BuildPayload()
	steps := make([]map[string]any, len(payload.AssignedUsers))
	for i, step := range payload.AssignedUsers {
		steps[i] = map[string]any{"deadline": step.Deadline, "users": step.Users}
	}
	return m.submit(map[string]any{
		"form":              string(payload.Form),
		"assignedUsers":     steps,
		"selectedDocuments": payload.SelectedDocuments,
		"toelichting":       payload.Toelichting,
	})
}

func (m *TaskFormModel) updateDocumentSelect(msg tea.Msg) (*TaskFormModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc":
		m.done = true
	case "j", "down":
		if m.docCursor < len(m.docChoices)-1 {
			m.docCursor++
		}
	case "k", "up":
		if m.docCursor > 0 {
			m.docCursor--
		}
	case " ":
		if m.docCursor >= 0 && m.docCursor < len(m.docChoices) {
			m.docChoices[m.docCursor].Selected = !m.docChoices[m.docCursor].Selected
		}
	case "ctrl+s", "enter":
		var selected []string
		for _, choice := range m.docChoices {
			if choice.Selected {
				selected = append(selected, choice.Document.URL)
			}
		}
		if len(selected) == 0 {
			m.errText = "Selecteer minimaal één document."
			return m, nil
		}
		m.errText = ""
		m.submitting = true
		return m, m.submit(map[string]any{"selectedDocuments": selected})
	}
	return m, nil
}

func (m *TaskFormModel) updateUserSelect(msg tea.Msg) (*TaskFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if m.picker.IsDone() {
		choice := m.picker.Choice()
		if choice == "" {
			m.done = true
			return m, nil
		}
		m.submitting = true
		return m, m.submit(map[string]any{"assignedUsers": []string{choice}})
	}
	return m, cmd
}

func (m *TaskFormModel) updateRedirect(msg tea.Msg) (*TaskFormModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	ctx := m.data.Context.(model.RedirectContext)
	switch key.String() {
	case "esc", "enter":
		m.done = true
	case "y":
		if err := clipboard.WriteAll(ctx.RedirectTo); err == nil {
			m.errText = ""
			m.status = "URL gekopieerd"
		}
	}
	return m, nil
}

func (m *TaskFormModel) updateDynamic(msg tea.Msg) (*TaskFormModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc":
		m.done = true
	case "tab", "down":
		if m.fieldCursor < len(m.fields)-1 {
			m.fieldCursor++
		}
	case "shift+tab", "up":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "backspace":
		if len(m.fields) == 0 {
			return m, nil
		}
		if v := m.fieldValues[m.fieldCursor]; len(v) > 0 {
			m.fieldValues[m.fieldCursor] = v[:len(v)-1]
		}
	case "ctrl+s":
		variables := make(map[string]any, len(m.fields))
		for i, field := range m.fields {
			variables[field.Name] = m.fieldValues[i]
		}
		m.submitting = true
		return m, m.submit(variables)
	default:
		if len(m.fields) > 0 && len(key.String()) == 1 {
			m.fieldValues[m.fieldCursor] += key.String()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *TaskFormModel) View() string {
	if m.showPicker && m.picker != nil {
		return m.picker.View()
	}

	titleStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	hintStyle := m.theme.Renderer.NewStyle().Faint(true)
	errStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Danger)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.data.Task.Name) + "\n\n")

	switch m.mode {
	case modeAssignment:
		b.WriteString(m.renderAssignment())
		b.WriteString("\n" + hintStyle.Render("[Tab] Sectie  [Spatie] Aanvinken  [u] Gebruiker  [d] Deadline  [+/-] Stap  [Ctrl+S] Versturen  [Esc] Sluiten"))
	case modeDocumentSelect:
		b.WriteString(m.renderDocumentSelect())
		b.WriteString("\n" + hintStyle.Render("[Spatie] Aanvinken  [Enter] Versturen  [Esc] Sluiten"))
	case modeUserSelect:
		b.WriteString(m.picker.View())
	case modeRedirect:
		ctx := m.data.Context.(model.RedirectContext)
		linkStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Underline(true)
		b.WriteString("Deze taak wordt buiten dit scherm afgehandeld:\n\n")
		b.WriteString(linkStyle.Render(ctx.RedirectTo) + "\n")
		b.WriteString("\n" + hintStyle.Render("[y] Kopieer URL  [Enter/Esc] Sluiten"))
	default:
		b.WriteString(m.renderDynamic())
		b.WriteString("\n" + hintStyle.Render("[Tab] Volgend veld  [Ctrl+S] Versturen  [Esc] Sluiten"))
	}

	if m.submitting {
		b.WriteString("\n" + hintStyle.Render("Versturen..."))
	}
	if m.errText != "" {
		b.WriteString("\n" + errStyle.Render(m.errText))
	}

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)
	return boxStyle.Render(b.String())
}

func (m *TaskFormModel) renderAssignment() string {
	sectionStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Secondary)
	focusStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	itemStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	selectedStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary)
	errStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Danger)

	header := func(section assignmentSection, label string) string {
		if m.section == section {
			return focusStyle.Render("▸ " + label)
		}
		return sectionStyle.Render("  " + label)
	}

	var b strings.Builder
	b.WriteString(header(sectionDocuments, "Documenten") + "\n")
	for i, choice := range m.assignment.Documents {
		check := "[ ]"
		if choice.Selected {
			check = "[x]"
		}
		line := fmt.Sprintf("  %s %s", check, choice.Document.Bestandsnaam)
		if m.section == sectionDocuments && i == m.docCursor {
			b.WriteString(selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString(itemStyle.Render(line) + "\n")
		}
	}
	for _, msg := range m.assignment.FieldErrors("documents") {
		b.WriteString(errStyle.Render("  "+msg) + "\n")
	}

	b.WriteString("\n" + header(sectionSteps, "Stappen") + "\n")
	for i, step := range m.assignment.Steps {
		deadline := "(geen deadline)"
		if !step.Deadline.IsZero() {
			deadline = format.Date(step.Deadline)
		}
		users := strings.Join(step.Users, ", ")
		if users == "" {
			users = "(niemand)"
		}
		extra := ""
		if step.ExtraStep {
			extra = "  [+stap]"
		}
		line := fmt.Sprintf("  %d. %s  %s%s", i+1, deadline, users, extra)
		if m.section == sectionSteps && i == m.stepCursor {
			b.WriteString(selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString(itemStyle.Render(line) + "\n")
		}
		for _, msg := range m.assignment.FieldErrors(fmt.Sprintf("assignedUsers.%d", i)) {
			b.WriteString(errStyle.Render("     "+msg) + "\n")
		}
	}
	for _, msg := range m.assignment.FieldErrors("assignedUsers") {
		b.WriteString(errStyle.Render("  "+msg) + "\n")
	}

	if m.editingDate {
		b.WriteString("\n" + itemStyle.Render("Deadline (JJJJ-MM-DD): ") + selectedStyle.Render(m.deadline+"█") + "\n")
	}

	b.WriteString("\n" + header(sectionToelichting, "Toelichting") + "\n")
	if m.section == sectionToelichting {
		b.WriteString(m.toelichting.View() + "\n")
	} else if m.assignment.Toelichting != "" {
		b.WriteString(itemStyle.Render("  "+truncate(m.assignment.Toelichting, 60)) + "\n")
	}
	for _, msg := range m.assignment.FieldErrors("toelichting") {
		b.WriteString(errStyle.Render("  "+msg) + "\n")
	}

	return b.String()
}

func (m *TaskFormModel) renderDocumentSelect() string {
	itemStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	selectedStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary)

	var b strings.Builder
	for i, choice := range m.docChoices {
		check := "[ ]"
		if choice.Selected {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", check, choice.Document.Bestandsnaam)
		if i == m.docCursor {
			b.WriteString(selectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+line) + "\n")
		}
	}
	return b.String()
}

func (m *TaskFormModel) renderDynamic() string {
	labelStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Secondary)
	valueStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	focusStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary)

	if len(m.fields) == 0 {
		return valueStyle.Render("Dit formulier heeft geen velden.") + "\n"
	}

	var b strings.Builder
	for i, field := range m.fields {
		label := field.Label
		if label == "" {
			label = field.Name
		}
		b.WriteString(labelStyle.Render(label+":") + " ")
		if i == m.fieldCursor {
			b.WriteString(focusStyle.Render(m.fieldValues[i]+"█") + "\n")
		} else {
			b.WriteString(valueStyle.Render(m.fieldValues[i]) + "\n")
		}
	}
	return b.String()
}
