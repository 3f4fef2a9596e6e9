package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/client"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/forms"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/format"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/kownsl"
)

// AlreadySubmittedText is shown when a review request was answered
// before. The view is terminal: no form is rendered.
const AlreadySubmittedText = "U heeft deze aanvraag al beantwoord."

type reviewRequestLoadedMsg struct {
	result *kownsl.ReviewRequestResult
}

type approvalSubmittedMsg struct{}

type approvalFailedMsg struct {
	err error
}

// ApprovalModel is the standalone approval answer view: it loads the
// review request, refuses resubmission, and otherwise collects the
// accord decision through a form.
type ApprovalModel struct {
	service    *kownsl.Service
	reviewUUID string
	locale     format.Locale
	theme      Theme

	result *kownsl.ReviewRequestResult
	answer forms.ApprovalAnswer
	form   *huh.Form

	width  int
	height int

	loading    bool
	submitting bool
	finished   bool
	loginURL   string
	errText    string
}

// NewApprovalModel creates the approval view for a review request UUID.
func NewApprovalModel(service *kownsl.Service, reviewUUID string, locale format.Locale, theme Theme) *ApprovalModel {
	return &ApprovalModel{
		service:    service,
		reviewUUID: reviewUUID,
		locale:     locale,
		theme:      theme,
		loading:    true,
	}
}

// Init implements tea.Model.
func (m *ApprovalModel) Init() tea.Cmd {
	service := m.service
	reviewUUID := m.reviewUUID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := service.GetApproval(ctx, reviewUUID)
		if err != nil {
			return approvalFailedMsg{err: err}
		}
		return reviewRequestLoadedMsg{result: result}
	}
}

func (m *ApprovalModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Akkoord?").
				Affirmative("Akkoord").
				Negative("Niet akkoord").
				Value(&m.answer.Approved),
			huh.NewText().
				Title("Toelichting").
				CharLimit(forms.MaxToelichting).
				Value(&m.answer.Toelichting),
		),
	)
}

func (m *ApprovalModel) submit() tea.Cmd {
	service := m.service
	reviewUUID := m.reviewUUID
	form := m.answer.Form()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := service.PostApproval(ctx, reviewUUID, form); err != nil {
			return approvalFailedMsg{err: err}
		}
		return approvalSubmittedMsg{}
	}
}

// SetSize sets the terminal dimensions.
func (m *ApprovalModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model.
func (m *ApprovalModel) Update(msg tea.Msg) (*ApprovalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewRequestLoadedMsg:
		m.loading = false
		m.result = msg.result
		if !msg.result.Submitted {
			m.form = m.newForm()
			return m, m.form.Init()
		}
		return m, nil

	case approvalSubmittedMsg:
		m.submitting = false
		m.finished = true
		return m, nil

	case approvalFailedMsg:
		m.loading = false
		m.submitting = false
		if client.IsNotAuthenticated(msg.err) {
			m.loginURL = client.LoginURL("/kownsl/review-request/approval?uuid=" + m.reviewUUID)
			return m, nil
		}
		m.errText = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.finished || (m.result != nil && m.result.Submitted) || m.loginURL != "" {
			if msg.String() == "q" || msg.String() == "enter" || msg.String() == "esc" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if m.form != nil && !m.submitting {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		if m.form.State == huh.StateCompleted {
			if err := m.answer.Validate(); err != nil {
				m.errText = err.Error()
				m.form = m.newForm()
				return m, m.form.Init()
			}
			m.submitting = true
			return m, m.submit()
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *ApprovalModel) View() string {
	titleStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Primary)
	subStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	errStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Danger)
	hintStyle := m.theme.Renderer.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Accordering") + "\n\n")

	switch {
	case m.loading:
		b.WriteString(subStyle.Render("Aanvraag laden..."))
	case m.loginURL != "":
		b.WriteString(subStyle.Render("U bent niet aangemeld. Meld u aan via:") + "\n")
		b.WriteString(m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Underline(true).Render(m.loginURL) + "\n\n")
		b.WriteString(hintStyle.Render("[q] Sluiten"))
	case m.result != nil && m.result.Submitted:
		b.WriteString(subStyle.Render(AlreadySubmittedText) + "\n\n")
		b.WriteString(hintStyle.Render("[q] Sluiten"))
	case m.finished:
		b.WriteString(m.theme.Renderer.NewStyle().Foreground(m.theme.Success).Render("Uw beoordeling is verstuurd.") + "\n\n")
		b.WriteString(hintStyle.Render("[q] Sluiten"))
	case m.result != nil:
		if zaak := m.result.Request.Zaak; zaak.Identificatie != "" {
			b.WriteString(subStyle.Render("Zaak: "+zaak.Identificatie+"  "+zaak.Omschrijving) + "\n\n")
		}
		if len(m.result.Request.Reviews) > 0 {
			b.WriteString(subStyle.Render(m.result.Request.ReviewType.Title()) + "\n")
			b.WriteString(RenderTable(kownsl.ReviewTable(m.result.Request, m.locale), m.theme, maxWidth(m.width)))
			b.WriteString("\n")
		}
		if m.form != nil {
			b.WriteString(m.form.View())
		}
		if m.submitting {
			b.WriteString("\n" + hintStyle.Render("Versturen..."))
		}
	}

	if m.errText != "" {
		b.WriteString("\n" + errStyle.Render(m.errText))
	}
	return b.String()
}

func maxWidth(width int) int {
	if width <= 0 || width > 100 {
		return 100
	}
	return width
}
