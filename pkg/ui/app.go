package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TaskListProgram wraps TaskListModel to implement tea.Model for
// standalone use.
type TaskListProgram struct {
	dashboard *TaskListModel
}

// NewTaskListProgram creates the program wrapper.
func NewTaskListProgram(dashboard *TaskListModel) *TaskListProgram {
	return &TaskListProgram{dashboard: dashboard}
}

// Init implements tea.Model.
func (p *TaskListProgram) Init() tea.Cmd {
	return p.dashboard.Init()
}

// Update implements tea.Model.
func (p *TaskListProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		p.dashboard.SetSize(size.Width, size.Height)
		return p, nil
	}
	var cmd tea.Cmd
	p.dashboard, cmd = p.dashboard.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p *TaskListProgram) View() string {
	return p.dashboard.View()
}

// ApprovalProgram wraps ApprovalModel to implement tea.Model.
type ApprovalProgram struct {
	view *ApprovalModel
}

// NewApprovalProgram creates the program wrapper.
func NewApprovalProgram(view *ApprovalModel) *ApprovalProgram {
	return &ApprovalProgram{view: view}
}

// Init implements tea.Model.
func (p *ApprovalProgram) Init() tea.Cmd {
	return p.view.Init()
}

// Update implements tea.Model.
func (p *ApprovalProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		p.view.SetSize(size.Width, size.Height)
		return p, nil
	}
	var cmd tea.Cmd
	p.view, cmd = p.view.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p *ApprovalProgram) View() string {
	return p.view.View()
}
