package model

import (
	"fmt"
	"time"
)

// Assignee is the user or group a process task is assigned to. A user
// assignee has a username; a group assignee has a name.
type Assignee struct {
	ID        int    `json:"id,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"`
}

// DisplayName returns a human-readable name for the assignee.
func (a Assignee) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.FirstName == "" && a.LastName == "" {
		return a.Username
	}
	return a.FirstName + " " + a.LastName
}

// Task is a user task in a Camunda process instance.
type Task struct {
	ID         string    `json:"id"`
	ExecuteURL string    `json:"executeUrl"`
	Name       string    `json:"name"`
	Created    time.Time `json:"created"`
	HasForm    bool      `json:"hasForm"`
	Assignee   *Assignee `json:"assignee"`
}

// Validate checks if the task data is logically valid.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task ID cannot be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("task name cannot be empty")
	}
	return nil
}

// SubProcess is a process instance nested under a main process.
type SubProcess struct {
	ID           string       `json:"id"`
	DefinitionID string       `json:"definitionId"`
	Title        string       `json:"title"`
	Tasks        []Task       `json:"tasks"`
	SubProcesses []SubProcess `json:"subProcesses,omitempty"`
}

// KetenProces is a top-level process instance attached to a case, with
// its direct tasks and nested sub-processes.
type KetenProces struct {
	ID           string       `json:"id"`
	DefinitionID string       `json:"definitionId"`
	Title        string       `json:"title"`
	Messages     []string     `json:"messages,omitempty"`
	Tasks        []Task       `json:"tasks"`
	SubProcesses []SubProcess `json:"subProcesses"`
}

// SendMessageForm tells the process engine which message to deliver to
// a process instance.
type SendMessageForm struct {
	ProcessInstanceID string `json:"processInstanceId"`
	Message           string `json:"message"`
}

// ClaimTaskForm assigns a task to a user or group.
type ClaimTaskForm struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee"`
	Delegate string `json:"delegate,omitempty"`
}

// CancelTaskForm cancels a running task.
type CancelTaskForm struct {
	Task string `json:"task"`
}
