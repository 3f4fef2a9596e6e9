// Package camunda wraps the process-engine endpoints: process instances
// attached to a case, the user tasks within them, and the account
// lookups needed to assign tasks.
package camunda

import (
	"context"
	"fmt"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/client"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// Service wraps the process-engine and account endpoints.
type Service struct {
	client *client.Client
}

// NewService creates a process service on the shared client.
func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// GetProcesses fetches the process instances attached to a case.
func (s *Service) GetProcesses(ctx context.Context, zaakURL string) ([]model.KetenProces, error) {
	endpoint := "/api/camunda/fetch-process-instances?" + client.EncodeQuery("zaak_url", zaakURL)
	var processes []model.KetenProces
	if err := s.client.Get(ctx, endpoint, &processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// GetTaskContext fetches the form context of a user task. The context
// variant depends on the form key of the task; see model.TaskContextData.
func (s *Service) GetTaskContext(ctx context.Context, taskID string) (*model.TaskContextData, error) {
	var data model.TaskContextData
	if err := s.client.Get(ctx, "/api/camunda/task-data/"+taskID, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// PutTaskData submits the answers for a user task, completing it.
func (s *Service) PutTaskData(ctx context.Context, taskID string, variables map[string]any) error {
	return s.client.Put(ctx, "/api/camunda/task-data/"+taskID, variables, nil)
}

// SendMessage delivers a BPMN message to a process instance.
func (s *Service) SendMessage(ctx context.Context, form model.SendMessageForm) error {
	return s.client.Post(ctx, "/api/camunda/send-message", form, nil)
}

// ClaimTask assigns a task to a user or group.
func (s *Service) ClaimTask(ctx context.Context, form model.ClaimTaskForm) error {
	return s.client.Post(ctx, "/api/camunda/claim-task", form, nil)
}

// CancelTask cancels a running user task.
func (s *Service) CancelTask(ctx context.Context, form model.CancelTaskForm) error {
	return s.client.Post(ctx, "/api/camunda/cancel-task", form, nil)
}

// GetAccounts looks up users matching the search term.
func (s *Service) GetAccounts(ctx context.Context, search string) (*model.UserSearch, error) {
	endpoint := "/api/accounts/users?" + client.EncodeQuery("search", search)
	var result model.UserSearch
	if err := s.client.Get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUserGroups looks up groups matching the search term.
func (s *Service) GetUserGroups(ctx context.Context, search string) (*model.GroupSearch, error) {
	endpoint := "/api/accounts/groups?" + client.EncodeQuery("search", search)
	var result model.GroupSearch
	if err := s.client.Get(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCurrentUser fetches the authenticated account. A zero-valued user
// with an empty username means the session is anonymous.
func (s *Service) GetCurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := s.client.Get(ctx, "/api/accounts/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ReadDocumentURL returns the read endpoint for a document version,
// relative to the backend.
func ReadDocumentURL(bronorganisatie, identificatie string, versie int) string {
	endpoint := fmt.Sprintf("/api/dowc/%s/%s/read", bronorganisatie, identificatie)
	if versie > 0 {
		endpoint += "?" + client.EncodeQuery("versie", fmt.Sprintf("%d", versie))
	}
	return endpoint
}
