package model

import (
	"encoding/json"
	"fmt"
)

// FormType tags the shape of a task's dynamic form context.
type FormType string

const (
	FormConfigureAdviceRequest   FormType = "zac:configureAdviceRequest"
	FormConfigureApprovalRequest FormType = "zac:configureApprovalRequest"
	FormDocumentSelect           FormType = "zac:documentSelectie"
	FormUserSelect               FormType = "zac:gebruikerSelectie"
	FormValidSignConfigure       FormType = "zac:validSign:configurePackage"
	FormDoRedirect               FormType = "zac:doRedirect"
)

// IsValid returns true if the form type is a recognized value. Unknown
// tags are still decoded, into a DynamicFormContext.
func (f FormType) IsValid() bool {
	switch f {
	case FormConfigureAdviceRequest, FormConfigureApprovalRequest,
		FormDocumentSelect, FormUserSelect, FormValidSignConfigure, FormDoRedirect:
		return true
	}
	return false
}

// IsReviewConfiguration returns true for the two review-request
// configuration forms.
func (f FormType) IsReviewConfiguration() bool {
	return f == FormConfigureAdviceRequest || f == FormConfigureApprovalRequest
}

// TaskContext is the variant payload of a TaskContextData. Exactly one
// concrete type backs it, selected by the form tag.
type TaskContext interface {
	isTaskContext()
}

// ZaakInformatie is the case summary shown alongside a task form.
type ZaakInformatie struct {
	Omschrijving string `json:"omschrijving"`
	Toelichting  string `json:"toelichting"`
}

// TaskDocument is a selectable document inside a task context.
type TaskDocument struct {
	URL            string `json:"url"`
	Beschrijving   string `json:"beschrijving"`
	Bestandsnaam   string `json:"bestandsnaam"`
	Bestandsomvang int64  `json:"bestandsomvang,omitempty"`
	ReadURL        string `json:"readUrl"`
	Versie         int    `json:"versie,omitempty"`
}

// ReviewConfigContext configures an advice or approval request: which
// documents to review and who reviews them in which order.
type ReviewConfigContext struct {
	Title          string         `json:"title,omitempty"`
	Documents      []TaskDocument `json:"documents"`
	ZaakInformatie ZaakInformatie `json:"zaakInformatie"`
	ReviewType     ReviewType     `json:"reviewType"`
}

func (ReviewConfigContext) isTaskContext() {}

// DocumentSelectContext asks the user to pick documents.
type DocumentSelectContext struct {
	Documents []TaskDocument `json:"documents"`
}

func (DocumentSelectContext) isTaskContext() {}

// UserSelectContext asks the user to pick an account.
type UserSelectContext struct {
	Title string `json:"title,omitempty"`
}

func (UserSelectContext) isTaskContext() {}

// ValidSignContext configures a digital signing package.
type ValidSignContext struct {
	Documents []TaskDocument `json:"documents"`
}

func (ValidSignContext) isTaskContext() {}

// RedirectContext tells the client to open an external URL instead of
// rendering a form.
type RedirectContext struct {
	RedirectTo      string `json:"redirectTo"`
	OpenInNewWindow bool   `json:"openInNewWindow"`
}

func (RedirectContext) isTaskContext() {}

// FormField is one field of a backend-defined dynamic form.
type FormField struct {
	Name      string     `json:"name"`
	Label     string     `json:"label"`
	InputType string     `json:"inputType"` // "enum", "string", "int", "boolean", "date"
	Value     any        `json:"value"`
	Enum      [][]string `json:"enum,omitempty"`
}

// DynamicFormContext is the catch-all variant: a flat list of form
// fields rendered generically. Used for every unrecognized form tag.
type DynamicFormContext struct {
	Title      string      `json:"title,omitempty"`
	FormFields []FormField `json:"formFields"`
}

func (DynamicFormContext) isTaskContext() {}

// TaskContextData is the dynamic form payload of a single task. Its
// Context shape depends on the Form tag.
type TaskContextData struct {
	Form    FormType
	Task    Task
	Context TaskContext
}

// UnmarshalJSON decodes the envelope and dispatches the context payload
// on the form tag. Unknown tags decode into DynamicFormContext so the
// caller can always render a generic fallback.
func (t *TaskContextData) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Form    FormType        `json:"form"`
		Task    Task            `json:"task"`
		Context json.RawMessage `json:"context"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to decode task context envelope: %w", err)
	}

	t.Form = envelope.Form
	t.Task = envelope.Task

	if len(envelope.Context) == 0 {
		t.Context = DynamicFormContext{}
		return nil
	}

	decode := func(v TaskContext) error {
		if err := json.Unmarshal(envelope.Context, v); err != nil {
			return fmt.Errorf("failed to decode %q context: %w", envelope.Form, err)
		}
		return nil
	}

	switch envelope.Form {
	case FormConfigureAdviceRequest, FormConfigureApprovalRequest:
		var ctx ReviewConfigContext
		if err := decode(&ctx); err != nil {
			return err
		}
		if ctx.ReviewType == "" {
			if envelope.Form == FormConfigureApprovalRequest {
				ctx.ReviewType = ReviewTypeApproval
			} else {
				ctx.ReviewType = ReviewTypeAdvice
			}
		}
		t.Context = ctx
	case FormDocumentSelect:
		var ctx DocumentSelectContext
		if err := decode(&ctx); err != nil {
			return err
		}
		t.Context = ctx
	case FormUserSelect:
		var ctx UserSelectContext
		if err := decode(&ctx); err != nil {
			return err
		}
		t.Context = ctx
	case FormValidSignConfigure:
		var ctx ValidSignContext
		if err := decode(&ctx); err != nil {
			return err
		}
		t.Context = ctx
	case FormDoRedirect:
		var ctx RedirectContext
		if err := decode(&ctx); err != nil {
			return err
		}
		t.Context = ctx
	default:
		var ctx DynamicFormContext
		if err := decode(&ctx); err != nil {
			return err
		}
		t.Context = ctx
	}

	return nil
}

// MarshalJSON re-encodes the envelope in its wire shape.
func (t TaskContextData) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Form    FormType    `json:"form"`
		Task    Task        `json:"task"`
		Context TaskContext `json:"context"`
	}{t.Form, t.Task, t.Context})
}
