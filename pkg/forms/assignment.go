// Package forms holds the client-side state and validation of the task
// forms: configuring a review request across assignment steps, and
// answering an approval.
package forms

import (
	"errors"
	"fmt"
	"time"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/format"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// MaxToelichting caps the free-text explanation on submission forms.
const MaxToelichting = 4000

// State tracks where a form is in its lifecycle.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

// Step is one assignment round of a review request: who reviews, and by
// when. Steps run in order; each deadline must fall after the previous
// one.
type Step struct {
	Users     []string
	Deadline  time.Time
	ExtraStep bool
}

// DocumentChoice pairs a selectable document with its checkbox state.
type DocumentChoice struct {
	Document model.TaskDocument
	Selected bool
}

// Assignment is the review-request configuration form: a set of
// document checkboxes and an ordered list of assignment steps.
type Assignment struct {
	ReviewType model.ReviewType
	Documents  []DocumentChoice
	Steps      []Step

	Toelichting string

	state       State
	fieldErrors map[string][]string
}

// NewAssignment builds the form for a review configuration context,
// with every document unchecked and a single empty step.
func NewAssignment(ctx model.ReviewConfigContext) *Assignment {
	choices := make([]DocumentChoice, len(ctx.Documents))
	for i, doc := range ctx.Documents {
		choices[i] = DocumentChoice{Document: doc}
	}
	return &Assignment{
		ReviewType: ctx.ReviewType,
		Documents:  choices,
		Steps:      []Step{{}},
		state:      StateEditing,
	}
}

// State returns the lifecycle state of the form.
func (a *Assignment) State() State {
	return a.state
}

// ToggleDocument flips the checkbox of the document at index i.
func (a *Assignment) ToggleDocument(i int) {
	if i < 0 || i >= len(a.Documents) {
		return
	}
	a.Documents[i].Selected = !a.Documents[i].Selected
}

// SelectedDocuments returns the checked document URLs in their original
// listing order, regardless of toggle order.
func (a *Assignment) SelectedDocuments() []string {
	var urls []string
	for _, choice := range a.Documents {
		if choice.Selected {
			urls = append(urls, choice.Document.URL)
		}
	}
	return urls
}

// CanAddStep reports whether another assignment step may be appended:
// only when the last step asked for one.
func (a *Assignment) CanAddStep() bool {
	return len(a.Steps) > 0 && a.Steps[len(a.Steps)-1].ExtraStep
}

// AddStep appends an empty assignment step when the last step asked for
// one.
func (a *Assignment) AddStep() bool {
	if !a.CanAddStep() {
		return false
	}
	a.Steps = append(a.Steps, Step{})
	return true
}

// RemoveStep deletes the step at index i. The first step cannot be
// removed; a review request needs at least one assignment round.
func (a *Assignment) RemoveStep(i int) bool {
	if i <= 0 || i >= len(a.Steps) {
		return false
	}
	a.Steps = append(a.Steps[:i], a.Steps[i+1:]...)
	return true
}

// MinDate returns the earliest selectable deadline for step i: the day
// after the previous step's deadline, or today for the first step.
// Consecutive deadlines can never collide.
func (a *Assignment) MinDate(i int, today time.Time) time.Time {
	day := today.Truncate(24 * time.Hour)
	if i <= 0 || i > len(a.Steps) {
		return day
	}
	prev := a.Steps[i-1].Deadline
	if prev.IsZero() {
		return day
	}
	return prev.AddDate(0, 0, 1)
}

// Validate checks the form and records per-field errors. It returns nil
// when the form may be submitted.
func (a *Assignment) Validate(today time.Time) error {
	a.fieldErrors = map[string][]string{}

	if len(a.SelectedDocuments()) == 0 {
		a.addFieldError("documents", "Selecteer minimaal één document.")
	}
	if len(a.Toelichting) > MaxToelichting {
		a.addFieldError("toelichting", fmt.Sprintf("Toelichting is langer dan %d tekens.", MaxToelichting))
	}
	for i, step := range a.Steps {
		field := fmt.Sprintf("assignedUsers.%d", i)
		if len(step.Users) == 0 {
			a.addFieldError(field, "Selecteer minimaal één gebruiker of groep.")
		}
		if step.Deadline.IsZero() {
			a.addFieldError(field, "Deadline is verplicht.")
		} else if step.Deadline.Before(a.MinDate(i, today)) {
			a.addFieldError(field, "Deadline valt voor de vroegst toegestane datum.")
		}
	}

	if len(a.fieldErrors) > 0 {
		return errors.New("form is incomplete")
	}
	return nil
}

// FieldErrors returns the per-field messages recorded by the last
// Validate or SetSubmitFailed call.
func (a *Assignment) FieldErrors(field string) []string {
	return a.fieldErrors[field]
}

func (a *Assignment) addFieldError(field, message string) {
	if a.fieldErrors == nil {
		a.fieldErrors = map[string][]string{}
	}
	a.fieldErrors[field] = append(a.fieldErrors[field], message)
}

// AssignedStep is one wire-format assignment round.
type AssignedStep struct {
	Deadline string   `json:"deadline"`
	Users    []string `json:"users"`
}

// Payload is the review-request configuration submitted as task data.
type Payload struct {
	Form              model.FormType `json:"form"`
	AssignedUsers     []AssignedStep `json:"assignedUsers"`
	SelectedDocuments []string       `json:"selectedDocuments"`
	Toelichting       string         `json:"toelichting"`
}

// BuildPayload converts the validated form into its submission payload.
func (a *Assignment) BuildPayload() Payload {
	form := model.FormConfigureAdviceRequest
	if a.ReviewType == model.ReviewTypeApproval {
		form = model.FormConfigureApprovalRequest
	}

	steps := make([]AssignedStep, len(a.Steps))
	for i, step := range a.Steps {
		steps[i] = AssignedStep{
			Deadline: format.Date(step.Deadline),
			Users:    step.Users,
		}
	}

	return Payload{
		Form:              form,
		AssignedUsers:     steps,
		SelectedDocuments: a.SelectedDocuments(),
		Toelichting:       a.Toelichting,
	}
}

// MarkSubmitting moves the form into the submitting state.
func (a *Assignment) MarkSubmitting() {
	a.state = StateSubmitting
}

// MarkSuccess marks the submission as accepted. The form is terminal.
func (a *Assignment) MarkSuccess() {
	a.state = StateSuccess
}

// SetSubmitFailed records backend field errors and marks the submission
// as rejected.
func (a *Assignment) SetSubmitFailed(fieldErrors map[string][]string) {
	a.state = StateFailed
	if a.fieldErrors == nil {
		a.fieldErrors = map[string][]string{}
	}
	for field, messages := range fieldErrors {
		a.fieldErrors[field] = append(a.fieldErrors[field], messages...)
	}
}

// ResumeEditing returns a rejected form to the editing state so the
// user can correct and resubmit. Field errors stay visible until the
// next Validate.
func (a *Assignment) ResumeEditing() {
	if a.state == StateFailed {
		a.state = StateEditing
	}
}
