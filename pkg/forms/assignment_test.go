package forms

import (
	"strings"
	"testing"
	"time"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

var today = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestAssignment() *Assignment {
	return NewAssignment(model.ReviewConfigContext{
		ReviewType: model.ReviewTypeAdvice,
		Documents: []model.TaskDocument{
			{URL: "https://drc.example.nl/d1", Bestandsnaam: "besluit.odt"},
			{URL: "https://drc.example.nl/d2", Bestandsnaam: "advies.odt"},
			{URL: "https://drc.example.nl/d3", Bestandsnaam: "kaart.pdf"},
		},
	})
}

func TestAssignment_StartsWithOneEmptyStep(t *testing.T) {
	form := newTestAssignment()
	if len(form.Steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(form.Steps))
	}
	if form.State() != StateEditing {
		t.Errorf("state = %v, want editing", form.State())
	}
}

func TestAssignment_RequiresDocumentSelection(t *testing.T) {
	form := newTestAssignment()
	form.Steps[0] = Step{Users: []string{"user:alice"}, Deadline: today.AddDate(0, 0, 7)}

	if err := form.Validate(today); err == nil {
		t.Fatal("expected validation error without selected documents")
	}
	if msgs := form.FieldErrors("documents"); len(msgs) == 0 {
		t.Error("expected a field error on documents")
	}

	form.ToggleDocument(0)
	if err := form.Validate(today); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}
}

func TestAssignment_SelectedDocumentsKeepOriginalOrder(t *testing.T) {
	form := newTestAssignment()
	form.ToggleDocument(2)
	form.ToggleDocument(0)

	got := form.SelectedDocuments()
	want := []string{"https://drc.example.nl/d1", "https://drc.example.nl/d3"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("SelectedDocuments = %v, want %v", got, want)
	}
}

func TestAssignment_AddStepGatedOnToggle(t *testing.T) {
	form := newTestAssignment()

	if form.AddStep() {
		t.Error("AddStep must fail while the last step has no extra-step toggle")
	}

	form.Steps[0].ExtraStep = true
	if !form.AddStep() {
		t.Fatal("AddStep must succeed after toggling")
	}
	if len(form.Steps) != 2 {
		t.Errorf("steps = %d, want 2", len(form.Steps))
	}
}

func TestAssignment_RemoveStep(t *testing.T) {
	form := newTestAssignment()
	form.Steps[0].ExtraStep = true
	form.AddStep()

	if form.RemoveStep(0) {
		t.Error("first step must not be removable")
	}
	if !form.RemoveStep(1) {
		t.Error("second step must be removable")
	}
	if len(form.Steps) != 1 {
		t.Errorf("steps = %d, want 1", len(form.Steps))
	}
}

func TestAssignment_MinDateFollowsPreviousDeadline(t *testing.T) {
	form := newTestAssignment()
	form.Steps[0].Deadline = today.AddDate(0, 0, 7)
	form.Steps[0].ExtraStep = true
	form.AddStep()

	if got := form.MinDate(0, today); !got.Equal(today) {
		t.Errorf("MinDate(0) = %v, want today", got)
	}
	want := today.AddDate(0, 0, 8)
	if got := form.MinDate(1, today); !got.Equal(want) {
		t.Errorf("MinDate(1) = %v, want %v", got, want)
	}
}

func TestAssignment_DeadlinesMustBeMonotonic(t *testing.T) {
	form := newTestAssignment()
	form.ToggleDocument(0)
	deadline := today.AddDate(0, 0, 7)
	form.Steps[0] = Step{Users: []string{"user:alice"}, Deadline: deadline, ExtraStep: true}
	form.AddStep()
	form.Steps[1] = Step{Users: []string{"user:bob"}, Deadline: deadline}

	if err := form.Validate(today); err == nil {
		t.Fatal("expected validation error for equal consecutive deadlines")
	}
	if msgs := form.FieldErrors("assignedUsers.1"); len(msgs) == 0 {
		t.Error("expected a field error on the second step")
	}

	form.Steps[1].Deadline = deadline.AddDate(0, 0, 1)
	if err := form.Validate(today); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}
}

func TestAssignment_ToelichtingLimit(t *testing.T) {
	form := newTestAssignment()
	form.ToggleDocument(0)
	form.Steps[0] = Step{Users: []string{"user:alice"}, Deadline: today.AddDate(0, 0, 7)}
	form.Toelichting = strings.Repeat("a", MaxToelichting+1)

	if err := form.Validate(today); err == nil {
		t.Fatal("expected validation error for oversized toelichting")
	}

	form.Toelichting = strings.Repeat("a", MaxToelichting)
	if err := form.Validate(today); err != nil {
		t.Errorf("toelichting at the limit rejected: %v", err)
	}
}

func TestAssignment_BuildPayload(t *testing.T) {
	form := newTestAssignment()
	form.ToggleDocument(1)
	form.Toelichting = "graag voor vrijdag"
	form.Steps[0] = Step{Users: []string{"user:alice", "group:behandelaars"}, Deadline: today.AddDate(0, 0, 7), ExtraStep: true}
	form.AddStep()
	form.Steps[1] = Step{Users: []string{"user:bob"}, Deadline: today.AddDate(0, 0, 14)}

	if err := form.Validate(today); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	payload := form.BuildPayload()

	if payload.Form != model.FormConfigureAdviceRequest {
		t.Errorf("Form = %q", payload.Form)
	}
	if len(payload.AssignedUsers) != 2 {
		t.Fatalf("AssignedUsers = %d, want 2", len(payload.AssignedUsers))
	}
	if payload.AssignedUsers[0].Deadline != "2023-06-08" {
		t.Errorf("first deadline = %q", payload.AssignedUsers[0].Deadline)
	}
	if payload.AssignedUsers[1].Deadline != "2023-06-15" {
		t.Errorf("second deadline = %q", payload.AssignedUsers[1].Deadline)
	}
	if len(payload.SelectedDocuments) != 1 || payload.SelectedDocuments[0] != "https://drc.example.nl/d2" {
		t.Errorf("SelectedDocuments = %v", payload.SelectedDocuments)
	}
	if payload.Toelichting != "graag voor vrijdag" {
		t.Errorf("Toelichting = %q", payload.Toelichting)
	}
}

func TestAssignment_SubmitLifecycle(t *testing.T) {
	form := newTestAssignment()
	form.MarkSubmitting()
	if form.State() != StateSubmitting {
		t.Errorf("state = %v, want submitting", form.State())
	}

	form.SetSubmitFailed(map[string][]string{
		"assignedUsers": {"Deze gebruiker bestaat niet."},
	})
	if form.State() != StateFailed {
		t.Errorf("state = %v, want failed", form.State())
	}
	if msgs := form.FieldErrors("assignedUsers"); len(msgs) != 1 {
		t.Errorf("field errors = %v", msgs)
	}

	form.ResumeEditing()
	if form.State() != StateEditing {
		t.Errorf("state = %v, want editing after resume", form.State())
	}

	form.MarkSubmitting()
	form.MarkSuccess()
	if form.State() != StateSuccess {
		t.Errorf("state = %v, want success", form.State())
	}
}
