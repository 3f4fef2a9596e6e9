package model

import (
	"encoding/json"
	"testing"
)

func TestTaskContextData_DispatchesReviewConfig(t *testing.T) {
	payload := `{
		"form": "zac:configureApprovalRequest",
		"task": {"id": "t1", "name": "Accordering configureren", "executeUrl": "", "hasForm": true, "assignee": null, "created": "2023-06-01T12:00:00Z"},
		"context": {
			"documents": [{"url": "https://drc.example.nl/d1", "bestandsnaam": "besluit.odt", "readUrl": "/read/d1"}],
			"zaakInformatie": {"omschrijving": "Kapvergunning", "toelichting": ""}
		}
	}`

	var data TaskContextData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if data.Form != FormConfigureApprovalRequest {
		t.Errorf("Form = %q", data.Form)
	}
	ctx, ok := data.Context.(ReviewConfigContext)
	if !ok {
		t.Fatalf("context type = %T", data.Context)
	}
	if ctx.ReviewType != ReviewTypeApproval {
		t.Errorf("ReviewType = %q, want approval default from form tag", ctx.ReviewType)
	}
	if len(ctx.Documents) != 1 || ctx.Documents[0].Bestandsnaam != "besluit.odt" {
		t.Errorf("Documents = %+v", ctx.Documents)
	}
	if ctx.ZaakInformatie.Omschrijving != "Kapvergunning" {
		t.Errorf("ZaakInformatie = %+v", ctx.ZaakInformatie)
	}
}

func TestTaskContextData_UnknownFormFallsBackToDynamic(t *testing.T) {
	payload := `{
		"form": "zac:somethingNew",
		"task": {"id": "t1", "name": "Onbekend", "executeUrl": "", "hasForm": true, "assignee": null, "created": "2023-06-01T12:00:00Z"},
		"context": {"formFields": [{"name": "reden", "label": "Reden", "inputType": "string", "value": null}]}
	}`

	var data TaskContextData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	ctx, ok := data.Context.(DynamicFormContext)
	if !ok {
		t.Fatalf("context type = %T, want DynamicFormContext", data.Context)
	}
	if len(ctx.FormFields) != 1 || ctx.FormFields[0].Name != "reden" {
		t.Errorf("FormFields = %+v", ctx.FormFields)
	}
}

func TestTaskContextData_MissingContext(t *testing.T) {
	payload := `{
		"form": "zac:gebruikerSelectie",
		"task": {"id": "t1", "name": "Gebruiker selecteren", "executeUrl": "", "hasForm": true, "assignee": null, "created": "2023-06-01T12:00:00Z"}
	}`

	var data TaskContextData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := data.Context.(DynamicFormContext); !ok {
		t.Errorf("context type = %T, want DynamicFormContext for absent context", data.Context)
	}
}

func TestTaskContextData_RoundTrip(t *testing.T) {
	original := TaskContextData{
		Form: FormDoRedirect,
		Task: Task{ID: "t1", Name: "Doorsturen"},
		Context: RedirectContext{
			RedirectTo:      "https://example.nl/form",
			OpenInNewWindow: true,
		},
	}

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded TaskContextData
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	redirect, ok := decoded.Context.(RedirectContext)
	if !ok {
		t.Fatalf("context type = %T", decoded.Context)
	}
	if redirect != original.Context {
		t.Errorf("round trip changed context: %+v", redirect)
	}
}

func TestAssigneeDisplayName(t *testing.T) {
	tests := []struct {
		assignee Assignee
		want     string
	}{
		{Assignee{Name: "behandelaars"}, "behandelaars"},
		{Assignee{Username: "jdoe"}, "jdoe"},
		{Assignee{Username: "jdoe", FirstName: "Jan", LastName: "de Vries"}, "Jan de Vries"},
	}
	for _, tt := range tests {
		if got := tt.assignee.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%+v) = %q, want %q", tt.assignee, got, tt.want)
		}
	}
}
