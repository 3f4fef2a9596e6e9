package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c, srv
}

func TestNew_EmptyBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestGet_DecodesJSON(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"identificatie": "ZAAK-001"}`))
	}))

	var out struct {
		Identificatie string `json:"identificatie"`
	}
	if err := c.Get(context.Background(), "/api/core/cases/123456/ZAAK-001", &out); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if out.Identificatie != "ZAAK-001" {
		t.Errorf("Identificatie = %q, want %q", out.Identificatie, "ZAAK-001")
	}
}

func TestPost_CarriesCSRFTokenFromCookie(t *testing.T) {
	var gotHeader string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(CSRFHeader)
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := c.SetSession("session-abc", "csrf-xyz"); err != nil {
		t.Fatalf("SetSession returned error: %v", err)
	}

	if err := c.Post(context.Background(), "/api/camunda/claim-task", map[string]string{"task": "t1"}, nil); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if gotHeader != "csrf-xyz" {
		t.Errorf("%s = %q, want %q", CSRFHeader, gotHeader, "csrf-xyz")
	}
}

func TestGet_OmitsCSRFToken(t *testing.T) {
	var gotHeader string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(CSRFHeader)
		w.Write([]byte(`{}`))
	}))

	if err := c.SetSession("session-abc", "csrf-xyz"); err != nil {
		t.Fatal(err)
	}
	if err := c.Get(context.Background(), "/api/core/zaaktypen", nil); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if gotHeader != "" {
		t.Errorf("GET carried %s = %q, want empty", CSRFHeader, gotHeader)
	}
}

func TestPost_SendsSessionCookie(t *testing.T) {
	var gotCookie string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			gotCookie = cookie.Value
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := c.SetSession("session-abc", "csrf-xyz"); err != nil {
		t.Fatal(err)
	}
	if err := c.Post(context.Background(), "/api/camunda/send-message", map[string]string{}, nil); err != nil {
		t.Fatal(err)
	}
	if gotCookie != "session-abc" {
		t.Errorf("session cookie = %q, want %q", gotCookie, "session-abc")
	}
}

func TestDo_ParsesDetailError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail": "Authenticatiegegevens zijn niet opgegeven."}`))
	}))

	err := c.Get(context.Background(), "/kownsl/review-requests/u1/approval", nil)
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("error %v is not an APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
	if !IsNotAuthenticated(err) {
		t.Error("IsNotAuthenticated = false, want true")
	}
}

func TestDo_ParsesFieldErrors(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"assignedUsers": ["Deadline moet na de vorige deadline liggen."], "detail": "Invalid input."}`))
	}))

	err := c.Put(context.Background(), "/api/camunda/task-data/t1", map[string]string{}, nil)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("error %v is not an APIError", err)
	}

	if got := apiErr.FieldError("assignedUsers"); got != "Deadline moet na de vorige deadline liggen." {
		t.Errorf("FieldError(assignedUsers) = %q", got)
	}
	if apiErr.Detail != "Invalid input." {
		t.Errorf("Detail = %q, want %q", apiErr.Detail, "Invalid input.")
	}
	if got := apiErr.FieldError("toelichting"); got != "" {
		t.Errorf("FieldError(toelichting) = %q, want empty", got)
	}
}

func TestDo_MalformedErrorBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))

	err := c.Get(context.Background(), "/api/core/zaaktypen", nil)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("error %v is not an APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want 502", apiErr.StatusCode)
	}
	if apiErr.Detail != "" {
		t.Errorf("Detail = %q, want empty", apiErr.Detail)
	}
}

func TestGetWithHeaders_ExposesHeaders(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Kownsl-Submitted", "true")
		w.Write([]byte(`{}`))
	}))

	headers, err := c.GetWithHeaders(context.Background(), "/kownsl/review-requests/u1/approval", nil)
	if err != nil {
		t.Fatalf("GetWithHeaders returned error: %v", err)
	}
	if got := headers.Get("X-Kownsl-Submitted"); got != "true" {
		t.Errorf("X-Kownsl-Submitted = %q, want %q", got, "true")
	}
}

func TestEncodeQuery(t *testing.T) {
	got := EncodeQuery("zaak_url", "https://open-zaak.example.nl/zaken/api/v1/zaken/123")
	want := "zaak_url=https%3A%2F%2Fopen-zaak.example.nl%2Fzaken%2Fapi%2Fv1%2Fzaken%2F123"
	if got != want {
		t.Errorf("EncodeQuery = %q, want %q", got, want)
	}

	if got := EncodeQuery(); got != "" {
		t.Errorf("EncodeQuery() = %q, want empty", got)
	}
}

func TestLoginURL(t *testing.T) {
	got := LoginURL("/kownsl/approval?uuid=u1")
	want := "/accounts/login/?next=/ui/kownsl/approval?uuid=u1"
	if got != want {
		t.Errorf("LoginURL = %q, want %q", got, want)
	}
}
