package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/client"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return NewService(c)
}

func TestGetZaaktypeEigenschappen_Query(t *testing.T) {
	var gotQuery string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"name": "adres", "spec": {"type": "string", "format": "text"}}]`))
	}))

	props, err := svc.GetZaaktypeEigenschappen(context.Background(), "https://oz.example.nl/catalogi/1", "Kapvergunning aanvragen")
	if err != nil {
		t.Fatalf("GetZaaktypeEigenschappen returned error: %v", err)
	}
	if gotQuery != "catalogus=https%3A%2F%2Foz.example.nl%2Fcatalogi%2F1&zaaktype_omschrijving=Kapvergunning+aanvragen" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(props) != 1 || props[0].Name != "adres" {
		t.Errorf("props = %+v", props)
	}
}

func TestPostSearchZaken_OmitsEmptyFields(t *testing.T) {
	var gotBody map[string]any
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Write([]byte(`{"count": 1, "results": [{"url": "https://oz.example.nl/zaken/1", "identificatie": "ZAAK-001", "bronorganisatie": "123456782"}]}`))
	}))

	form := ZaakSearchForm{
		Zaaktype: &ZaaktypeFilter{
			Catalogus:    "https://oz.example.nl/catalogi/1",
			Omschrijving: "Kapvergunning aanvragen",
		},
	}
	result, err := svc.PostSearchZaken(context.Background(), form)
	if err != nil {
		t.Fatalf("PostSearchZaken returned error: %v", err)
	}

	if _, present := gotBody["identificatie"]; present {
		t.Error("empty identificatie must be omitted from the request")
	}
	if _, present := gotBody["eigenschappen"]; present {
		t.Error("empty eigenschappen must be omitted from the request")
	}
	if result.Count != 1 || result.Results[0].Identificatie != "ZAAK-001" {
		t.Errorf("result = %+v", result)
	}
}

func TestSearchObjects_FilterShape(t *testing.T) {
	var gotBody string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`[]`))
	}))

	form := ObjectSearchForm{
		Filters: ObjectFilters{
			ObjectType: "https://objecttypes.example.nl/types/1",
			Geometry: &WithinGeometry{
				Within: model.Geometry{
					Type:        "Polygon",
					Coordinates: json.RawMessage(`[[[5.1,52.0],[5.2,52.0],[5.2,52.1],[5.1,52.0]]]`),
				},
			},
			DataAttrs: ParseObjectQuery("type:Laadpaal"),
		},
	}
	if _, err := svc.SearchObjects(context.Background(), form); err != nil {
		t.Fatalf("SearchObjects returned error: %v", err)
	}

	var decoded struct {
		Filters struct {
			ObjectType string `json:"objectType"`
			Geometry   struct {
				Within struct {
					Type string `json:"type"`
				} `json:"within"`
			} `json:"geometry"`
			DataAttrs string `json:"data_attrs"`
		} `json:"filters"`
	}
	if err := json.Unmarshal([]byte(gotBody), &decoded); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if decoded.Filters.Geometry.Within.Type != "Polygon" {
		t.Errorf("geometry.within.type = %q", decoded.Filters.Geometry.Within.Type)
	}
	if decoded.Filters.DataAttrs != "type__exact__Laadpaal" {
		t.Errorf("data_attrs = %q", decoded.Filters.DataAttrs)
	}
}
