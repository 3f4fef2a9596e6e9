// Package search wraps the search endpoints: case search by type and
// properties, and geo-filtered object search.
package search

import (
	"context"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/client"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// Service wraps the search endpoints.
type Service struct {
	client *client.Client
}

// NewService creates a search service on the shared client.
func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// ZaaktypeFilter identifies a case type within a catalogue. Search runs
// on the omschrijving so every version of the type matches.
type ZaaktypeFilter struct {
	Catalogus    string `json:"catalogus"`
	Omschrijving string `json:"omschrijving"`
}

// ZaakSearchForm is the case search request. Zero-valued fields are
// omitted from the request.
type ZaakSearchForm struct {
	Identificatie string            `json:"identificatie,omitempty"`
	Zaaktype      *ZaaktypeFilter   `json:"zaaktype,omitempty"`
	Omschrijving  string            `json:"omschrijving,omitempty"`
	Eigenschappen map[string]string `json:"eigenschappen,omitempty"`
}

// ZaakSearchResult is a paginated case search response.
type ZaakSearchResult struct {
	Count   int          `json:"count"`
	Results []model.Zaak `json:"results"`
}

// Eigenschap is a searchable property of a case type. The search
// endpoint aggregates the property over all versions of the type, so
// its shape differs from the per-case property value.
type Eigenschap struct {
	Name string          `json:"name"`
	Spec EigenschapSpec  `json:"spec"`
}

// EigenschapSpec constrains the values a searchable property may take.
type EigenschapSpec struct {
	Type      string   `json:"type"`
	Format    string   `json:"format,omitempty"`
	MinLength int      `json:"minLength,omitempty"`
	MaxLength int      `json:"maxLength,omitempty"`
	Enum      []string `json:"enum,omitempty"`
}

// GetZaaktypen lists the case types available for searching.
func (s *Service) GetZaaktypen(ctx context.Context) ([]model.Zaaktype, error) {
	var zaaktypen []model.Zaaktype
	if err := s.client.Get(ctx, "/api/core/zaaktypen", &zaaktypen); err != nil {
		return nil, err
	}
	return zaaktypen, nil
}

// GetZaaktypeEigenschappen lists the searchable properties of a case
// type, across all versions of the type in the catalogue.
func (s *Service) GetZaaktypeEigenschappen(ctx context.Context, catalogus, omschrijving string) ([]Eigenschap, error) {
	endpoint := "/api/core/eigenschappen?" + client.EncodeQuery(
		"catalogus", catalogus,
		"zaaktype_omschrijving", omschrijving,
	)
	var eigenschappen []Eigenschap
	if err := s.client.Get(ctx, endpoint, &eigenschappen); err != nil {
		return nil, err
	}
	return eigenschappen, nil
}

// PostSearchZaken runs a case search.
func (s *Service) PostSearchZaken(ctx context.Context, form ZaakSearchForm) (*ZaakSearchResult, error) {
	var result ZaakSearchResult
	if err := s.client.Post(ctx, "/api/search/zaken", form, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ObjectFilters is the inner filter block of an object search: objects
// of one type whose geometry lies within the given shape, optionally
// narrowed by attribute filters.
type ObjectFilters struct {
	ObjectType string          `json:"objectType"`
	Geometry   *WithinGeometry `json:"geometry,omitempty"`
	DataAttrs  string          `json:"data_attrs,omitempty"`
}

// WithinGeometry restricts object search to a shape.
type WithinGeometry struct {
	Within model.Geometry `json:"within"`
}

// ObjectSearchForm is the object search request.
type ObjectSearchForm struct {
	Filters ObjectFilters `json:"filters"`
}

// SearchObjects searches registered objects by type, shape and parsed
// attribute query.
func (s *Service) SearchObjects(ctx context.Context, form ObjectSearchForm) ([]map[string]any, error) {
	var objects []map[string]any
	if err := s.client.Post(ctx, "/api/core/objects", form, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}
