// Package zaken wraps the case endpoints of the backend: case details,
// documents, properties, roles and case relations.
package zaken

import (
	"context"
	"fmt"
	"net/url"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/cache"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/client"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// Cache method identities. Invalidation is whole-method: updating any
// case drops every cached case, not just the mutated one.
const (
	methodRetrieveCaseDetails = "zaken.RetrieveCaseDetails"
	methodListRelatedCases    = "zaken.ListRelatedCases"
	methodListRelatedObjects  = "zaken.ListRelatedObjects"
)

// Service wraps the case endpoints. Fetched case details are cached by
// (bronorganisatie, identificatie) until a mutating call invalidates
// the method.
type Service struct {
	client *client.Client
	cache  *cache.Cache
}

// NewService creates a case service sharing the given client and cache.
func NewService(c *client.Client, ch *cache.Cache) *Service {
	return &Service{client: c, cache: ch}
}

// CreateCase creates a new case and returns its started process.
func (s *Service) CreateCase(ctx context.Context, form map[string]any) (*model.KetenProces, error) {
	var proces model.KetenProces
	if err := s.client.Post(ctx, "/api/core/cases", form, &proces); err != nil {
		return nil, err
	}
	return &proces, nil
}

// StartCaseProcess starts the main process for a case.
func (s *Service) StartCaseProcess(ctx context.Context, bronorganisatie, identificatie string) (*model.KetenProces, error) {
	endpoint := fmt.Sprintf("/api/core/cases/%s/%s/start-process", bronorganisatie, identificatie)
	var proces model.KetenProces
	if err := s.client.Post(ctx, endpoint, nil, &proces); err != nil {
		return nil, err
	}
	return &proces, nil
}

// RetrieveCaseDetails fetches a case, serving repeated calls for the
// same case from the cache.
func (s *Service) RetrieveCaseDetails(ctx context.Context, bronorganisatie, identificatie string) (*model.Zaak, error) {
	args := bronorganisatie + "/" + identificatie
	value, err := s.cache.GetOrFetch(methodRetrieveCaseDetails, args, func() (any, error) {
		var zaak model.Zaak
		endpoint := fmt.Sprintf("/api/core/cases/%s/%s", bronorganisatie, identificatie)
		if err := s.client.Get(ctx, endpoint, &zaak); err != nil {
			return nil, err
		}
		return &zaak, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*model.Zaak), nil
}

// UpdateCaseDetails patches a case and invalidates the case-detail
// cache.
func (s *Service) UpdateCaseDetails(ctx context.Context, bronorganisatie, identificatie string, patch map[string]any) error {
	endpoint := fmt.Sprintf("/api/core/cases/%s/%s", bronorganisatie, identificatie)
	if err := s.client.Patch(ctx, endpoint, patch, nil); err != nil {
		return err
	}
	s.cache.Invalidate(methodRetrieveCaseDetails)
	return nil
}

// ListCaseDocuments lists the documents attached to a case.
func (s *Service) ListCaseDocuments(ctx context.Context, bronorganisatie, identificatie string) ([]model.Document, error) {
	endpoint := fmt.Sprintf("/api/core/cases/%s/%s/documents", bronorganisatie, identificatie)
	var docs []model.Document
	if err := s.client.Get(ctx, endpoint, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// EditCaseDocument patches a case document and invalidates the
// case-detail cache.
func (s *Service) EditCaseDocument(ctx context.Context, bronorganisatie, identificatie string, form map[string]any) error {
	endpoint := fmt.Sprintf("/api/core/cases/%s/%s/document", bronorganisatie, identificatie)
	if err := s.client.Patch(ctx, endpoint, form, nil); err != nil {
		return err
	}
	s.cache.Invalidate(methodRetrieveCaseDetails)
	return nil
}

// CreateCaseDocument uploads a new case document and invalidates the
// case-detail cache.
func (s *Service) CreateCaseDocument(ctx context.Context, form map[string]any) error {
	if err := s.client.Post(ctx, "/api/core/cases/document", form, nil); err != nil {
		return err
	}
	s.cache.Invalidate(methodRetrieveCaseDetails)
	return nil
}

// ListCaseProperties lists the property values of a case.
func (s *Service) ListCaseProperties(ctx context.Context, bronorganisatie, identificatie string) ([]model.EigenschapWaarde, error) {
	endpoint := fmt.Sprintf("/api/core/cases/%s/%s/properties", bronorganisatie, identificatie)
	var props []model.EigenschapWaarde
	if err := s.client.Get(ctx, endpoint, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// UpdateCaseProperty patches a property value. An empty value is sent
// as "-"; the backend rejects empty strings.
func (s *Service) UpdateCaseProperty(ctx context.Context, property model.EigenschapWaarde) error {
	waarde := property.Waarde
	if waarde == "" {
		waarde = "-"
	}
	endpoint := "/api/core/cases/properties?" + client.EncodeQuery("url", property.URL)
	if err := s.client.Patch(ctx, endpoint, map[string]string{"waarde": waarde}, nil); err != nil {
		return err
	}
	s.cache.Invalidate(methodRetrieveCaseDetails)
	return nil
}

// CreateCaseProperty creates a new property value on a case.
func (s *Service) CreateCaseProperty(ctx context.Context, property model.NieuweEigenschap) error {
	if err := s.client.Post(ctx, "/api/core/cases/properties", property, nil); err != nil {
		return err
	}
	s.cache.Invalidate(methodRetrieveCaseDetails)
	return nil
}

// ListCaseUsers lists users holding atomic permissions on a case.
func (s *Service) ListCaseUsers(ctx context.Context, bronorganisatie, identificatie string) ([]map[string]any, error) {
	endpoint := fmt.Sprintf("/api/core/cases/%s/%s/atomic-permissions", bronorganisatie, identificatie)
	var perms []map[string]any
	if err := s.client.Get(ctx, endpoint, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

// ListRelatedCases lists cases related to a case, cached per case.
func (s *Service) ListRelatedCases(ctx context.Context, bronorganisatie, identificatie string) ([]model.RelatedCase, error) {
	args := bronorganisatie + "/" + identificatie
	value, err := s.cache.GetOrFetch(methodListRelatedCases, args, func() (any, error) {
		endpoint := fmt.Sprintf("/api/core/cases/%s/%s/related-cases", bronorganisatie, identificatie)
		var related []model.RelatedCase
		if err := s.client.Get(ctx, endpoint, &related); err != nil {
			return nil, err
		}
		return related, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]model.RelatedCase), nil
}

// AddRelatedCase relates a case to another case and invalidates the
// related-cases cache.
func (s *Service) AddRelatedCase(ctx context.Context, mainZaak, relationZaak, aardRelatie string) error {
	body := map[string]string{
		"mainZaak":     mainZaak,
		"relationZaak": relationZaak,
		"aardRelatie":  aardRelatie,
	}
	if err := s.client.Post(ctx, "/api/core/cases/related-case", body, nil); err != nil {
		return err
	}
	s.cache.Invalidate(methodListRelatedCases)
	return nil
}

// ListRelatedObjects lists objects related to a case, cached per case.
func (s *Service) ListRelatedObjects(ctx context.Context, bronorganisatie, identificatie string) ([]map[string]any, error) {
	args := bronorganisatie + "/" + identificatie
	value, err := s.cache.GetOrFetch(methodListRelatedObjects, args, func() (any, error) {
		endpoint := fmt.Sprintf("/api/core/cases/%s/%s/objects", bronorganisatie, identificatie)
		var objects []map[string]any
		if err := s.client.Get(ctx, endpoint, &objects); err != nil {
			return nil, err
		}
		return objects, nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]map[string]any), nil
}

// CreateAccessRequest asks for access to a case.
func (s *Service) CreateAccessRequest(ctx context.Context, bronorganisatie, identificatie, comment string) error {
	body := map[string]any{
		"zaak": map[string]string{
			"bronorganisatie": bronorganisatie,
			"identificatie":   identificatie,
		},
		"comment": comment,
	}
	return s.client.Post(ctx, "/api/accounts/access-requests", body, nil)
}

// SearchZaken searches cases by (partial) identificatie.
func (s *Service) SearchZaken(ctx context.Context, identificatie string) ([]model.Zaak, error) {
	endpoint := "/api/search/zaken/autocomplete?" + client.EncodeQuery("identificatie", identificatie)
	var zaken []model.Zaak
	if err := s.client.Get(ctx, endpoint, &zaken); err != nil {
		return nil, err
	}
	return zaken, nil
}

// CreateCaseRole adds a role (involved party) to a case and
// invalidates the case-detail cache.
func (s *Service) CreateCaseRole(ctx context.Context, bronorganisatie, identificatie string, role map[string]any) error {
	endpoint := fmt.Sprintf("/api/core/cases/%s/%s/roles", bronorganisatie, identificatie)
	if err := s.client.Post(ctx, endpoint, role, nil); err != nil {
		return err
	}
	s.cache.Invalidate(methodRetrieveCaseDetails)
	return nil
}

// GetCaseRoles lists the roles on a case.
func (s *Service) GetCaseRoles(ctx context.Context, bronorganisatie, identificatie string) ([]model.Betrokkene, error) {
	endpoint := fmt.Sprintf("/api/core/cases/%s/%s/roles", bronorganisatie, identificatie)
	var roles []model.Betrokkene
	if err := s.client.Get(ctx, endpoint, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// DeleteCaseRole removes a role from a case.
func (s *Service) DeleteCaseRole(ctx context.Context, bronorganisatie, identificatie, roleURL string) error {
	endpoint := fmt.Sprintf("/api/core/cases/%s/%s/roles?url=%s", bronorganisatie, identificatie, url.QueryEscape(roleURL))
	return s.client.Delete(ctx, endpoint)
}

// CaseURL returns the UI path of a case.
func CaseURL(zaak model.Zaak) string {
	return fmt.Sprintf("/zaken/%s/%s", zaak.Bronorganisatie, zaak.Identificatie)
}
