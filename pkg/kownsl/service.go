// Package kownsl wraps the Kownsl review-request endpoints: fetching
// and answering advice and approval requests.
//
// The single most important invariant here is that no review request
// may be answered twice. The backend reports prior submission in the
// X-Kownsl-Submitted response header on every fetch; callers must
// check the Submitted flag before rendering an answer form, and never
// rely on client-side memory since review links are opened in fresh
// sessions.
package kownsl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/client"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// SubmittedHeader flags a review request that was answered before.
const SubmittedHeader = "X-Kownsl-Submitted"

// Service wraps the review-request endpoints.
type Service struct {
	client *client.Client
}

// NewService creates a Kownsl service on the shared client.
func NewService(c *client.Client) *Service {
	return &Service{client: c}
}

// ReviewRequestResult pairs a fetched review request with the
// submission flag taken from the response headers.
type ReviewRequestResult struct {
	Request   *model.ReviewRequest
	Submitted bool
}

// GetApproval fetches an approval review request by UUID. Submitted
// reports whether the request was answered before; when true the
// answer form must not be rendered.
func (s *Service) GetApproval(ctx context.Context, reviewUUID string) (*ReviewRequestResult, error) {
	return s.get(ctx, reviewUUID, model.ReviewTypeApproval)
}

// GetAdvice fetches an advice review request by UUID.
func (s *Service) GetAdvice(ctx context.Context, reviewUUID string) (*ReviewRequestResult, error) {
	return s.get(ctx, reviewUUID, model.ReviewTypeAdvice)
}

func (s *Service) get(ctx context.Context, reviewUUID string, reviewType model.ReviewType) (*ReviewRequestResult, error) {
	if _, err := uuid.Parse(reviewUUID); err != nil {
		return nil, fmt.Errorf("invalid review request UUID %q: %w", reviewUUID, err)
	}

	var request model.ReviewRequest
	endpoint := fmt.Sprintf("/kownsl/review-requests/%s/%s", reviewUUID, pathSegment(reviewType))
	headers, err := s.client.GetWithHeaders(ctx, endpoint, &request)
	if err != nil {
		return nil, err
	}

	return &ReviewRequestResult{
		Request:   &request,
		Submitted: headers.Get(SubmittedHeader) == "true",
	}, nil
}

// PostApproval answers an approval request. The caller must have
// verified the request was not submitted before.
func (s *Service) PostApproval(ctx context.Context, reviewUUID string, form model.ApprovalForm) error {
	if _, err := uuid.Parse(reviewUUID); err != nil {
		return fmt.Errorf("invalid review request UUID %q: %w", reviewUUID, err)
	}
	endpoint := fmt.Sprintf("/kownsl/review-requests/%s/approval", reviewUUID)
	return s.client.Post(ctx, endpoint, form, nil)
}

// PostAdvice answers an advice request.
func (s *Service) PostAdvice(ctx context.Context, reviewUUID string, form model.AdviceForm) error {
	if _, err := uuid.Parse(reviewUUID); err != nil {
		return fmt.Errorf("invalid review request UUID %q: %w", reviewUUID, err)
	}
	endpoint := fmt.Sprintf("/kownsl/review-requests/%s/advice", reviewUUID)
	return s.client.Post(ctx, endpoint, form, nil)
}

func pathSegment(reviewType model.ReviewType) string {
	if reviewType == model.ReviewTypeAdvice {
		return "advice"
	}
	return "approval"
}
