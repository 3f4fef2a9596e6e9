package model

import "time"

// ReviewType discriminates between advice and approval review requests.
type ReviewType string

const (
	ReviewTypeAdvice   ReviewType = "advice"
	ReviewTypeApproval ReviewType = "approval"
)

// IsValid returns true if the review type is a recognized value.
func (r ReviewType) IsValid() bool {
	switch r {
	case ReviewTypeAdvice, ReviewTypeApproval:
		return true
	}
	return false
}

// Title returns the Dutch display title for the review type.
func (r ReviewType) Title() string {
	switch r {
	case ReviewTypeApproval:
		return "Accorderingen"
	case ReviewTypeAdvice:
		return "Adviezen"
	}
	return ""
}

// Author is the account that gave a review.
type Author struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DisplayName returns "first last", falling back to the username when
// names are absent.
func (a Author) DisplayName() string {
	if a.FirstName == "" && a.LastName == "" {
		return a.Username
	}
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// ReviewDocument records the document versions an advice was given on.
type ReviewDocument struct {
	Document      string `json:"document"`
	SourceURL     string `json:"sourceUrl"`
	AdviceURL     string `json:"adviceUrl,omitempty"`
	SourceVersion int    `json:"sourceVersion"`
	AdviceVersion int    `json:"adviceVersion,omitempty"`
}

// Review is a single given advice or approval decision.
type Review struct {
	Author      Author           `json:"author"`
	Created     time.Time        `json:"created"`
	Approved    bool             `json:"approved,omitempty"`
	Status      string           `json:"status,omitempty"`
	Advice      string           `json:"advice,omitempty"`
	Toelichting string           `json:"toelichting,omitempty"`
	Documents   []ReviewDocument `json:"documents,omitempty"`
}

// ReviewRequest is a Kownsl review request: a request for one or more
// users to give advice on, or approval of, a case. Once answered it is
// terminal; the backend signals prior submission with the
// X-Kownsl-Submitted response header, not in the body.
type ReviewRequest struct {
	ID               string     `json:"id"`
	ReviewType       ReviewType `json:"reviewType"`
	Zaak             Zaak       `json:"zaak"`
	Reviews          []Review   `json:"reviews"`
	Toelichting      string     `json:"toelichting,omitempty"`
	NumAssignedUsers int        `json:"numAssignedUsers,omitempty"`
}

// ApprovalForm is the payload for answering an approval request.
type ApprovalForm struct {
	Approved    bool   `json:"approved"`
	Toelichting string `json:"toelichting"`
}

// AdviceForm is the payload for answering an advice request.
type AdviceForm struct {
	Advice    string           `json:"advice"`
	Documents []ReviewDocument `json:"documents,omitempty"`
}
