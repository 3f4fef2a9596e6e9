package forms

import (
	"fmt"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// ApprovalAnswer is the state of the approval answer form: accord or
// not, with an optional explanation.
type ApprovalAnswer struct {
	Approved    bool
	Toelichting string
}

// Validate checks the answer before submission.
func (f *ApprovalAnswer) Validate() error {
	if len(f.Toelichting) > MaxToelichting {
		return fmt.Errorf("toelichting is langer dan %d tekens", MaxToelichting)
	}
	return nil
}

// Form converts the answer into its submission payload.
func (f *ApprovalAnswer) Form() model.ApprovalForm {
	return model.ApprovalForm{
		Approved:    f.Approved,
		Toelichting: f.Toelichting,
	}
}
