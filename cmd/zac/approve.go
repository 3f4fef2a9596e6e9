package main

import (
	"github.com/spf13/cobra"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/ui"
)

var approveCmd = &cobra.Command{
	Use:   "approve <review-request-uuid>",
	Short: "Answer an approval request",
	Long: `Opens the approval form of a Kownsl review request. A request that
was answered before is shown read-only; answering twice is refused.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTTY(); err != nil {
			return err
		}

		_, _, kownslSvc, _ := newServices()
		view := ui.NewApprovalModel(kownslSvc, args[0], locale, defaultTheme())
		return runProgram(ui.NewApprovalProgram(view))
	},
}
