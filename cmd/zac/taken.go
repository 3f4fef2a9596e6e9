package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/ui"
)

var takenCmd = &cobra.Command{
	Use:   "taken [bronorganisatie] <identificatie>",
	Short: "Open the task dashboard of a case",
	Long: `Opens the Ketenprocessen dashboard of a case: every open user task
of its main process, with claiming, cancelling and form handling.

With one argument the bronorganisatie from the config file is used.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTTY(); err != nil {
			return err
		}

		bronorganisatie := cfg.Bronorganisatie
		identificatie := args[0]
		if len(args) == 2 {
			bronorganisatie, identificatie = args[0], args[1]
		}
		if bronorganisatie == "" {
			return fmt.Errorf("no bronorganisatie given and none configured")
		}

		zakenSvc, camundaSvc, _, _ := newServices()
		zaak, err := zakenSvc.RetrieveCaseDetails(context.Background(), bronorganisatie, identificatie)
		if err != nil {
			return fmt.Errorf("failed to fetch case %s/%s: %w", bronorganisatie, identificatie, err)
		}

		dashboard := ui.NewTaskListModel(camundaSvc, zaak.URL, locale, defaultTheme())
		return runProgram(ui.NewTaskListProgram(dashboard))
	},
}
