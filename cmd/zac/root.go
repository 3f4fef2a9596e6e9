package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/cache"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/camunda"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/client"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/config"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/format"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/kownsl"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/search"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/ui"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/zaken"
)

var (
	configPath string

	cfg    *config.Config
	api    *client.Client
	locale format.Locale
)

var rootCmd = &cobra.Command{
	Use:   "zac",
	Short: "Terminal client for the zaakafhandelcomponent",
	Long: `zac works cases from the terminal: the task dashboard of a case,
answering review requests, and searching cases and objects.

Credentials come from ~/.config/zac/config.yml (or --config): the
backend base_url plus the session and CSRF cookies of an authenticated
browser session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		locale = format.Locale(cfg.Locale)

		api, err = client.New(cfg.BaseURL)
		if err != nil {
			return err
		}
		return api.SetSession(cfg.SessionID, cfg.CSRFToken)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/zac/config.yml)")

	rootCmd.AddCommand(takenCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(objectsCmd)
}

// requireTTY rejects TUI commands on non-interactive stdout.
func requireTTY() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("this command needs an interactive terminal")
	}
	return nil
}

func newServices() (*zaken.Service, *camunda.Service, *kownsl.Service, *search.Service) {
	shared := cache.New()
	return zaken.NewService(api, shared),
		camunda.NewService(api),
		kownsl.NewService(api),
		search.NewService(api)
}

func defaultTheme() ui.Theme {
	return ui.DefaultTheme(lipgloss.DefaultRenderer())
}

func runProgram(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
