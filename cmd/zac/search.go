package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/search"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/zaken"
)

var (
	searchIdentificatie string
	searchOmschrijving  string
	searchCatalogus     string
	searchZaaktype      string
	searchEigenschappen []string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search cases",
	Long: `Searches cases by identificatie, case type and property values.
Property filters take the form naam=waarde and require --catalogus and
--zaaktype so the property is resolved across all versions of the type.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, _, searchSvc := newServices()
		ctx := context.Background()

		form := search.ZaakSearchForm{
			Identificatie: searchIdentificatie,
			Omschrijving:  searchOmschrijving,
		}
		if searchZaaktype != "" {
			if searchCatalogus == "" {
				return fmt.Errorf("--zaaktype requires --catalogus")
			}
			form.Zaaktype = &search.ZaaktypeFilter{
				Catalogus:    searchCatalogus,
				Omschrijving: searchZaaktype,
			}
		}
		if len(searchEigenschappen) > 0 {
			if form.Zaaktype == nil {
				return fmt.Errorf("property filters require --catalogus and --zaaktype")
			}
			form.Eigenschappen = make(map[string]string, len(searchEigenschappen))
			for _, pair := range searchEigenschappen {
				naam, waarde, err := splitProperty(pair)
				if err != nil {
					return err
				}
				form.Eigenschappen[naam] = waarde
			}
		}

		result, err := searchSvc.PostSearchZaken(ctx, form)
		if err != nil {
			return err
		}

		fmt.Printf("%d zaken gevonden\n", result.Count)
		for _, zaak := range result.Results {
			fmt.Printf("%-20s %-40s %s\n", zaak.Identificatie, truncateTo(zaak.Omschrijving, 40), zaken.CaseURL(zaak))
		}
		return nil
	},
}

func splitProperty(pair string) (string, string, error) {
	for i := 0; i < len(pair); i++ {
		if pair[i] == '=' {
			if i == 0 || i == len(pair)-1 {
				break
			}
			return pair[:i], pair[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("property filter %q is not naam=waarde", pair)
}

func truncateTo(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-1] + "…"
}

func init() {
	searchCmd.Flags().StringVar(&searchIdentificatie, "identificatie", "", "(partial) case identificatie")
	searchCmd.Flags().StringVar(&searchOmschrijving, "omschrijving", "", "case description filter")
	searchCmd.Flags().StringVar(&searchCatalogus, "catalogus", "", "catalogue URL of the case type")
	searchCmd.Flags().StringVar(&searchZaaktype, "zaaktype", "", "case type omschrijving")
	searchCmd.Flags().StringArrayVar(&searchEigenschappen, "eigenschap", nil, "property filter naam=waarde (repeatable)")
}
