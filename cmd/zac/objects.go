package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/search"
)

var objectsGeometry string

var objectsCmd = &cobra.Command{
	Use:   "objects <objecttype-url> [query]",
	Short: "Search registered objects",
	Long: `Searches objects of a type, optionally within a GeoJSON geometry and
filtered by an attribute query. Query segments are comma separated:

  zac objects https://objecttypes.example.nl/types/1 "adres:Utrechtsestraat 41, type:Laadpaal"

A segment without a key filters on the object name.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, _, searchSvc := newServices()

		form := search.ObjectSearchForm{
			Filters: search.ObjectFilters{ObjectType: args[0]},
		}
		if len(args) == 2 {
			form.Filters.DataAttrs = search.ParseObjectQuery(args[1])
		}
		if objectsGeometry != "" {
			var geometry model.Geometry
			if err := json.Unmarshal([]byte(objectsGeometry), &geometry); err != nil {
				return fmt.Errorf("invalid --geometry: %w", err)
			}
			form.Filters.Geometry = &search.WithinGeometry{Within: geometry}
		}

		objects, err := searchSvc.SearchObjects(context.Background(), form)
		if err != nil {
			return err
		}

		fmt.Printf("%d objecten gevonden\n", len(objects))
		for _, object := range objects {
			line, err := json.Marshal(object)
			if err != nil {
				continue
			}
			fmt.Println(string(line))
		}
		return nil
	},
}

func init() {
	objectsCmd.Flags().StringVar(&objectsGeometry, "geometry", "", "GeoJSON geometry the objects must lie within")
}
