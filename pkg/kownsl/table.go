package kownsl

import (
	"strconv"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/format"
	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// ApprovalTable projects the given reviews of an approval request into
// the display table: one row per reviewer with name, date and the
// decision label, the toelichting as expandable detail.
func ApprovalTable(request *model.ReviewRequest, locale format.Locale) *model.Table {
	rows := make([]model.RowData, 0, len(request.Reviews))
	for _, review := range request.Reviews {
		decision := model.IconCell("Niet Akkoord", "red")
		if review.Approved {
			decision = model.IconCell("Akkoord", "green")
		}
		rows = append(rows, model.RowData{
			CellData: map[string]model.Cell{
				"author":   model.TextCell(review.Author.DisplayName()),
				"created":  model.TextCell(format.Short(locale, review.Created)),
				"approved": decision,
			},
			ExpandData: review.Toelichting,
		})
	}
	return model.NewTable(
		[]string{"Accordeur", "Gedaan op", "Akkoord"},
		[]string{"author", "created", "approved"},
		rows,
	)
}

// AdviceTable projects the given advices into the display table. Rows
// carry a nested sub-table of per-document source/advice version links
// when the advice covered documents.
func AdviceTable(request *model.ReviewRequest, locale format.Locale) *model.Table {
	rows := make([]model.RowData, 0, len(request.Reviews))
	for _, review := range request.Reviews {
		docCount := "-"
		var nested *model.Table
		if len(review.Documents) > 0 {
			docCount = strconv.Itoa(len(review.Documents))
			nested = reviewDocumentTable(review.Documents)
		}
		rows = append(rows, model.RowData{
			CellData: map[string]model.Cell{
				"advies":      model.TextCell(review.Advice),
				"van":         model.TextCell(review.Author.DisplayName()),
				"datum":       model.DateCell(format.Short(locale, review.Created)),
				"docAdviezen": model.TextCell(docCount),
			},
			NestedTable: nested,
		})
	}
	return model.NewTable(
		[]string{"Advies", "Van", "Gegeven op", "Documentadviezen"},
		[]string{"advies", "van", "datum", "docAdviezen"},
		rows,
	)
}

// ReviewTable picks the projection matching the request's review type.
func ReviewTable(request *model.ReviewRequest, locale format.Locale) *model.Table {
	if request.ReviewType == model.ReviewTypeAdvice {
		return AdviceTable(request, locale)
	}
	return ApprovalTable(request, locale)
}

func reviewDocumentTable(documents []model.ReviewDocument) *model.Table {
	rows := make([]model.RowData, 0, len(documents))
	for _, doc := range documents {
		source := model.Cell{Type: model.CellLink, Label: "Originele versie", URL: doc.SourceURL}
		advice := model.TextCell("-")
		if doc.AdviceURL != "" {
			advice = model.Cell{Type: model.CellLink, Label: "Aangepaste versie", URL: doc.AdviceURL}
		}
		rows = append(rows, model.RowData{
			CellData: map[string]model.Cell{
				"document": model.TextCell(doc.Document),
				"source":   source,
				"advice":   advice,
			},
		})
	}
	return model.NewTable(
		[]string{"Document", "Originele versie", "Aangepaste versie"},
		[]string{"document", "source", "advice"},
		rows,
	)
}
