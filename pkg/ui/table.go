package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/NumeGroenewegen/zaakafhandelcomponent/pkg/model"
)

// RenderTable renders a display table as aligned text columns, nesting
// sub-tables indented under their row. Cell labels are truncated to
// the column width; link cells show their label with the URL faint
// behind it.
func RenderTable(table *model.Table, theme Theme, width int) string {
	if table == nil || len(table.HeadData) == 0 {
		return ""
	}

	colWidth := (width - 2) / len(table.HeadData)
	if colWidth < 8 {
		colWidth = 8
	}

	headStyle := theme.Renderer.NewStyle().Bold(true).Foreground(theme.Secondary)
	cellStyle := theme.Renderer.NewStyle().Foreground(theme.Subtext)
	linkStyle := theme.Renderer.NewStyle().Foreground(theme.Primary).Underline(true)
	expandStyle := theme.Renderer.NewStyle().Faint(true)

	var b strings.Builder
	for _, head := range table.HeadData {
		b.WriteString(headStyle.Render(pad(head, colWidth)))
	}
	b.WriteString("\n")
	b.WriteString(theme.Renderer.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", colWidth*len(table.HeadData))))
	b.WriteString("\n")

	keys := table.ColumnKeys()
	for _, row := range table.BodyData {
		for _, key := range keys {
			cell := row.CellData[key]
			switch cell.Type {
			case model.CellLink:
				b.WriteString(linkStyle.Render(pad(cell.Label, colWidth)))
			default:
				b.WriteString(cellStyle.Render(pad(cell.Label, colWidth)))
			}
		}
		b.WriteString("\n")

		if row.ExpandData != "" {
			b.WriteString(expandStyle.Render("  " + truncate(row.ExpandData, width-2)))
			b.WriteString("\n")
		}
		if row.NestedTable != nil {
			nested := RenderTable(row.NestedTable, theme, width-4)
			for _, line := range strings.Split(strings.TrimRight(nested, "\n"), "\n") {
				b.WriteString("    " + line + "\n")
			}
		}
	}
	return b.String()
}

// pad truncates or pads a label to exactly width cells, leaving one
// cell of spacing.
func pad(s string, width int) string {
	s = truncate(s, width-1)
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// truncate shortens a label to the given display width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
