package model

// CellType says how a cell value should be rendered.
type CellType string

const (
	CellText CellType = "text"
	CellDate CellType = "date"
	CellIcon CellType = "icon"
	CellLink CellType = "link"
)

// Cell is one rendered value inside a table row.
type Cell struct {
	Type  CellType `json:"type"`
	Label string   `json:"label"`
	Date  string   `json:"date,omitempty"`
	URL   string   `json:"url,omitempty"`
	Color string   `json:"iconColor,omitempty"`
}

// TextCell builds a plain text cell.
func TextCell(label string) Cell {
	return Cell{Type: CellText, Label: label}
}

// DateCell builds a date cell; an empty date renders as text.
func DateCell(date string) Cell {
	if date == "" {
		return Cell{Type: CellText}
	}
	return Cell{Type: CellDate, Label: date, Date: date}
}

// IconCell builds an icon cell with a color hint.
func IconCell(label, color string) Cell {
	return Cell{Type: CellIcon, Label: label, Color: color}
}

/// RowData is one row of a Table: the cells keyed by column, optional
// expandable free text, and an optional nested sub-table.
type RowData struct {
	CellData    map[string]Cell `json:"cellData"`
	ExpandData  string          `json:"expandData,omitempty"`
	NestedTable *Table          `json:"nestedTableData,omitempty"`
}

// Table is the generic row/column view model API responses are
// projected into for rendering. Keys pairs each header label with the
// CellData key of its column, in display order.
type Table struct {
	HeadData []string  `json:"headData"`
	Keys     []string  `json:"-"`
	BodyData []RowData `json:"bodyData"`
}

// NewTable creates a table with the given header labels, column keys
// and rows.
func NewTable(headData, keys []string, bodyData []RowData) *Table {
	return &Table{HeadData: headData, Keys: keys, BodyData: bodyData}
}

// ColumnKeys returns the column keys in display order.
func (t *Table) ColumnKeys() []string {
	return t.Keys
}
