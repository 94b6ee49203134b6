// Package docx builds a minimal WordprocessingML document: a flat tree of
// paragraphs and tables packed into the OOXML zip container. Callers describe
// logical content only; element and container encoding stays in this package.
package docx

// Run is a styled fragment of text within a paragraph.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int    // half-points, Word convention; 0 means inherit
	Font   string // e.g. "Times New Roman"
	Color  string // RRGGBB
}

// Paragraph alignment values.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Border styles for paragraph rules.
const (
	BorderSingle = "single"
	BorderNone   = "none"
)

// ParagraphBorder describes a horizontal rule above or below a paragraph.
type ParagraphBorder struct {
	Style string // BorderSingle
	Size  int    // eighths of a point
	Color string // RRGGBB
}

// Paragraph is a block of runs with optional alignment, spacing and borders.
// Spacing values are in twips (twentieths of a point).
type Paragraph struct {
	Align         string
	SpacingBefore int
	SpacingAfter  int
	BorderTop     *ParagraphBorder
	BorderBottom  *ParagraphBorder
	Runs          []Run
}

// Cell is one table cell. WidthPct is a percentage of table width; zero lets
// the table distribute space. A cell may hold paragraphs and nested tables.
type Cell struct {
	WidthPct   int
	Shade      string // RRGGBB fill
	SpanCols   int    // >1 merges across columns
	Paragraphs []Paragraph
	Tables     []Table
}

// Row is one table row.
type Row struct {
	Cells []Cell
}

// Table spans the full page width. Borderless suppresses all rules.
type Table struct {
	Borderless bool
	Rows       []Row
}

// PageMargins in twips; zero value means the 720 (0.5 inch) default.
type PageMargins struct {
	Top, Bottom, Left, Right int
}

// Document is an ordered sequence of blocks plus section properties.
type Document struct {
	margins PageMargins
	blocks  []interface{} // Paragraph or Table, in order
}

// New returns an empty document with half-inch margins.
func New() *Document {
	return &Document{margins: PageMargins{Top: 720, Bottom: 720, Left: 720, Right: 720}}
}

// SetMargins overrides the page margins for the single document section.
func (d *Document) SetMargins(m PageMargins) {
	if m.Top > 0 {
		d.margins.Top = m.Top
	}
	if m.Bottom > 0 {
		d.margins.Bottom = m.Bottom
	}
	if m.Left > 0 {
		d.margins.Left = m.Left
	}
	if m.Right > 0 {
		d.margins.Right = m.Right
	}
}

// AddParagraph appends a paragraph block.
func (d *Document) AddParagraph(p Paragraph) {
	d.blocks = append(d.blocks, p)
}

// AddTable appends a table block.
func (d *Document) AddTable(t Table) {
	d.blocks = append(d.blocks, t)
}
