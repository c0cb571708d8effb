package checklist

// Item is one markdown checkbox line.
type Item struct {
	Line    int    // index among parsed checkboxes
	Indent  string // leading whitespace
	Checked bool
	Title   string // text without the due annotation
	DueDate string // raw text from "(due: ...)", empty when absent
	RawLine string
}

// GetDueDate lets parsed items go straight into the deadline engine.
func (i Item) GetDueDate() string { return i.DueDate }

// Stats summarizes checklist progress.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Progress  float64 // 0-100
}

// RenderItem is one line of a rendered checklist.
type RenderItem struct {
	Checked bool
	Title   string
	Note    string // rendered as "(Note)" after the title when set
}
