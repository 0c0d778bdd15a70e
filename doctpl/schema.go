// Package doctpl provides a JSON-based document template DSL rendered
// through the pageflow layout engine.
//
// A template describes one flowing column of elements; the engine measures
// each element, reserves space through a Pager, and breaks to new pages
// automatically. The schema is declarative and easy for both humans and
// machines to generate.
//
// Example JSON:
//
//	{
//	  "title": "My Document",
//	  "elements": [
//	    {"type": "heading", "text": "Hello World", "level": 1},
//	    {"type": "paragraph", "text": "Some body text here."}
//	  ]
//	}
package doctpl

// Document is the top-level template that describes an entire document.
type Document struct {
	Title      string    `json:"title,omitempty"`
	PageWidth  float64   `json:"pageWidth,omitempty"`  // page units (default: A4 in points)
	PageHeight float64   `json:"pageHeight,omitempty"` // page units (default: A4 in points)
	MaxPages   int       `json:"maxPages,omitempty"`   // 0 = unlimited
	Margin     *Margin   `json:"margin,omitempty"`
	Font       *Font     `json:"font,omitempty"` // default font for the document
	Elements   []Element `json:"elements"`
}

// Margin defines page margins.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Font specifies a font face and size.
type Font struct {
	Family     string  `json:"family"`
	Style      string  `json:"style"` // "" (regular), "B" (bold), "I" (italic), "BI"
	Size       float64 `json:"size"`
	LineHeight float64 `json:"lineHeight,omitempty"` // 0 = 1.2 x size
}

// Color is an RGB color.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Element is a single flowing element within the document.
// The Type field determines which other fields are relevant.
type Element struct {
	Type string `json:"type"` // heading, paragraph, table, barcode, spacer, hr, list

	// Text content (heading, paragraph)
	Text  string `json:"text,omitempty"`
	Level int    `json:"level,omitempty"` // heading level 1-6
	Align string `json:"align,omitempty"` // left, center, right (default: left)

	// Font override for this element
	Font  *Font  `json:"font,omitempty"`
	Color *Color `json:"color,omitempty"`

	// Table
	Columns     []TableColumn `json:"columns,omitempty"`
	Rows        [][]string    `json:"rows,omitempty"`
	HeaderFill  *Color        `json:"headerFill,omitempty"`
	CellPadding float64       `json:"cellPadding,omitempty"`

	// Barcode
	Barcode *Barcode `json:"barcode,omitempty"`

	// Spacer / HR
	SpacerHeight float64 `json:"spacerHeight,omitempty"`
	LineWidth    float64 `json:"lineWidth,omitempty"`

	// List
	Items     []string `json:"items,omitempty"`
	Ordered   bool     `json:"ordered,omitempty"`
	BulletStr string   `json:"bullet,omitempty"` // custom bullet character
}

// TableColumn defines a column in a table element.
type TableColumn struct {
	Header string  `json:"header"`
	Width  float64 `json:"width,omitempty"` // 0 = share of the remaining width
	Align  string  `json:"align,omitempty"` // left, center, right
}

// Barcode describes a barcode element.
type Barcode struct {
	Kind          string  `json:"kind"` // code128, qr, pdf417
	Content       string  `json:"content"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Columns       int     `json:"columns,omitempty"`       // pdf417 only
	SecurityLevel int     `json:"securityLevel,omitempty"` // pdf417 only
}
