package roster

import (
	"encoding/json"
	"sort"
)

// Style is the display information of an assignment.
type Style struct {
	Abbreviation string `json:"abbreviation"`
	Color        string `json:"color"`
}

// DefaultStyle is used for assignments missing from the catalog.
var DefaultStyle = Style{Abbreviation: "?", Color: "#e6e6e6"}

// DefaultGroupCount is how many leading catalog entries are care groups.
const DefaultGroupCount = 6

// Catalog maps assignments to their display style, preserving sheet order.
// The zero value is an empty catalog ready to use.
type Catalog struct {
	order  []Assignment
	styles map[Assignment]Style
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{styles: make(map[Assignment]Style)}
}

// Add registers a or replaces its style. Re-adding keeps the first position.
func (c *Catalog) Add(a Assignment, s Style) {
	if c.styles == nil {
		c.styles = make(map[Assignment]Style)
	}
	if _, ok := c.styles[a]; !ok {
		c.order = append(c.order, a)
	}
	c.styles[a] = s
}

// Lookup returns the style of a, falling back to [DefaultStyle]. Missing
// abbreviation or color fields fall back individually.
func (c *Catalog) Lookup(a Assignment) Style {
	if c == nil {
		return DefaultStyle
	}
	s, ok := c.styles[a]
	if !ok {
		return DefaultStyle
	}
	if s.Abbreviation == "" {
		s.Abbreviation = DefaultStyle.Abbreviation
	}
	if s.Color == "" {
		s.Color = DefaultStyle.Color
	}
	return s
}

// Has reports whether a is registered.
func (c *Catalog) Has(a Assignment) bool {
	if c == nil {
		return false
	}
	_, ok := c.styles[a]
	return ok
}

// Assignments returns all registered assignments in sheet order.
func (c *Catalog) Assignments() []Assignment {
	if c == nil {
		return nil
	}
	return append([]Assignment(nil), c.order...)
}

// Groups returns the first n assignments, the care groups of the facility.
func (c *Catalog) Groups(n int) []Assignment {
	all := c.Assignments()
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// Len returns the number of registered assignments.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

type catalogEntry struct {
	Name Assignment `json:"name"`
	Style
}

// MarshalJSON encodes the catalog as an ordered list.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	entries := make([]catalogEntry, 0, c.Len())
	for _, a := range c.Assignments() {
		entries = append(entries, catalogEntry{Name: a, Style: c.styles[a]})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON decodes the ordered list form.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*c = Catalog{styles: make(map[Assignment]Style, len(entries))}
	for _, e := range entries {
		c.Add(e.Name, e.Style)
	}
	return nil
}

// StaffInfo holds the per-employee attributes of the staff sheet.
type StaffInfo struct {
	Qualification string  `json:"qualification"`
	ContractHours float64 `json:"contract_hours"`
}

// Directory maps employee names to their staff attributes.
type Directory map[string]StaffInfo

// Qualifications returns the distinct qualifications, sorted.
func (d Directory) Qualifications() []string {
	seen := make(map[string]bool)
	var out []string
	for _, info := range d {
		if info.Qualification == "" || seen[info.Qualification] {
			continue
		}
		seen[info.Qualification] = true
		out = append(out, info.Qualification)
	}
	sort.Strings(out)
	return out
}
