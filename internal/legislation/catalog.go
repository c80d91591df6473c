package legislation

import "slices"

// Catalog is the immutable, ordered record set for a session. Callers receive
// copies; the backing slice is never handed out.
type Catalog struct {
	records     []Record
	lastUpdated string
	source      string
}

// NewCatalog builds a catalog from records in the given order.
func NewCatalog(records []Record, lastUpdated, source string) *Catalog {
	return &Catalog{
		records:     slices.Clone(records),
		lastUpdated: lastUpdated,
		source:      source,
	}
}

// Records returns a copy of the record set in catalog order.
func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	return slices.Clone(c.records)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// LastUpdated returns the dataset's update stamp, if it carries one.
func (c *Catalog) LastUpdated() string {
	if c == nil {
		return ""
	}
	return c.lastUpdated
}

// Source describes where the records came from ("bundled" or a path).
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Lookup finds a record by id.
func (c *Catalog) Lookup(id string) (Record, bool) {
	if c == nil {
		return Record{}, false
	}
	for _, r := range c.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// OfType returns the records of one jurisdiction type, in catalog order.
func (c *Catalog) OfType(t JurisdictionType) []Record {
	if c == nil {
		return nil
	}
	var out []Record
	for _, r := range c.records {
		if r.JurisdictionType == t {
			out = append(out, r)
		}
	}
	return out
}
