package billing

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogEntry is the pricing view of a lesson type. Price is nil when the source carried
// no usable decimal.
type CatalogEntry struct {
	ID    int              `json:"id"`
	Key   string           `json:"key,omitempty"`
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// UnmarshalJSON accepts prices encoded as numbers or strings.
func (e *CatalogEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    int             `json:"id"`
		Key   string          `json:"key"`
		Name  string          `json:"name"`
		Price json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = CatalogEntry{ID: raw.ID, Key: raw.Key, Name: raw.Name}
	if d, ok := coerceJSONAmount(raw.Price); ok {
		e.Price = &d
	}
	return nil
}

// Catalog indexes lesson types by id and by name/key. A nil *Catalog is empty.
type Catalog struct {
	entries []CatalogEntry
	byID    map[int]int
	byName  map[string]int
}

// NewCatalog builds a catalog. On duplicate ids or names the first entry wins.
func NewCatalog(entries []CatalogEntry) *Catalog {
	c := &Catalog{
		entries: append([]CatalogEntry(nil), entries...),
		byID:    make(map[int]int, len(entries)),
		byName:  make(map[string]int, len(entries)*2),
	}

	for i, e := range c.entries {
		if _, ok := c.byID[e.ID]; !ok {
			c.byID[e.ID] = i
		}
		for _, name := range []string{e.Name, e.Key} {
			k := lookupKey(name)
			if k == "" {
				continue
			}
			if _, ok := c.byName[k]; !ok {
				c.byName[k] = i
			}
		}
	}
	return c
}

func lookupKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (c *Catalog) ByID(id int) (CatalogEntry, bool) {
	if c == nil {
		return CatalogEntry{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[i], true
}

// ByName matches the entry name or key, ignoring case and surrounding space.
func (c *Catalog) ByName(name string) (CatalogEntry, bool) {
	if c == nil {
		return CatalogEntry{}, false
	}
	k := lookupKey(name)
	if k == "" {
		return CatalogEntry{}, false
	}
	i, ok := c.byName[k]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[i], true
}

func (c *Catalog) Entries() []CatalogEntry {
	if c == nil {
		return nil
	}
	return append([]CatalogEntry(nil), c.entries...)
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
