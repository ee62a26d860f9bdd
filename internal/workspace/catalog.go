package workspace

import (
	"log/slog"

	"github.com/KirkDiggler/monster-maker/internal/entities"
	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

// ReasonLimitReached marks catalog entries that cannot be placed right now
const ReasonLimitReached = "limit reached"

// CatalogEntry is one offerable part. Ineligible entries stay listed but are
// not draggable or clickable.
type CatalogEntry struct {
	PartName       string
	SourceCreature string
	Image          *sprite.Image
	Eligible       bool
	Reason         string
}

// CropParts builds the catalog entries for one creature, auto-cropping every
// part image. Parts that fail to decode are skipped.
func CropParts(c *entities.Creature) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(c.Parts))
	for _, name := range c.PartNames() {
		img, err := sprite.CropBytes(c.Parts[name])
		if err != nil {
			slog.Warn("skipping undecodable part",
				"creature", c.Name,
				"part", name,
				"error", err.Error())
			continue
		}
		entries = append(entries, CatalogEntry{
			PartName:       name,
			SourceCreature: c.Name,
			Image:          img,
			Eligible:       true,
		})
	}
	return entries
}

// Catalog lists the parts of the active creatures and tracks which of them
// the policy currently allows.
type Catalog struct {
	policy  EligibilityPolicy
	entries []CatalogEntry
}

// NewCatalog creates a catalog over fully cropped entries. Call Refresh
// before offering it.
func NewCatalog(policy EligibilityPolicy, entries []CatalogEntry) *Catalog {
	c := &Catalog{policy: policy}
	c.entries = append(c.entries, entries...)
	return c
}

// Policy returns the active eligibility policy
func (c *Catalog) Policy() EligibilityPolicy {
	return c.policy
}

// Entries returns a copy of the entries in catalog order
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds the entry for a part of a given source creature.
func (c *Catalog) Lookup(partName, source string) (CatalogEntry, bool) {
	for _, e := range c.entries {
		if e.PartName == partName && e.SourceCreature == source {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// CanAdd evaluates the policy against the given placed parts.
func (c *Catalog) CanAdd(partName, source string, placed []*PlacedPart) bool {
	return c.policy.CanAdd(partName, source, placed)
}

// Refresh recomputes availability of every entry.
func (c *Catalog) Refresh(placed []*PlacedPart) {
	for i := range c.entries {
		e := &c.entries[i]
		e.Eligible = c.policy.CanAdd(e.PartName, e.SourceCreature, placed)
		e.Reason = ""
		if !e.Eligible {
			e.Reason = ReasonLimitReached
		}
	}
}
