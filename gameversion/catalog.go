package gameversion

import (
	"github.com/samber/mo"
)

// VersionType describes one CurseForge version type: the opaque numeric identifier
// the upstream API assigns to a product variant, plus its display metadata.
type VersionType struct {
	ID          int     `json:"id"`
	DisplayName string  `json:"name"`
	Slug        string  `json:"slug"`
	Variant     Variant `json:"variant"`
}

// Catalog is the static mapping from CurseForge version type identifiers to product variants.
// It is an immutable value constructed once at startup and safe to share across callers.
type Catalog struct {
	types []VersionType
	byID  map[int]VersionType
}

// NewCatalog constructs the catalog of all version types CurseForge currently assigns
// to World of Warcraft product lines.
func NewCatalog() Catalog {
	types := []VersionType{
		{ID: 517, DisplayName: "WoW Retail", Slug: "wow_retail", Variant: Retail},
		{ID: 67408, DisplayName: "WoW Classic", Slug: "wow_classic", Variant: ClassicEra},
		{ID: 73246, DisplayName: "WoW Burning Crusade Classic", Slug: "wow_burning_crusade_classic", Variant: TBCClassic},
		{ID: 73713, DisplayName: "WoW Wrath of the Lich King Classic", Slug: "wow_wrath_of_the_lich_king_classic", Variant: WotlkClassic},
		{ID: 77522, DisplayName: "WoW Cataclysm Classic", Slug: "wow_cataclysm_classic", Variant: CataClassic},
		{ID: 79434, DisplayName: "WoW Mists of Pandaria Classic", Slug: "wow_mists_of_pandaria_classic", Variant: MopClassic},
	}

	byID := make(map[int]VersionType, len(types))
	for _, t := range types {
		byID[t.ID] = t
	}

	return Catalog{types: types, byID: byID}
}

// Lookup resolves a CurseForge version type identifier to its descriptor.
func (c Catalog) Lookup(typeID int) mo.Option[VersionType] {
	if t, ok := c.byID[typeID]; ok {
		return mo.Some(t)
	}
	return mo.None[VersionType]()
}

// All returns every known version type in canonical publication order.
func (c Catalog) All() []VersionType {
	out := make([]VersionType, len(c.types))
	copy(out, c.types)
	return out
}
