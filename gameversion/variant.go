// Package gameversion implements the normalization core: parsing dotted World of Warcraft
// version strings into interface version identifiers, resolving CurseForge version types
// to product variants, and grouping the resulting records for publication.
package gameversion

// Variant identifies one of the distinct World of Warcraft product lines tracked independently.
type Variant string

const (
	Retail       Variant = "retail"
	ClassicEra   Variant = "classic_era"
	TBCClassic   Variant = "tbc_classic"
	WotlkClassic Variant = "wotlk_classic"
	CataClassic  Variant = "cata_classic"
	MopClassic   Variant = "mop_classic"

	// Unknown is the sentinel variant assigned to records whose version type
	// is not present in the catalog. Such records are kept, not dropped.
	Unknown Variant = "unknown"
)

// Variants returns all known product variants in canonical publication order.
// The unknown sentinel is not part of the canonical set.
func Variants() []Variant {
	return []Variant{Retail, ClassicEra, TBCClassic, WotlkClassic, CataClassic, MopClassic}
}
