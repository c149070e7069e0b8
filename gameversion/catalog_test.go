package gameversion

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	Convey("Catalog", t, func() {
		catalog := NewCatalog()

		Convey("Should know all six version types", func() {
			So(catalog.All(), ShouldHaveLength, 6)

			expected := map[int]Variant{
				517:   Retail,
				67408: ClassicEra,
				73246: TBCClassic,
				73713: WotlkClassic,
				77522: CataClassic,
				79434: MopClassic,
			}

			for id, variant := range expected {
				entry := catalog.Lookup(id)
				So(entry.IsPresent(), ShouldBeTrue)
				So(entry.MustGet().Variant, ShouldEqual, variant)
				So(entry.MustGet().ID, ShouldEqual, id)
				So(entry.MustGet().DisplayName, ShouldNotBeEmpty)
				So(entry.MustGet().Slug, ShouldNotBeEmpty)
			}
		})

		Convey("Should yield None for unknown identifiers", func() {
			So(catalog.Lookup(0).IsAbsent(), ShouldBeTrue)
			So(catalog.Lookup(99999).IsAbsent(), ShouldBeTrue)
		})

		Convey("All should return a defensive copy", func() {
			first := catalog.All()
			first[0].DisplayName = "mutated"
			So(catalog.All()[0].DisplayName, ShouldEqual, "WoW Retail")
		})

		Convey("Variants should list the canonical publication order", func() {
			So(Variants(), ShouldResemble, []Variant{
				Retail, ClassicEra, TBCClassic, WotlkClassic, CataClassic, MopClassic,
			})
		})
	})
}
