package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/RagedUnicorn/wow-renovate-data/curseforge"
	"github.com/RagedUnicorn/wow-renovate-data/filesystem"
	"github.com/RagedUnicorn/wow-renovate-data/gameversion"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// fixedClock returns a deterministic clock for pipeline runs.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func addonVersionsJob(path string, now time.Time, groups []curseforge.VersionGroup) *AddonVersions {
	return &AddonVersions{
		Fetch:   func() ([]curseforge.VersionGroup, error) { return groups, nil },
		Catalog: gameversion.NewCatalog(),
		Now:     fixedClock(now),
		Path:    func() string { return path },
	}
}

func TestAddonVersionsBuild(t *testing.T) {
	Convey("AddonVersions.Build", t, func() {
		now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		groups := []curseforge.VersionGroup{
			{TypeID: 517, Versions: []string{"11.1.5", "11.2.0", "Beta"}},
			{TypeID: 67408, Versions: []string{"1.15.3"}},
			{TypeID: 4242, Versions: []string{"9.9.9"}},
		}

		job := addonVersionsJob("wow-versions-build.json", now, groups)
		doc := lo.Must(job.Build()).(*VersionsDocument)

		Convey("Should stamp the run time", func() {
			So(doc.LastUpdated, ShouldEqual, "2026-08-30T12:00:00Z")
		})

		Convey("Should drop unparsable names and keep unknown types tagged", func() {
			So(doc.Versions, ShouldHaveLength, 4)

			unknown := doc.VersionsByVariant[gameversion.Unknown]
			So(unknown, ShouldHaveLength, 1)
			So(unknown[0].InterfaceVersion, ShouldEqual, "90909")
			So(unknown[0].VersionTypeID, ShouldEqual, 4242)
			So(unknown[0].VersionTypeName, ShouldBeEmpty)
		})

		Convey("Should order each variant bucket newest first", func() {
			retail := doc.VersionsByVariant[gameversion.Retail]
			So(retail, ShouldHaveLength, 2)
			So(retail[0].InterfaceVersion, ShouldEqual, "110200")
			So(retail[1].InterfaceVersion, ShouldEqual, "110105")
		})

		Convey("Should flatten releases variant by variant in catalog order", func() {
			So(doc.Releases, ShouldHaveLength, 4)
			So(doc.Releases[0].Variant, ShouldEqual, gameversion.Retail)
			So(doc.Releases[0].Version, ShouldEqual, "110200")
			So(doc.Releases[2].Variant, ShouldEqual, gameversion.ClassicEra)
			So(doc.Releases[3].Variant, ShouldEqual, gameversion.Unknown)
		})

		Convey("Should carry type metadata on releases", func() {
			So(doc.Releases[2].Name, ShouldEqual, "1.15.3")
			So(doc.Releases[2].GameVersionTypeID, ShouldEqual, 67408)
			So(doc.Releases[2].VersionTypeSlug, ShouldEqual, "wow_classic")
		})

		Convey("Should summarize all six variants, zeroes included", func() {
			So(doc.Summary, ShouldHaveLength, 6)
			So(doc.Summary[gameversion.Retail], ShouldEqual, 2)
			So(doc.Summary[gameversion.ClassicEra], ShouldEqual, 1)
			So(doc.Summary[gameversion.MopClassic], ShouldEqual, 0)
		})

		Convey("Should dump the full catalog", func() {
			So(doc.VersionTypes, ShouldHaveLength, 6)
		})

		Convey("Should abort when nothing parses", func() {
			empty := addonVersionsJob("unused.json", now, []curseforge.VersionGroup{
				{TypeID: 517, Versions: []string{"Beta", "Mists of Pandaria"}},
			})
			_, err := empty.Build()
			So(err, ShouldEqual, ErrEmptyResult)
		})
	})
}

func TestAddonVersionsRun(t *testing.T) {
	Convey("AddonVersions change detection", t, func() {
		path := "wow-versions-run.json"
		groups := []curseforge.VersionGroup{
			{TypeID: 517, Versions: []string{"11.2.0"}},
			{TypeID: 67408, Versions: []string{"1.15.3"}},
		}
		first := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		later := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		Convey("First run writes a fresh artifact and reports a change", func() {
			changed, err := Run(addonVersionsJob(path, first, groups), false)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)

			var doc VersionsDocument
			So(readInto(path, &doc), ShouldBeTrue)
			So(doc.LastUpdated, ShouldEqual, "2026-08-01T00:00:00Z")

			Convey("An identical later run preserves the timestamp but still rewrites", func() {
				// Compact the file on disk so the rewrite is observable.
				raw := lo.Must(filesystem.API().ReadFile(path))
				var decoded map[string]any
				lo.Must0(json.Unmarshal(raw, &decoded))
				compacted := lo.Must(json.Marshal(decoded))
				lo.Must0(filesystem.API().WriteFile(path, compacted, 0644))

				changed, err := Run(addonVersionsJob(path, later, groups), false)
				So(err, ShouldBeNil)
				So(changed, ShouldBeFalse)

				rewritten := lo.Must(filesystem.API().ReadFile(path))
				So(string(rewritten), ShouldNotResemble, string(compacted))

				var doc VersionsDocument
				So(readInto(path, &doc), ShouldBeTrue)
				So(doc.LastUpdated, ShouldEqual, "2026-08-01T00:00:00Z")
				// Indented output proves the file was written again.
				So(string(rewritten), ShouldContainSubstring, "\n  \"lastUpdated\"")
			})

			Convey("A run with different upstream data refreshes the timestamp", func() {
				grown := append(groups, curseforge.VersionGroup{TypeID: 73246, Versions: []string{"2.5.4"}})
				changed, err := Run(addonVersionsJob(path, later, grown), false)
				So(err, ShouldBeNil)
				So(changed, ShouldBeTrue)

				var doc VersionsDocument
				So(readInto(path, &doc), ShouldBeTrue)
				So(doc.LastUpdated, ShouldEqual, "2026-08-30T00:00:00Z")
				So(doc.Versions, ShouldHaveLength, 3)
			})

			Convey("A dry run reports the decision without touching the artifact", func() {
				before := lo.Must(filesystem.API().ReadFile(path))
				grown := append(groups, curseforge.VersionGroup{TypeID: 77522, Versions: []string{"4.4.0"}})

				changed, err := Run(addonVersionsJob(path, later, grown), true)
				So(err, ShouldBeNil)
				So(changed, ShouldBeTrue)

				after := lo.Must(filesystem.API().ReadFile(path))
				So(string(after), ShouldEqual, string(before))
			})
		})

		Convey("A corrupt previous artifact forces a full rewrite", func() {
			corrupt := "wow-versions-corrupt.json"
			lo.Must0(filesystem.API().WriteFile(corrupt, []byte("{not json"), 0644))

			changed, err := Run(addonVersionsJob(corrupt, first, groups), false)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)

			var doc VersionsDocument
			So(readInto(corrupt, &doc), ShouldBeTrue)
			So(doc.LastUpdated, ShouldEqual, "2026-08-01T00:00:00Z")
		})
	})
}
