package pipeline

import (
	"time"

	"github.com/RagedUnicorn/wow-renovate-data/curseforge"
	"github.com/RagedUnicorn/wow-renovate-data/gameversion"
	"github.com/RagedUnicorn/wow-renovate-data/log"
	"github.com/RagedUnicorn/wow-renovate-data/util"
	"github.com/RagedUnicorn/wow-renovate-data/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// AddonVersions publishes the addon interface version artifact: every parsable
// upstream version name normalized to its interface version identifier, grouped by
// product variant. Fields are injectable for tests; NewAddonVersions wires the
// production collaborators.
type AddonVersions struct {
	Fetch   func() ([]curseforge.VersionGroup, error)
	Catalog gameversion.Catalog
	Now     func() time.Time
	Path    func() string
}

// NewAddonVersions constructs the production addon versions job.
func NewAddonVersions(catalog gameversion.Catalog) *AddonVersions {
	return &AddonVersions{
		Fetch:   curseforge.FetchVersionGroups,
		Catalog: catalog,
		Now:     time.Now,
		Path:    where.Versions,
	}
}

func (j *AddonVersions) Name() string { return "addon versions" }

func (j *AddonVersions) Target() string { return j.Path() }

func (j *AddonVersions) OnUnchanged() WritePolicy { return PreserveTimestamp }

// flatten expands version groups into raw records, resolving each group's type through
// the catalog. Groups with an unknown type are kept and tagged with the sentinel
// variant so no data is silently lost.
func (j *AddonVersions) flatten(groups []curseforge.VersionGroup) []gameversion.RawVersion {
	var raws []gameversion.RawVersion

	for _, group := range groups {
		raw := gameversion.RawVersion{
			VersionTypeID: group.TypeID,
			Variant:       gameversion.Unknown,
		}

		if versionType, ok := j.Catalog.Lookup(group.TypeID).Get(); ok {
			raw.VersionTypeName = versionType.DisplayName
			raw.VersionTypeSlug = versionType.Slug
			raw.Variant = versionType.Variant
		}

		for _, name := range group.Versions {
			raw.Name = name
			raws = append(raws, raw)
		}
	}

	return raws
}

// Build fetches the grouped version names and assembles the candidate document.
func (j *AddonVersions) Build() (Document, error) {
	groups, err := j.Fetch()
	if err != nil {
		return nil, err
	}

	raws := j.flatten(groups)
	parsed := gameversion.ParseVersions(raws)
	log.Infof("Found %s, parsed %s",
		util.Quantify(len(raws), "version name", "version names"),
		util.Quantify(len(parsed), "release", "releases"))

	if len(parsed) == 0 {
		return nil, ErrEmptyResult
	}

	buckets := gameversion.GroupByVariant(parsed,
		func(p gameversion.ParsedVersion) gameversion.Variant { return p.Variant },
		gameversion.ParsedVersion.Number,
	)

	// Flatten variant by variant in catalog order, unknown entries last.
	var ordered []gameversion.ParsedVersion
	for _, variant := range append(gameversion.Variants(), gameversion.Unknown) {
		ordered = append(ordered, buckets[variant]...)
	}

	summary := make(map[gameversion.Variant]int, len(gameversion.Variants()))
	for _, variant := range gameversion.Variants() {
		summary[variant] = len(buckets[variant])
	}

	doc := &VersionsDocument{
		LastUpdated: j.Now().UTC().Format(time.RFC3339),
		Releases: lo.Map(ordered, func(p gameversion.ParsedVersion, _ int) ReleaseEntry {
			return ReleaseEntry{
				Version:           p.InterfaceVersion,
				Name:              p.OriginalVersion,
				Variant:           p.Variant,
				GameVersionTypeID: p.VersionTypeID,
				VersionTypeName:   p.VersionTypeName,
				VersionTypeSlug:   p.VersionTypeSlug,
			}
		}),
		Versions:          ordered,
		VersionsByVariant: buckets,
		VersionTypes:      j.Catalog.All(),
		Summary:           summary,
	}

	return doc, nil
}

// ReadPrevious loads the persisted artifact, treating a missing or corrupt file as
// the absence of a previous document.
func (j *AddonVersions) ReadPrevious(path string) mo.Option[Document] {
	var doc VersionsDocument
	if !readInto(path, &doc) {
		return mo.None[Document]()
	}
	return mo.Some[Document](&doc)
}

// Changed compares the serialized versions arrays of the previous and candidate
// documents. The comparison is order sensitive: a reordering counts as a change.
func (j *AddonVersions) Changed(previous, candidate Document) bool {
	prev := previous.(*VersionsDocument)
	cand := candidate.(*VersionsDocument)
	return canonical(prev.Versions) != canonical(cand.Versions)
}
