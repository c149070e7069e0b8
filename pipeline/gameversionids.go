package pipeline

import (
	"strconv"
	"time"

	"github.com/RagedUnicorn/wow-renovate-data/curseforge"
	"github.com/RagedUnicorn/wow-renovate-data/gameversion"
	"github.com/RagedUnicorn/wow-renovate-data/log"
	"github.com/RagedUnicorn/wow-renovate-data/util"
	"github.com/RagedUnicorn/wow-renovate-data/where"
	"github.com/samber/mo"
)

// GameVersionIds publishes the game version id artifact: the flat id records of the
// upload API mapped to product variants, with synthetic release timestamps derived
// from bucket position.
type GameVersionIds struct {
	Fetch   func() ([]curseforge.GameVersion, error)
	Catalog gameversion.Catalog
	Now     func() time.Time
	Path    func() string
}

// NewGameVersionIds constructs the production game version id job.
func NewGameVersionIds(catalog gameversion.Catalog) *GameVersionIds {
	return &GameVersionIds{
		Fetch:   curseforge.FetchVersionIds,
		Catalog: catalog,
		Now:     time.Now,
		Path:    where.GameVersionIds,
	}
}

func (j *GameVersionIds) Name() string { return "game version ids" }

func (j *GameVersionIds) Target() string { return j.Path() }

func (j *GameVersionIds) OnUnchanged() WritePolicy { return SkipWrite }

// idRecord is the in-memory shape of one upstream id record before timestamps are assigned.
type idRecord struct {
	externalID      int
	originalVersion string
	variant         gameversion.Variant
}

// Build fetches the flat id records and assembles the candidate document.
func (j *GameVersionIds) Build() (Document, error) {
	versions, err := j.Fetch()
	if err != nil {
		return nil, err
	}

	var records []idRecord
	for _, v := range versions {
		if v.ID == 0 || v.Name == "" {
			continue
		}

		variant := gameversion.Unknown
		if versionType, ok := j.Catalog.Lookup(v.TypeID).Get(); ok {
			variant = versionType.Variant
		}

		records = append(records, idRecord{
			externalID:      v.ID,
			originalVersion: v.Name,
			variant:         variant,
		})
	}

	log.Infof("Found %s, kept %s",
		util.Quantify(len(versions), "game version", "game versions"),
		util.Quantify(len(records), "record", "records"))

	if len(records) == 0 {
		return nil, ErrEmptyResult
	}

	buckets := gameversion.GroupByVariant(records,
		func(r idRecord) gameversion.Variant { return r.variant },
		func(r idRecord) int { return gameversion.ParseVersionToNumber(r.originalVersion) },
	)

	now := j.Now().UTC()
	doc := &GameVersionIdsDocument{
		LastUpdated: now.Format(time.RFC3339),
	}

	// Per bucket of size n sorted newest-first, position i receives now - (n-i-1)
	// days, spreading the synthetic release history one day apart. This is an
	// ordering device for the consuming tool, not an authoritative release date.
	for _, variant := range append(gameversion.Variants(), gameversion.Unknown) {
		bucket := buckets[variant]
		for i, record := range bucket {
			released := now.AddDate(0, 0, -(len(bucket) - i - 1))
			doc.Releases = append(doc.Releases, GameVersionRelease{
				Version:          strconv.Itoa(record.externalID),
				OriginalVersion:  record.originalVersion,
				Variant:          record.variant,
				ReleaseTimestamp: released.Format(time.RFC3339),
			})
		}
	}

	return doc, nil
}

// ReadPrevious loads the persisted artifact, treating a missing or corrupt file as
// the absence of a previous document.
func (j *GameVersionIds) ReadPrevious(path string) mo.Option[Document] {
	var doc GameVersionIdsDocument
	if !readInto(path, &doc) {
		return mo.None[Document]()
	}
	return mo.Some[Document](&doc)
}

// releaseKey is the change-relevant projection of one release entry.
type releaseKey struct {
	OriginalVersion string              `json:"originalVersion"`
	Variant         gameversion.Variant `json:"variant"`
}

// releaseMap keys the change-relevant fields by external id. Should upstream ever
// emit duplicate ids in one run the last-seen entry wins; duplicates are not
// guarded against.
func releaseMap(releases []GameVersionRelease) map[string]releaseKey {
	m := make(map[string]releaseKey, len(releases))
	for _, r := range releases {
		m[r.Version] = releaseKey{OriginalVersion: r.OriginalVersion, Variant: r.Variant}
	}
	return m
}

// Changed compares the id keyed projections of the previous and candidate documents.
// Keying by id makes the comparison order insensitive; the synthetic timestamps are
// deliberately excluded so a mere re-run never counts as a change.
func (j *GameVersionIds) Changed(previous, candidate Document) bool {
	prev := previous.(*GameVersionIdsDocument)
	cand := candidate.(*GameVersionIdsDocument)
	return canonical(releaseMap(prev.Releases)) != canonical(releaseMap(cand.Releases))
}
