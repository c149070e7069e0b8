package pipeline

import (
	"errors"
	"fmt"

	"github.com/RagedUnicorn/wow-renovate-data/log"
	"github.com/samber/mo"
)

// ErrEmptyResult signals that the upstream API returned zero usable records after
// mapping. An empty catalog almost certainly means a broken upstream contract, so
// this aborts the run instead of publishing an empty artifact.
var ErrEmptyResult = errors.New("upstream returned no usable records")

// WritePolicy selects what happens when a freshly built document does not differ
// meaningfully from the persisted one. The two artifacts intentionally behave
// differently here and tests depend on the distinction.
type WritePolicy int

const (
	// PreserveTimestamp rewrites the artifact but restores the previous
	// lastUpdated value, keeping the published timestamp stable.
	PreserveTimestamp WritePolicy = iota

	// SkipWrite leaves the previous artifact untouched byte for byte.
	SkipWrite
)

// Job is one fetch-normalize-publish flow. The engine below is shared; the ordering
// key, change comparator and output shape are supplied by each implementation.
type Job interface {
	Name() string

	// Target resolves the artifact path this job publishes to.
	Target() string

	// Build fetches fresh upstream data and assembles the candidate document,
	// lastUpdated already stamped. Returns ErrEmptyResult when nothing usable
	// came back.
	Build() (Document, error)

	// ReadPrevious loads the persisted document, None when missing or corrupt.
	ReadPrevious(path string) mo.Option[Document]

	// Changed reports whether the candidate differs meaningfully from the
	// previous document.
	Changed(previous, candidate Document) bool

	// OnUnchanged selects the no-change write policy.
	OnUnchanged() WritePolicy
}

// Run executes a job end to end. With dryRun set, the write step is skipped and only
// the change decision is reported. The returned flag indicates whether a meaningful
// change was detected (absence of a previous artifact counts as changed).
func Run(job Job, dryRun bool) (bool, error) {
	candidate, err := job.Build()
	if err != nil {
		return false, fmt.Errorf("%s: %w", job.Name(), err)
	}

	path := job.Target()
	previous := job.ReadPrevious(path)

	changed := true
	if prev, ok := previous.Get(); ok {
		changed = job.Changed(prev, candidate)
	}

	if dryRun {
		log.Infof("%s: dry run, changed=%t", job.Name(), changed)
		return changed, nil
	}

	if !changed {
		switch job.OnUnchanged() {
		case SkipWrite:
			log.Infof("%s: no changes detected, leaving %s untouched", job.Name(), path)
			return false, nil
		case PreserveTimestamp:
			log.Infof("%s: no changes detected, rewriting %s with preserved timestamp", job.Name(), path)
			candidate.SetTimestamp(previous.MustGet().Timestamp())
		}
	} else {
		log.Infof("%s: changes detected, writing %s", job.Name(), path)
	}

	if err := writeDocument(path, candidate); err != nil {
		return changed, fmt.Errorf("%s: write artifact: %w", job.Name(), err)
	}

	return changed, nil
}
