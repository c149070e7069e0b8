package gameversion

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// interfaceVersionPattern matches a dotted three-part version string with at most one
// trailing letter, e.g. "1.15.3" or "4.0.3a". The match must consume the whole string:
// prefixes, suffixes, extra numeric groups and whitespace all disqualify a candidate.
var interfaceVersionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)[A-Za-z]?$`)

// RawVersion is one upstream version name after flattening a CurseForge version group
// through the catalog. Records with an unresolvable type keep the unknown variant.
type RawVersion struct {
	Name            string
	VersionTypeID   int
	VersionTypeName string
	VersionTypeSlug string
	Variant         Variant
}

// ParsedVersion is a normalized version record carrying the derived interface version
// identifier addons declare for API compatibility.
type ParsedVersion struct {
	InterfaceVersion string  `json:"interfaceVersion"`
	OriginalVersion  string  `json:"originalVersion"`
	Variant          Variant `json:"variant"`
	VersionTypeID    int     `json:"versionTypeId,omitempty"`
	VersionTypeName  string  `json:"versionTypeName,omitempty"`
	VersionTypeSlug  string  `json:"versionTypeSlug,omitempty"`
}

// pad2 left-pads a digit group to two characters. Wider groups pass through unchanged,
// padding never truncates.
func pad2(digits string) string {
	if len(digits) >= 2 {
		return digits
	}
	return "0" + digits
}

// ParseInterfaceVersion derives the interface version identifier from a dotted version
// string: the major digit group unpadded, minor and patch zero-padded to two digits each.
// "1.15.3" becomes "11503", "11.2.0" becomes "110200", "4.0.3a" becomes "40003".
// Strings that are not a clean three-part version (extra groups, prefixes, whitespace,
// more than one trailing letter) yield None.
func ParseInterfaceVersion(version string) mo.Option[string] {
	match := interfaceVersionPattern.FindStringSubmatch(version)
	if match == nil {
		return mo.None[string]()
	}

	major, minor, patch := match[1], match[2], match[3]
	return mo.Some(major + pad2(minor) + pad2(patch))
}

// ParseVersion normalizes a single raw record, carrying the variant and version type
// metadata through unchanged. Records whose name cannot be parsed yield None.
func ParseVersion(raw RawVersion) mo.Option[ParsedVersion] {
	interfaceVersion, ok := ParseInterfaceVersion(raw.Name).Get()
	if !ok {
		return mo.None[ParsedVersion]()
	}

	return mo.Some(ParsedVersion{
		InterfaceVersion: interfaceVersion,
		OriginalVersion:  raw.Name,
		Variant:          raw.Variant,
		VersionTypeID:    raw.VersionTypeID,
		VersionTypeName:  raw.VersionTypeName,
		VersionTypeSlug:  raw.VersionTypeSlug,
	})
}

// ParseVersions maps ParseVersion over the input, silently dropping unparsable records.
// Upstream ships plenty of non-release version names (e.g. "Beta", expansion labels);
// dropping them is the intended lenient policy, not an error condition.
func ParseVersions(raws []RawVersion) []ParsedVersion {
	return lo.FilterMap(raws, func(raw RawVersion, _ int) (ParsedVersion, bool) {
		return ParseVersion(raw).Get()
	})
}

// Number converts the interface version identifier into its comparable integer form.
func (p ParsedVersion) Number() int {
	n, _ := strconv.Atoi(p.InterfaceVersion)
	return n
}

// ParseVersionToNumber derives a best-effort numeric sort key from a dotted version
// string: major*10000 + minor*100 + patch, missing segments counting as zero.
// Unlike ParseInterfaceVersion it performs no format validation; malformed segments
// contribute zero, which is acceptable for ordering already-trusted catalog entries.
func ParseVersionToNumber(version string) int {
	segments := strings.Split(version, ".")

	part := func(i int) int {
		if i >= len(segments) {
			return 0
		}
		n, _ := strconv.Atoi(segments[i])
		return n
	}

	return part(0)*10000 + part(1)*100 + part(2)
}
