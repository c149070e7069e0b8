package gameversion

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseInterfaceVersion(t *testing.T) {
	Convey("ParseInterfaceVersion", t, func() {
		Convey("Should derive the padded interface version", func() {
			cases := map[string]string{
				"1.15.3":   "11503",
				"11.2.0":   "110200",
				"4.0.3a":   "40003",
				"10.15.20": "101520",
				"2.5.4":    "20504",
				"0.0.0":    "00000",
			}

			for input, expected := range cases {
				Convey(input, func() {
					result := ParseInterfaceVersion(input)
					So(result.IsPresent(), ShouldBeTrue)
					So(result.MustGet(), ShouldEqual, expected)
				})
			}
		})

		Convey("Should reject anything but a clean three-part version", func() {
			rejected := []string{
				"invalid",
				"1.2",
				"",
				"1.2.3.4",
				"1.15.3-beta",
				"v1.15.3",
				" 1.15.3",
				"1.15.3 ",
				"1.15.3ab",
			}

			for _, input := range rejected {
				Convey(fmt.Sprintf("%q", input), func() {
					So(ParseInterfaceVersion(input).IsAbsent(), ShouldBeTrue)
				})
			}
		})

		Convey("Should act as a left inverse of formatting up to padding", func() {
			for major := 0; major < 100; major += 7 {
				for minor := 0; minor < 100; minor += 9 {
					for patch := 0; patch < 100; patch += 11 {
						input := fmt.Sprintf("%d.%d.%d", major, minor, patch)
						expected := fmt.Sprintf("%d%02d%02d", major, minor, patch)
						So(ParseInterfaceVersion(input).MustGet(), ShouldEqual, expected)
					}
				}
			}
		})
	})
}

func TestParseVersion(t *testing.T) {
	Convey("ParseVersion", t, func() {
		raw := RawVersion{
			Name:            "1.15.3",
			VersionTypeID:   67408,
			VersionTypeName: "WoW Classic",
			VersionTypeSlug: "wow_classic",
			Variant:         ClassicEra,
		}

		Convey("Should carry type metadata through unchanged", func() {
			parsed := ParseVersion(raw)
			So(parsed.IsPresent(), ShouldBeTrue)

			p := parsed.MustGet()
			So(p.InterfaceVersion, ShouldEqual, "11503")
			So(p.OriginalVersion, ShouldEqual, "1.15.3")
			So(p.Variant, ShouldEqual, ClassicEra)
			So(p.VersionTypeID, ShouldEqual, 67408)
			So(p.VersionTypeName, ShouldEqual, "WoW Classic")
			So(p.VersionTypeSlug, ShouldEqual, "wow_classic")
		})

		Convey("Should yield None for unparsable names", func() {
			raw.Name = "Beta"
			So(ParseVersion(raw).IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestParseVersions(t *testing.T) {
	Convey("ParseVersions", t, func() {
		raws := []RawVersion{
			{Name: "1.15.3", Variant: ClassicEra},
			{Name: "invalid", Variant: ClassicEra},
			{Name: "11.2.0", Variant: Retail},
		}

		Convey("Should drop unparsable records silently, preserving order", func() {
			parsed := ParseVersions(raws)
			So(parsed, ShouldHaveLength, 2)
			So(parsed[0].InterfaceVersion, ShouldEqual, "11503")
			So(parsed[1].InterfaceVersion, ShouldEqual, "110200")
		})

		Convey("Should yield an empty slice when nothing parses", func() {
			So(ParseVersions([]RawVersion{{Name: "nope"}}), ShouldHaveLength, 0)
		})
	})
}

func TestParseVersionToNumber(t *testing.T) {
	Convey("ParseVersionToNumber", t, func() {
		Convey("Should order versions chronologically", func() {
			So(ParseVersionToNumber("1.15.3"), ShouldBeGreaterThan, ParseVersionToNumber("1.15.2"))
			So(ParseVersionToNumber("2.0.0"), ShouldBeGreaterThan, ParseVersionToNumber("1.15.3"))
		})

		Convey("Should default missing segments to zero", func() {
			So(ParseVersionToNumber("1"), ShouldEqual, 10000)
			So(ParseVersionToNumber("1.2"), ShouldEqual, 10200)
			So(ParseVersionToNumber("1.2.3"), ShouldEqual, 10203)
		})

		Convey("Should ignore segments past the third", func() {
			So(ParseVersionToNumber("1.2.3.4"), ShouldEqual, 10203)
		})
	})
}

func TestParsedVersionNumber(t *testing.T) {
	Convey("ParsedVersion.Number", t, func() {
		p := ParsedVersion{InterfaceVersion: "110200"}
		So(p.Number(), ShouldEqual, 110200)
	})
}
