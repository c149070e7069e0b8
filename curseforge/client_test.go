package curseforge

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RagedUnicorn/wow-renovate-data/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestFetchVersionGroups(t *testing.T) {
	Convey("FetchVersionGroups", t, func() {
		viper.Set(key.CurseforgeAPIKey, "test-key")
		viper.Set(key.CurseforgeTimeout, "5s")

		Convey("Should decode grouped version names and send the credential", func() {
			var gotHeader, gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("x-api-key")
				gotPath = r.URL.Path
				fmt.Fprint(w, `{"data":[{"type":517,"versions":["11.2.0","11.1.5"]},{"type":67408,"versions":["1.15.3"]}]}`)
			}))
			defer server.Close()
			viper.Set(key.CurseforgeAPIURL, server.URL)

			groups, err := FetchVersionGroups()
			So(err, ShouldBeNil)
			So(gotHeader, ShouldEqual, "test-key")
			So(gotPath, ShouldEqual, "/v1/games/1/versions")
			So(groups, ShouldHaveLength, 2)
			So(groups[0].TypeID, ShouldEqual, 517)
			So(groups[0].Versions, ShouldResemble, []string{"11.2.0", "11.1.5"})
		})

		Convey("Should error on a non-200 response", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			}))
			defer server.Close()
			viper.Set(key.CurseforgeAPIURL, server.URL)

			_, err := FetchVersionGroups()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "403")
		})

		Convey("Should error on malformed JSON", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":[`)
			}))
			defer server.Close()
			viper.Set(key.CurseforgeAPIURL, server.URL)

			_, err := FetchVersionGroups()
			So(err, ShouldNotBeNil)
		})

		Convey("Should refuse to call out without a credential", func() {
			viper.Set(key.CurseforgeAPIKey, "")
			viper.Set(key.CurseforgeAPIURL, "http://127.0.0.1:0")

			_, err := FetchVersionGroups()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFetchVersionIds(t *testing.T) {
	Convey("FetchVersionIds", t, func() {
		viper.Set(key.CurseforgeAPIKey, "test-key")
		viper.Set(key.CurseforgeTimeout, "5s")

		Convey("Should decode flat id records and send the token header", func() {
			var gotHeader, gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("X-Api-Token")
				gotPath = r.URL.Path
				fmt.Fprint(w, `[{"id":12919,"gameVersionTypeID":517,"name":"11.2.0","slug":"11-2-0"}]`)
			}))
			defer server.Close()
			viper.Set(key.CurseforgeUploadAPIURL, server.URL)

			versions, err := FetchVersionIds()
			So(err, ShouldBeNil)
			So(gotHeader, ShouldEqual, "test-key")
			So(gotPath, ShouldEqual, "/api/game/versions")
			So(versions, ShouldHaveLength, 1)
			So(versions[0].ID, ShouldEqual, 12919)
			So(versions[0].TypeID, ShouldEqual, 517)
			So(versions[0].Name, ShouldEqual, "11.2.0")
		})

		Convey("Should error on a non-200 response", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()
			viper.Set(key.CurseforgeUploadAPIURL, server.URL)

			_, err := FetchVersionIds()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestAPIKey(t *testing.T) {
	Convey("APIKey", t, func() {
		Convey("Should prefer the configured credential", func() {
			viper.Set(key.CurseforgeAPIKey, "configured")
			apiKey, err := APIKey()
			So(err, ShouldBeNil)
			So(apiKey, ShouldEqual, "configured")
		})
	})
}
