package registry

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registry with configured agents", t, func() {
		registry := New(
			Entry{ID: "billing", URL: "http://billing:3210/rpc", Token: "tok", Alias: "Billing Agent"},
			Entry{ID: "search", URL: "http://search:3210/rpc"},
			Entry{ID: "broken"},
		)

		Convey("When looking up a known agent", func() {
			entry, err := registry.Get("billing")

			So(err, ShouldBeNil)
			So(entry.URL, ShouldEqual, "http://billing:3210/rpc")
			So(entry.Token, ShouldEqual, "tok")
			So(entry.DisplayName(), ShouldEqual, "Billing Agent")
		})

		Convey("When looking up an unknown agent", func() {
			_, err := registry.Get("nope")

			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &NotFoundError{})
			So(err.Error(), ShouldContainSubstring, `unknown agent "nope"`)
			So(err.Error(), ShouldContainSubstring, "billing, broken, search")
		})

		Convey("When looking up an agent without a url", func() {
			_, err := registry.Get("broken")

			So(err, ShouldNotBeNil)
			So(err, ShouldHaveSameTypeAs, &MissingURLError{})
			So(err.Error(), ShouldContainSubstring, `agent "broken" has no url configured`)
		})
	})

	Convey("Given an empty registry", t, func() {
		registry := New()

		Convey("When looking up any agent", func() {
			_, err := registry.Get("anything")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no agents configured")
		})
	})
}

func TestAll(t *testing.T) {
	Convey("Given a registry built in arbitrary order", t, func() {
		registry := New(
			Entry{ID: "zeta", URL: "http://zeta/rpc"},
			Entry{ID: "alpha", URL: "http://alpha/rpc"},
			Entry{ID: "mid", URL: "http://mid/rpc"},
		)

		Convey("Then ids and entries come back sorted", func() {
			So(registry.IDs(), ShouldResemble, []string{"alpha", "mid", "zeta"})

			all := registry.All()
			So(len(all), ShouldEqual, 3)
			So(all[0].ID, ShouldEqual, "alpha")
			So(all[2].ID, ShouldEqual, "zeta")
		})
	})
}

func TestDisplayName(t *testing.T) {
	Convey("Given entries with and without aliases", t, func() {
		So(Entry{ID: "x", Alias: "Agent X"}.DisplayName(), ShouldEqual, "Agent X")
		So(Entry{ID: "x"}.DisplayName(), ShouldEqual, "x")
	})
}

func TestNewFromConfig(t *testing.T) {
	Convey("Given an agents section in the configuration", t, func() {
		viper.Reset()
		viper.Set("agents.helper.url", "http://helper:3210/rpc")
		viper.Set("agents.helper.token", "secret")
		viper.Set("agents.helper.alias", "Helper")
		viper.Set("agents.plain.url", "http://plain:3210/rpc")

		Reset(viper.Reset)

		registry := NewFromConfig()

		Convey("Then every configured agent is registered", func() {
			So(registry.IDs(), ShouldResemble, []string{"helper", "plain"})

			helper, err := registry.Get("helper")
			So(err, ShouldBeNil)
			So(helper.URL, ShouldEqual, "http://helper:3210/rpc")
			So(helper.Token, ShouldEqual, "secret")
			So(helper.Alias, ShouldEqual, "Helper")

			plain, err := registry.Get("plain")
			So(err, ShouldBeNil)
			So(plain.Token, ShouldBeEmpty)
		})
	})
}
