//go:build property
// +build property

package format

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/msto63/autonum/pkg/autonum/options"
)

var rawGen = gen.RegexMatch(`^-?(0|[1-9][0-9]{0,9})(\.[0-9]{1,6})?$`)

// TestRoundTripProperties checks that unformatting a formatted value gives
// back the rounded raw value for every predefined currency layout
func TestRoundTripProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	for _, name := range []string{"euro", "euroSpace", "dollar", "Swiss", "integer", "numeric"} {
		o, _ := options.Preset(name)
		s, _, err := options.Inspect(o)
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}

		properties.Property(name+" round trips", prop.ForAll(
			func(raw string) bool {
				rounded, err := s.Engine().Apply(raw)
				if err != nil {
					return false
				}
				shown, err := Format(raw, s)
				if err != nil {
					return false
				}
				back, err := Unformat(shown, s)
				return err == nil && back == rounded
			},
			rawGen,
		))
	}

	properties.Property("lenient parsing accepts every strict result", prop.ForAll(
		func(raw string) bool {
			s := options.Defaults()
			shown, err := Format(raw, s)
			if err != nil {
				return false
			}
			strict, err1 := Unformat(shown, s)
			lenient, err2 := UnformatLenient(shown, s)
			return err1 == nil && err2 == nil && strict == lenient
		},
		rawGen,
	))

	properties.TestingRun(t)
}
