package updates

import (
	"testing"

	"github.com/theothertomelliott/must"
)

func TestIsNewer(t *testing.T) {
	var tests = []struct {
		name        string
		current     string
		latest      string
		expected    bool
		expectedErr bool
	}{
		{name: "same", current: "1.2.0", latest: "1.2.0", expected: false},
		{name: "patch release", current: "1.2.0", latest: "1.2.1", expected: true},
		{name: "older release", current: "1.2.0", latest: "1.1.9", expected: false},
		{name: "prerelease of current", current: "1.2.0", latest: "1.2.0-rc1", expected: false},
		{name: "bad current", current: "dev", latest: "1.0.0", expected: true, expectedErr: true},
		{name: "bad latest", current: "1.0.0", latest: "nightly", expected: false, expectedErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := IsNewer(test.current, test.latest)
			must.BeEqual(t, test.expected, got)
			must.BeEqual(t, test.expectedErr, err != nil)
		})
	}
}
