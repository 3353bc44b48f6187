package schema

import (
	"strings"
	"testing"
)

// FuzzSplitRegistryPath fuzzes registry path splitting with arbitrary input.
func FuzzSplitRegistryPath(f *testing.F) {
	seeds := []string{
		`HKCU\Software\Microsoft\GameBar`,
		`HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\GraphicsDrivers`,
		`HKLM\`,
		`HKCU`,
		``,
		`\\leading\slashes`,
		`HKCR\Software`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, path string) {
		root, sub, err := SplitRegistryPath(path)
		if err != nil {
			return
		}
		if root != RootCurrentUser && root != RootLocalMachine {
			t.Errorf("SplitRegistryPath(%q) returned unknown root %q", path, root)
		}
		if sub == "" {
			t.Errorf("SplitRegistryPath(%q) returned empty subkey without error", path)
		}
	})
}

// FuzzParseRefreshRate fuzzes refresh-rate parsing; accepted values must be positive.
func FuzzParseRefreshRate(f *testing.F) {
	for _, seed := range []string{"144", "144Hz", "144Hz+", "60 hz", "+", "Hz+", "-1Hz", "0"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, expected string) {
		hz, err := ParseRefreshRate(expected)
		if err == nil && hz <= 0 {
			t.Errorf("ParseRefreshRate(%q) accepted non-positive rate %d", expected, hz)
		}
	})
}

// FuzzParse fuzzes checklist parsing; any accepted document must validate.
func FuzzParse(f *testing.F) {
	f.Add(`{"version":2,"default_scenario":"a","scenarios":{"a":{"name":"A","poll_interval_seconds":5,"checks":[]}}}`)
	f.Add(`{"poll_interval_seconds":10,"notify_on_drift":true,"checks":[]}`)
	f.Add(`{}`)
	f.Add(`not json`)

	f.Fuzz(func(t *testing.T, doc string) {
		root, err := Parse([]byte(doc))
		if err != nil {
			return
		}
		if !strings.Contains(doc, "{") {
			t.Errorf("Parse accepted non-object input %q", doc)
		}
		if err := root.Validate(); err != nil {
			t.Errorf("Parse returned invalid root for %q: %v", doc, err)
		}
	})
}
