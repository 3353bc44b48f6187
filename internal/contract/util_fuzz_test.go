package contract

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzTruncatePath fuzzes the TruncatePath function with random paths and widths.
func FuzzTruncatePath(f *testing.F) {
	seeds := []struct {
		path     string
		maxWidth int
	}{
		{`HKCU\Software\Microsoft\GameBar`, 20},
		{`HKLM\SYSTEM\CurrentControlSet\Control\GraphicsDrivers`, 30},
		{"short", 40},
		{"", 0},
		{"exact", 5},
		{"францу́зский\\путь", 10},
	}
	for _, seed := range seeds {
		f.Add(seed.path, seed.maxWidth)
	}

	f.Fuzz(func(t *testing.T, path string, maxWidth int) {
		result := TruncatePath(path, maxWidth)

		if utf8.RuneCountInString(path) > maxWidth && maxWidth > 3 {
			if utf8.RuneCountInString(result) != maxWidth {
				t.Errorf("truncated %q to %q, want %d runes", path, result, maxWidth)
			}
			if !strings.HasPrefix(result, "...") {
				t.Errorf("truncated %q to %q, want ellipsis prefix", path, result)
			}
		} else if result != path {
			t.Errorf("path %q changed to %q without need", path, result)
		}
	})
}
