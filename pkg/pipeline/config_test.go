package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/timeaxis/pkg/errors"
)

const testConfig = `
[defaults]
timezone = "Asia/Kolkata"
formats = ["svg"]
max_points = 6

[[axis]]
name = "quarter"
kind = "date"
begin = "2021-01-01"
end = "2021-03-31"

[[axis]]
kind = "duration"
begin = "0s"
end = "10s"
max_points = 4
formats = ["json", "text"]
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axes.toml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	axes, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(axes) != 2 {
		t.Fatalf("got %d axes, want 2", len(axes))
	}

	q := axes[0]
	if q.Name != "quarter" || q.Timezone != "Asia/Kolkata" || q.MaxPoints != 6 {
		t.Errorf("axes[0] = %+v", q)
	}
	if len(q.Formats) != 1 || q.Formats[0] != "svg" {
		t.Errorf("axes[0].Formats = %v, want [svg]", q.Formats)
	}

	d := axes[1]
	if d.Name != "axis-2" || d.MaxPoints != 4 || len(d.Formats) != 2 {
		t.Errorf("axes[1] = %+v", d)
	}
	if d.Pixels != [2]int{DefaultPixelLo, DefaultPixelHi} {
		t.Errorf("axes[1].Pixels = %v", d.Pixels)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[[axis]\nkind = 1"},
		{"unknown key", "[[axis]]\nkind = \"date\"\nbegin = \"2021-01-01\"\nend = \"2021-02-01\"\nticks = 3"},
		{"no axes", "[defaults]\nkind = \"date\""},
		{"invalid axis", "[[axis]]\nkind = \"weekly\"\nbegin = \"a\"\nend = \"b\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("ParseConfig() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("LoadConfig() error = %v, want NOT_FOUND", err)
	}
}
