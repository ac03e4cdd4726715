package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} "+Version) {
		t.Errorf("Template() = %q", got)
	}
}

func TestUserAgent(t *testing.T) {
	if got, want := UserAgent(), "timeaxis/"+Version; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}
