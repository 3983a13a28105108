package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q, want version prefix", tmpl)
	}
	if !strings.Contains(tmpl, Commit) {
		t.Errorf("Template() = %q, want commit %q", tmpl, Commit)
	}
}

func TestUserAgent(t *testing.T) {
	if got, want := UserAgent(), "cardsheets/"+Version; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}
