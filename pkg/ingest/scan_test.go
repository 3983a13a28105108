package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/cardsheets/internal/cardtest"
	"github.com/matzehuels/cardsheets/pkg/errors"
)

func TestScanSplitsFrontsAndBacks(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"b.png", "a.png", "a+.png", "b+.png", "c.jpg",
		"notes.txt", ".hidden.png", "readme",
	} {
		cardtest.WriteFile(t, dir, name, []byte("x"))
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	l, err := Scan(dir, "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	wantFronts := []string{"a.png", "b.png", "c.jpg"}
	wantBacks := []string{"a+.png", "b+.png"}
	assertNames(t, "fronts", l.Fronts, dir, wantFronts)
	assertNames(t, "backs", l.Backs, dir, wantBacks)

	if l.Paired() {
		t.Error("Paired() = true, want false for 3 fronts and 2 backs")
	}
}

func TestScanLexicalOrderPairs(t *testing.T) {
	dir := t.TempDir()
	fronts, backs := cardtest.Deck(t, dir, 3)

	l, err := Scan(dir, "+")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !l.Paired() {
		t.Fatalf("Paired() = false: %d fronts, %d backs", len(l.Fronts), len(l.Backs))
	}
	for i := range fronts {
		if l.Fronts[i] != fronts[i] || l.Backs[i] != backs[i] {
			t.Errorf("pair %d = (%s, %s), want (%s, %s)", i, l.Fronts[i], l.Backs[i], fronts[i], backs[i])
		}
	}
}

func TestScanCustomMarker(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "a_back.png", "a+.png"} {
		cardtest.WriteFile(t, dir, name, []byte("x"))
	}

	l, err := Scan(dir, "_back")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	assertNames(t, "fronts", l.Fronts, dir, []string{"a+.png", "a.png"})
	assertNames(t, "backs", l.Backs, dir, []string{"a_back.png"})
}

func TestScanErrors(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), "+")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing dir: code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}

	_, err = Scan(t.TempDir(), ".")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad marker: code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestScanEmptyDir(t *testing.T) {
	l, err := Scan(t.TempDir(), "+")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(l.Fronts) != 0 || len(l.Backs) != 0 {
		t.Errorf("Scan(empty) = %+v", l)
	}
}

func assertNames(t *testing.T, label string, got []string, dir string, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
	for i := range want {
		if got[i] != filepath.Join(dir, want[i]) {
			t.Errorf("%s[%d] = %s, want %s", label, i, got[i], filepath.Join(dir, want[i]))
		}
	}
}
