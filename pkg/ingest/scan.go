package ingest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/errors"
)

// Listing is the result of scanning a card directory.
type Listing struct {
	Dir    string
	Fronts []string
	Backs  []string
}

// Paired reports whether fronts and backs have the same count.
func (l Listing) Paired() bool { return len(l.Fronts) == len(l.Backs) }

// Scan lists the card images in dir. Hidden files and subdirectories are
// skipped. marker selects back images; empty means [card.DefaultBackMarker].
func Scan(dir, marker string) (Listing, error) {
	if marker == "" {
		marker = card.DefaultBackMarker
	}
	if err := errors.ValidateMarker(marker); err != nil {
		return Listing{}, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return Listing{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "card directory %s", dir)
	}
	if err != nil {
		return Listing{}, errors.Wrap(errors.ErrCodeIngestion, err, "read card directory %s", dir)
	}

	l := Listing{Dir: dir}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		side, ok := card.Classify(name, marker)
		if !ok {
			continue
		}
		path := filepath.Join(dir, name)
		if side == card.Back {
			l.Backs = append(l.Backs, path)
		} else {
			l.Fronts = append(l.Fronts, path)
		}
	}
	return l, nil
}
