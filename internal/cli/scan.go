package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/ingest"
)

// scanCommand creates the scan command, which shows the front/back pairing
// a render would use.
func (c *CLI) scanCommand() *cobra.Command {
	marker := card.DefaultBackMarker

	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "List a card directory's fronts and backs in pairing order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, err := ingest.Scan(args[0], marker)
			if err != nil {
				return err
			}
			printListing(listing)
			return nil
		},
	}

	cmd.Flags().StringVar(&marker, "marker", marker, "filename suffix marking back images")

	return cmd
}

func printListing(l ingest.Listing) {
	printInfo("%d fronts, %d backs in %s", len(l.Fronts), len(l.Backs), l.Dir)

	n := max(len(l.Fronts), len(l.Backs))
	for i := range n {
		printPair(i+1, nameAt(l.Fronts, i), nameAt(l.Backs, i))
	}

	if !l.Paired() {
		printWarning("fronts and backs differ in number; pairs after the shorter list are unmatched")
	}
}

func nameAt(paths []string, i int) string {
	if i < len(paths) {
		return filepath.Base(paths[i])
	}
	return "-"
}
