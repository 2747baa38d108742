package chem

import (
	"log/slog"
	"os"
	"path/filepath"
)

// rateFileSuffixes is the probe order after the bare identifier path.
var rateFileSuffixes = []string{".txt", ".csv", ".dat"}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// resolveRateFiles locates the lookup-table file for every identified
// EEDF reaction under the configured file location, probing the bare
// identifier first and then the txt, csv, and dat suffixes in order. The
// first existing file wins and its suffix is recorded on the reaction
// identifier. A missing file is fatal.
func (n *Network) resolveRateFiles(cfg *config) error {
	for i := range n.Reactions {
		r := &n.Reactions[i]
		if r.Rate.Kind != RateEEDF || r.Identifier == "" {
			continue
		}

		base := filepath.Join(cfg.fileLocation, r.Identifier)
		if fileExists(base) {
			continue
		}

		found := false

		for _, suffix := range rateFileSuffixes {
			if fileExists(base + suffix) {
				r.Identifier += suffix
				found = true

				break
			}
		}

		if !found {
			return ErrRateFile.With(
				slog.String("file", base),
				slog.String("equation", r.Equation),
				slog.String("probed", "bare path plus .txt, .csv, and .dat suffixes"),
				slog.String("file_location", cfg.fileLocation),
			)
		}
	}

	return nil
}
