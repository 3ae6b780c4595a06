package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bilanz-dev/bilanz/internal/importer"
	"github.com/bilanz-dev/bilanz/internal/ledger"
	"github.com/bilanz-dev/bilanz/internal/mapping"
)

// ingestFiles parses and merges all source files into one ledger result.
// Each file's rows get the file's base name as booking-ID prefix so IDs
// stay unique across appended imports.
func ingestFiles(files []string) (*ledger.Result, error) {
	registry := importer.DefaultRegistry()
	merged := ledger.NewResult()

	for _, file := range files {
		parser := registry.ForFile(file)
		if parser == nil {
			return nil, fmt.Errorf("no parser for %s", filepath.Ext(file))
		}

		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", file, err)
		}
		rows, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}

		prefix := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		res := ledger.Ingest(rows, prefix)
		logrus.WithFields(logrus.Fields{
			"file":     filepath.Base(file),
			"rows":     len(rows),
			"bookings": len(res.Bookings),
			"accounts": len(res.Accounts),
		}).Info("ingested")

		merged.Merge(res)
	}
	return merged, nil
}

// loadMapping reads the override document, or returns an empty mapping when
// no path is given.
func loadMapping(path string) (mapping.Mapping, error) {
	if path == "" {
		return mapping.Mapping{}, nil
	}
	return mapping.Load(path)
}
