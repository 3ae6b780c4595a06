// Package importer converts source files into raw ledger rows. File-format
// decoding lives here so the core only ever sees tabulated rows.
package importer

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/bilanz-dev/bilanz/internal/ledger"
)

// Parser converts one source file into ledger rows.
type Parser interface {
	Parse(r io.Reader) ([]ledger.Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
	byExt   map[string]string
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser), byExt: make(map[string]string)}
}

// Register adds a parser for a set of file extensions. Panics on duplicate
// format.
func (r *Registry) Register(p Parser, exts ...string) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
	for _, ext := range exts {
		r.byExt[strings.ToLower(ext)] = key
	}
}

// Get returns the parser for a format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForFile returns the parser matching a file name's extension, or nil.
func (r *Registry) ForFile(name string) Parser {
	format, ok := r.byExt[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return nil
	}
	return r.parsers[format]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{}, ".csv")
	r.Register(&XLSXParser{}, ".xlsx", ".xlsm")
	return r
}
