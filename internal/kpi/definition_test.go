package kpi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionsRoundTrip(t *testing.T) {
	defs := []Definition{
		{ID: "liq", Label: "Liquidität", Formula: "{{uv_kasse}}", Format: FormatCurrency},
		{ID: "marge", Label: "Marge", Formula: "{{ek_ergebnis}}/{{umsatz}}*100", Format: FormatPercent},
	}

	path := filepath.Join(t.TempDir(), "kpis.json")
	require.NoError(t, SaveDefinitions(path, defs))

	got, err := LoadDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, defs, got)
}

func TestLoadDefinitionsMissingFile(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
