package kpi

import (
	"encoding/json"
	"fmt"
	"os"
)

// Format selects how an evaluated value is rendered.
type Format string

const (
	FormatCurrency Format = "currency"
	FormatPercent  Format = "percent"
	FormatNumber   Format = "number"
)

// Definition is one user-authored key metric. The list order is significant
// to the user and preserved verbatim, but carries no meaning here.
type Definition struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Formula string `json:"formula"`
	Format  Format `json:"format"`
}

// LoadDefinitions reads a KPI definition list from a JSON document.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading KPI definitions: %w", err)
	}
	var defs []Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing KPI definitions: %w", err)
	}
	return defs, nil
}

// SaveDefinitions writes a KPI definition list as a JSON document.
func SaveDefinitions(path string, defs []Definition) error {
	data, err := json.MarshalIndent(defs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling KPI definitions: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing KPI definitions: %w", err)
	}
	return nil
}
