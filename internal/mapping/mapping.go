// Package mapping holds the user override table: per-account display names
// and taxonomy targets that take precedence over the default SKR04 rules.
package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override adjusts one account. Empty fields leave the default untouched.
type Override struct {
	Name        string `yaml:"name,omitempty"`
	StructureID string `yaml:"structure_id,omitempty"`
}

// Mapping is the sparse override table, keyed by normalized account number.
type Mapping map[string]Override

// Load reads a mapping YAML document from disk.
func Load(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping: %w", err)
	}
	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing mapping: %w", err)
	}
	if m == nil {
		m = Mapping{}
	}
	return m, nil
}

// Save writes a Mapping to a YAML file.
func Save(path string, m Mapping) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling mapping: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing mapping: %w", err)
	}
	return nil
}

// Template is a starter mapping document with a commented example.
const Template = `# Kontenzuordnung: Konto-Nummer -> Anzeigename und/oder Struktur-ID.
# Eintraege hier haben Vorrang vor der SKR04-Standardzuordnung.
#
# "9000":
#   name: Saldenvortrag
#   structure_id: ek_vortrag
{}
`
