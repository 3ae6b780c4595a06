// Package taxonomy holds the fixed SKR04 statement hierarchy: the line items
// of the balance sheet and the profit-and-loss statement.
package taxonomy

// NodeType is the polarity of a statement line item. Liability and revenue
// nodes display credit balances as positive amounts.
type NodeType string

const (
	TypeAsset     NodeType = "asset"
	TypeLiability NodeType = "liability"
	TypeRevenue   NodeType = "revenue"
	TypeExpense   NodeType = "expense"
	TypeRoot      NodeType = "root"
)

// Well-known node IDs.
const (
	AssetsRootID        = "aktiva_root"
	LiabilitiesRootID   = "passiva_root"
	ProfitAndLossRootID = "guv_root"
	NetResultID         = "ek_ergebnis" // synthetic equity line carrying the year's result
)

// Definition is one taxonomy node. The definitions form a forest of three
// roots; Parent is empty for roots.
type Definition struct {
	ID     string
	Label  string
	Parent string
	Type   NodeType
	Order  int
}

var definitions = []Definition{
	// Bilanz: Aktiva
	{ID: AssetsRootID, Label: "AKTIVA", Type: TypeRoot, Order: 1},
	{ID: "av", Label: "A. Anlagevermögen", Parent: AssetsRootID, Type: TypeAsset, Order: 10},
	{ID: "av_immat", Label: "I. Immaterielle Vermögensgegenstände", Parent: "av", Type: TypeAsset, Order: 11},
	{ID: "av_sach", Label: "II. Sachanlagen", Parent: "av", Type: TypeAsset, Order: 12},
	{ID: "av_finanz", Label: "III. Finanzanlagen", Parent: "av", Type: TypeAsset, Order: 13},
	{ID: "uv", Label: "B. Umlaufvermögen", Parent: AssetsRootID, Type: TypeAsset, Order: 20},
	{ID: "uv_vorrat", Label: "I. Vorräte", Parent: "uv", Type: TypeAsset, Order: 21},
	{ID: "uv_ford", Label: "II. Forderungen und sonstige Vermögensgegenstände", Parent: "uv", Type: TypeAsset, Order: 22},
	{ID: "uv_kasse", Label: "III. Kassenbestand, Guthaben bei Kreditinstituten", Parent: "uv", Type: TypeAsset, Order: 23},
	{ID: "rap_akt", Label: "C. Rechnungsabgrenzungsposten", Parent: AssetsRootID, Type: TypeAsset, Order: 30},

	// Bilanz: Passiva
	{ID: LiabilitiesRootID, Label: "PASSIVA", Type: TypeRoot, Order: 2},
	{ID: "ek", Label: "A. Eigenkapital", Parent: LiabilitiesRootID, Type: TypeLiability, Order: 10},
	{ID: "ek_kapital", Label: "I. Kapitalanteile", Parent: "ek", Type: TypeLiability, Order: 11},
	{ID: "ek_vortrag", Label: "II. Gewinn-/Verlustvortrag", Parent: "ek", Type: TypeLiability, Order: 12},
	{ID: NetResultID, Label: "III. Jahresergebnis", Parent: "ek", Type: TypeLiability, Order: 99},
	{ID: "rs", Label: "B. Rückstellungen", Parent: LiabilitiesRootID, Type: TypeLiability, Order: 20},
	{ID: "verb", Label: "C. Verbindlichkeiten", Parent: LiabilitiesRootID, Type: TypeLiability, Order: 30},
	{ID: "rap_pass", Label: "D. Rechnungsabgrenzungsposten", Parent: LiabilitiesRootID, Type: TypeLiability, Order: 40},

	// GuV (Gesamtkostenverfahren)
	{ID: ProfitAndLossRootID, Label: "Gewinn- und Verlustrechnung", Type: TypeRoot, Order: 3},
	{ID: "umsatz", Label: "1. Umsatzerlöse", Parent: ProfitAndLossRootID, Type: TypeRevenue, Order: 10},
	{ID: "bestandsva", Label: "2. Bestandsveränderungen", Parent: ProfitAndLossRootID, Type: TypeRevenue, Order: 20},
	{ID: "sonst_ertrag", Label: "3. Sonstige betriebliche Erträge", Parent: ProfitAndLossRootID, Type: TypeRevenue, Order: 30},
	{ID: "material", Label: "4. Materialaufwand", Parent: ProfitAndLossRootID, Type: TypeExpense, Order: 40},
	{ID: "personal", Label: "5. Personalaufwand", Parent: ProfitAndLossRootID, Type: TypeExpense, Order: 50},
	{ID: "abschr", Label: "6. Abschreibungen", Parent: ProfitAndLossRootID, Type: TypeExpense, Order: 60},
	{ID: "sonst_aufw", Label: "7. Sonstige betriebliche Aufwendungen", Parent: ProfitAndLossRootID, Type: TypeExpense, Order: 70},
	{ID: "sonst_aufw_raum", Label: "a) Raumkosten", Parent: "sonst_aufw", Type: TypeExpense, Order: 71},
	{ID: "sonst_aufw_vers", Label: "b) Versicherungen, Beiträge", Parent: "sonst_aufw", Type: TypeExpense, Order: 72},
	{ID: "sonst_aufw_kfz", Label: "c) Fahrzeugkosten", Parent: "sonst_aufw", Type: TypeExpense, Order: 73},
	{ID: "sonst_aufw_werb", Label: "d) Werbe- und Reisekosten", Parent: "sonst_aufw", Type: TypeExpense, Order: 74},
	{ID: "sonst_aufw_rep", Label: "e) Reparaturen/Instandhaltung", Parent: "sonst_aufw", Type: TypeExpense, Order: 75},
	{ID: "sonst_aufw_rest", Label: "f) Übrige betriebliche Aufwendungen", Parent: "sonst_aufw", Type: TypeExpense, Order: 79},
	{ID: "zinsen", Label: "8. Zinsen und ähnliche Aufwendungen", Parent: ProfitAndLossRootID, Type: TypeExpense, Order: 80},
	{ID: "steuern_er", Label: "9. Steuern vom Einkommen und Ertrag", Parent: ProfitAndLossRootID, Type: TypeExpense, Order: 90},
	{ID: "steuern_sonst", Label: "10. Sonstige Steuern", Parent: ProfitAndLossRootID, Type: TypeExpense, Order: 100},
}

var byID = func() map[string]Definition {
	m := make(map[string]Definition, len(definitions))
	for _, d := range definitions {
		m[d.ID] = d
	}
	return m
}()

// Definitions returns all taxonomy nodes in display order. The returned
// slice is a copy; the taxonomy itself is immutable.
func Definitions() []Definition {
	return append([]Definition(nil), definitions...)
}

// ByID returns the definition for an id.
func ByID(id string) (Definition, bool) {
	d, ok := byID[id]
	return d, ok
}

// Exists reports whether a node id is part of the taxonomy.
func Exists(id string) bool {
	_, ok := byID[id]
	return ok
}
