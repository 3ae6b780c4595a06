// Package classify maps account numbers to taxonomy nodes: user overrides
// first, then the fixed SKR04 numeric-range rules.
package classify

import (
	"strconv"

	"github.com/bilanz-dev/bilanz/internal/mapping"
)

// span is a half-open number range [lo, hi).
type span struct {
	lo, hi int
}

func (s span) contains(n int) bool {
	return n >= s.lo && n < s.hi
}

// rule assigns every number in any of its spans to a taxonomy node. Rules
// are evaluated in order, first match wins.
type rule struct {
	spans  []span
	nodeID string
}

// Bilanz blocks: fixed assets, current assets, equity, provisions,
// liabilities and deferred items.
var balanceRules = []rule{
	{spans: []span{{100, 200}}, nodeID: "av_immat"},
	{spans: []span{{200, 700}}, nodeID: "av_sach"},
	{spans: []span{{700, 1000}}, nodeID: "av_finanz"},
	{spans: []span{{1000, 1200}}, nodeID: "uv_vorrat"},
	{spans: []span{{1200, 1600}, {10000, 70000}}, nodeID: "uv_ford"}, // 1xxxx-6xxxx: Debitoren
	{spans: []span{{1600, 1900}}, nodeID: "uv_kasse"},
	{spans: []span{{1900, 2000}}, nodeID: "rap_akt"},
	{spans: []span{{2000, 2900}}, nodeID: "ek_kapital"},
	{spans: []span{{2900, 2980}}, nodeID: "ek_vortrag"},
	{spans: []span{{3000, 3150}}, nodeID: "rs"},
	{spans: []span{{3200, 3900}, {70000, 100000}}, nodeID: "verb"}, // 7xxxx-9xxxx: Kreditoren
	{spans: []span{{3900, 4000}}, nodeID: "rap_pass"},
}

// GuV blocks. The order matters: interest and income taxes carve their
// ranges out of class 7 before the other-taxes catch takes the rest.
var plRules = []rule{
	{spans: []span{{4100, 4500}}, nodeID: "umsatz"},
	{spans: []span{{4800, 4830}}, nodeID: "bestandsva"},
	{spans: []span{{4830, 5000}, {5730, 5731}}, nodeID: "sonst_ertrag"},
	{spans: []span{{5000, 6000}}, nodeID: "material"},
	{spans: []span{{6000, 6200}}, nodeID: "personal"},
	{spans: []span{{6200, 6300}}, nodeID: "abschr"},
	{spans: []span{{7300, 7400}}, nodeID: "zinsen"},
	{spans: []span{{7600, 7650}}, nodeID: "steuern_er"},
	{spans: []span{{7000, 8000}}, nodeID: "steuern_sonst"},
}

// otherOpex breaks "Sonstige betriebliche Aufwendungen" down by
// sub-category. Evaluated only inside otherOpexSpan; anything in the outer
// range not matched below falls into the catch-all.
var otherOpexSpan = span{6300, 7000}

var otherOpexRules = []rule{
	{spans: []span{{6310, 6351}}, nodeID: "sonst_aufw_raum"},
	{spans: []span{{6400, 6440}}, nodeID: "sonst_aufw_vers"},
	{spans: []span{{6450, 6495}}, nodeID: "sonst_aufw_rep"},
	{spans: []span{{6500, 6600}}, nodeID: "sonst_aufw_kfz"},
	{spans: []span{{6600, 6700}}, nodeID: "sonst_aufw_werb"},
}

const otherOpexRest = "sonst_aufw_rest"

// Classify decides which taxonomy node an account belongs to. An override
// entry with a non-empty structure id wins over the range rules. Returns
// ok=false when the account matches nothing; class 8 (statistics) and
// class 9 (carry-forward) are deliberately uncovered so balances parked
// there surface as unassigned.
func Classify(number string, overrides mapping.Mapping) (nodeID string, ok bool) {
	if ov, found := overrides[number]; found && ov.StructureID != "" {
		return ov.StructureID, true
	}

	n, err := strconv.Atoi(number)
	if err != nil {
		return "", false
	}

	if id, found := match(balanceRules, n); found {
		return id, true
	}
	if otherOpexSpan.contains(n) {
		if id, found := match(otherOpexRules, n); found {
			return id, true
		}
		return otherOpexRest, true
	}
	if id, found := match(plRules, n); found {
		return id, true
	}
	return "", false
}

func match(rules []rule, n int) (string, bool) {
	for _, r := range rules {
		for _, s := range r.spans {
			if s.contains(n) {
				return r.nodeID, true
			}
		}
	}
	return "", false
}
