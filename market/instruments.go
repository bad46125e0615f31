// market/instruments.go
package market

import "strings"

// InstrumentMeta describes a currency pair as the journal understands it.
// PipLocation follows broker convention: -4 for 4-decimal quotes, -2 for
// yen-quoted pairs.
type InstrumentMeta struct {
	Name           string
	BaseCurrency   string
	QuoteCurrency  string
	PipLocation    int
	PipValuePerLot float64
}

// DefaultPipValuePerLot is the reference pip value used for any pair the
// table does not cover. The journal only targets the majors, so unknown
// pairs get the common USD-quoted value instead of an error.
const DefaultPipValuePerLot = 10.0

var Instruments = map[string]InstrumentMeta{
	"EURUSD": {
		Name:           "EURUSD",
		BaseCurrency:   "EUR",
		QuoteCurrency:  "USD",
		PipLocation:    -4,
		PipValuePerLot: 10.0,
	},
	"GBPUSD": {
		Name:           "GBPUSD",
		BaseCurrency:   "GBP",
		QuoteCurrency:  "USD",
		PipLocation:    -4,
		PipValuePerLot: 10.0,
	},
	"USDJPY": {
		Name:           "USDJPY",
		BaseCurrency:   "USD",
		QuoteCurrency:  "JPY",
		PipLocation:    -2,
		PipValuePerLot: 9.30,
	},
	"USDCHF": {
		Name:           "USDCHF",
		BaseCurrency:   "USD",
		QuoteCurrency:  "CHF",
		PipLocation:    -4,
		PipValuePerLot: 10.0,
	},
	"AUDUSD": {
		Name:           "AUDUSD",
		BaseCurrency:   "AUD",
		QuoteCurrency:  "USD",
		PipLocation:    -4,
		PipValuePerLot: 10.0,
	},
	"NZDUSD": {
		Name:           "NZDUSD",
		BaseCurrency:   "NZD",
		QuoteCurrency:  "USD",
		PipLocation:    -4,
		PipValuePerLot: 10.0,
	},
}

// MajorPairs is the set of instruments the journal's entry forms offer.
var MajorPairs = []string{
	"EUR/USD", "GBP/USD", "USD/JPY", "USD/CHF",
	"USD/CAD", "AUD/USD", "NZD/USD",
}

// ValidPair reports whether the pair is one of the majors, in any of the
// spellings Normalize accepts. New trades are restricted to this set; the
// pip table stays lenient so historical records on other pairs still price.
func ValidPair(pair string) bool {
	key := Normalize(pair)
	for _, p := range MajorPairs {
		if Normalize(p) == key {
			return true
		}
	}
	return false
}

// Normalize maps the various pair spellings ("EUR/USD", "eur_usd", "EURUSD")
// onto the table's key form.
func Normalize(pair string) string {
	s := strings.ToUpper(strings.TrimSpace(pair))
	s = strings.NewReplacer("/", "", "_", "", "-", "", " ", "").Replace(s)
	return s
}

// PipValue returns the per-standard-lot pip value for a pair, falling back
// to DefaultPipValuePerLot when the pair is not in the table.
func PipValue(pair string) float64 {
	if meta, ok := Instruments[Normalize(pair)]; ok {
		return meta.PipValuePerLot
	}
	return DefaultPipValuePerLot
}

// Lookup returns instrument metadata and whether the pair is in the table.
func Lookup(pair string) (InstrumentMeta, bool) {
	meta, ok := Instruments[Normalize(pair)]
	return meta, ok
}
