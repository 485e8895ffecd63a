// Package tax holds the state-level US sales tax reference table and the
// arithmetic applied at checkout. Rates are state-level only; local and
// county surcharges are out of scope.
package tax

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

var d = decimal.RequireFromString

// rates maps jurisdiction codes (50 states plus DC) to sales tax rates.
// Compiled-in reference data; never mutated at runtime. Five entries carry a
// zero rate for the no-sales-tax states, which are still valid jurisdictions.
var rates = map[string]decimal.Decimal{
	"AK": d("0.0000"),
	"AL": d("0.0400"),
	"AR": d("0.0650"),
	"AZ": d("0.0560"),
	"CA": d("0.0725"),
	"CO": d("0.0290"),
	"CT": d("0.0635"),
	"DC": d("0.0600"),
	"DE": d("0.0000"),
	"FL": d("0.0600"),
	"GA": d("0.0400"),
	"HI": d("0.0400"),
	"IA": d("0.0600"),
	"ID": d("0.0600"),
	"IL": d("0.0625"),
	"IN": d("0.0700"),
	"KS": d("0.0650"),
	"KY": d("0.0600"),
	"LA": d("0.0445"),
	"MA": d("0.0625"),
	"MD": d("0.0600"),
	"ME": d("0.0550"),
	"MI": d("0.0600"),
	"MN": d("0.0688"),
	"MO": d("0.0423"),
	"MS": d("0.0700"),
	"MT": d("0.0000"),
	"NC": d("0.0475"),
	"ND": d("0.0500"),
	"NE": d("0.0550"),
	"NH": d("0.0000"),
	"NJ": d("0.0663"),
	"NM": d("0.0513"),
	"NV": d("0.0685"),
	"NY": d("0.0400"),
	"OH": d("0.0575"),
	"OK": d("0.0450"),
	"OR": d("0.0000"),
	"PA": d("0.0600"),
	"RI": d("0.0700"),
	"SC": d("0.0600"),
	"SD": d("0.0450"),
	"TN": d("0.0700"),
	"TX": d("0.0625"),
	"UT": d("0.0610"),
	"VA": d("0.0530"),
	"VT": d("0.0600"),
	"WA": d("0.0650"),
	"WI": d("0.0500"),
	"WV": d("0.0600"),
	"WY": d("0.0400"),
}

var names = map[string]string{
	"AK": "Alaska",
	"AL": "Alabama",
	"AR": "Arkansas",
	"AZ": "Arizona",
	"CA": "California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"DC": "District of Columbia",
	"DE": "Delaware",
	"FL": "Florida",
	"GA": "Georgia",
	"HI": "Hawaii",
	"IA": "Iowa",
	"ID": "Idaho",
	"IL": "Illinois",
	"IN": "Indiana",
	"KS": "Kansas",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"MA": "Massachusetts",
	"MD": "Maryland",
	"ME": "Maine",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MO": "Missouri",
	"MS": "Mississippi",
	"MT": "Montana",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"NE": "Nebraska",
	"NH": "New Hampshire",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NV": "Nevada",
	"NY": "New York",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"PA": "Pennsylvania",
	"RI": "Rhode Island",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"UT": "Utah",
	"VA": "Virginia",
	"VT": "Vermont",
	"WA": "Washington",
	"WI": "Wisconsin",
	"WV": "West Virginia",
	"WY": "Wyoming",
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Rate returns the sales tax rate for a jurisdiction code, or zero for
// empty or unknown codes. Lookup never fails; validity enforcement is the
// caller's responsibility.
func Rate(code string) decimal.Decimal {
	return rates[normalize(code)]
}

// IsValid reports whether the normalized code is a known jurisdiction.
func IsValid(code string) bool {
	_, ok := rates[normalize(code)]
	return ok
}

// StateName returns the full jurisdiction name, or "Unknown" for codes not
// in the table.
func StateName(code string) string {
	if name, ok := names[normalize(code)]; ok {
		return name
	}
	return "Unknown"
}

// Codes returns all jurisdiction codes in sorted order.
func Codes() []string {
	out := make([]string, 0, len(rates))
	for code := range rates {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// ComputeTax applies the jurisdiction rate to a subtotal. The tax amount is
// rounded half-up to cents so repeated computations are deterministic.
func ComputeTax(subtotal domain.Money, code string) (tax, total domain.Money) {
	tax = subtotal.Mul(Rate(code))
	tax.Amount = tax.Amount.Round(2)

	total = domain.Money{Amount: subtotal.Amount.Add(tax.Amount), Currency: subtotal.Currency}
	return tax, total
}
