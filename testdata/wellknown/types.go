package wellknown

// WellKnown mirrors fakes.WellKnown; detection is by embedded identifier
// name only.
type WellKnown struct{}

type Currency struct {
	WellKnown
	code string
}

var (
	CurrencyUSD = Currency{code: "USD"}
	CurrencyEUR = Currency{code: "EUR"}
)

// Locale carries the marker but declares no package-level values, so it
// falls through to the normal struct rules.
type Locale struct {
	WellKnown
	Tag string
}
