// Package fakes holds the marker types recognized by gen-fake.
package fakes

// WellKnown marks a struct whose package-level values are the canonical
// instances. Embed it and the generated factory returns the first declared
// value instead of building a fresh instance:
//
//	type Currency struct {
//		fakes.WellKnown
//		code string
//	}
//
//	var CurrencyUSD = Currency{code: "USD"}
//
// Detection is by the embedded identifier name, so a locally declared
// WellKnown marker works as well.
type WellKnown struct{}
