package domain

// Currency a currency code, e.g. "USD"
type Currency string

// Amount a monetary amount... still a float, rounding happens at display time
type Amount float64

// Rate units of a currency per one unit of the base currency
type Rate float64

type Rates map[Currency]Rate

// Conversion the outcome of converting Original from one currency to another.
// Rate is the effective from->to rate, not the table rate of either side.
type Conversion struct {
	From     Currency
	To       Currency
	Original Amount
	Amount   Amount
	Rate     Rate
}
