package rates

import (
	"currency-converter/domain"
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidTable a table violating the rate table invariants
	ErrInvalidTable = errors.New("invalid rate table")
)

// Table an immutable mapping from currency code to its rate relative to a base currency.
// A Table is safe for concurrent reads; nothing mutates it after New returns.
type Table struct {
	base  domain.Currency
	rates domain.Rates
	// order currencies in the order they were declared
	order []domain.Currency
}

// Entry a single row of a Table, used to declare tables in order
type Entry struct {
	Currency domain.Currency
	Rate     domain.Rate
}

// New constructs a valid Table. Every rate must be finite and positive, and the base currency must map to 1.0.
func New(base domain.Currency, entries ...Entry) (*Table, error) {
	if !validCode(base) {
		return nil, fmt.Errorf("%w: bad base currency code %q", ErrInvalidTable, base)
	}

	t := &Table{
		base:  base,
		rates: make(domain.Rates, len(entries)),
		order: make([]domain.Currency, 0, len(entries)),
	}

	for _, e := range entries {
		if !validCode(e.Currency) {
			return nil, fmt.Errorf("%w: bad currency code %q", ErrInvalidTable, e.Currency)
		}
		r := float64(e.Rate)
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			return nil, fmt.Errorf("%w: rate for %v must be positive, got %v", ErrInvalidTable, e.Currency, e.Rate)
		}
		if _, dup := t.rates[e.Currency]; dup {
			return nil, fmt.Errorf("%w: duplicate currency %v", ErrInvalidTable, e.Currency)
		}
		t.rates[e.Currency] = e.Rate
		t.order = append(t.order, e.Currency)
	}

	rate, ok := t.rates[base]
	if !ok {
		return nil, fmt.Errorf("%w: base currency %v missing", ErrInvalidTable, base)
	}
	if rate != 1.0 {
		return nil, fmt.Errorf("%w: base currency %v must have rate 1, got %v", ErrInvalidTable, base, rate)
	}

	return t, nil
}

// FromRates builds a Table from an unordered map. Currencies are ordered base first, then alphabetically.
func FromRates(base domain.Currency, rates domain.Rates) (*Table, error) {
	entries := make([]Entry, 0, len(rates))
	if r, ok := rates[base]; ok {
		entries = append(entries, Entry{base, r})
	}
	for _, c := range sortedCodes(rates) {
		if c == base {
			continue
		}
		entries = append(entries, Entry{c, rates[c]})
	}
	return New(base, entries...)
}

// Default the fixed table shipped with the converter, base USD
func Default() *Table {
	t, err := New("USD",
		Entry{"USD", 1.0},
		Entry{"IDR", 16450.75},
		Entry{"EUR", 0.93},
		Entry{"JPY", 159.80},
		Entry{"SGD", 1.35},
		Entry{"MYR", 4.71},
		Entry{"SAR", 3.75},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Rate looks up the rate of a currency
func (t *Table) Rate(c domain.Currency) (domain.Rate, bool) {
	r, ok := t.rates[c]
	return r, ok
}

// Base the currency every rate is expressed against
func (t *Table) Base() domain.Currency {
	return t.base
}

// Currencies the supported codes in declaration order. The returned slice is a copy.
func (t *Table) Currencies() []domain.Currency {
	out := make([]domain.Currency, len(t.order))
	copy(out, t.order)
	return out
}

// Entries the rows of the table in declaration order
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, c := range t.order {
		out = append(out, Entry{c, t.rates[c]})
	}
	return out
}

func (t *Table) Len() int {
	return len(t.order)
}

// Rates a copy of the underlying mapping
func (t *Table) Rates() domain.Rates {
	out := make(domain.Rates, len(t.rates))
	for k, v := range t.rates {
		out[k] = v
	}
	return out
}

// validCode accepts non-empty codes of uppercase ASCII letters
func validCode(c domain.Currency) bool {
	if c == "" {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func sortedCodes(rates domain.Rates) []domain.Currency {
	codes := make([]domain.Currency, 0, len(rates))
	for c := range rates {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
