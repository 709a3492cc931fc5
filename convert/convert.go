package convert

import (
	"currency-converter/domain"
	"currency-converter/rates"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// numberPattern plain decimal notation with an optional sign and exponent.
// ParseFloat alone would also take Go literal forms such as "1_0" or "0x1p-2".
var numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

var (
	// ErrInvalidAmount the amount is not a parseable, finite number
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrEmptyAmount nothing was entered. It wraps ErrInvalidAmount.
	ErrEmptyAmount = fmt.Errorf("%w: empty", ErrInvalidAmount)

	// ErrUnknownCurrency a currency code missing from the rate table
	ErrUnknownCurrency = errors.New("unknown currency")
)

// Convert converts a raw amount from one currency to another through the base currency of table.
// Negative amounts are converted like any other; filtering them is left to the caller.
func Convert(amount string, from domain.Currency, to domain.Currency, table *rates.Table) (domain.Conversion, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		return domain.Conversion{}, err
	}

	fromRate, ok := table.Rate(from)
	if !ok {
		return domain.Conversion{}, fmt.Errorf("%w: 'from' currency %v", ErrUnknownCurrency, from)
	}
	toRate, ok := table.Rate(to)
	if !ok {
		return domain.Conversion{}, fmt.Errorf("%w: 'to' currency %v", ErrUnknownCurrency, to)
	}

	return domain.Conversion{
		From:     from,
		To:       to,
		Original: value,
		Amount:   domain.Amount(float64(value) / float64(fromRate) * float64(toRate)),
		Rate:     domain.Rate(float64(toRate) / float64(fromRate)),
	}, nil
}

// ParseAmount parses raw user input as a finite number
func ParseAmount(amount string) (domain.Amount, error) {
	if amount == "" {
		return 0, ErrEmptyAmount
	}
	if !numberPattern.MatchString(amount) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return domain.Amount(f), nil
}
