// Package format renders conversion results for display.
//
// Amounts are rounded half-even to at most two fractional digits and then
// printed with the grouping and decimal separators of a locale. Trailing
// fractional zeros are dropped, so 16450.70 renders as "16,450.7" in English.
package format

import (
	"currency-converter/domain"
	"fmt"
	"github.com/jeandeaual/go-locale"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"strings"
)

// MaxFractionDigits the most fractional digits ever displayed
const MaxFractionDigits = 2

// Formatter formats amounts for a single locale. It is safe for concurrent use.
type Formatter struct {
	tag language.Tag
}

// New returns a Formatter for tag
func New(tag language.Tag) *Formatter {
	return &Formatter{tag: tag}
}

// Locale the locale the Formatter formats for
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Round rounds a to MaxFractionDigits, ties to even
func Round(a domain.Amount) decimal.Decimal {
	return decimal.NewFromFloat(float64(a)).RoundBank(MaxFractionDigits)
}

// Amount formats a with locale grouping, e.g. "16,450.75"
func (f *Formatter) Amount(a domain.Amount) string {
	rounded := Round(a).InexactFloat64()
	// a fresh printer per call, message.Printer is not safe for concurrent use
	p := message.NewPrinter(f.tag)
	return p.Sprintf("%v", number.Decimal(rounded, number.MaxFractionDigits(MaxFractionDigits)))
}

// Money formats a suffixed with its currency code, e.g. "16,450.75 IDR"
func (f *Formatter) Money(a domain.Amount, c domain.Currency) string {
	return fmt.Sprintf("%s %s", f.Amount(a), c)
}

// ParseLocale parses a BCP 47 tag, also accepting POSIX forms such as "en_US.UTF-8"
func ParseLocale(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", s, err)
	}
	return tag, nil
}

// DetectLocale the locale of the host, English when it cannot be determined
func DetectLocale() language.Tag {
	name, err := locale.GetLocale()
	if err != nil || name == "" {
		return language.English
	}
	tag, err := ParseLocale(name)
	if err != nil || tag == language.Und {
		return language.English
	}
	return tag
}
