package rates

import (
	"context"
	"currency-converter/domain"
	"encoding/json"
	"fmt"
	"github.com/BurntSushi/toml"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// file a Source reading a rate table fixture from disk.
// Supported formats, chosen by extension:
//
//	.toml  base = "USD" followed by a [rates] table of numbers
//	.json  {"data": {"currency": "USD", "rates": {"IDR": "16450.75"}}}
type file struct {
	path string
}

// NewFile constructs a file Source
func NewFile(path string) Source {
	return &file{path: path}
}

// Table reads and validates the fixture
func (f *file) Table(ctx context.Context) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bytes, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading rates file: %w", err)
	}

	var base domain.Currency
	var rates domain.Rates

	switch ext := strings.ToLower(filepath.Ext(f.path)); ext {
	case ".toml":
		base, rates, err = decodeTOML(bytes)
	case ".json":
		base, rates, err = decodeJSON(bytes)
	default:
		return nil, fmt.Errorf("unsupported rates file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	t, err := FromRates(base, rates)
	if err != nil {
		return nil, fmt.Errorf("rates file %v: %w", f.path, err)
	}
	return t, nil
}

func decodeTOML(bytes []byte) (domain.Currency, domain.Rates, error) {
	type document struct {
		Base  string             `toml:"base"`
		Rates map[string]float64 `toml:"rates"`
	}

	var doc document
	if _, err := toml.Decode(string(bytes), &doc); err != nil {
		return "", nil, fmt.Errorf("decoding toml: %w", err)
	}

	rates := domain.Rates{}
	for k, v := range doc.Rates {
		rates[domain.Currency(k)] = domain.Rate(v)
	}
	return domain.Currency(doc.Base), rates, nil
}

func decodeJSON(bytes []byte) (domain.Currency, domain.Rates, error) {
	type document struct {
		Data struct {
			Currency string
			Rates    map[string]string // maps currency codes to rates
		}
	}

	var doc document
	if err := json.Unmarshal(bytes, &doc); err != nil {
		return "", nil, fmt.Errorf("decoding json: %w", err)
	}

	rates := domain.Rates{}
	for k, v := range doc.Data.Rates {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", nil, fmt.Errorf("bad rate value: %w", err)
		}
		rates[domain.Currency(k)] = domain.Rate(f)
	}
	return domain.Currency(doc.Data.Currency), rates, nil
}
