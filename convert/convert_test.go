package convert

import (
	"currency-converter/domain"
	"currency-converter/rates"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strconv"
	"sync"
	"testing"
)

func TestConvert_Identity(t *testing.T) {
	table := rates.Default()
	for _, c := range table.Currencies() {
		for _, amount := range []string{"0", "1", "12.5", "16450.75", "0.001"} {
			got, err := Convert(amount, c, c, table)
			require.NoError(t, err)
			want, _ := ParseAmount(amount)
			assert.InDelta(t, float64(want), float64(got.Amount), 1e-9, "%v %v", amount, c)
			assert.InDelta(t, 1.0, float64(got.Rate), 1e-12)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	table := rates.Default()
	for _, a := range table.Currencies() {
		for _, b := range table.Currencies() {
			there, err := Convert("250.40", a, b, table)
			require.NoError(t, err)

			back, err := Convert(formatFloat(there.Amount), b, a, table)
			require.NoError(t, err)
			assert.InEpsilon(t, 250.40, float64(back.Amount), 1e-9, "%v -> %v -> %v", a, b, a)
		}
	}
}

func TestConvert_Examples(t *testing.T) {
	table := rates.Default()

	got, err := Convert("1", "USD", "IDR", table)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(16450.75), got.Amount)

	got, err = Convert("100", "USD", "IDR", table)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(1645075), got.Amount)
	assert.Equal(t, domain.Rate(16450.75), got.Rate)

	got, err = Convert("100", "IDR", "USD", table)
	require.NoError(t, err)
	assert.InDelta(t, 0.0060787, float64(got.Amount), 1e-7)

	got, err = Convert("0", "JPY", "SAR", table)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(0), got.Amount)

	got, err = Convert("93", "EUR", "USD", table)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, float64(got.Amount), 1e-9)
}

func TestParseAmount_Notation(t *testing.T) {
	tests := []struct {
		amount string
		want   domain.Amount
	}{
		{"12", 12},
		{"12.", 12},
		{".5", 0.5},
		{"+7", 7},
		{"-2.5", -2.5},
		{"1e3", 1000},
		{"2.5E-1", 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, err := ParseAmount(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_Negative(t *testing.T) {
	got, err := Convert("-2", "USD", "SGD", rates.Default())
	require.NoError(t, err)
	assert.InDelta(t, -2.7, float64(got.Amount), 1e-12)
}

func TestConvert_InvalidAmount(t *testing.T) {
	table := rates.Default()
	tests := []struct {
		name   string
		amount string
		empty  bool
	}{
		{"empty", "", true},
		{"letters", "abc", false},
		{"lone point", ".", false},
		{"two points", "1.2.3", false},
		{"nan", "NaN", false},
		{"inf", "Inf", false},
		{"overflow", "1e400", false},
		{"space", " 1", false},
		{"underscore", "1_0", false},
		{"hex underscore", "0x_1p0", false},
		{"hex float", "0x1p-2", false},
		{"sign only", "-", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.amount, "USD", "EUR", table)
			assert.ErrorIs(t, err, ErrInvalidAmount)
			assert.Equal(t, tt.empty, errors.Is(err, ErrEmptyAmount))
			assert.Equal(t, domain.Conversion{}, got)
		})
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	table := rates.Default()

	_, err := Convert("1", "GBP", "USD", table)
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	_, err = Convert("1", "USD", "GBP", table)
	assert.ErrorIs(t, err, ErrUnknownCurrency)

	// amount problems are reported first
	_, err = Convert("", "GBP", "GBP", table)
	assert.ErrorIs(t, err, ErrEmptyAmount)
}

func TestConvert_Fixture(t *testing.T) {
	table, err := rates.New("EUR", rates.Entry{Currency: "EUR", Rate: 1}, rates.Entry{Currency: "GBP", Rate: 0.5})
	require.NoError(t, err)

	got, err := Convert("3", "EUR", "GBP", table)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(1.5), got.Amount)

	_, err = Convert("3", "USD", "GBP", table)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func formatFloat(a domain.Amount) string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

func TestConvert_Concurrent(t *testing.T) {
	table := rates.Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := Convert("1", "USD", "IDR", table)
				assert.NoError(t, err)
				assert.Equal(t, domain.Amount(16450.75), got.Amount)
			}
		}()
	}
	wg.Wait()
}
