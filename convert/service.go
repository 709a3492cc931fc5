package convert

import (
	"context"
	"currency-converter/domain"
	"currency-converter/rates"
)

// Service interface for converting from one currency to another
type Service interface {
	Convert(ctx context.Context, amount string, from domain.Currency, to domain.Currency) (domain.Conversion, error)
	// Base the currency every rate is expressed against
	Base(ctx context.Context) domain.Currency
	// Currencies the supported currencies with their rates, in table order
	Currencies(ctx context.Context) []rates.Entry
}

// service converts against a fixed rate table
type service struct {
	// table the rate table, never mutated
	table *rates.Table
}

// NewService constructs a valid Service
func NewService(table *rates.Table) Service {
	return &service{
		table: table,
	}
}

// Convert computes a conversion from one currency to another with the table's rates.
func (s *service) Convert(_ context.Context, amount string, from domain.Currency, to domain.Currency) (domain.Conversion, error) {
	return Convert(amount, from, to, s.table)
}

func (s *service) Base(_ context.Context) domain.Currency {
	return s.table.Base()
}

// Currencies lists the supported codes and their rates
func (s *service) Currencies(_ context.Context) []rates.Entry {
	return s.table.Entries()
}
