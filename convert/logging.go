package convert

import (
	"context"
	"currency-converter/domain"
	"currency-converter/rates"
	"github.com/go-kit/log"
	"time"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount string, from domain.Currency, to domain.Currency) (c domain.Conversion, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"rate", c.Rate,
			"converted_amount", c.Amount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

func (s *loggingService) Base(ctx context.Context) domain.Currency {
	return s.next.Base(ctx)
}

func (s *loggingService) Currencies(ctx context.Context) (entries []rates.Entry) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "currencies",
			"base", s.next.Base(ctx),
			"count", len(entries),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Currencies(ctx)
}
