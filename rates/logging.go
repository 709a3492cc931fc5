package rates

import (
	"context"
	"github.com/go-kit/log"
	"time"
)

// loggingSource decorates a Source with logging
type loggingSource struct {
	next   Source
	logger log.Logger
}

// NewLoggingSource return a new logging Source
func NewLoggingSource(logger log.Logger, s Source) Source {
	return &loggingSource{
		next:   s,
		logger: logger,
	}
}

func (s *loggingSource) Table(ctx context.Context) (t *Table, err error) {
	defer func(begin time.Time) {
		keyvals := []interface{}{
			"method", "table",
			"took", time.Since(begin),
			"err", err,
		}
		if t != nil {
			keyvals = append(keyvals, "base", t.Base(), "currencies", t.Len())
		}
		s.logger.Log(keyvals...)
	}(time.Now())
	return s.next.Table(ctx)
}
