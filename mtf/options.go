package mtf

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option configures a Table at construction.
type Option func(*options)

type options struct {
	id     string
	logger *zap.Logger
	now    func() time.Time
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		now:    time.Now,
	}
}

// WithLogger sets the logger receiving the table's debug entries.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces time.Now as the source of Stats.Lifetime.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithID names the table in log entries instead of a random UUID.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

func (o options) tableID() string {
	if o.id != "" {
		return o.id
	}
	return uuid.New().String()
}
