package unchecked

import "log/slog"

// config holds the behavior of a single adapter.
// It is built once when the adapter is created and never mutated afterwards.
type config struct {
	// kinds holds the declared error kinds. A nil slice selects the
	// unconditional policy.
	kinds       []Kind
	interrupter Interrupter
	logger      *slog.Logger
}

// Option configures an adapter.
type Option func(*config)

// newConfig creates a configuration with default values and applies opts.
func newConfig(opts []Option) *config {
	c := &config{
		interrupter: &processFlag,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// classified reports whether the adapter checks failures against declared kinds.
func (c *config) classified() bool {
	return c.kinds != nil
}

// Expect switches the adapter to the classified policy. Failures matching one
// of kinds are wrapped in UncheckedError; any other non-run-time failure is
// wrapped in UnexpectedError. Kinds are tested in the order given.
//
// Expect panics if called without kinds. Repeated calls append.
func Expect(kinds ...Kind) Option {
	if len(kinds) == 0 {
		panic("unchecked: Expect requires at least one kind")
	}
	for _, k := range kinds {
		if k == nil {
			panic("unchecked: Expect given a nil kind")
		}
	}
	return func(c *config) {
		c.kinds = append(c.kinds, kinds...)
	}
}

// WithInterrupter sets the Interrupter marked when the adapter observes an
// interruption. A nil value restores the process-wide flag.
func WithInterrupter(i Interrupter) Option {
	return func(c *config) {
		if i == nil {
			c.interrupter = &processFlag
			return
		}
		c.interrupter = i
	}
}

// WithLogger makes the adapter emit a debug record for every failure it
// reclassifies. A nil value restores the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger == nil {
			c.logger = slog.New(slog.DiscardHandler)
			return
		}
		c.logger = logger
	}
}
