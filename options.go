package docxtext

type extractConfig struct {
	limits Limits
}

type Option func(*extractConfig)

// WithLimits sets the size limits used by Extract. Zero fields keep their defaults.
func WithLimits(l Limits) Option {
	return func(c *extractConfig) { c.limits = l }
}

func newExtractConfig(opts []Option) extractConfig {
	cfg := extractConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}
