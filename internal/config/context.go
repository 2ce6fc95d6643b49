package config

import "context"

// configKey is the context key for the effective Config
type configKey struct{}

// WithConfig returns a new context with cfg stored in it.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the Config from context.
// Returns a default config if none is stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	def := Default()
	return &def
}

// Resolve loads the global config and merges the local override found at
// its root.
func Resolve() (*Config, error) {
	global, err := Load()
	if err != nil {
		return nil, err
	}
	local, err := LoadLocal(global.Root)
	if err != nil {
		return nil, err
	}
	return MergeLocal(&global, local), nil
}
