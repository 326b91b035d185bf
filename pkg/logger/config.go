package logger

import "log/slog"

// Config carries the logging knobs every deployment tunes. Level accepts
// slog's textual forms ("debug", "info", "warn", "error"), Format accepts
// "json" or "text".
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format Format     `env:"LOG_FORMAT" envDefault:"json"`
}

// NewFromConfig creates a logger from the provided Config. Additional
// options are applied on top, so a caller can still attach service attrs
// or redirect output.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{
		WithLevel(cfg.Level),
		WithFormat(cfg.Format),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
