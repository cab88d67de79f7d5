// Package envconfig reads SKILLGLYPH_* overrides from the process environment.
package envconfig

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/caiohportella/skillglyph/internal/domain"
)

// Env holds the environment overrides. Flags win over these; these win over skillglyph.yaml.
type Env struct {
	Debug           bool     `env:"SKILLGLYPH_DEBUG"`
	LogConsole      bool     `env:"SKILLGLYPH_LOG_CONSOLE"`
	Workspace       string   `env:"SKILLGLYPH_WORKSPACE"`
	Locale          string   `env:"SKILLGLYPH_LOCALE"`
	DefaultIcon     string   `env:"SKILLGLYPH_DEFAULT_ICON"`
	DisabledSources []string `env:"SKILLGLYPH_DISABLED_SOURCES" envSeparator:","`
}

// Parse loads Env from the process environment.
func Parse() (Env, error) {
	return parse(env.Options{})
}

// ParseMap loads Env from vars instead of the process environment.
func ParseMap(vars map[string]string) (Env, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, &domain.OpError{
			Op:   "envconfig.parse",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}
	return e, nil
}

// Apply layers the non-empty overrides on top of cfg.
func (e Env) Apply(cfg domain.Config) domain.Config {
	if v := strings.TrimSpace(e.Locale); v != "" {
		cfg.Locale = v
	}
	if v := strings.TrimSpace(e.DefaultIcon); v != "" {
		cfg.Defaults.Icon = v
	}
	if len(e.DisabledSources) > 0 {
		disabled := make([]string, 0, len(e.DisabledSources))
		for _, s := range e.DisabledSources {
			if s = strings.TrimSpace(s); s != "" {
				disabled = append(disabled, s)
			}
		}
		cfg.Sources.Disabled = disabled
	}
	return cfg
}
