package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by the CLI,
// e.g. ECARITH_CURVE or ECARITH_LOG_LEVEL.
const EnvPrefix = "ECARITH"

// DefaultCurve is used when neither a curve name nor a modulus is configured.
const DefaultCurve = "demo313"

// ErrInvalidConfig is returned when the configured curve settings
// contradict each other or are incomplete.
var ErrInvalidConfig = errors.New("invalid curve configuration")

// Keys understood by Load.
const (
	KeyConfigFile = "config"
	KeyCurve      = "curve"
	KeyA          = "a"
	KeyB          = "b"
	KeyP          = "p"
	KeyLogLevel   = "log_level"
)

// Config holds the resolved settings for a CLI invocation.
type Config struct {
	Curve    string
	A, B, P  int64
	LogLevel string
}

// NewViper returns a viper instance that reads ECARITH_* environment
// variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_", "-", "_")
	v.SetEnvKeyReplacer(replacer)
	return v
}

// Load resolves a Config from v, reading the config file named by the
// "config" key first when one is set.
func Load(v *viper.Viper) (*Config, error) {
	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", file)
		}
	}

	cfg := &Config{
		Curve:    v.GetString(KeyCurve),
		A:        v.GetInt64(KeyA),
		B:        v.GetInt64(KeyB),
		P:        v.GetInt64(KeyP),
		LogLevel: v.GetString(KeyLogLevel),
	}

	coeffsSet := v.IsSet(KeyA) || v.IsSet(KeyB)
	modulusSet := v.IsSet(KeyP)

	switch {
	case cfg.Curve != "" && (modulusSet || coeffsSet):
		return nil, errors.Wrapf(ErrInvalidConfig, "curve %q combined with explicit a, b or p", cfg.Curve)
	case cfg.Curve == "" && !modulusSet && coeffsSet:
		return nil, errors.Wrap(ErrInvalidConfig, "coefficients a, b given without modulus p")
	case cfg.Curve == "" && !modulusSet:
		cfg.Curve = DefaultCurve
	}
	return cfg, nil
}

// NewCurve builds the curve described by the config.
func (c *Config) NewCurve() (*curves.Curve, error) {
	if c.Curve != "" {
		return curves.Lookup(c.Curve)
	}
	return curves.New(c.A, c.B, c.P)
}
