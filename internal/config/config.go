package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
}

// ServerConfig configures the analyze server.
type ServerConfig struct {
	Port      int     `yaml:"port" mapstructure:"port"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ScoringConfig holds the scorer policy knobs.
type ScoringConfig struct {
	RSL RSLConfig `yaml:"rsl" mapstructure:"rsl"`
	CFF CFFConfig `yaml:"cff" mapstructure:"cff"`
}

// RSLConfig configures the structural-level gates.
type RSLConfig struct {
	Strict  bool `yaml:"strict" mapstructure:"strict"`
	AllowL6 bool `yaml:"allow_l6" mapstructure:"allow_l6"`
}

// CFFConfig configures fingerprint pattern selection and the decision
// tree.
type CFFConfig struct {
	PatternThreshold float64 `yaml:"pattern_threshold" mapstructure:"pattern_threshold"`
	PatternMin       int     `yaml:"pattern_min" mapstructure:"pattern_min"`
	PatternMax       int     `yaml:"pattern_max" mapstructure:"pattern_max"`
	ConservativeLock bool    `yaml:"conservative_lock" mapstructure:"conservative_lock"`
}

// ReportConfig configures the stamped report envelope.
type ReportConfig struct {
	Language      string `yaml:"language" mapstructure:"language"`
	VerifyBaseURL string `yaml:"verify_base_url" mapstructure:"verify_base_url"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("VERACIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("scoring.rsl.strict", false)
	v.SetDefault("scoring.rsl.allow_l6", true)
	v.SetDefault("scoring.cff.pattern_threshold", 0.62)
	v.SetDefault("scoring.cff.pattern_min", 2)
	v.SetDefault("scoring.cff.pattern_max", 3)
	v.SetDefault("scoring.cff.conservative_lock", false)
	v.SetDefault("report.language", "en")
	v.SetDefault("report.verify_base_url", "https://verify.veracify.io/r")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the invariants a command mode depends on before any
// work starts.
func (c *Config) Validate(mode string) error {
	var problems []string

	check := func() {
		if c.Scoring.CFF.PatternThreshold < 0 || c.Scoring.CFF.PatternThreshold > 1 {
			problems = append(problems, "scoring.cff.pattern_threshold must be in [0,1]")
		}
		if c.Scoring.CFF.PatternMin < 0 || c.Scoring.CFF.PatternMax < c.Scoring.CFF.PatternMin {
			problems = append(problems, "scoring.cff.pattern_min/pattern_max must satisfy 0 <= min <= max")
		}
	}

	switch mode {
	case "analyze":
		check()
	case "serve":
		check()
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
		if c.Server.RateLimit <= 0 {
			problems = append(problems, "server.rate_limit must be > 0")
		}
		if c.Server.RateBurst < 1 {
			problems = append(problems, "server.rate_burst must be >= 1")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
