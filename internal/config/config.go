// Package config loads grille settings from defaults, an optional YAML
// config file, a .env file, GRILLE_* environment variables and bound
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsawler/grille/format"
	"github.com/tsawler/grille/tables"
)

// Config is the full grille configuration.
type Config struct {
	Input    string        `mapstructure:"input"`
	Output   string        `mapstructure:"output"`
	Format   string        `mapstructure:"format"`
	Coerce   bool          `mapstructure:"coerce"`
	Validate bool          `mapstructure:"validate"`
	Pages    string        `mapstructure:"pages"`
	Extract  ExtractConfig `mapstructure:"extract"`
	Log      LogConfig     `mapstructure:"log"`
}

// ExtractConfig mirrors tables.Config.
type ExtractConfig struct {
	RowTolerance    float64 `mapstructure:"row_tolerance"`
	LeftMargin      float64 `mapstructure:"left_margin"`
	UsageRadius     float64 `mapstructure:"usage_radius"`
	DominanceRadius float64 `mapstructure:"dominance_radius"`
	MarginRadius    float64 `mapstructure:"margin_radius"`
	DefaultGroup    string  `mapstructure:"default_group"`
	CarryGroup      bool    `mapstructure:"carry_group"`
}

// LogConfig selects the log level (debug, info, warn, error) and
// handler format (text, json).
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Loader reads configuration through its own viper instance.
type Loader struct {
	v *viper.Viper

	// EnvFile is loaded into the process environment before reading
	// GRILLE_* variables. A missing file is not an error.
	EnvFile string
}

// NewLoader creates a loader with all defaults registered.
func NewLoader() *Loader {
	v := viper.New()

	ext := tables.DefaultConfig()
	v.SetDefault("input", "")
	v.SetDefault("output", "")
	v.SetDefault("format", "")
	v.SetDefault("coerce", false)
	v.SetDefault("validate", false)
	v.SetDefault("pages", "")
	v.SetDefault("extract.row_tolerance", ext.RowTolerance)
	v.SetDefault("extract.left_margin", ext.LeftMargin)
	v.SetDefault("extract.usage_radius", ext.UsageRadius)
	v.SetDefault("extract.dominance_radius", ext.DominanceRadius)
	v.SetDefault("extract.margin_radius", ext.MarginRadius)
	v.SetDefault("extract.default_group", ext.DefaultGroup)
	v.SetDefault("extract.carry_group", ext.CarryGroupAcrossPages)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Environment variables with GRILLE_ prefix; nested keys use "_"
	// (GRILLE_EXTRACT_LEFT_MARGIN).
	v.SetEnvPrefix("GRILLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, EnvFile: ".env"}
}

// BindFlag makes a command-line flag override key when the flag is set.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind to %s", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads the config file (cfgFile, or config.yaml in . or
// $HOME/.grille) and returns the merged configuration. Only an explicit
// cfgFile is required to exist.
func (l *Loader) Load(cfgFile string) (*Config, error) {
	if l.EnvFile != "" {
		_ = godotenv.Load(l.EnvFile)
	}

	if cfgFile != "" {
		l.v.SetConfigFile(cfgFile)
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		l.v.AddConfigPath("$HOME/.grille")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFileUsed returns the config file read by Load, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Check validates settings that cannot be checked by type alone.
func (c *Config) Check() error {
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	if _, err := c.PageList(); err != nil {
		return err
	}
	if err := c.ExtractConfig().Validate(); err != nil {
		return fmt.Errorf("invalid extract settings: %w", err)
	}
	return nil
}

// ExtractConfig converts the extract section to a tables.Config.
func (c *Config) ExtractConfig() tables.Config {
	return tables.Config{
		RowTolerance:          c.Extract.RowTolerance,
		LeftMargin:            c.Extract.LeftMargin,
		UsageRadius:           c.Extract.UsageRadius,
		DominanceRadius:       c.Extract.DominanceRadius,
		MarginRadius:          c.Extract.MarginRadius,
		DefaultGroup:          c.Extract.DefaultGroup,
		CarryGroupAcrossPages: c.Extract.CarryGroup,
	}
}

// OutputFormat returns the output format. An empty format falls back to
// the output file extension, then to JSON.
func (c *Config) OutputFormat() (format.Format, error) {
	if c.Format == "" {
		if f := format.Detect(c.Output); f == format.JSON || f == format.YAML || f == format.XLSX {
			return f, nil
		}
		return format.JSON, nil
	}

	f, err := format.Parse(c.Format)
	if err != nil {
		return format.Unknown, err
	}
	switch f {
	case format.JSON, format.YAML, format.XLSX:
		return f, nil
	default:
		return format.Unknown, fmt.Errorf("%s is not an output format", f)
	}
}

// PageList parses Pages, a comma-separated list of page numbers and
// inclusive ranges ("1-3,7"). An empty list means every page. The result
// is sorted and free of duplicates.
func (c *Config) PageList() ([]int, error) {
	return ParsePages(c.Pages)
}

// ParsePages parses a page list such as "1-3,7".
func ParsePages(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi := part, part
		if i := strings.Index(part, "-"); i >= 0 {
			lo, hi = strings.TrimSpace(part[:i]), strings.TrimSpace(part[i+1:])
		}

		from, err := strconv.Atoi(lo)
		if err != nil || from < 1 {
			return nil, fmt.Errorf("invalid page %q in %q", lo, s)
		}
		to, err := strconv.Atoi(hi)
		if err != nil || to < from {
			return nil, fmt.Errorf("invalid page range %q in %q", part, s)
		}
		for n := from; n <= to; n++ {
			seen[n] = true
		}
	}

	pages := make([]int, 0, len(seen))
	for n := range seen {
		pages = append(pages, n)
	}
	sort.Ints(pages)
	return pages, nil
}
