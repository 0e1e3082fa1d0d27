package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"bwgraph/internal/chart"
	"bwgraph/internal/traffic"
)

type VnstatConfig struct {
	// Binary is the vnstat executable, looked up in PATH when not absolute.
	Binary    string        `yaml:"binary"`
	Interface string        `yaml:"interface"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
	// DataFile, when set, serves a stored document instead of running vnstat.
	DataFile string `yaml:"dataFile"`
	// URL, when set, fetches data.json from another host.
	URL string `yaml:"url" validate:"omitempty,url"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"`
	TTL     time.Duration `yaml:"ttl" validate:"gte=0"`
	// Refresh is a cron spec ("@every 5m"); empty disables warming.
	Refresh string `yaml:"refresh"`
}

type ThemeConfig struct {
	Light chart.Theme `yaml:"light"`
	Dark  chart.Theme `yaml:"dark"`
}

type LabelConfig struct {
	DateLayout string `yaml:"dateLayout"`
	Location   string `yaml:"location"`
}

type Config struct {
	Addr       string       `yaml:"addr" validate:"required"`
	SSLCert    string       `yaml:"sslCert"`
	SSLKey     string       `yaml:"sslKey" validate:"required_with=SSLCert"`
	LogFormat  string       `yaml:"logFormat" validate:"omitempty,oneof=text json"`
	MaxPeriods int          `yaml:"maxPeriods" validate:"min=1"`
	Vnstat     VnstatConfig `yaml:"vnstat"`
	Cache      CacheConfig  `yaml:"cache"`
	Theme      ThemeConfig  `yaml:"theme"`
	Labels     LabelConfig  `yaml:"labels"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:       "127.0.0.1:8685",
		LogFormat:  "text",
		MaxPeriods: 366,
		Vnstat: VnstatConfig{
			Binary:  "vnstat",
			Timeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "./data/cache",
			TTL:     5 * time.Minute,
			Refresh: "@every 5m",
		},
		Theme: ThemeConfig{
			Light: chart.LightTheme,
			Dark:  chart.DarkTheme,
		},
		Labels: LabelConfig{
			DateLayout: traffic.DefaultDateLayout,
			Location:   "Local",
		},
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location resolves Labels.Location; empty means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Labels.Location == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Labels.Location)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", c.Labels.Location, err)
	}
	return loc, nil
}

// Builder returns the series builder configured by the label settings.
func (c *Config) Builder() (*traffic.Builder, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	return traffic.NewBuilder(c.Labels.DateLayout, loc), nil
}
