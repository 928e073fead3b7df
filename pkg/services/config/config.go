package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Server struct {
	Host string `mapstructure:"host" validate:"required"`
	Port string `mapstructure:"port" validate:"required"`
}

// Config is the explicit pipeline configuration; nothing is read from
// globals at run time. Now optionally pins the clock (RFC3339) so the
// payables month filter and the generated-at stamp are reproducible.
type Config struct {
	WorkbookPath    string `mapstructure:"workbook_path" validate:"required"`
	PhotoDir        string `mapstructure:"photo_dir"`
	PhotoURLPrefix  string `mapstructure:"photo_url_prefix"`
	WkhtmltopdfPath string `mapstructure:"wkhtmltopdf_path"`
	Now             string `mapstructure:"now"`
	Server          Server `mapstructure:"server"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("photo_url_prefix", "/fotos")
	v.SetDefault("wkhtmltopdf_path", "wkhtmltopdf")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Clock resolves the run-time clock: the pinned instant when `now` is set,
// the wall clock otherwise.
func (c *Config) Clock() (func() time.Time, error) {
	if c.Now == "" {
		return time.Now, nil
	}
	t, err := time.Parse(time.RFC3339, c.Now)
	if err != nil {
		return nil, fmt.Errorf("invalid `now` override %q: %w", c.Now, err)
	}
	return func() time.Time { return t }, nil
}
