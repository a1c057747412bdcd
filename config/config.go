package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the storefront TUI.
// Precedence: defaults < YAML file < SHOPTUI_* environment < command flags.
type Config struct {
	Route         string `yaml:"route" env:"SHOPTUI_ROUTE"`
	WideWidth     int    `yaml:"wide_width" env:"SHOPTUI_WIDE_WIDTH" validate:"gte=40"`
	AltScreen     bool   `yaml:"alt_screen" env:"SHOPTUI_ALT_SCREEN"`
	LogFile       string `yaml:"log_file" env:"SHOPTUI_LOG_FILE"`
	LogLevel      string `yaml:"log_level" env:"SHOPTUI_LOG_LEVEL" validate:"oneof=debug info warn error"`
	MarkdownStyle string `yaml:"markdown_style" env:"SHOPTUI_MARKDOWN_STYLE" validate:"oneof=auto dark light notty ascii"`
	MarkdownWrap  int    `yaml:"markdown_wrap" env:"SHOPTUI_MARKDOWN_WRAP" validate:"gte=20,lte=200"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Route:         "/",
		WideWidth:     120,
		AltScreen:     true,
		LogLevel:      "info",
		MarkdownStyle: "auto",
		MarkdownWrap:  72,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds a Config from defaults, the optional YAML file at path and
// the environment, then validates it. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if p := strings.TrimSpace(path); p != "" {
		raw, err := os.ReadFile(p)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the field constraints
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
