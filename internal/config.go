package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/haldor/keepintouch/internal/models"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Services ServicesConfig    `yaml:"services"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Services.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel string `yaml:"log_level"`
}

// Level parses the configured log level, defaulting to info.
func (c *ApplicationConfig) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("app: invalid log_level %q", c.LogLevel)
	}
	return nil
}

// ServicesConfig holds the per-service sections.
type ServicesConfig struct {
	Calls ServiceConfig `yaml:"calls"`
	Email ServiceConfig `yaml:"email"`
	SMS   ServiceConfig `yaml:"sms"`
}

// Validate validates every enabled service and rejects port clashes.
func (c *ServicesConfig) Validate() error {
	ports := map[int]models.Kind{}
	for kind, svc := range c.ByKind() {
		if !svc.Enabled {
			continue
		}
		if err := svc.Validate(); err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		if other, taken := ports[svc.Port]; taken {
			return fmt.Errorf("%s: port %d already used by %s", kind, svc.Port, other)
		}
		ports[svc.Port] = kind
	}
	if len(ports) == 0 {
		return fmt.Errorf("services: at least one service must be enabled")
	}
	return nil
}

// ByKind returns the service sections keyed by kind.
func (c *ServicesConfig) ByKind() map[models.Kind]*ServiceConfig {
	return map[models.Kind]*ServiceConfig{
		models.KindCalls: &c.Calls,
		models.KindEmail: &c.Email,
		models.KindSMS:   &c.SMS,
	}
}

// ServiceConfig holds one service's HTTP, storage, and generator
// settings.
type ServiceConfig struct {
	Enabled   bool            `yaml:"enabled"`
	Port      int             `yaml:"port"`
	DataFile  string          `yaml:"data_file"`
	Generator GeneratorConfig `yaml:"generator"`
}

// Address returns the HTTP server address.
func (c *ServiceConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the service configuration.
func (c *ServiceConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DataFile, validation.Required),
	); err != nil {
		return err
	}
	return c.Generator.Validate()
}

// GeneratorConfig controls synthetic data generation. The calls
// service sleeps a random whole number of seconds between the interval
// bounds on its continuous loop; email and SMS use Conversations for
// the one-shot startup seed.
type GeneratorConfig struct {
	Enabled            bool `yaml:"enabled"`
	MinIntervalSeconds int  `yaml:"min_interval_seconds"`
	MaxIntervalSeconds int  `yaml:"max_interval_seconds"`
	Conversations      int  `yaml:"conversations"`
}

// MinInterval returns the lower sleep bound of the call loop.
func (c *GeneratorConfig) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalSeconds) * time.Second
}

// MaxInterval returns the upper sleep bound of the call loop.
func (c *GeneratorConfig) MaxInterval() time.Duration {
	return time.Duration(c.MaxIntervalSeconds) * time.Second
}

// Validate validates the generator configuration.
func (c *GeneratorConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.MaxIntervalSeconds != 0 && c.MaxIntervalSeconds < c.MinIntervalSeconds {
		return fmt.Errorf("generator: max_interval_seconds %d is below min_interval_seconds %d",
			c.MaxIntervalSeconds, c.MinIntervalSeconds)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.MinIntervalSeconds, validation.Min(0)),
		validation.Field(&c.MaxIntervalSeconds, validation.Min(0)),
		validation.Field(&c.Conversations, validation.Min(0)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values:
// all three services enabled on ports 8081-8083, generators on, data
// files under ./data.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: "info",
		},
		Services: ServicesConfig{
			Calls: ServiceConfig{
				Enabled:  true,
				Port:     8081,
				DataFile: "./data/call_log_data.json",
				Generator: GeneratorConfig{
					Enabled:            true,
					MinIntervalSeconds: 1,
					MaxIntervalSeconds: 10,
				},
			},
			Email: ServiceConfig{
				Enabled:  true,
				Port:     8082,
				DataFile: "./data/email_data.json",
				Generator: GeneratorConfig{
					Enabled:       true,
					Conversations: 250,
				},
			},
			SMS: ServiceConfig{
				Enabled:  true,
				Port:     8083,
				DataFile: "./data/sms_data.json",
				Generator: GeneratorConfig{
					Enabled:       true,
					Conversations: 250,
				},
			},
		},
	}
}
