package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"calcweather/internal/calc"
)

const DefaultConfigPath = "config/config.yaml"

const (
	ProviderOpenWeatherMap = "openweathermap"
	ProviderOpenMeteo      = "open-meteo"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Weather    WeatherConfig    `yaml:"weather"`
	Calculator CalculatorConfig `yaml:"calculator"`
	Sentry     SentryConfig     `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" split_words:"true" validate:"required"`
	Version string `yaml:"version" split_words:"true" validate:"required"`
	Env     string `yaml:"env" split_words:"true" validate:"required"`
}

type ServerConfig struct {
	Port         string        `yaml:"port" envconfig:"PORT" validate:"required,numeric"`
	ReadTimeout  time.Duration `yaml:"read_timeout" split_words:"true" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" split_words:"true" validate:"gte=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" split_words:"true" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `yaml:"level" split_words:"true" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" split_words:"true" validate:"oneof=json"`
}

// WeatherConfig selects and parameterizes the weather provider. The API key
// is required by openweathermap and must come from the environment or a
// config file that stays out of the build.
type WeatherConfig struct {
	Provider       string        `yaml:"provider" split_words:"true" validate:"oneof=openweathermap open-meteo"`
	BaseURL        string        `yaml:"base_url" split_words:"true" validate:"omitempty,url"`
	GeocodingURL   string        `yaml:"geocoding_url" split_words:"true" validate:"omitempty,url"`
	APIKey         string        `yaml:"api_key,omitempty" split_words:"true" validate:"required_if=Provider openweathermap"`
	IconURL        string        `yaml:"icon_url" split_words:"true" validate:"required,contains={icon}"`
	Timeout        time.Duration `yaml:"timeout" split_words:"true" validate:"gte=0"`
	BreakerTimeout time.Duration `yaml:"breaker_timeout" split_words:"true" validate:"gte=0"`
}

type CalculatorConfig struct {
	AngleMode  string        `yaml:"angle_mode" split_words:"true" validate:"angle_mode"`
	Precision  int           `yaml:"precision" split_words:"true" validate:"min=1,max=100"`
	SessionTTL time.Duration `yaml:"session_ttl" split_words:"true" validate:"gte=0"`
	SweepSpec  string        `yaml:"sweep_spec" split_words:"true" validate:"required"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn,omitempty" split_words:"true" validate:"omitempty,url"`
	Debug bool   `yaml:"debug" split_words:"true"`
}

// Provider loads and validates a Config.
type Provider interface {
	Load() (*Config, error)
	Validate(cfg *Config) error
}

// FileConfigProvider layers defaults, a YAML file, optional .env files and
// the process environment, in that order.
type FileConfigProvider struct {
	path     string
	envFiles []string
	validate *validator.Validate
}

func NewFileConfigProvider(path string, envFiles ...string) *FileConfigProvider {
	return &FileConfigProvider{
		path:     path,
		envFiles: envFiles,
		validate: newValidator(),
	}
}

// newValidator accepts exactly the angle mode names the calculator parses.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("angle_mode", func(fl validator.FieldLevel) bool {
		_, err := calc.ParseAngleMode(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "calcweather",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Weather: WeatherConfig{
			Provider:       ProviderOpenWeatherMap,
			IconURL:        "https://openweathermap.org/img/wn/{icon}@2x.png",
			Timeout:        10 * time.Second,
			BreakerTimeout: 30 * time.Second,
		},
		Calculator: CalculatorConfig{
			AngleMode:  "DEG",
			Precision:  12,
			SessionTTL: 30 * time.Minute,
			SweepSpec:  "@every 1m",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Defaults()

	// Read from YAML file first
	yamlData, err := os.ReadFile(p.path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(yamlData, cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config %s: %w", p.path, err)
	}

	// .env files never override variables already set in the environment
	if err := godotenv.Load(p.envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	// Override with environment variables
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) Validate(cfg *Config) error {
	if err := p.validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func NewConfigWithProvider(provider Provider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}
	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}
	return cnf, nil
}

func NewConfig() *Config {
	cnf, err := NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
	if err != nil {
		panic(err)
	}
	return cnf
}
