package common

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	LLM      LLMConfig
	Gemini   GeminiConfig
	Weather  WeatherConfig
	Queue    QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DSN              string        `env:"DB_URL" envDefault:"file:outfit.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"`
	MaxConns         int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	MinConns         int32         `env:"DB_MIN_CONNS" envDefault:"1"`
	MaxConnLifetime  time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
	MaxConnIdleTime  time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DialTimeout      time.Duration `env:"DB_DIAL_TIMEOUT" envDefault:"3s"`
	StatementTimeout time.Duration `env:"DB_STATEMENT_TIMEOUT" envDefault:"0s"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":3001"`
	GRPCAddr        string        `env:"GRPC_ADDR" envDefault:":8081"`
	CORSOrigins     []string      `env:"CORS_ORIGIN" envDefault:"http://localhost:3000" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
}

// LLMConfig holds the OpenAI-compatible chat provider configuration.
type LLMConfig struct {
	Provider    string        `env:"LLM_PROVIDER" envDefault:"deepseek"`
	APIKey      string        `env:"DEEPSEEK_API_KEY"`
	BaseURL     string        `env:"DEEPSEEK_BASE_URL" envDefault:"https://api.deepseek.com/v1"`
	Model       string        `env:"DEEPSEEK_MODEL" envDefault:"deepseek-chat"`
	Temperature float64       `env:"LLM_TEMPERATURE" envDefault:"0.8"`
	MaxTokens   int64         `env:"LLM_MAX_TOKENS" envDefault:"1500"`
	Timeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"45s"`
}

// GeminiConfig is used when LLM_PROVIDER=gemini.
type GeminiConfig struct {
	APIKey string `env:"GOOGLE_API_KEY"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// WeatherConfig holds weather provider configuration
type WeatherConfig struct {
	APIKey          string        `env:"WEATHER_API_KEY"`
	OpenWeatherURL  string        `env:"OPENWEATHER_URL" envDefault:"https://api.openweathermap.org/data/2.5/weather"`
	WttrURL         string        `env:"WTTR_URL" envDefault:"https://wttr.in"`
	Timeout         time.Duration `env:"WEATHER_TIMEOUT" envDefault:"10s"`
	RatePerSecond   float64       `env:"WEATHER_RATE" envDefault:"2"`
	Burst           int           `env:"WEATHER_BURST" envDefault:"4"`
	DefaultLocation string        `env:"WEATHER_DEFAULT_LOCATION" envDefault:"北京"`
}

// QueueConfig sizes the background record queue.
type QueueConfig struct {
	Workers     int           `env:"QUEUE_WORKERS" envDefault:"2"`
	Size        int           `env:"QUEUE_SIZE" envDefault:"64"`
	TaskTimeout time.Duration `env:"QUEUE_TASK_TIMEOUT" envDefault:"5s"`
}

// LoadConfig loads .env (if present) and parses environment variables.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, NewAppError("CONFIG_ERROR", "parse environment", err)
	}
	return &cfg, nil
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return NewAppError("CONFIG_ERROR", fmt.Sprintf("unsupported DB_DRIVER %q", c.Database.Driver), ErrInvalidInput)
	}
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	switch c.LLM.Provider {
	case "deepseek", "openai", "gemini":
	default:
		return NewAppError("CONFIG_ERROR", fmt.Sprintf("unsupported LLM_PROVIDER %q", c.LLM.Provider), ErrInvalidInput)
	}
	if c.LLM.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "LLM_TIMEOUT must be positive", ErrInvalidInput)
	}
	if c.Weather.RatePerSecond <= 0 || c.Weather.Burst <= 0 {
		return NewAppError("CONFIG_ERROR", "WEATHER_RATE and WEATHER_BURST must be positive", ErrInvalidInput)
	}
	if c.Queue.Workers <= 0 || c.Queue.Size <= 0 {
		return NewAppError("CONFIG_ERROR", "QUEUE_WORKERS and QUEUE_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
