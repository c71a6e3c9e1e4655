package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	API       APIConfig       `yaml:"api"       validate:"required"`
	View      ViewConfig      `yaml:"view"      validate:"required"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// APIConfig points at the remote booking API.
type APIConfig struct {
	BaseURL string `yaml:"base_url" env:"API_BASE_URL" validate:"required,url"`
	// Timeout bounds a single call. Zero leaves it to the request context.
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"0s" validate:"gte=0"`
}

type ViewConfig struct {
	PageSize int    `yaml:"page_size" env:"VIEW_PAGE_SIZE" env-default:"5"       validate:"min=1,max=100"`
	Strategy string `yaml:"strategy"  env:"VIEW_STRATEGY"  env-default:"refetch" validate:"required,oneof=refetch patch"`
}

type RateLimitConfig struct {
	// RPS is the per-client rate of form submissions. Zero disables limiting.
	RPS   float64       `yaml:"rps"   env:"RATE_LIMIT_RPS"   env-default:"2"   validate:"gte=0"`
	Burst int           `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"5"   validate:"gte=0"`
	TTL   time.Duration `yaml:"ttl"   env:"RATE_LIMIT_TTL"   env-default:"10m" validate:"gte=0"`
}

type SchedulerConfig struct {
	// ProbeInterval is how often the booking API is probed. Zero disables it.
	ProbeInterval time.Duration `yaml:"probe_interval" env:"SCHEDULER_PROBE_INTERVAL" env-default:"30s" validate:"gte=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"     env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	ServiceName string `yaml:"service_name" env:"OTEL_SERVICE_NAME"           env-default:"pass-booking-console"`
	Environment string `yaml:"environment"  env:"ENV"                         env-default:"dev"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
