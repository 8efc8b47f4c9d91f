package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type key string

const (
	KeyLogger    = key("logger")
	KeyRequestID = key("request_id")
)

type Config struct {
	Service  Service
	Platform Platform
	Logger   Logger
	Twitch   Twitch
	Roster   Roster
}

type Service struct {
	Name            string        `env:"SERVICE_NAME" env-default:"vgi-server"`
	Port            string        `env:"SERVICE_PORT" env-default:"8080"`
	StaticDir       string        `env:"SERVICE_STATIC_DIR" env-default:"wwwroot"`
	RequestTimeout  time.Duration `env:"SERVICE_REQUEST_TIMEOUT" env-default:"15s"`
	ShutdownTimeout time.Duration `env:"SERVICE_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"development"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST" env-default:"localhost"`
	Port string `env:"LOGGER_PORT" env-default:"5170"`
}

type Twitch struct {
	ClientID     string        `env:"TWITCH_CLIENT_ID" env-required:"true"`
	ClientSecret string        `env:"TWITCH_CLIENT_SECRET" env-required:"true"`
	APIBaseURL   string        `env:"TWITCH_API_BASE_URL" env-default:"https://api.twitch.tv/helix"`
	Timeout      time.Duration `env:"TWITCH_TIMEOUT" env-default:"10s"`
}

type Roster struct {
	Path string `env:"ROSTER_PATH" env-default:"members.yaml"`
}

// Load reads the configuration from the environment, after merging a local .env if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}
