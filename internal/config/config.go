package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyUUID    = key("uuid")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service   Service
	Postgres  Postgres
	Twitch    Twitch
	Websocket Websocket
	Kafka     Kafka
	Logger    Logger
	Metrics   Metrics
	Platform  Platform
}

type Service struct {
	Port string `env:"COLLAB_SERVICE_PORT" env-default:"8080"`
	Name string `env:"COLLAB_SERVICE_NAME" env-default:"collab-service"`
}

type Postgres struct {
	User     string `env:"COLLAB_SERVICE_POSTGRES_USER"`
	Password string `env:"COLLAB_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"COLLAB_SERVICE_POSTGRES_DB"`
	Host     string `env:"COLLAB_SERVICE_POSTGRES_HOST"`
	Port     string `env:"COLLAB_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Twitch struct {
	ClientID      string        `env:"TWITCH_CLIENT_ID"`
	ClientSecret  string        `env:"TWITCH_CLIENT_SECRET"`
	WebhookSecret string        `env:"TWITCH_WEBHOOK_SECRET"`
	CallbackURL   string        `env:"TWITCH_WEBHOOK_CALLBACK_URL"`
	APIBaseURL    string        `env:"TWITCH_API_BASE_URL" env-default:"https://api.twitch.tv/helix"`
	AuthBaseURL   string        `env:"TWITCH_AUTH_BASE_URL" env-default:"https://id.twitch.tv/oauth2"`
	Timeout       time.Duration `env:"TWITCH_HTTP_TIMEOUT" env-default:"10s"`
}

type Websocket struct {
	JWTSecret string `env:"COLLAB_SERVICE_WS_JWT_SECRET"`
}

type Kafka struct {
	Host             string `env:"KAFKA_HOST"`
	Port             string `env:"KAFKA_PORT"`
	UserProfileTopic string `env:"KAFKA_USER_PROFILE_TOPIC" env-default:"user_profile_updated"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}
	return cfg
}
