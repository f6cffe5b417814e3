package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyRole    = key("role")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

const (
	RealtimeCentrifugo = "centrifugo"
	RealtimeRedis      = "redis"

	RoleAdmin = "admin"
)

type Config struct {
	Service    Service
	Platform   Platform
	Postgres   Postgres
	Logger     Logger
	Metrics    Metrics
	Kafka      Kafka
	Centrifuge Centrifuge
	Realtime   Realtime
	Redis      Redis
	Identity   Identity
	Records    Records
	Media      Media
	Chat       Chat
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"staff-chat-service"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic   string `env:"USER_UPDATES_TOPIC" env-default:"user-updates"`
	AvatarTopic string `env:"AVATAR_UPDATES_TOPIC" env-default:"user-avatar-new"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL" env-default:"http://localhost:8000"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"3s"`
}

type Realtime struct {
	Transport string `env:"REALTIME_TRANSPORT" env-default:"centrifugo"`
	Topic     string `env:"REALTIME_TOPIC" env-default:"staff"`
}

type Redis struct {
	URL         string        `env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
	IdentityTTL time.Duration `env:"REDIS_IDENTITY_TTL" env-default:"10m"`
}

type Identity struct {
	Host    string        `env:"USER_SERVICE_HOST" env-default:"localhost"`
	Port    string        `env:"USER_SERVICE_PORT" env-default:"7070"`
	Timeout time.Duration `env:"USER_SERVICE_TIMEOUT" env-default:"2s"`
}

type Records struct {
	URL    string `env:"MEILI_URL" env-default:"http://localhost:7700"`
	APIKey string `env:"MEILI_MASTER_KEY"`
	Index  string `env:"MEILI_RECORDS_INDEX" env-default:"business_records"`
}

type Media struct {
	Endpoint  string `env:"MEDIA_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `env:"MEDIA_ACCESS_KEY"`
	SecretKey string `env:"MEDIA_SECRET_KEY"`
	Bucket    string `env:"MEDIA_BUCKET" env-default:"chat-attachments"`
	Region    string `env:"MEDIA_REGION" env-default:"us-east-1"`
	UseSSL    bool   `env:"MEDIA_USE_SSL" env-default:"false"`
	PublicURL string `env:"MEDIA_PUBLIC_URL" env-default:"http://localhost:9000/chat-attachments"`
}

type Chat struct {
	MaxBodyLength   int           `env:"CHAT_MAX_BODY_LENGTH" env-default:"4000"`
	DefaultPageSize int           `env:"CHAT_DEFAULT_PAGE_SIZE" env-default:"50"`
	MaxPageSize     int           `env:"CHAT_MAX_PAGE_SIZE" env-default:"200"`
	PublishTimeout  time.Duration `env:"CHAT_PUBLISH_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}
	return cfg
}
