package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server   ServerConfig
	Store    StoreConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/inventory-service.log"`
	// EnforceScopes rejects requests without an X-User-Scopes header.
	// Leave off when the service runs without an API gateway.
	EnforceScopes bool `envconfig:"ENFORCE_SCOPES" default:"false"`
}

type StoreConfig struct {
	PageSize int    `envconfig:"STORE_PAGE_SIZE" default:"20"`
	Actor    string `envconfig:"STORE_DEFAULT_ACTOR" default:"system"`
	// NumericAwareSort switches numeric fields from lexicographic to
	// numeric ordering.
	NumericAwareSort bool `envconfig:"STORE_NUMERIC_AWARE_SORT" default:"false"`
	// GatewayTimeout of 0 leaves persistence calls unbounded.
	GatewayTimeout time.Duration `envconfig:"STORE_GATEWAY_TIMEOUT" default:"0"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type KafkaConfig struct {
	Enabled    bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers    []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	AuditTopic string   `envconfig:"KAFKA_AUDIT_TOPIC" default:"server-audit-events"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
