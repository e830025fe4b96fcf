package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Store   StoreConfig
	Kafka   KafkaConfig
	Tracing TracingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	Mode string `envconfig:"GIN_MODE" default:"release"`
}

// DBConfig credentials are only checked when the postgres driver is selected.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig only verifies tokens; issuing them belongs to the auth service.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

type BookingConfig struct {
	// Upper bound for a single create/cancel/reschedule transaction.
	TxTimeout time.Duration `envconfig:"BOOKING_TX_TIMEOUT" default:"5s"`
	// Retries after an exclusion or serialization failure.
	ConflictRetries int `envconfig:"BOOKING_CONFLICT_RETRIES" default:"1"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type KafkaConfig struct {
	// Empty disables the outbox relay.
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:""`
	Topic        string        `envconfig:"KAFKA_BOOKING_TOPIC" default:"booking-events"`
	PollInterval time.Duration `envconfig:"KAFKA_OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"KAFKA_OUTBOX_BATCH_SIZE" default:"100"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0 && c.Brokers[0] != ""
}

type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"place-booking"`
	Environment string `envconfig:"ENV" default:"dev"`
}

func (c TracingConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c DBConfig) Validate() error {
	var missing []string
	for _, f := range []struct{ key, value string }{
		{"DB_USER", c.User}, {"DB_PASSWORD", c.Password}, {"DB_NAME", c.DBName},
	} {
		if f.value == "" {
			missing = append(missing, f.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required key(s) %s missing value", strings.Join(missing, ", "))
	}
	return nil
}

func (c KafkaConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("KAFKA_OUTBOX_POLL_INTERVAL must be positive")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("KAFKA_OUTBOX_BATCH_SIZE must be positive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Store.Driver != StoreDriverPostgres && cfg.Store.Driver != StoreDriverMemory {
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	if cfg.Booking.ConflictRetries < 0 {
		return Config{}, fmt.Errorf("BOOKING_CONFLICT_RETRIES must not be negative")
	}
	if cfg.Store.Driver == StoreDriverPostgres {
		if err := cfg.DB.Validate(); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Kafka.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
			Mode: "test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret-key",
		},
		Booking: BookingConfig{
			TxTimeout:       5 * time.Second,
			ConflictRetries: 1,
		},
		Store: StoreConfig{
			Driver: StoreDriverPostgres,
		},
	}
}
