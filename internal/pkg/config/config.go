package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Notify NotifyConfig
	Mail   MailConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
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

// NotifyConfig drives the digest bundler. When Provider is empty the outbound
// channel starts unconfigured and intake events are dropped until an operator
// configures one over the API.
type NotifyConfig struct {
	IdleWindow  time.Duration `envconfig:"NOTIFY_IDLE_WINDOW" default:"30s"`
	Provider    string        `envconfig:"NOTIFY_PROVIDER"`
	FromAddress string        `envconfig:"NOTIFY_FROM_ADDRESS"`
	FromName    string        `envconfig:"NOTIFY_FROM_NAME" default:"Coachdesk"`
	Endpoint    string        `envconfig:"NOTIFY_ENDPOINT"`
}

type MailConfig struct {
	SendTimeout  time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"10s"`
	RatePerSec   float64       `envconfig:"MAIL_RATE_PER_SEC" default:"5"`
	Burst        int           `envconfig:"MAIL_RATE_BURST" default:"5"`
	AWSRegion    string        `envconfig:"AWS_REGION" default:"us-east-1"`
	SMTPUsername string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword string        `envconfig:"SMTP_PASSWORD"`
	DKIMSelector string        `envconfig:"DKIM_SELECTOR"`
	DKIMDomain   string        `envconfig:"DKIM_DOMAIN"`
	DKIMKeyPath  string        `envconfig:"DKIM_KEY_PATH"`
}

type RedisConfig struct {
	URL      string        `envconfig:"REDIS_URL"`
	CacheTTL time.Duration `envconfig:"DIRECTORY_CACHE_TTL" default:"5m"`
}

type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS"`
	EventsTopic string   `envconfig:"KAFKA_TOPIC_EVENTS" default:"platform-events"`
	GroupID     string   `envconfig:"KAFKA_GROUP_ID" default:"coachdesk-notify"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Notify: NotifyConfig{
			IdleWindow:  200 * time.Millisecond,
			Provider:    "log",
			FromAddress: "noreply@coachdesk.test",
			FromName:    "Coachdesk",
		},
		Mail: MailConfig{
			SendTimeout: 2 * time.Second,
			RatePerSec:  100,
			Burst:       10,
			AWSRegion:   "us-east-1",
		},
		Redis: RedisConfig{
			CacheTTL: time.Minute,
		},
	}
}
