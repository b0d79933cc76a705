package config

import (
	"fmt"
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
	Cookie  CookieConfig
	Detect  DetectConfig
	Storage StorageConfig
	Redis   RedisConfig
	Worker  WorkerConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Bangkok"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Bangkok"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"lax"`
}

// DetectConfig selects the network location of the variety classification
// service. The default points at the production inference deployment.
type DetectConfig struct {
	BaseURL string        `envconfig:"DETECT_BASE_URL" default:"https://banana-ai-farm-production.up.railway.app"`
	Timeout time.Duration `envconfig:"DETECT_TIMEOUT" default:"30s"`
	// Uploads above this size are rejected before reaching the service.
	MaxImageBytes int64 `envconfig:"DETECT_MAX_IMAGE_BYTES" default:"10485760"`
}

type StorageConfig struct {
	Bucket           string `envconfig:"S3_BUCKET" default:""`
	Region           string `envconfig:"S3_REGION" default:"ap-southeast-1"`
	AccessKeyID      string `envconfig:"S3_ACCESS_KEY_ID" default:""`
	SecretAccessKey  string `envconfig:"S3_SECRET_ACCESS_KEY" default:""`
	CloudFrontDomain string `envconfig:"S3_CLOUDFRONT_DOMAIN" default:""`
}

func (c StorageConfig) Enabled() bool {
	return c.Bucket != ""
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"10m"`
}

type WorkerConfig struct {
	// Reservations still pending after this window are cancelled by the system.
	AutoCancelAfter time.Duration `envconfig:"AUTO_CANCEL_AFTER" default:"48h"`
	AutoCancelCron  string        `envconfig:"AUTO_CANCEL_CRON" default:"*/10 * * * *"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
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
			TimeZone: "Asia/Bangkok",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Bangkok",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		Detect: DetectConfig{
			BaseURL:       "http://localhost:9999",
			Timeout:       5 * time.Second,
			MaxImageBytes: 10 << 20,
		},
		Worker: WorkerConfig{
			AutoCancelAfter: 48 * time.Hour,
			AutoCancelCron:  "*/10 * * * *",
		},
	}
}
