package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env          string
	HTTP         HTTPConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	OTP          OTPConfig
	CRM          CRMConfig
	SMS          SMSConfig
	Verification VerificationConfig
	Notify       NotifyConfig
	NATS         NATSConfig
	Media        MediaConfig
	Log          LogConfig
}

type HTTPConfig struct {
	Port            int
	AllowedOrigins  []string
	BodyLimit       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite".
	Driver      string
	DSN         string
	AutoMigrate bool
}

type RedisConfig struct {
	// Backend selects the OTP store: "redis" or "memory".
	Backend  string
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

type OTPConfig struct {
	TTL             time.Duration
	Length          int
	RateLimitWindow time.Duration
	RateLimitBurst  int
}

type CRMConfig struct {
	ContactURL  string
	DealURL     string
	ProxyURL    string
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

type SMSConfig struct {
	APIURL   string
	Login    string
	Password string
	SenderID string
	Timeout  time.Duration
}

type VerificationConfig struct {
	Required bool
	Secret   string
	TTL      time.Duration
}

type NotifyConfig struct {
	SendGridAPIKey string
	SendGridHost   string
	FromEmail      string
	FromName       string
	ToEmail        string
}

type NATSConfig struct {
	URL           string
	SubjectPrefix string
}

type MediaConfig struct {
	Root string
	URL  string
}

type LogConfig struct {
	Level  string
	Format string
}

// writeTimeoutMargin is the time left for everything but the CRM sync in one registration request.
const writeTimeoutMargin = 30 * time.Second

func Load() (*Config, error) {
	env := &envReader{}

	crm := CRMConfig{
		ContactURL:  env.String("CONTACT_API_URL", ""),
		DealURL:     env.String("DEAL_API_URL", ""),
		ProxyURL:    env.String("CRM_PROXY_URL", ""),
		Timeout:     env.Duration("CRM_TIMEOUT", 30*time.Second),
		MaxAttempts: env.Int("CRM_MAX_ATTEMPTS", 3),
		RetryDelay:  env.Duration("CRM_RETRY_DELAY", 2*time.Second),
	}

	cfg := &Config{
		Env: strings.ToLower(env.String("APP_ENV", EnvDevelopment)),
		HTTP: HTTPConfig{
			Port:            env.Int("PORT", 8000),
			AllowedOrigins:  env.Slice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			BodyLimit:       env.String("HTTP_BODY_LIMIT", "10M"),
			ReadTimeout:     env.Duration("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    env.Duration("HTTP_WRITE_TIMEOUT", crm.SyncBudget()+writeTimeoutMargin),
			ShutdownTimeout: env.Duration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(env.String("DB_DRIVER", "postgres")),
			DSN:         env.String("DATABASE_URL", ""),
			AutoMigrate: env.Bool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Backend:  strings.ToLower(env.String("CACHE_BACKEND", "redis")),
			URL:      env.String("REDIS_URL", ""),
			Host:     env.String("REDIS_HOST", "localhost"),
			Port:     env.String("REDIS_PORT", "6379"),
			Password: env.String("REDIS_PASSWORD", ""),
			DB:       env.Int("REDIS_DB", 0),
		},
		OTP: OTPConfig{
			TTL:             env.Duration("OTP_TTL", 4*time.Minute),
			Length:          env.Int("OTP_LENGTH", 6),
			RateLimitWindow: env.Duration("OTP_RATE_LIMIT_WINDOW", time.Minute),
			RateLimitBurst:  env.Int("OTP_RATE_LIMIT_BURST", 3),
		},
		CRM: crm,
		SMS: SMSConfig{
			APIURL:   env.String("SMS_API_URL", ""),
			Login:    env.String("SMS_LOGIN", ""),
			Password: env.String("SMS_PASSWORD", ""),
			SenderID: env.String("SMS_SENDER_ID", ""),
			Timeout:  env.Duration("SMS_TIMEOUT", 10*time.Second),
		},
		Verification: VerificationConfig{
			Required: env.Bool("REQUIRE_PHONE_VERIFICATION", false),
			Secret:   env.String("VERIFICATION_TOKEN_SECRET", ""),
			TTL:      env.Duration("VERIFICATION_TOKEN_TTL", 30*time.Minute),
		},
		Notify: NotifyConfig{
			SendGridAPIKey: env.String("SENDGRID_API_KEY", ""),
			SendGridHost:   env.String("SENDGRID_HOST", "https://api.sendgrid.com"),
			FromEmail:      env.String("NOTIFY_EMAIL_FROM", ""),
			FromName:       env.String("NOTIFY_EMAIL_FROM_NAME", "Registrations"),
			ToEmail:        env.String("NOTIFY_EMAIL_TO", ""),
		},
		NATS: NATSConfig{
			URL:           env.String("NATS_URL", ""),
			SubjectPrefix: env.String("NATS_SUBJECT_PREFIX", "leads"),
		},
		Media: MediaConfig{
			Root: env.String("MEDIA_ROOT", "media"),
			URL:  env.String("MEDIA_URL", "/media/"),
		},
		Log: LogConfig{
			Level:  env.String("LOG_LEVEL", "info"),
			Format: strings.ToLower(env.String("LOG_FORMAT", "text")),
		},
	}

	if err := env.Err(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SyncBudget is the longest a registration can spend in the CRM: the contact
// and the deal call each using every attempt, plus the proxy bypass attempt
// when a proxy is configured.
func (c CRMConfig) SyncBudget() time.Duration {
	attempts := c.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	requests := attempts
	if c.ProxyURL != "" {
		requests++
	}
	perCall := time.Duration(requests)*c.Timeout + time.Duration(attempts-1)*c.RetryDelay
	return 2 * perCall
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.HTTP.Port)
	}
	switch c.Database.Driver {
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	case "sqlite":
		if c.Database.DSN == "" {
			c.Database.DSN = "leads.db"
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Redis.Backend {
	case "redis", "memory":
	default:
		return fmt.Errorf("unsupported CACHE_BACKEND %q", c.Redis.Backend)
	}
	if c.OTP.Length <= 0 {
		return fmt.Errorf("OTP_LENGTH must be positive")
	}
	if c.CRM.MaxAttempts < 1 {
		return fmt.Errorf("CRM_MAX_ATTEMPTS must be at least 1")
	}
	if budget := c.CRM.SyncBudget(); c.HTTP.WriteTimeout > 0 && c.HTTP.WriteTimeout <= budget {
		return fmt.Errorf("HTTP_WRITE_TIMEOUT %s must exceed the CRM sync budget %s", c.HTTP.WriteTimeout, budget)
	}
	if c.IsProduction() {
		if c.SMS.APIURL == "" {
			return fmt.Errorf("SMS_API_URL is required in production")
		}
		if c.Verification.Required && c.Verification.Secret == "" {
			return fmt.Errorf("VERIFICATION_TOKEN_SECRET is required when REQUIRE_PHONE_VERIFICATION is set")
		}
	}
	return nil
}
