package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	Payments  *PaymentsConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // OllaCart
	Environment    string        // development, production
	Port           string        // :8084
	FrontendURL    string        // where onboarding links send retailers back to
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	ProductTTL      time.Duration
}

type AuthConfig struct {
	// Secret shared with the external identity provider; this service only
	// verifies tokens, it never issues them.
	AccessTokenSecret string
}

type EmailConfig struct {
	ApiKey string
	From   string
}

type PaymentsConfig struct {
	// Default commission fraction applied when a retailer is created.
	DefaultCommissionRate float64
	// Base URL the simulated connect provider issues onboarding links on.
	ConnectBaseURL string
}

type RateLimitConfig struct {
	Enabled         bool
	GeneralLimit    int
	GeneralWindow   time.Duration
	ExpensiveLimit  int
	ExpensiveWindow time.Duration
	WebhookLimit    int
	WebhookWindow   time.Duration
}
