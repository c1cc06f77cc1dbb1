package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process configuration, loaded once at startup and
// passed into the components that need it.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey signs session tokens; HashSalt keys the password hash.
	// Both are long-lived secrets and missing either is fatal at startup.
	SecretKey string `env:"SECRET_KEY, required"`
	HashSalt  string `env:"HASH_SALT,  required"`

	CookieName   string `env:"COOKIE_NAME, default=candles_session"`
	CookieDomain string `env:"COOKIE_DOMAIN"`
	// CookieSecure marks session cookies Secure. Off by default so local
	// plain-HTTP development works; set it behind TLS.
	CookieSecure bool `env:"COOKIE_SECURE, default=false"`

	// SocketConnectionToken is handed to privileged callers so they can join
	// the privileged namespace of the realtime socket server.
	SocketConnectionToken string `env:"SOCKET_CONNECTION_TOKEN"`

	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=candles"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
