package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL"`

	Mongo   Mongo   `envPrefix:"MONGO_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Auth    Auth    `envPrefix:"AUTH_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Mongo struct {
	URL      string `env:"URL" envDefault:"mongodb://127.0.0.1:27017"`
	Database string `env:"DATABASE" envDefault:"abcretail"`
}

// Storage configures the notification queue collaborator. An empty
// connection string selects the in-memory queue (local development only).
type Storage struct {
	ConnectionString        string `env:"CONNECTION_STRING"`
	OrderNotificationsQueue string `env:"QUEUE_ORDER_NOTIFICATIONS" envDefault:"order-notifications"`
	StockUpdatesQueue       string `env:"QUEUE_STOCK_UPDATES" envDefault:"stock-updates"`
}

type Auth struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"8h"`
}
