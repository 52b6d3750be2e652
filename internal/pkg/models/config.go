package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NSQ          NSQConfig
	Gateway      GatewayConfig
	SMTP         SMTPConfig
	Notification NotificationConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address        string
	LookupdAddress string
	WebhookTopic   string
	WebhookChannel string
	NotifyTopic    string
	NotifyChannel  string
}

// GatewayConfig contains payment gateway configuration.
// All values are read once at process start; there is no runtime mutation.
type GatewayConfig struct {
	BaseURL        string
	SecretKey      string
	WebhookSecret  string
	CallbackURL    string
	ReturnURL      string
	TimeoutSeconds int
	LockTTLSeconds int
}

// SMTPConfig contains outbound email credentials
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NotificationConfig contains the retry policy for the notification dispatcher
type NotificationConfig struct {
	MaxRetries  int
	BaseDelayMs int
	MaxDelaySec int
	Multiplier  float64
}

// LoggerConfig contains structured logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
