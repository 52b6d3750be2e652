package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// InitConfig loads configuration from the given env file (if present) and
// the process environment. All values are read once at startup.
func InitConfig(configPath string) *models.Config {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("config file not loaded, relying on environment:", err)
	}

	setDefaults()
	return loadConfig()
}

func setDefaults() {
	viper.SetDefault("APP_NAME", "wayfare")
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("SERVER_PORT", 9990)
	viper.SetDefault("SERVER_READ_TIMEOUT", 15)
	viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 20)
	viper.SetDefault("DB_IDLE_CONNS", 5)
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("REDIS_POOL_SIZE", 10)
	viper.SetDefault("NSQ_WEBHOOK_TOPIC", "payment.webhook")
	viper.SetDefault("NSQ_WEBHOOK_CHANNEL", "reconcile")
	viper.SetDefault("NSQ_NOTIFY_TOPIC", "payment.notifications")
	viper.SetDefault("NSQ_NOTIFY_CHANNEL", "email")
	viper.SetDefault("GATEWAY_TIMEOUT_SECONDS", 10)
	viper.SetDefault("GATEWAY_LOCK_TTL_SECONDS", 30)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("NOTIFY_MAX_RETRIES", 5)
	viper.SetDefault("NOTIFY_BASE_DELAY_MS", 200)
	viper.SetDefault("NOTIFY_MAX_DELAY_SEC", 30)
	viper.SetDefault("NOTIFY_MULTIPLIER", 2.0)
	viper.SetDefault("LOG_LEVEL", "info")
}

func loadConfig() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = viper.GetString("APP_NAME")
	configs.App.Environment = viper.GetString("APP_ENV")
	configs.App.Debug = viper.GetBool("APP_DEBUG")
	configs.App.Version = viper.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = viper.GetString("SERVER_HOST")
	configs.Server.Port = viper.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = viper.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = viper.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = viper.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Host = viper.GetString("DB_HOST")
	configs.Database.Port = viper.GetInt("DB_PORT")
	configs.Database.Username = viper.GetString("DB_USERNAME")
	configs.Database.Password = viper.GetString("DB_PASSWORD")
	configs.Database.Database = viper.GetString("DB_DATABASE")
	configs.Database.SSLMode = viper.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = viper.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = viper.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = viper.GetString("REDIS_HOST")
	configs.Redis.Port = viper.GetInt("REDIS_PORT")
	configs.Redis.Password = viper.GetString("REDIS_PASSWORD")
	configs.Redis.DB = viper.GetInt("REDIS_DB")
	configs.Redis.PoolSize = viper.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = viper.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupdAddress = viper.GetString("NSQ_LOOKUPD_ADDRESS")
	configs.NSQ.WebhookTopic = viper.GetString("NSQ_WEBHOOK_TOPIC")
	configs.NSQ.WebhookChannel = viper.GetString("NSQ_WEBHOOK_CHANNEL")
	configs.NSQ.NotifyTopic = viper.GetString("NSQ_NOTIFY_TOPIC")
	configs.NSQ.NotifyChannel = viper.GetString("NSQ_NOTIFY_CHANNEL")

	// Payment gateway config
	configs.Gateway.BaseURL = viper.GetString("GATEWAY_BASE_URL")
	configs.Gateway.SecretKey = viper.GetString("GATEWAY_SECRET_KEY")
	configs.Gateway.WebhookSecret = viper.GetString("GATEWAY_WEBHOOK_SECRET")
	configs.Gateway.CallbackURL = viper.GetString("GATEWAY_CALLBACK_URL")
	configs.Gateway.ReturnURL = viper.GetString("GATEWAY_RETURN_URL")
	configs.Gateway.TimeoutSeconds = viper.GetInt("GATEWAY_TIMEOUT_SECONDS")
	configs.Gateway.LockTTLSeconds = viper.GetInt("GATEWAY_LOCK_TTL_SECONDS")

	// SMTP config
	configs.SMTP.Host = viper.GetString("SMTP_HOST")
	configs.SMTP.Port = viper.GetInt("SMTP_PORT")
	configs.SMTP.Username = viper.GetString("SMTP_USERNAME")
	configs.SMTP.Password = viper.GetString("SMTP_PASSWORD")
	configs.SMTP.From = viper.GetString("SMTP_FROM")

	// Notification retry config
	configs.Notification.MaxRetries = viper.GetInt("NOTIFY_MAX_RETRIES")
	configs.Notification.BaseDelayMs = viper.GetInt("NOTIFY_BASE_DELAY_MS")
	configs.Notification.MaxDelaySec = viper.GetInt("NOTIFY_MAX_DELAY_SEC")
	configs.Notification.Multiplier = viper.GetFloat64("NOTIFY_MULTIPLIER")

	// Logger config
	configs.Logger.Level = viper.GetString("LOG_LEVEL")
	configs.Logger.FilePath = viper.GetString("LOG_FILE_PATH")

	return configs
}
