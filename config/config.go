package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// Database configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Listing pagination.
	PageSize int `mapstructure:"PAGE_SIZE"`

	// Messaging provider configuration. Provider is either "telegram"
	// or "whatsapp"; recipients is a comma-separated list of chat IDs
	// or phone numbers.
	MessagingProvider     string `mapstructure:"MESSAGING_PROVIDER"`
	NotifyRecipients      string `mapstructure:"NOTIFY_RECIPIENTS"`
	TelegramBotToken      string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramAPIBase       string `mapstructure:"TELEGRAM_API_BASE"`
	WhatsAppAccessToken   string `mapstructure:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppPhoneNumberID string `mapstructure:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppAPIBase       string `mapstructure:"WHATSAPP_API_BASE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "legalform")
	viper.SetDefault("PAGE_SIZE", 20)
	viper.SetDefault("MESSAGING_PROVIDER", "telegram")
	viper.SetDefault("NOTIFY_RECIPIENTS", "")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_API_BASE", "https://api.telegram.org")
	viper.SetDefault("WHATSAPP_ACCESS_TOKEN", "")
	viper.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "")
	viper.SetDefault("WHATSAPP_API_BASE", "https://graph.facebook.com/v18.0")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
