package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Payment   PaymentConfig
	Dashboard DashboardConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type PaymentConfig struct {
	APIBase        string
	APIKey         string
	WebhookSecret  string
	SuccessURL     string
	CancelURL      string
	RequestTimeout time.Duration
}

type DashboardConfig struct {
	NotificationLimit int
	ClearanceWindow   time.Duration
	ChartOrderLimit   int
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "themesjet")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "themesjet")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PAYMENT_API_BASE", "https://pay.example.com")
	viper.SetDefault("PAYMENT_API_KEY", "")
	viper.SetDefault("PAYMENT_WEBHOOK_SECRET", "")
	viper.SetDefault("PAYMENT_SUCCESS_URL", "http://localhost:8080/checkout/success")
	viper.SetDefault("PAYMENT_CANCEL_URL", "http://localhost:8080/cart")
	viper.SetDefault("PAYMENT_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("DASHBOARD_NOTIFICATION_LIMIT", 5)
	viper.SetDefault("DASHBOARD_CLEARANCE_WINDOW", "72h")
	viper.SetDefault("DASHBOARD_CHART_ORDER_LIMIT", 100)

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	requestTimeout, err := time.ParseDuration(viper.GetString("PAYMENT_REQUEST_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	clearanceWindow, err := time.ParseDuration(viper.GetString("DASHBOARD_CLEARANCE_WINDOW"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Payment: PaymentConfig{
			APIBase:        viper.GetString("PAYMENT_API_BASE"),
			APIKey:         viper.GetString("PAYMENT_API_KEY"),
			WebhookSecret:  viper.GetString("PAYMENT_WEBHOOK_SECRET"),
			SuccessURL:     viper.GetString("PAYMENT_SUCCESS_URL"),
			CancelURL:      viper.GetString("PAYMENT_CANCEL_URL"),
			RequestTimeout: requestTimeout,
		},
		Dashboard: DashboardConfig{
			NotificationLimit: viper.GetInt("DASHBOARD_NOTIFICATION_LIMIT"),
			ClearanceWindow:   clearanceWindow,
			ChartOrderLimit:   viper.GetInt("DASHBOARD_CHART_ORDER_LIMIT"),
		},
	}

	return cfg, nil
}
