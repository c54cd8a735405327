// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App struct {
		// 目標カロリーの加減算量 (kcal)。lose-fat で減算、gain-muscle で加算
		CalorieAdjustment int `mapstructure:"calorie_adjustment"`
		// 同期先書き込みのリトライ回数と初回待ち時間
		SyncRetryAttempts int `mapstructure:"sync_retry_attempts"`
		SyncRetryBaseMs   int `mapstructure:"sync_retry_base_ms"`
		// カタログのインメモリキャッシュTTL (秒)
		CatalogCacheTTLSeconds int `mapstructure:"catalog_cache_ttl_seconds"`
	} `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Mailer struct {
		Provider string `mapstructure:"provider"` // "log", "smtp", "ses"
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.App.CalorieAdjustment <= 0 {
		Cfg.App.CalorieAdjustment = DefaultCalorieAdjustment
	}
	if Cfg.App.SyncRetryAttempts <= 0 {
		Cfg.App.SyncRetryAttempts = DefaultSyncRetryAttempts
	}
	if Cfg.App.SyncRetryBaseMs <= 0 {
		Cfg.App.SyncRetryBaseMs = DefaultSyncRetryBaseMs
	}
	if Cfg.App.CatalogCacheTTLSeconds <= 0 {
		Cfg.App.CatalogCacheTTLSeconds = DefaultCatalogCacheTTLSeconds
	}
	if Cfg.Mailer.Provider == "" {
		Cfg.Mailer.Provider = "log"
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// Auth.Enabled のデフォルト値を設定 (未設定なら true = 有効 にする)
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Calorie Adjustment: %d", Cfg.App.CalorieAdjustment)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}
