package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	SIMRSDB   SIMRSDBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	WhatsApp  WhatsAppConfig
	RateLimit RateLimitConfig
	Minio     MinioConfig
	Admin     AdminConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// SIMRSDBConfig points at the external hospital information system database
// (MySQL). Access is limited to patient registration and reference lookups.
type SIMRSDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// WhatsAppConfig configures the outbound WhatsApp gateway. AdminPhone is
// optional; when empty no admin alerts are sent.
type WhatsAppConfig struct {
	APIURL     string
	Token      string
	AdminPhone string
	ClinicName string
}

type RateLimitConfig struct {
	MaxRequests   int
	Window        time.Duration
	SweepInterval time.Duration
}

type MinioConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	BaseURL       string
	MaxUploadSize int64
}

// AdminConfig seeds the initial admin account when the users table is empty.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	viper.SetDefault("RATE_LIMIT_MAX", 5)
	viper.SetDefault("RATE_LIMIT_WINDOW", "60s")
	viper.SetDefault("RATE_LIMIT_SWEEP_INTERVAL", "5m")
	viper.SetDefault("MINIO_BUCKET", "klinik-uploads")
	viper.SetDefault("MAX_UPLOAD_SIZE", 5<<20)
	viper.SetDefault("CLINIC_NAME", "Klinik")

	rateLimitWindow, err := time.ParseDuration(viper.GetString("RATE_LIMIT_WINDOW"))
	if err != nil {
		rateLimitWindow = time.Minute
	}

	sweepInterval, err := time.ParseDuration(viper.GetString("RATE_LIMIT_SWEEP_INTERVAL"))
	if err != nil {
		sweepInterval = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		SIMRSDB: SIMRSDBConfig{
			Host:     viper.GetString("SIMRS_DB_HOST"),
			Port:     viper.GetString("SIMRS_DB_PORT"),
			User:     viper.GetString("SIMRS_DB_USER"),
			Password: viper.GetString("SIMRS_DB_PASSWORD"),
			Name:     viper.GetString("SIMRS_DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		WhatsApp: WhatsAppConfig{
			APIURL:     viper.GetString("WA_API_URL"),
			Token:      viper.GetString("WA_API_TOKEN"),
			AdminPhone: viper.GetString("WA_ADMIN_PHONE"),
			ClinicName: viper.GetString("CLINIC_NAME"),
		},
		RateLimit: RateLimitConfig{
			MaxRequests:   viper.GetInt("RATE_LIMIT_MAX"),
			Window:        rateLimitWindow,
			SweepInterval: sweepInterval,
		},
		Minio: MinioConfig{
			Endpoint:      viper.GetString("MINIO_ENDPOINT"),
			AccessKey:     viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey:     viper.GetString("MINIO_SECRET_KEY"),
			Bucket:        viper.GetString("MINIO_BUCKET"),
			UseSSL:        viper.GetBool("MINIO_USE_SSL"),
			BaseURL:       viper.GetString("MINIO_BASE_URL"),
			MaxUploadSize: viper.GetInt64("MAX_UPLOAD_SIZE"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Name:     viper.GetString("ADMIN_NAME"),
		},
	}

	return config, nil
}
