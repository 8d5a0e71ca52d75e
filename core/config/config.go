package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port     int
	Host     string
	BaseURL  string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type StorageConfig struct {
	Driver       string // "s3" or "local"
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	FolderPrefix string
	LocalDir     string
}

type GoogleAPIConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Mail      MailConfig
	Storage   StorageConfig
	GoogleAPI GoogleAPIConfig
}

var (
	instance *Config
	mu       sync.RWMutex
)

func Load() (*Config, error) {
	// .env is optional; real deployments use process env
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 7070)
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_BASE_URL", "http://localhost:7070")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "guestdesk")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("STORAGE_LOCAL_DIR", "uploads")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("MAIL_PORT", 587)

	cfg := &Config{
		Server: ServerConfig{
			Port:     viper.GetInt("SERVER_PORT"),
			Host:     viper.GetString("SERVER_HOST"),
			BaseURL:  viper.GetString("SERVER_BASE_URL"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Mail: MailConfig{
			Host:     viper.GetString("MAIL_HOST"),
			Port:     viper.GetInt("MAIL_PORT"),
			User:     viper.GetString("MAIL_USER"),
			Password: viper.GetString("MAIL_PASS"),
			From:     viper.GetString("MAIL_FROM"),
		},
		Storage: StorageConfig{
			Driver:       viper.GetString("STORAGE_DRIVER"),
			Bucket:       viper.GetString("AWS_BUCKET_NAME"),
			Region:       viper.GetString("AWS_REGION"),
			AccessKey:    viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey:    viper.GetString("AWS_SECRET_ACCESS_KEY"),
			FolderPrefix: viper.GetString("AWS_FOLDER_PREFIX"),
			LocalDir:     viper.GetString("STORAGE_LOCAL_DIR"),
		},
		GoogleAPI: GoogleAPIConfig{
			ClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURI:  viper.GetString("GOOGLE_REDIRECT_URI"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return instance
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return nil, false
	}
	return instance, true
}
