package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	Port     string
	Timezone string
	LogLevel string
	LogDir   string

	CORSOrigins []string

	Database   DatabaseConfig
	Auth       AuthConfig
	SuperAdmin SuperAdminConfig
	Redis      RedisConfig
	Storage    StorageConfig
}

type DatabaseConfig struct {
	Driver   string
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	LogLevel string
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	GoogleClientID string
}

type SuperAdminConfig struct {
	Name     string
	Email    string
	Password string
}

type RedisConfig struct {
	Addr     string
	User     string
	Password string
	DB       int
}

type StorageConfig struct {
	Provider      string
	UploadDir     string
	MaxResumeSize int64

	S3Endpoint string
	S3Region   string
	S3Bucket   string
	S3KeyID    string
	S3Secret   string

	CloudinaryURL string
}

// LoadEnv loads .env into the process environment if present
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, using process environment: %v", err)
	}
}

// Load reads the configuration once at start-up.
func Load() *Config {
	LoadEnv()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "5000")
	v.SetDefault("APP_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("SUPERADMIN_NAME", "Super Admin")
	v.SetDefault("STORAGE_PROVIDER", "local")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_RESUME_BYTES", 5<<20)
	v.SetDefault("S3_REGION", "us-east-1")

	return &Config{
		Env:         v.GetString("ENV"),
		Port:        v.GetString("PORT"),
		Timezone:    v.GetString("APP_TIMEZONE"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogDir:      v.GetString("LOG_DIR"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			LogLevel: v.GetString("DB_LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret:      v.GetString("JWT_SECRET"),
			TokenTTL:       time.Duration(v.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
			GoogleClientID: v.GetString("GOOGLE_CLIENT_ID"),
		},
		SuperAdmin: SuperAdminConfig{
			Name:     v.GetString("SUPERADMIN_NAME"),
			Email:    strings.ToLower(strings.TrimSpace(v.GetString("SUPERADMIN_EMAIL"))),
			Password: v.GetString("SUPERADMIN_PASSWORD"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			User:     v.GetString("REDIS_USER"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Storage: StorageConfig{
			Provider:      strings.ToLower(v.GetString("STORAGE_PROVIDER")),
			UploadDir:     v.GetString("UPLOAD_DIR"),
			MaxResumeSize: v.GetInt64("MAX_RESUME_BYTES"),
			S3Endpoint:    v.GetString("S3_ENDPOINT"),
			S3Region:      v.GetString("S3_REGION"),
			S3Bucket:      v.GetString("S3_BUCKET"),
			S3KeyID:       v.GetString("S3_KEY_ID"),
			S3Secret:      v.GetString("S3_SECRET"),
			CloudinaryURL: v.GetString("CLOUDINARY_URL"),
		},
	}
}

// Location resolves the configured timezone, falling back to the local zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using local time: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
