package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	JWT      JWTConfig
	Hash     HashConfig
	Log      LogConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Env         string
	CorsOrigins string // comma-separated
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool // รัน migration ตอน start server
}

// RedisConfig สำหรับ session storage (URL ว่าง = ใช้ memory)
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName string
	Expiration time.Duration
	Secure     bool // true ใน production (HTTPS)
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type HashConfig struct {
	BcryptCost int
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

func LoadConfig() (*Config, error) {
	// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	bcryptCost, _ := strconv.Atoi(getEnv("BCRYPT_COST", "10"))

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Taskboard"),
			Port:        getEnv("APP_PORT", "8080"),
			Env:         getEnv("APP_ENV", "development"),
			CorsOrigins: getEnv("CORS_ORIGINS", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			DBName:      getEnv("DB_NAME", "taskboard"),
			SSLMode:     getEnv("DB_SSL_MODE", "disable"),
			AutoMigrate: getEnv("DB_AUTO_MIGRATE", "true") == "true",
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "taskboard_session"),
			Expiration: getDuration("SESSION_EXPIRATION", 24*time.Hour),
			Secure:     getEnv("SESSION_SECURE", "") == "true",
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
			Expiry: getDuration("JWT_EXPIRY", 7*24*time.Hour),
		},
		Hash: HashConfig{
			BcryptCost: bcryptCost,
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
	}

	// ไม่ได้ตั้ง SESSION_SECURE: production ใช้ secure cookie (HTTPS)
	if os.Getenv("SESSION_SECURE") == "" {
		config.Session.Secure = config.IsProduction()
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration อ่านค่าแบบ time.ParseDuration เช่น "24h", "30m"
func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// CorsOriginList แปลง comma-separated origins เป็น slice
func (c *AppConfig) CorsOriginList() []string {
	var origins []string
	for _, p := range strings.Split(c.CorsOrigins, ",") {
		o := strings.TrimSpace(p)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
