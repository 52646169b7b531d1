package di

import (
	"gorm.io/gorm"

	"taskboard/infrastructure/postgres"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
)

// InitLogger ตั้งค่า logger จาก config (ใช้ทั้ง server และ migrate CLI)
func InitLogger(cfg *config.Config) error {
	return logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
}

// OpenDatabase connects with the app's database settings
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	return postgres.NewDatabase(DatabaseConfig(cfg))
}

func DatabaseConfig(cfg *config.Config) postgres.DatabaseConfig {
	return postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		LogLevel: cfg.Log.Level,
	}
}
