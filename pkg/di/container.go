package di

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"taskboard/application/serviceimpl"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/infrastructure/crypto"
	"taskboard/infrastructure/postgres"
	redispkg "taskboard/infrastructure/redis"
	sessionpkg "taskboard/infrastructure/session"
	"taskboard/interfaces/api/handlers"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional, sessions fall back to memory
	SessionStorage fiber.Storage    // nil = fiber memory storage
	SessionStore   *session.Store
	Hasher         ports.PasswordHasher
	SessionAuth    ports.SessionAuthPort

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService services.UserService
	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initSessions()

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	if err := InitLogger(c.Config); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
		"file", c.Config.Log.FilePath,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := OpenDatabase(c.Config)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if c.Config.Database.AutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		logger.Info("Database migrated")
	}

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (sessions kept in memory)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.SessionStorage = redispkg.NewSessionStorage(redisClient)
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	} else {
		logger.Info("REDIS_URL not set, sessions kept in memory")
	}

	c.Hasher = crypto.NewBcryptHasher(c.Config.Hash.BcryptCost)
	return nil
}

func (c *Container) initSessions() {
	c.SessionStore = sessionpkg.NewStore(sessionpkg.StoreConfig{
		CookieName: c.Config.Session.CookieName,
		Expiration: c.Config.Session.Expiration,
		Secure:     c.Config.Session.Secure,
	}, c.SessionStorage)
	c.SessionAuth = sessionpkg.NewAuth(c.SessionStore, c.Hasher)
	logger.Info("Session store initialized",
		"cookie", c.Config.Session.CookieName,
		"expiration", c.Config.Session.Expiration.String(),
	)
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Hasher, c.Config.JWT.Secret, c.Config.JWT.Expiry)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := postgres.Close(c.DB); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		} else {
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return logger.Close()
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService: c.UserService,
		TaskService: c.TaskService,
		SessionAuth: c.SessionAuth,
	}
}
