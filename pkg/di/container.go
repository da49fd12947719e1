package di

import (
	"gorm.io/gorm"

	"sprintdeck/application/serviceimpl"
	"sprintdeck/domain/ports"
	"sprintdeck/domain/repositories"
	"sprintdeck/domain/services"
	"sprintdeck/infrastructure/postgres"
	redispkg "sprintdeck/infrastructure/redis"
	"sprintdeck/interfaces/api/handlers"
	"sprintdeck/pkg/config"
	"sprintdeck/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client
	Cache       ports.Cache

	// Repositories
	UserRepository      repositories.UserRepository
	TaskRepository      repositories.TaskRepository
	NoteRepository      repositories.NoteRepository
	TimeEntryRepository repositories.TimeEntryRepository
	SprintRepository    repositories.SprintRepository

	// Services
	UserService   services.UserService
	TaskService   services.TaskService
	SprintService services.SprintService
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

	c.initRepositories()
	c.initServices()

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
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional: when it is down the users list just skips the cache
	redisClient, err := redispkg.NewClient(&c.Config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, users cache disabled", "error", err)
		c.Cache = redispkg.NewNoopCache()
	} else {
		c.RedisClient = redisClient
		c.Cache = redisClient
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.NoteRepository = postgres.NewNoteRepository(c.DB)
	c.TimeEntryRepository = postgres.NewTimeEntryRepository(c.DB)
	c.SprintRepository = postgres.NewSprintRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Cache, c.Config.JWT.Secret)
	c.TaskService = serviceimpl.NewTaskService(
		c.TaskRepository,
		c.NoteRepository,
		c.TimeEntryRepository,
		c.SprintRepository,
	)
	c.SprintService = serviceimpl.NewSprintService(c.SprintRepository)
	logger.Info("Services initialized")
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:   c.UserService,
		TaskService:   c.TaskService,
		SprintService: c.SprintService,
	}
}
