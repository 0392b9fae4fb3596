package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TahaKhan8899/goal-tracker/internal/config"
	"github.com/TahaKhan8899/goal-tracker/internal/db"
	"github.com/TahaKhan8899/goal-tracker/internal/repository"
	"github.com/TahaKhan8899/goal-tracker/internal/service"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	UserService     *service.UserService
	GoalService     *service.GoalService
	EmailService    *service.EmailService
	ReminderService *service.ReminderService
	RewriteService  *service.RewriteService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository)
	goalService := service.NewGoalService(goalRepository, userRepository)
	reminderService := service.NewReminderService(goalService, userService, emailService)
	rewriteService := service.NewRewriteService(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		UserService:     userService,
		GoalService:     goalService,
		EmailService:    emailService,
		ReminderService: reminderService,
		RewriteService:  rewriteService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
