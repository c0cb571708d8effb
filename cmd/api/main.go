package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"student-productivity/config"
	_ "student-productivity/docs" // Swagger docs
	courseSQLite "student-productivity/internal/course/repository/sqlite"
	"student-productivity/internal/deadline"
	"student-productivity/internal/httpserver"
	"student-productivity/internal/middleware"
	resumeUC "student-productivity/internal/resume/usecase"
	userSQLite "student-productivity/internal/user/repository/sqlite"
	"student-productivity/pkg/datemath"
	"student-productivity/pkg/gcalendar"
	"student-productivity/pkg/llmprovider"
	"student-productivity/pkg/log"
	"student-productivity/pkg/reporter"
	"student-productivity/pkg/scope"
	"student-productivity/pkg/sqlite"
	"student-productivity/pkg/validation"
)

// @title       Student Productivity API
// @description Courses, deadlines and resume matching for students.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Student Productivity API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Error reporting
	rep := reporter.New(reporter.Config{
		Token:       cfg.Rollbar.Token,
		Environment: cfg.Environment.Name,
		CodeVersion: cfg.Rollbar.CodeVersion,
	})
	defer rep.Close()

	// 4. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db, userSQLite.Schema, courseSQLite.Schema); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 5. Request validation shares gin's binding engine
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Error(ctx, "gin binding engine is not validator/v10")
		return
	}
	v, err := validation.New(engine)
	if err != nil {
		logger.Error(ctx, "Failed to configure validation: ", err)
		return
	}

	// 6. Auth
	jwtManager, err := scope.New(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		logger.Error(ctx, "Failed to configure JWT: ", err)
		return
	}

	// 7. Deadline engine
	parser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}

	// 8. LLM providers (optional)
	var generator resumeUC.Generator
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No LLM provider configured, resume advice is keyword based")
	case err != nil:
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	default:
		managerCfg, cfgErr := llmprovider.ManagerConfigFrom(cfg.LLM)
		if cfgErr != nil {
			logger.Error(ctx, "Invalid LLM config: ", cfgErr)
			return
		}
		generator = llmprovider.NewManager(providers, managerCfg, logger)
		logger.Infof(ctx, "LLM providers initialized: %d", len(providers))
	}

	// 9. Google Calendar (optional)
	var calendarClient gcalendar.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              db,
		Validator:       v,
		JWTManager:      jwtManager,
		Reporter:        rep,
		RateLimit: middleware.Config{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
		},
		Engine:     deadline.New(parser),
		Generator:  generator,
		Calendar:   calendarClient,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
