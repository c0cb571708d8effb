package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"student-productivity/internal/checklist"
	"student-productivity/internal/deadline"
	"student-productivity/internal/middleware"
	resumeUC "student-productivity/internal/resume/usecase"
	"student-productivity/pkg/gcalendar"
	"student-productivity/pkg/log"
	"student-productivity/pkg/reporter"
	"student-productivity/pkg/scope"
	"student-productivity/pkg/validation"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	db         *sqlx.DB
	validator  *validation.Validator
	jwtManager scope.Manager
	reporter   reporter.Reporter
	rateLimit  middleware.Config

	// Domain dependencies
	engine     *deadline.Engine
	checklist  checklist.Service
	generator  resumeUC.Generator
	calendar   gcalendar.Calendar
	calendarID string
	hashCost   int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	DB         *sqlx.DB
	Validator  *validation.Validator
	JWTManager scope.Manager
	Reporter   reporter.Reporter
	RateLimit  middleware.Config

	Engine *deadline.Engine
	// Generator is optional; without it resume advice is keyword based.
	Generator resumeUC.Generator
	// Calendar is optional; without it calendar sync answers 503.
	Calendar   gcalendar.Calendar
	CalendarID string
	// HashCost is the bcrypt cost for new passwords; zero uses the default.
	HashCost int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		validator:       cfg.Validator,
		jwtManager:      cfg.JWTManager,
		reporter:        cfg.Reporter,
		rateLimit:       cfg.RateLimit,
		engine:          cfg.Engine,
		checklist:       checklist.New(),
		generator:       cfg.Generator,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		hashCost:        cfg.HashCost,
	}
	if srv.reporter == nil {
		srv.reporter = reporter.Nop()
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.validator == nil {
		return errors.New("validator is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.engine == nil {
		return errors.New("deadline engine is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
