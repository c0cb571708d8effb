package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"student-productivity/config"
	"student-productivity/internal/checklist"
	courseSQLite "student-productivity/internal/course/repository/sqlite"
	"student-productivity/internal/deadline"
	reminderCron "student-productivity/internal/reminder/delivery/cron"
	reminderUC "student-productivity/internal/reminder/usecase"
	userSQLite "student-productivity/internal/user/repository/sqlite"
	"student-productivity/pkg/datemath"
	"student-productivity/pkg/log"
	"student-productivity/pkg/mailer"
	"student-productivity/pkg/sqlite"
)

// main is the entry point for the reminder service.
// It emails each user a digest of overdue and soon-due work on a cron
// schedule, or once with -once.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases
//  3. Create the scheduler
//  4. Run & graceful shutdown
func main() {
	once := flag.Bool("once", false, "send one round of digests and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting reminder service...")

	// Infrastructure
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

	parser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}

	// Mail falls back to the log when SendGrid is not configured
	var m mailer.Mailer
	if cfg.Mail.SendGridAPIKey != "" {
		m = mailer.NewSendGrid(mailer.SendGridConfig{
			APIKey:    cfg.Mail.SendGridAPIKey,
			FromName:  cfg.Mail.FromName,
			FromEmail: cfg.Mail.FromEmail,
			Host:      cfg.Mail.SendGridHost,
		}, logger)
	} else {
		logger.Warn(ctx, "SendGrid not configured (optional): digests are logged, not sent")
		m = mailer.NewLogMailer(logger)
	}

	// UseCases
	uc := reminderUC.New(
		userSQLite.New(db, logger),
		courseSQLite.New(db, logger),
		deadline.New(parser),
		checklist.New(),
		m,
		logger,
	)

	scheduler, err := reminderCron.New(uc, reminderCron.Config{
		Spec:       cfg.Reminder.Spec,
		RunTimeout: cfg.Reminder.RunTimeout,
		Location:   parser.Location(),
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create scheduler: ", err)
		return
	}

	if *once {
		out, err := scheduler.RunNow(ctx)
		if err != nil {
			logger.Error(ctx, "Reminder run failed: ", err)
			return
		}
		logger.Infof(ctx, "Reminder run done: users=%d sent=%d empty=%d failed=%d", out.Users, out.Sent, out.Empty, out.Failed)
		return
	}

	scheduler.Start(ctx)
	logger.Info(ctx, "Reminder service running. Waiting for shutdown signal...")
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := scheduler.Stop(stopCtx); err != nil {
		logger.Warnf(stopCtx, "Reminder job still running at shutdown: %v", err)
	}
	logger.Info(stopCtx, "Reminder service stopped gracefully")
}
