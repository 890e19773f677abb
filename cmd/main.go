package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/remindcal/internal/cli"
	"github.com/example/remindcal/internal/config"
	"github.com/example/remindcal/internal/db"
	"github.com/example/remindcal/internal/notify"
	"github.com/example/remindcal/internal/service"
	"github.com/example/remindcal/internal/store"
)

func main() {
	// 1. Конфиг из env/.env.
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Логгер.
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// 3. Подключение к хранилищу через GORM.
	gormDB, err := db.NewGormDB(cfg)
	if err != nil {
		logger.Fatal("init db", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("sql DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// 4. Шлюз хранилища: миграции + первый снимок. До завершения
	// Initialize любые операции отклоняются как not-ready.
	st := store.New(gormDB, logger)
	ctx := context.Background()
	if err := st.Initialize(ctx); err != nil {
		logger.Fatal("initialize store", zap.Error(err))
	}

	// 5. Сервисы.
	notifier := notify.NewTimerNotifier(logger)
	identity := service.NewIdentityService(st, logger)
	planner := service.NewPlannerService(st, notifier, logger)

	if err := identity.EnsureDefaultUser(ctx); err != nil {
		logger.Fatal("ensure default user", zap.Error(err))
	}

	// 6. Терминальный фронтенд.
	app := &cli.App{
		Planner:  planner,
		Identity: identity,
		Store:    st,
		Notifier: notifier,
		Log:      logger,
	}

	rootCmd := &cobra.Command{
		Use:           "remindcal",
		Short:         "Personal calendar with one-shot reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(cli.AddCmd(app))
	rootCmd.AddCommand(cli.ListCmd(app))
	rootCmd.AddCommand(cli.AgendaCmd(app))
	rootCmd.AddCommand(cli.DeleteCmd(app))
	rootCmd.AddCommand(cli.AlarmsCmd(app))
	rootCmd.AddCommand(cli.WatchCmd(app))
	rootCmd.AddCommand(cli.SignupCmd(app))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	// Консольный вывод читабельнее для интерактивной утилиты.
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapCfg.Build()
}
