package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/http/router"
	"blogapi/internal/security"
	"blogapi/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool
	revoke     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Blog API server",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API and the built frontend",
	RunE:  runServe,
}

var promoteCmd = &cobra.Command{
	Use:   "promote [username]",
	Short: "Grant (or with --revoke, remove) admin rights",
	Args:  cobra.ExactArgs(1),
	RunE:  runPromote,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/app.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	promoteCmd.Flags().BoolVar(&revoke, "revoke", false, "remove admin rights instead of granting them")

	rootCmd.AddCommand(serveCmd, promoteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("Failed to load config, using defaults", zap.String("path", configPath), zap.Error(err))
		cfg = config.Default()
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openDB(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database, err := db.Init(initCtx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return database, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	sessionStore := security.NewSessionStore(cfg.Secret, cfg.SecureCookies)
	r := router.Setup(database, sessionStore, logger, router.Options{StaticDir: cfg.StaticDir})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("db_driver", cfg.DBDriver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runPromote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := openDB(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	user, err := service.NewUsers(database).Promote(cmd.Context(), args[0], !revoke)
	if err != nil {
		return err
	}

	logger.Info("Updated admin flag", zap.String("username", user.Username), zap.Bool("is_admin", user.IsAdmin))
	return nil
}
