// Package server wires configuration, storage, services and the HTTP API
// into a runnable application with signal-driven graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/devauth/internal/common"
	"github.com/dmitrijs2005/devauth/internal/filex"
	"github.com/dmitrijs2005/devauth/internal/logging"
	"github.com/dmitrijs2005/devauth/internal/server/auth"
	"github.com/dmitrijs2005/devauth/internal/server/config"
	"github.com/dmitrijs2005/devauth/internal/server/httpapi"
	"github.com/dmitrijs2005/devauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devauth/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	rm, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := openDatabase(c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	secret, err := signingSecret(ctx, c.SecretKey, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	us := services.NewUserService(db, rm,
		auth.NewBcryptHasher(auth.PasswordCost),
		auth.NewTokenManager(secret, c.AccessTokenValidityDuration),
		logger)

	return &App{config: c, logger: logger, db: db, userService: us}, nil
}

const sqliteBusyTimeout = "_pragma=busy_timeout(5000)"

// openDatabase opens the pool for driver. SQLite in-memory databases are
// private to a connection, so their pool is pinned to a single connection
// that is never recycled. File databases wait on locks instead of failing.
func openDatabase(driver, dsn string) (*sql.DB, error) {
	if driver != config.DriverSQLite {
		return sql.Open(driver, dsn)
	}

	if isSQLiteMemory(dsn) {
		db, err := sql.Open(driver, dsn)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
		return db, nil
	}

	if isSQLiteFilePath(dsn) {
		path, _, _ := strings.Cut(dsn, "?")
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	return sql.Open(driver, withBusyTimeout(dsn))
}

func isSQLiteMemory(dsn string) bool {
	return dsn == "" || dsn == ":memory:" ||
		strings.HasPrefix(dsn, "file::memory:") ||
		strings.Contains(dsn, "mode=memory")
}

// isSQLiteFilePath reports whether dsn is a plain file path rather than an
// in-memory database or a file: URI.
func isSQLiteFilePath(dsn string) bool {
	return !isSQLiteMemory(dsn) && !strings.HasPrefix(dsn, "file:")
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "busy_timeout") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqliteBusyTimeout
	}
	return dsn + "?" + sqliteBusyTimeout
}

// signingSecret returns the configured secret, or a random one valid only
// for the lifetime of the process.
func signingSecret(ctx context.Context, configured string, logger logging.Logger) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}
	s, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, fmt.Errorf("secret generation error: %w", err)
	}
	logger.Warn(ctx, "no secret configured, using an ephemeral one; tokens will not survive a restart")
	return []byte(s), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.config.CORSOrigins,
		app.config.ShutdownTimeout, app.logger, app.userService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a termination signal arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
