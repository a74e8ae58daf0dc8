//go:build e2e

// Package e2e boots the full fx graph against containerized Postgres and Redis.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stay-ledger/cmd/bootstrap"
	"stay-ledger/cmd/bootstrap/components"
	"stay-ledger/internal/infra/db"
	"stay-ledger/internal/pkg/config"
	"stay-ledger/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const migrationsDir = "migrations"

// createSuiteDatabase gives the calling suite a private database so suites can
// run in parallel against one container.
func createSuiteDatabase(t *testing.T, ep endpoints) config.DBConfig {
	t.Helper()

	adminCfg := config.DBConfig{
		Host:     ep.PGHost,
		Port:     ep.PGPort,
		User:     pgUser,
		Password: pgPassword,
		DBName:   "postgres",
		SSLMode:  "disable",
		TimeZone: "Europe/Prague",
		MaxConns: 4,
	}
	admin, closeAdmin, err := db.Connect(adminCfg)
	require.NoError(t, err, "admin connection failed")
	defer closeAdmin()

	name := "stay_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// CREATE DATABASE takes a lock on template1, so concurrent suites can collide.
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(min(time.Duration(attempt)*500*time.Millisecond, 2*time.Second))
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "failed to create suite database")

	t.Cleanup(func() {
		pool, closePool, err := db.Connect(adminCfg)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer closePool()

		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		if _, err := pool.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop suite database", "database", name, "error", err.Error())
		}
	})

	suiteCfg := adminCfg
	suiteCfg.DBName = name
	suiteCfg.MaxConns = 10
	return suiteCfg
}

// applyMigrations runs every .sql file under migrations/ in name order.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found in %s", dir)
	}

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// findMigrationsDir walks up from the package directory go test runs in.
func findMigrationsDir() (string, error) {
	dir := migrationsDir
	for range 4 {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		dir = filepath.Join("..", dir)
	}
	return "", fmt.Errorf("%s directory not found", migrationsDir)
}

func testConfig(dbCfg config.DBConfig, redisAddr string) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis = config.RedisConfig{
		Enabled:  true,
		Addr:     redisAddr,
		ClaimTTL: time.Minute,
	}
	return cfg
}

// buildApp wires the production modules. Only the config and the pool are
// swapped; status events go to the log because the broker is disabled.
func buildApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(
			func(c config.Config) config.RedisConfig { return c.Redis },
			func(c config.Config) config.BrokerConfig { return c.Broker },
			func(c config.Config) config.BookingCodeConfig { return c.BookingCode },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		bootstrap.BrokerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "failed to start fx app")

	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	require.NotNil(t, router)
	return router
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	ep := startContainers(t)
	dbCfg := createSuiteDatabase(t, ep)

	pool, closePool, err := db.Connect(dbCfg)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, applyMigrations(ctx, pool), "migrations failed")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seeding reference data failed")

	s.DB = pool
	s.Config = testConfig(dbCfg, ep.RedisAddr)
	s.Router = buildApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}
