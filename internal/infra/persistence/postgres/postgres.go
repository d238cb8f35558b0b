package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"multipost/config"
	"multipost/internal/domain/lifecycle"
	"multipost/internal/errors"
	"multipost/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// dialectorFactory builds a gorm.Dialector from a DSN.
type dialectorFactory func(dsn string) gorm.Dialector

var dialectors = map[string]dialectorFactory{
	config.DatabaseDriverPostgres: pgdriver.Open,
	config.DatabaseDriverSQLite:   sqlite.Open,
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database, registers read replicas, and ties the
// pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects without lifecycle wiring; used by the migrate command.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	factory, ok := dialectors[cfg.Database.Driver]
	if !ok {
		return nil, errors.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	dsn, err := primaryDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(factory(dsn), &gorm.Config{
		// Explicit transactions go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", cfg.Database.Driver)
	}

	if cfg.Database.Driver == config.DatabaseDriverPostgres {
		if err := configurePostgres(db, cfg.Postgres); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	return nil
}

func primaryDSN(cfg *config.Config) (string, error) {
	switch cfg.Database.Driver {
	case config.DatabaseDriverSQLite:
		if cfg.Database.SQLitePath == "" {
			return "", errors.New("database.sqlitePath is required for the sqlite driver")
		}

		return cfg.Database.SQLitePath, nil
	default:
		if cfg.Postgres == nil {
			return "", errors.New("postgres configuration is required for the postgres driver")
		}

		return postgresDSN(cfg.Postgres, cfg.Postgres.Master), nil
	}
}

func postgresDSN(pg *config.PostgresConfig, conn config.ConnectionConfig) string {
	sslMode := pg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	timeZone := pg.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		conn.Host, conn.Port, conn.UserName, conn.Password, pg.Database, sslMode, timeZone)
}

func configurePostgres(db *gorm.DB, pg *config.PostgresConfig) error {
	if len(pg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(pg.Replicas))
		for _, replica := range pg.Replicas {
			replicas = append(replicas, pgdriver.Open(postgresDSN(pg, replica)))
		}

		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})
		if pg.MaxIdleConns > 0 {
			resolver = resolver.SetMaxIdleConns(pg.MaxIdleConns)
		}
		if pg.MaxOpenConns > 0 {
			resolver = resolver.SetMaxOpenConns(pg.MaxOpenConns)
		}
		if pg.ConnMaxLifetime > 0 {
			resolver = resolver.SetConnMaxLifetime(pg.ConnMaxLifetime)
		}

		if err := db.Use(resolver); err != nil {
			return errors.Wrap(err, "failed to register read replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	if pg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pg.MaxIdleConns)
	}
	if pg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pg.MaxOpenConns)
	}
	if pg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pg.ConnMaxLifetime)
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
