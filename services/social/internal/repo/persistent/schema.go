package persistent

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"mob-social/pkg/logger"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// pluginMigrationVersion is the migration that creates the plugin tables.
const pluginMigrationVersion = 2

// PluginTables lists the plugin tables in the order Uninstall drops them.
var PluginTables = []string{
	"group_page_members",
	"group_pages",
	"team_pages",
	"user_skate_moves",
	"skate_moves",
	"user_friends",
}

type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SchemaContext owns the lifecycle of the social schema.
type SchemaContext struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	exec   Executor
	logger *logger.Logger
}

func NewSchemaContext(db *gorm.DB, log *logger.Logger) (*SchemaContext, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return &SchemaContext{
		gormDB: db,
		sqlDB:  sqlDB,
		exec:   sqlDB,
		logger: log,
	}, nil
}

// ConfigureGoose points goose at the embedded migrations.
func ConfigureGoose(log *logger.Logger) error {
	goose.SetBaseFS(migrationsFS)
	if log != nil {
		goose.SetLogger(log.Logrus())
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// MigrationsDir is the goose directory inside the embedded filesystem.
func MigrationsDir() string {
	return migrationsDir
}

// Install applies every pending migration.
func (s *SchemaContext) Install(ctx context.Context) error {
	if err := ConfigureGoose(s.logger); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, s.sqlDB, migrationsDir); err != nil {
		return fmt.Errorf("failed to install schema: %w", err)
	}
	s.logger.Info("Schema installed")
	return nil
}

// Uninstall drops the plugin tables. Failures are logged and never returned.
func (s *SchemaContext) Uninstall(ctx context.Context) {
	for _, table := range PluginTables {
		if _, err := s.exec.ExecContext(ctx, "DROP TABLE "+table); err != nil {
			s.logger.Warn("Failed to drop table %s: %v", table, err)
		}
	}

	// Let a later Install recreate the tables.
	_, err := s.exec.ExecContext(ctx, "DELETE FROM goose_db_version WHERE version_id = $1", pluginMigrationVersion)
	if err != nil {
		s.logger.Warn("Failed to reset plugin migration version: %v", err)
	}
	s.logger.Info("Schema uninstalled")
}

// ExecuteSQLCommand runs a statement and reports the affected row count.
func (s *SchemaContext) ExecuteSQLCommand(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result, err := s.exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute sql command: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}

// SQLQuery scans the rows of an ad-hoc query into dest.
func (s *SchemaContext) SQLQuery(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if s.gormDB == nil {
		return fmt.Errorf("sql query requires a database connection")
	}
	if err := s.gormDB.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("failed to run sql query: %w", err)
	}
	return nil
}
