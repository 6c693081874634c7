package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"mob-social/pkg/config"
	"mob-social/pkg/database"
	"mob-social/pkg/logger"
	"mob-social/services/social/internal/repo/persistent"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "services/social/internal/repo/persistent/migrations", "directory for new migration files (create only)")
		command = flag.String("command", "up", "migration command (install, uninstall, up, down, status, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	logr := logger.New(logger.WithService("migrate"))
	fatal := func(format string, args ...interface{}) {
		logr.Error(format, args...)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config: %v", err)
	}
	ctx := context.Background()

	switch *command {
	case "install", "uninstall":
		gormDB, err := database.NewPostgresDB(cfg)
		if err != nil {
			fatal("Failed to connect to database: %v", err)
		}
		schema, err := persistent.NewSchemaContext(gormDB, logr)
		if err != nil {
			fatal("Failed to open schema: %v", err)
		}
		if *command == "install" {
			if err := schema.Install(ctx); err != nil {
				fatal("Failed to install schema: %v", err)
			}
		} else {
			schema.Uninstall(ctx)
		}
		return
	case "create":
		if *name == "" {
			fatal("Name is required for create command")
		}
		// New files go to disk, not the embedded set.
		goose.SetBaseFS(nil)
		if err := goose.Create(nil, *dir, *name, "sql"); err != nil {
			fatal("Failed to create migration: %v", err)
		}
		fmt.Printf("Created migration: %s\n", *name)
		return
	}

	db, err := sql.Open("postgres", database.DSN(cfg))
	if err != nil {
		fatal("Failed to open database: %v", err)
	}

	if err := persistent.ConfigureGoose(logr); err != nil {
		db.Close()
		fatal("Failed to configure goose: %v", err)
	}

	err = runGoose(ctx, db, *command, logr)
	db.Close()
	if err != nil {
		fatal("Migration %s failed: %v", *command, err)
	}
}

func runGoose(ctx context.Context, db *sql.DB, command string, logr *logger.Logger) error {
	switch command {
	case "up":
		if err := goose.UpContext(ctx, db, persistent.MigrationsDir()); err != nil {
			return err
		}
		logr.Info("Migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, db, persistent.MigrationsDir()); err != nil {
			return err
		}
		logr.Info("Migrations rolled back successfully")
	case "status":
		return goose.StatusContext(ctx, db, persistent.MigrationsDir())
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
	return nil
}
