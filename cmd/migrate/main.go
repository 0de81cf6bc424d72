package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"addressbook/config"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/infra/persistence/migration"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      Apply every pending migration
// - down:    Revert the last N migrations
// - version: Print the current schema version

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 1, "Number of migrations to revert")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := migrateFlags{
		up:        upCmd,
		down:      downCmd,
		downSteps: downSteps,
		version:   versionCmd,
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type migrateFlags struct {
	up        *flag.FlagSet
	down      *flag.FlagSet
	downSteps *int
	version   *flag.FlagSet
}

func runSubcommand(ctx context.Context, flags *migrateFlags) error {
	switch os.Args[1] {
	case "up":
		if err := flags.up.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "parse up flags")
		}

		return withDatabase(ctx, func(env *migrateEnv) error {
			return migration.Up(ctx, env.db, env.logger)
		})
	case "down":
		if err := flags.down.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "parse down flags")
		}

		return withDatabase(ctx, func(env *migrateEnv) error {
			return migration.Down(ctx, env.db, env.logger, *flags.downSteps)
		})
	case "version":
		if err := flags.version.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "parse version flags")
		}

		return withDatabase(ctx, func(env *migrateEnv) error {
			version, dirty, err := migration.Version(ctx, env.db, env.logger)
			if err != nil {
				return err
			}
			fmt.Printf("version=%d dirty=%t\n", version, dirty)

			return nil
		})
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", os.Args[1])
	}
}

type migrateEnv struct {
	db     *sql.DB
	logger *slog.Logger
}

// withDatabase loads the application config, opens the primary database and
// closes it once fn returns.
func withDatabase(ctx context.Context, fn func(env *migrateEnv) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "build logger")
	}

	gormDB, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "connect to PostgreSQL")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "get PostgreSQL sql.DB")
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Warn("Failed to close database", slog.Any("error", closeErr))
		}
	}()

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "ping PostgreSQL")
	}

	return fn(&migrateEnv{db: sqlDB, logger: logger})
}

func printUsage() {
	fmt.Println("Address book schema migrations")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                 Apply every pending migration")
	fmt.Println("  down -steps N      Revert the last N migrations (default 1)")
	fmt.Println("  version            Print the current schema version")
	fmt.Println()
	fmt.Println("Configuration is read from config.yaml, .env and the environment.")
}
