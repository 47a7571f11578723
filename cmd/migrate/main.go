// Command migrate manages the docsage database schema (conversations and
// extraction_jobs). Migration files live in db/migrations and the connection
// comes from the same DOCSAGE_DB_* environment the server reads.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"docsage/internal/config"
)

const migrationsPath = "file://db/migrations"

func usage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println("  up         apply all pending migrations")
	fmt.Println("  down       revert all migrations")
	fmt.Println("  steps N    apply N migrations (negative N reverts)")
	fmt.Println("  force V    mark version V as applied without running it")
	fmt.Println("  version    print the current schema version")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("migrate: loading config: %v", err)
	}

	m, err := migrate.New(migrationsPath, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("migrate: opening %s against %s: %v", migrationsPath, cfg.DB.Host, err)
	}
	defer m.Close()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migrate: up: %v", err)
		}
		log.Println("migrate: schema is up to date")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migrate: down: %v", err)
		}
		log.Println("migrate: schema reverted")

	case "steps":
		if len(os.Args) < 3 {
			log.Fatal("migrate: steps requires a count")
		}
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("migrate: invalid step count %q: %v", os.Args[2], err)
		}
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migrate: steps %d: %v", n, err)
		}
		log.Printf("migrate: moved %d steps", n)

	case "force":
		if len(os.Args) < 3 {
			log.Fatal("migrate: force requires a version")
		}
		v, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("migrate: invalid version %q: %v", os.Args[2], err)
		}
		if err := m.Force(v); err != nil {
			log.Fatalf("migrate: force %d: %v", v, err)
		}
		log.Printf("migrate: forced version to %d", v)

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied yet")
			return
		}
		if err != nil {
			log.Fatalf("migrate: reading version: %v", err)
		}
		fmt.Printf("version %d (dirty: %v)\n", version, dirty)

	default:
		fmt.Printf("unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}
