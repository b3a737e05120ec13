// Command migrate manages the tutorlane schema: parents, students,
// classes, registrations and subscriptions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/tutorlane/tutorlane-backend/internal/config"
)

func main() {
	dir := flag.String("path", "migrations", "directory holding the schema migration files")
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		return
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	m, err := migrate.New("file://"+*dir, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open migrations: %v", err)
	}

	if err := run(m, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up: %w", err)
		}
		fmt.Println("schema is up to date")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down: %w", err)
		}
		fmt.Println("schema rolled back")
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)
	case "force":
		if len(args) < 2 {
			return errors.New("force needs a version argument")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("parse version %q: %w", args[1], err)
		}
		if err := m.Force(v); err != nil {
			return fmt.Errorf("force: %w", err)
		}
		fmt.Printf("forced version to %d\n", v)
	default:
		usage()
	}
	return nil
}

func usage() {
	fmt.Println("Usage: migrate [-path dir] <up|down|version|force N>")
	flag.PrintDefaults()
}
