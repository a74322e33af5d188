package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/okvr/osuauth/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Connect opens a Postgres connection pool as per the given config and verifies it with a ping.
func Connect(conf config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s",
		url.QueryEscape(conf.Database.Username),
		url.QueryEscape(conf.Database.Password),
		conf.Database.Addr,
		conf.Database.Database,
	)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error in sql.Open call: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error in db.Ping call: %w", err)
	}

	slog.Info("connected to the database", "addr", conf.Database.Addr, "database", conf.Database.Database)
	return db, nil
}

// Migrate brings the database schema up to date using the embedded migrations.
func Migrate(db *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("error in iofs.New call: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("error in pgx WithInstance call: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("error in migrate.NewWithInstance call: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error in migrator.Up call: %w", err)
	}

	slog.Info("database schema is up to date")
	return nil
}
