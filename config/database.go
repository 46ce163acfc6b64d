package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var DB *pgxpool.Pool

func ConnectDB() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		AppConfig.DBHost,
		AppConfig.DBPort,
		AppConfig.DBUser,
		AppConfig.DBPassword,
		AppConfig.DBName,
		AppConfig.DBSSLMode,
	)

	var err error
	DB, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Unable to create connection pool: %v\n", err)
	}

	if err = DB.Ping(context.Background()); err != nil {
		log.Fatalf("Unable to ping database: %v\n", err)
	}

	log.Println("Database connected successfully")
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		log.Println("Database connection closed")
	}
}

// CreateSchema creates the tables the sql repositories expect. Uniqueness and
// referential integrity live in the schema as a second line of defense behind
// the use-case pre-checks.
func CreateSchema() {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS items (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			price DOUBLE PRECISION NOT NULL,
			quantity INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			hashed_password TEXT NOT NULL,
			shipping_address TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			user_id UUID NOT NULL REFERENCES users(id),
			item_id UUID NOT NULL REFERENCES items(id),
			quantity INTEGER NOT NULL,
			PRIMARY KEY (user_id, item_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(context.Background(), stmt); err != nil {
			log.Fatalf("Failed to create schema: %v\n", err)
		}
	}

	log.Println("Database schema ready")
}
