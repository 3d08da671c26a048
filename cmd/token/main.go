// Command token issues a signed access token for a user, for local
// development and smoke tests against a running server.
//
// Usage:
//
//	token --email=user@example.com [--role=admin] [--ttl=1h]
//
// Reads the same configuration as the server (CONFIG_PATH, DATABASE_DSN,
// AUTH_JWT_SECRET).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/termstamps/internal/auth"
	"github.com/heartmarshall/termstamps/internal/config"
)

func main() {
	email := flag.String("email", "", "email of the user to issue the token for")
	role := flag.String("role", "", "role claim, e.g. admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --email=user@example.com [--role=admin] [--ttl=1h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	var userID int64
	err = pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", *email).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		fmt.Fprintf(os.Stderr, "No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("find user: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).
		GenerateAccessToken(userID, *role, *ttl)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(token)
}
