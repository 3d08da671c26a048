// Command schema prints the GraphQL SDL the server would expose for the
// taxonomies currently registered in the database.
//
// Usage:
//
//	schema > schema.graphqls
//
// Reads the same configuration as the server (CONFIG_PATH, DATABASE_DSN).
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/termstamps/internal/adapter/postgres"
	"github.com/heartmarshall/termstamps/internal/app"
	"github.com/heartmarshall/termstamps/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := app.NewServer(ctx, cfg, quiet, pool, nil, app.NewRegistry())
	if err != nil {
		log.Fatalf("build schema: %v", err)
	}
	defer srv.Close()

	fmt.Fprint(os.Stdout, srv.Schema.SDL())
}
