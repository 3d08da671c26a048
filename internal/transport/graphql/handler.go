// Package graphql serves the term API over GraphQL. The schema itself is
// assembled at startup in the schema and resolver packages.
package graphql

import (
	"log/slog"
	"net/http"

	gqlgraphql "github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2/ast"
)

const (
	queryCacheSize = 1000
	apqCacheSize   = 100
)

// NewHandler returns a gqlgen server for es. complexityLimit <= 0 disables
// the complexity check.
func NewHandler(es gqlgraphql.ExecutableSchema, log *slog.Logger, complexityLimit int) *handler.Server {
	srv := handler.New(es)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](queryCacheSize))
	srv.Use(extension.AutomaticPersistedQuery{Cache: lru.New[string](apqCacheSize)})
	if complexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(complexityLimit))
	}

	srv.SetErrorPresenter(NewErrorPresenter(log))
	return srv
}

// SDLHandler serves the schema definition as plain text.
func SDLHandler(sdl string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(sdl))
	}
}
