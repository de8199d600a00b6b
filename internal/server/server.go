// Package server wires the schema, resolver set and per-request middleware
// into a listening GraphQL HTTP endpoint.
package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/graphql-go/handler"

	"github.com/mathildetho/taskade/internal/config"
	"github.com/mathildetho/taskade/internal/gql"
	"github.com/mathildetho/taskade/internal/store"
)

type Server struct {
	cfg     *config.Config
	handler http.Handler
}

// New builds the schema and request pipeline. The store handle is shared by
// every request; no per-request connection setup happens here.
func New(cfg *config.Config, st store.Store) (*Server, error) {
	resolver := &gql.Resolver{
		Store:  st,
		Secret: cfg.Auth.Secret,
	}

	schema, err := gql.NewSchema(resolver)
	if err != nil {
		return nil, fmt.Errorf("error building schema: %w", err)
	}

	gqlHandler := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: cfg.Server.GraphiQL,
	})

	mux := http.NewServeMux()
	mux.Handle("/graphql", RequestLogger(Authenticate(st, cfg.Auth.Secret, gqlHandler)))

	return &Server{cfg: cfg, handler: mux}, nil
}

// Handler exposes the request pipeline, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start blocks serving HTTP on the configured address.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.cfg.Server.Addr)
	return http.ListenAndServe(s.cfg.Server.Addr, s.handler)
}
