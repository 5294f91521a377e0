package server

import (
	"net/http"

	"github.com/pysugar/backend/http/extensions"
)

// NewHandler returns the route table. Only GET / is registered, other paths
// and methods get the ServeMux defaults. Every request passes the JSON body
// parser before dispatch.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", extensions.GreetingHandler)

	return extensions.LoggingMiddleware(extensions.JSONBodyMiddleware(mux))
}
