package httpapi

import (
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
// Every path not listed here goes to the endpoint, which owns the resource
// grammar and answers unknown_endpoint for anything else.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", app.resourceHandler)
	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.HandleFunc("GET /openapi.yaml", app.openapiHandler)
	mux.HandleFunc("GET /docs", app.docsHandler)
	if app.Metrics != nil {
		mux.Handle("GET /metrics", app.Metrics.Handler())
	}
	return WithRequestID(WithLogging(app.Metrics, mux))
}
