package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/fairyhunter13/inventory-task-simulator/internal/config"
	"github.com/fairyhunter13/inventory-task-simulator/internal/endpoint"
	httpopenapi "github.com/fairyhunter13/inventory-task-simulator/internal/http/openapi"
	"github.com/fairyhunter13/inventory-task-simulator/internal/obs"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

type App struct {
	Cfg      config.Config
	Endpoint *endpoint.Endpoint
	Metrics  *obs.Metrics
	started  time.Time
}

// NewApp wires the endpoint into the HTTP layer. m may be nil.
func NewApp(cfg config.Config, ep *endpoint.Endpoint, m *obs.Metrics) *App {
	return &App{Cfg: cfg, Endpoint: ep, Metrics: m, started: time.Now()}
}

// resourceHandler hands every resource request to the endpoint's route table.
func (a *App) resourceHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, "")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}
	if len(body) > 0 && !isJSON(r.Header.Get("Content-Type")) {
		WriteJSONError(w, http.StatusUnsupportedMediaType, CodeUnsupportedMediaType, "expected application/json")
		return
	}

	res, err := a.Endpoint.Serve(r.Context(), endpoint.Request{
		Method: r.Method,
		URL:    r.URL.RequestURI(),
		Body:   body,
	})
	if err != nil {
		WriteErr(w, err)
		return
	}
	status := http.StatusOK
	if r.Method == http.MethodPost {
		status = http.StatusCreated
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}

func isJSON(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	return err == nil && mt == "application/json"
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":     "ok",
		"products":   a.Endpoint.Products.Len(),
		"categories": a.Endpoint.Categories.Len(),
		"tasks":      a.Endpoint.Tasks.Len(),
		"uptime_sec": time.Since(a.started).Seconds(),
	})
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	httpopenapi.Handler().ServeHTTP(w, r)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Inventory Mock API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
