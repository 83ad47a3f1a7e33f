package main

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/vantura/vantura/internal/config"
	"github.com/vantura/vantura/internal/logger"
)

// The host serves the WASM shell and proxies /api/v1 to the backend so
// browser requests stay same-origin and keep their session cookie.
func main() {
	configPath := "config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg := config.Load(configPath)

	logger.Init(logger.Level(cfg.LogLevel), cfg.DataDir)
	defer logger.Close()

	backend, err := url.Parse(cfg.BackendURL)
	if err != nil {
		logger.Errorf("invalid backend url %q: %v", cfg.BackendURL, err)
		os.Exit(1)
	}

	proxy := httputil.NewSingleHostReverseProxy(backend)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Errorf("proxy %s %s: %v", r.Method, r.URL.Path, err)
		http.Error(w, "backend unreachable", http.StatusBadGateway)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", proxy)
	mux.Handle("/", &app.Handler{
		Name:        "Vantura",
		ShortName:   "Vantura",
		Description: "Community blogging and forum platform",
		Styles:      []string{"/web/app.css"},
	})

	logger.Infof("listening on %s, backend %s", cfg.Addr, cfg.BackendURL)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
