// Command recwidget is a standalone preview server that embeds the SDK
// and serves the rendered recommendation widget. It is the
// script-include counterpart to importing pkg/recommend directly: drop
// the binary next to a running recommendation engine and point a
// browser at it.
package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/tessero/recommend-go/internal/config"
	"github.com/tessero/recommend-go/internal/server"
	"github.com/tessero/recommend-go/internal/telemetry"
	"github.com/tessero/recommend-go/pkg/recommend"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>Recommended for you</title></head>
<body>
<h1>Recommended for you</h1>
<div id="recommendations">{{.Widget}}</div>
</body>
</html>`))

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	shutdown, err := telemetry.InitTracer("recwidget", logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}()

	cfgPath := os.Getenv("TESSERO_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := recommend.New(
		recommend.WithBaseURL(cfg.API.BaseURL),
		recommend.WithLogger(logger),
	)
	if res := client.Initialize(context.Background(), cfg.API.UserID); !res.Success {
		// The widget degrades to trending/error placeholders, so a dead
		// engine at boot is not fatal.
		logger.Warn("engine not reachable at startup", slog.String("error", res.Error))
	} else {
		logger.Info("engine status", slog.Bool("ready", res.IsReady))
	}

	r := chi.NewRouter()
	r.Use(server.RequestIDMiddleware)
	r.Use(server.LoggingMiddleware(logger))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		el := recommend.NewElement()
		res := client.RenderRecommendations(req.Context(), el, recommend.Options{
			Count:      cfg.Widget.Count,
			Categories: cfg.Widget.Categories,
			Location:   cfg.Widget.Location,
		}, nil)
		if !res.Success {
			logger.Warn("widget render failed", slog.String("error", res.Error))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		pageTmpl.Execute(w, map[string]any{"Widget": template.HTML(el.Content())})
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		res := client.APIStatus(req.Context())
		w.Header().Set("Content-Type", "application/json")
		if !res.Success {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"success":false,"error":%q}`, res.Error)
			return
		}
		fmt.Fprintf(w, `{"success":true,"status":%q}`, res.Status.Status)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		logger.Info("recwidget listening", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received, stopping server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
