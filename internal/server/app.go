// Package server is the presentation adapter: it exposes the narrative
// engine over HTTP and websocket, one engine per connected playthrough.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"SwipeState/internal/dialogue"
)

// loadRoutes assembles the route graphs: built-in seeds first, then any
// authored documents from the content directory, which win per route.
func loadRoutes(cfg AppConfig) (map[dialogue.RouteType]*dialogue.Graph, error) {
	routes := dialogue.SeedRoutes()
	if cfg.ContentDir != "" {
		loaded, err := dialogue.LoadRouteDir(cfg.ContentDir)
		if err != nil {
			return nil, fmt.Errorf("load content dir: %w", err)
		}
		for rt, g := range loaded {
			routes[rt] = g
		}
		slog.Info("authored routes loaded", "dir", cfg.ContentDir, "routes", len(loaded))
	}
	return routes, nil
}

// StartApp loads route content and serves until the listener fails.
func StartApp(cfg AppConfig) error {
	routes, err := loadRoutes(cfg)
	if err != nil {
		return err
	}
	for _, g := range routes {
		if _, ok := g.StartNode(); !ok {
			return fmt.Errorf("route %q has no %q node", g.RouteName, dialogue.StartNodeID)
		}
	}
	slog.Info("dialogue routes ready", "routes", len(routes))

	router := newRouter(routes)
	slog.Info("server listening", "addr", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, router)
}
