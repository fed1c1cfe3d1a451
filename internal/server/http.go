package server

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"SwipeState/internal/dialogue"
)

func newRouter(routes map[dialogue.RouteType]*dialogue.Graph) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", handleHealth)
	router.Get("/api/routes", handleRoutes(routes))
	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(routes, w, r)
	})

	return router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func handleRoutes(routes map[dialogue.RouteType]*dialogue.Graph) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infos := make([]routeInfoDTO, 0, len(routes))
		for _, g := range routes {
			infos = append(infos, newRouteInfoDTO(g))
		}
		sort.Slice(infos, func(i, j int) bool { return infos[i].Route < infos[j].Route })

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infos)
	}
}
