package main

import (
	"flag"
	"log/slog"
	"os"

	"SwipeState/internal/server"
)

func main() {
	cfg := server.LoadConfigFromEnv()

	addr := flag.String("addr", cfg.Addr, "address to listen on (e.g., 127.0.0.1:8080)")
	contentDir := flag.String("content-dir", cfg.ContentDir, "directory of authored route JSON documents (overrides built-in routes)")
	flag.Parse()

	cfg.Addr = *addr
	cfg.ContentDir = *contentDir

	if err := server.StartApp(cfg); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
