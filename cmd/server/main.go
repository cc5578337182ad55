package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/oakmere/gatehouse/internal/app"
	"github.com/oakmere/gatehouse/internal/logging"
	"github.com/oakmere/gatehouse/internal/server"
	"github.com/samber/do/v2"
)

func main() {
	logging.New()

	injector := app.New()
	defer func() {
		_ = injector.Shutdown()
	}()

	srv := do.MustInvoke[*server.Server](injector)
	srv.RegisterRoutes()
	if err := srv.WireAudit(context.Background()); err != nil {
		slog.Error("Failed to wire snapshot audit", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "addr", srv.Cfg.ListenAddr)
	srv.Start(srv.Cfg.ListenAddr)
}
