package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"talkReserve/internal/config"
	"talkReserve/internal/coordinator"
	"talkReserve/internal/http-server/handlers/log/listLogs"
	"talkReserve/internal/http-server/handlers/reservation/listReservations"
	"talkReserve/internal/http-server/handlers/talk/getTalk"
	"talkReserve/internal/http-server/handlers/talk/listTalks"
	"talkReserve/internal/http-server/middleware/mwlogger"
	"talkReserve/internal/lib/logger/handlers/slogpretty"
	"talkReserve/internal/lib/logger/sl"
	"talkReserve/internal/storage/memory"
	"talkReserve/internal/ws"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting talk reserve", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	coord := coordinator.New(
		log,
		memory.NewTalkStore(),
		memory.NewReservationStore(),
		memory.NewEventLog(),
		hub,
		cfg.Booking.ReservationTTL,
	)

	dispatcher := ws.NewDispatcher(log, coord, cfg.Admin)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/ws", ws.NewHandler(log, hub, dispatcher))

	router.Get("/talks", listTalks.New(log, coord))
	router.Get("/talks/{id}", getTalk.New(log, coord))
	router.Get("/reservations", listReservations.New(log, coord))
	router.Get("/logs", listLogs.New(log, coord))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(cfg.Booking.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if expired := coord.ExpireStale(); expired > 0 {
					log.Info("expired stale reservations", slog.Int("count", expired))
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	cancel()

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
