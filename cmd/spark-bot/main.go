package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/madzombie/spark-bot/internal/bot"
	"github.com/madzombie/spark-bot/internal/config"
	"github.com/madzombie/spark-bot/internal/httpapi"
	"github.com/madzombie/spark-bot/internal/meraki"
	"github.com/madzombie/spark-bot/internal/metrics"
	"github.com/madzombie/spark-bot/internal/spark"
	"github.com/madzombie/spark-bot/internal/tropo"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	dash := meraki.New(cfg.MerakiBaseURL, cfg.MerakiAPIKey)
	rooms := spark.New(cfg.SparkMessagesURL, cfg.BotToken)
	voice := tropo.New(cfg.TropoAPIURL, cfg.TropoVoiceToken)

	b := bot.New(cfg, dash, rooms, voice, m)
	srv := httpapi.NewServer(b, rooms)
	r := httpapi.NewRouter(srv, m)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("spark-bot started", "port", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slog.Info("shutting down")
	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
