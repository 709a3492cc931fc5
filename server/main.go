package main

import (
	"context"
	"currency-converter/config"
	"currency-converter/convert"
	"currency-converter/format"
	"currency-converter/http"
	"currency-converter/rates"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
	"os"
	"os/signal"
	"syscall"
	"time"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source rates.Source
	if cfg.RatesFile != "" {
		source = rates.NewFile(cfg.RatesFile)
	} else {
		source = rates.NewStatic(rates.Default())
	}
	source = rates.NewLoggingSource(log.With(logger, "component", "rates"), source)

	table, err := source.Table(ctx)
	if err != nil {
		level.Error(logger).Log("msg", "loading rate table", "err", err)
		os.Exit(1)
	}

	convertService := convert.NewService(table)
	convertService = convert.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	handler := http.NewServer(convertService, format.New(cfg.Locale), http.Options{
		Logger:         log.With(logger, "component", "http"),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &nhttp.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		level.Info(logger).Log("msg", "listening", "addr", cfg.Addr, "locale", cfg.Locale, "currencies", table.Len())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		level.Info(logger).Log("msg", "shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
