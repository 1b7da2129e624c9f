// Command queuectl-worker is the child process spawned by the
// controller (internal/controller.Start). It polls a single queuectl
// database for jobs, runs them via internal/worker.Worker, and exits
// cleanly on SIGINT/SIGTERM.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/queuectl/queuectl/internal/store"
	"github.com/queuectl/queuectl/internal/worker"
)

func main() {
	var dbPath string
	var retention time.Duration
	flag.StringVar(&dbPath, "db", "queuectl.db", "path to the queue database")
	flag.DurationVar(&retention, "retention", 0, "if set, periodically delete completed/dead jobs older than this")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := store.Open(ctx, dbPath)
	if err != nil {
		log.Error("open store", "err", err)
		os.Exit(1)
	}
	defer s.Close()

	leaseSeconds, err := s.GetConfigInt(ctx, "lease_seconds")
	if err != nil {
		log.Error("read lease_seconds", "err", err)
		os.Exit(1)
	}
	pollIntervalMS, err := s.GetConfigInt(ctx, "poll_interval_ms")
	if err != nil {
		log.Error("read poll_interval_ms", "err", err)
		os.Exit(1)
	}
	timeoutSeconds, err := s.GetConfigInt(ctx, "timeout_seconds")
	if err != nil {
		log.Error("read timeout_seconds", "err", err)
		os.Exit(1)
	}

	cfg := worker.Config{
		PollInterval: time.Duration(pollIntervalMS) * time.Millisecond,
		Lease:        time.Duration(leaseSeconds) * time.Second,
		Timeout:      time.Duration(timeoutSeconds) * time.Second,
	}

	w := worker.New(s, cfg, log)
	if err := w.Start(ctx); err != nil {
		log.Error("start worker", "err", err)
		os.Exit(1)
	}

	var retainer *worker.Retainer
	if retention > 0 {
		retainer = worker.NewRetainer(s, time.Minute, retention, log)
		if err := retainer.Start(ctx); err != nil {
			log.Error("start retainer", "err", err)
		}
	}

	<-ctx.Done()
	log.Info("shutting down")

	if retainer != nil {
		_ = retainer.Stop(10 * time.Second)
	}
	if err := w.Stop(30 * time.Second); err != nil {
		log.Error("stop worker", "err", err)
	}
}
