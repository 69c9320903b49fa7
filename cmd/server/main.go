package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	grpcapi "trustrent-backend/internal/api/grpc"
	httpapi "trustrent-backend/internal/api/http"
	"trustrent-backend/internal/app"
	"trustrent-backend/internal/config"
	"trustrent-backend/internal/jobs"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.Bool("run-once", false, "Run the daily jobs once and exit")
	flag.Parse()

	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting TrustRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http_address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress(), "base_url", cfg.Server.BaseURL)
	logger.Info("Advisor configuration", "provider", cfg.Advisor.Provider, "timeout_seconds", cfg.Advisor.TimeoutSeconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	jobRunner := jobs.NewJobRunner(a.Store, &jobs.Services{
		Rent:     a.Services.Rent,
		Reminder: a.Services.Reminder,
	}, cfg)

	if *runOnce {
		logger.Info("Running daily jobs once")
		jobRunner.RunAllDailyJobs()
		return
	}

	// Set up HTTP API server
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.NewRouter(a.Services),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	// Set up gRPC health server
	lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
		log.Fatalf("Failed to listen: %v", err)
	}
	grpcServer := grpcapi.NewServer()
	go func() {
		logger.Info("gRPC health server listening", "address", cfg.GetGRPCAddress())
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("Failed to serve gRPC", "error", err)
			stop()
		}
	}()

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.NewScheduler(jobRunner)
		if err != nil {
			logger.Error("Failed to create scheduler", "error", err)
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		sched.Start()
	}

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping servers...")

	if sched != nil {
		sched.Stop()
	}
	if n := a.Services.Calls.CancelAll(); n > 0 {
		logger.Info("Cancelled in-flight advisory calls", "count", n)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	grpcServer.Shutdown()

	logger.Info("TrustRent Backend stopped")
}
