package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/quaydome/receipt-engine/internal/api"
	"github.com/quaydome/receipt-engine/internal/config"
	"github.com/quaydome/receipt-engine/internal/identifier"
	"github.com/quaydome/receipt-engine/internal/ledger"
	"github.com/quaydome/receipt-engine/internal/renderer"
	"github.com/quaydome/receipt-engine/internal/renderqueue"
	"github.com/quaydome/receipt-engine/internal/tui"
	"github.com/quaydome/receipt-engine/pkg/logger"
)

// Version is set during build via ldflags
var Version = "dev"

func main() {
	cfg := config.Load()

	// Open the receipt number ledger
	led, err := ledger.New(cfg.Receipt.LedgerPath)
	if err != nil {
		log.Fatalf("Failed to open receipt ledger: %v", err)
	}

	// Create the document renderer
	rend := renderer.New(renderer.Options{
		Organization: renderer.Organization{
			Name:    cfg.Organization.Name,
			Address: cfg.Organization.Address,
			Phone:   cfg.Organization.Phone,
			Email:   cfg.Organization.Email,
			TaxPIN:  cfg.Organization.TaxPIN,
		},
		CurrencyCode: cfg.Receipt.CurrencyCode,
		LogoPath:     cfg.Organization.LogoPath,
		FooterCode:   cfg.Receipt.FooterCode,
	})

	// Create the render queue
	queue := renderqueue.New(rend)
	defer queue.Stop()

	// Create the dashboard
	dashboard := tui.NewDashboard(queue, led, cfg.App.Port)

	// Set up log capture to the dashboard
	logWriter := dashboard.LogWriter()
	log.SetOutput(io.MultiWriter(os.Stderr, logWriter))

	level := "info"
	if cfg.App.Debug {
		level = "debug"
	}
	slogger := logger.New(logWriter, level)

	// Create API server
	server := api.NewServer(rend, queue, led, identifier.NewRandom())

	// Surface finished jobs on the dashboard and over WebSocket
	queue.OnJobDone(func(job *renderqueue.Job) {
		if job.Err != nil {
			dashboard.AddLog(fmt.Sprintf("Render failed: %s (%v)", job.Data.ReceiptNumber, job.Err), "error")
			slogger.Error("render failed", "receipt", job.Data.ReceiptNumber, "error", job.Err)
		} else {
			dashboard.AddLog(fmt.Sprintf("Rendered receipt %s", job.Data.ReceiptNumber), "info")
			slogger.Info("render completed", "receipt", job.Data.ReceiptNumber, "bytes", len(job.Result))
		}
		server.BroadcastJobDone(job)
	})

	// Start server in goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.App.Port)
		dashboard.AddLog(fmt.Sprintf("Starting API server on %s", addr), "info")
		if err := server.Run(addr); err != nil {
			serverErrChan <- err
		}
	}()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Run dashboard (blocking)
	tuiDone := make(chan struct{})
	go func() {
		if err := dashboard.Run(); err != nil {
			log.Printf("Dashboard error: %v", err)
		}
		close(tuiDone)
	}()

	// Wait for either dashboard quit, server error, or signal
	select {
	case err := <-serverErrChan:
		log.Fatalf("Server error: %v", err)
	case <-sigChan:
		os.Exit(0)
	case <-tuiDone:
		os.Exit(0)
	}
}
