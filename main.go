package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"historyfetcher/internal/config"
	"historyfetcher/internal/coordinator"
	"historyfetcher/internal/fetcher"
	"historyfetcher/internal/table"
	"historyfetcher/internal/yahoo"
)

const dateLayout = "2006-01-02"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	from, err := time.Parse(dateLayout, cfg.FromDate)
	if err != nil {
		log.Fatalf("Invalid FROM_DATE: %v", err)
	}
	to, err := time.Parse(dateLayout, cfg.ToDate)
	if err != nil {
		log.Fatalf("Invalid TO_DATE: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// One client shared across scans; it owns the transport and rate limiting
	client := yahoo.NewHistoryClient(cfg.YahooBaseURL)

	// Bind one scan per symbol. Bind failures (bad interval, bad range) are
	// fatal before any request is made.
	var fetchers []fetcher.Fetcher
	for _, symbol := range cfg.Symbols {
		sym := symbol
		runner, err := table.NewRunner(table.BindInput{
			Symbol:   sym,
			From:     from,
			To:       to,
			Interval: cfg.Interval,
		}, client, func(rows []yahoo.Row) {
			printRows(sym, rows)
		})
		if err != nil {
			log.Fatalf("Failed to bind scan for %s: %v", sym, err)
		}
		fetchers = append(fetchers, runner)
	}

	// Create coordinator
	coord := coordinator.New(fetchers)

	// Add timeout to prevent hanging indefinitely
	fetchCtx, fetchCancel := context.WithTimeout(ctx, 5*time.Minute)
	defer fetchCancel()

	// Run all scans concurrently
	fmt.Println("Fetching price history...")
	fmt.Println("================================================")
	if err := coord.Run(fetchCtx); err != nil {
		log.Fatalf("Coordinator failed: %v", err)
	}

	fmt.Println("================================================")
	fmt.Println("All scans completed!")
}

// printRows writes one line per sample to stdout
func printRows(symbol string, rows []yahoo.Row) {
	for _, row := range rows {
		closePrice := "null"
		if row.Close.Valid {
			closePrice = fmt.Sprintf("%.2f", row.Close.Float64)
		}
		volume := "null"
		if row.Volume.Valid {
			volume = fmt.Sprintf("%d", row.Volume.Int64)
		}
		fmt.Printf("%s %s close=%s volume=%s\n", symbol, row.Date.Format(dateLayout), closePrice, volume)
	}
}
