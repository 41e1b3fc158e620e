package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inpirtalent/portfolio"
	"github.com/inpirtalent/portfolio/profile"
)

// version is set at build time via ldflags.
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := check(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("portfolio %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func serve() error {
	app := portfolio.New(portfolio.ConfigFromEnv())
	defer app.Close()

	if err := app.Setup(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		app.Echo.Logger.Infof("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// check validates the configuration and profile without serving.
func check() error {
	cfg := portfolio.ConfigFromEnv()
	if _, err := profile.Load(cfg.ProfilePath); err != nil {
		return err
	}
	fmt.Printf("profile:  ok\n")
	fmt.Printf("airtable: %s\n", status(cfg.AirtableConfigured()))
	fmt.Printf("admin:    %s\n", status(cfg.AdminUsername != "" && cfg.AdminPassword != ""))
	return nil
}

func status(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}

func printUsage() {
	fmt.Println(`portfolio - personal portfolio site with an Airtable-backed blog

Usage:
  portfolio [command]

Commands:
  serve     Start the HTTP server (default)
  check     Validate configuration and profile, then exit
  version   Print the version
  help      Show this help message

Configuration is read from the environment and an optional .env file.`)
}
