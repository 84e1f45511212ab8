// Package main serves the rules engine over a local JSON API for UI shells.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chessrules/internal/processor"
	"chessrules/internal/service"
	"chessrules/internal/transport/http"
)

const (
	gracefulShutdownTimeout = time.Second * 5
)

func main() {
	var (
		apiHost   = flag.String("api-host", "localhost", "API server host")
		apiPort   = flag.Int("api-port", 8080, "API server port")
		dev       = flag.Bool("dev", false, "Development mode (relaxed rate limits)")
		accessLog = flag.Bool("access-log", false, "Log every request")
		pidPath   = flag.String("pid", "", "Optional path to write PID file")
		pidLock   = flag.Bool("pid-lock", false, "Lock PID file to allow only one instance (requires -pid)")
	)
	flag.Parse()

	if *pidLock && *pidPath == "" {
		log.Fatal("Error: -pid-lock flag requires the -pid flag to be set")
	}
	if *pidPath != "" {
		release, err := writePIDFile(*pidPath, *pidLock)
		if err != nil {
			log.Fatalf("Failed to manage PID file: %v", err)
		}
		defer release()
	}

	svc := service.New()
	defer svc.Close()

	proc := processor.New(svc)
	app := http.NewFiberApp(svc, proc, http.Config{
		DevMode:   *dev,
		AccessLog: *accessLog,
	})

	apiAddr := fmt.Sprintf("%s:%d", *apiHost, *apiPort)
	go func() {
		log.Printf("Chess rules API listening on http://%s", apiAddr)
		if *dev {
			log.Printf("Rate Limit: 50 requests/second per IP (DEV MODE)")
		} else {
			log.Printf("Rate Limit: 10 requests/second per IP")
		}
		log.Printf("Games: http://%s/api/v1/games", apiAddr)
		log.Printf("Health: http://%s/health", apiAddr)

		if err := app.Listen(apiAddr); err != nil {
			log.Printf("API server listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	// Release long polls first so the HTTP shutdown is not held open by them
	if err := svc.Shutdown(gracefulShutdownTimeout); err != nil {
		log.Printf("Service shutdown error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
