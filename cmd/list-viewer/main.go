package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"list-viewer/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	setupGracefulShutdown(application)

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// setupGracefulShutdown quits the application cleanly on SIGINT/SIGTERM.
func setupGracefulShutdown(application *app.Application) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v, initiating graceful shutdown", sig)
		application.Quit()
	}()
}
