package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gravitas-games/hexpaint/internal/config"
	"github.com/gravitas-games/hexpaint/internal/server"
)

func main() {
	log.Println("Starting hexpaint server...")

	// An optional .env only fills in variables such as CONFIG_PATH
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/hexpaint.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Configuration loaded from %s", configPath)
	log.Printf("Server will run on %s at %d Hz", cfg.Addr(), cfg.Server.TickRate)

	layout, image := cfg.Geometry()
	log.Printf("Grid: %d initial tiles, %s layout, step %.1fx%.1f, tile %.1fx%.1f, tool %s",
		cfg.Grid.InitialTiles, layout.Orientation, layout.Step.X, layout.Step.Y,
		image.X, image.Y, cfg.InitialTool())

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(cfg.Addr()); err != nil {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	if err := srv.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	status := srv.Session().Status()
	log.Printf("Session ended after %d ticks with %d tiles", status.Tick, status.Tiles)
	for tag, n := range status.Terrain {
		log.Printf("  %s: %d", tag, n)
	}
}
