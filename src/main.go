package main

import (
	"log"

	"github.com/ryansname/battcheck/src/locale"
)

func main() {
	log.Println("Starting battcheck...")

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	resolver, err := locale.NewResolver()
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}

	if err := runConsole(cfg, resolver); err != nil {
		log.Fatalf("Console failed: %v", err)
	}
	log.Println("Shutting down...")
}
