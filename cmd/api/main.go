package main

import (
	"context"
	"log"

	"termbank/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
//
// @title        Termbank Glossary API
// @version      1.0
// @description  Crowdsourced glossary: terms, ranked definition candidates, review voting and contribution lifecycle.
// @BasePath     /
func main() {
	log.Println("termbank api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("termbank api stopped with error: %v", err)
	}
}
