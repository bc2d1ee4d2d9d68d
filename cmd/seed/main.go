package main

import (
	"context"
	"log"

	"termbank/internal/app/bootstrap"
)

// Seed process entrypoint: plants the demo glossary into the configured
// database so a fresh deployment has terms to browse and review.
func main() {
	log.Println("termbank seed starting")
	app, err := bootstrap.BuildSeeder()
	if err != nil {
		log.Fatalf("bootstrap seeder failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("seed shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("termbank seed failed: %v", err)
	}
	log.Println("termbank seed finished")
}
