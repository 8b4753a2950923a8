package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"ai-forecaster/cmd/forecaster/cmd"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
