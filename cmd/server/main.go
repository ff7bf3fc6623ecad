package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/vyshnavi005-max/AI-HRMS/internal/app/server"
)

func main() {
	// Optional in every environment; real deployments set env vars directly.
	_ = godotenv.Load()

	if err := server.Run(); err != nil {
		log.Fatal(err)
	}
}
