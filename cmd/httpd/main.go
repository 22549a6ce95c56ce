package main

import (
	"log"

	"github.com/nyayasetu/classifier/internal/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatalf("classifier: %v", err)
	}
}
