package main

import (
	"log"

	"github.com/StrategicTender/summarizer-backend-v0.2/internal/server"
	"github.com/StrategicTender/summarizer-backend-v0.2/internal/shared/config"
)

func main() {
	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting summarizer API on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
