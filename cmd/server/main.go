package main

import (
	"log"
	"os"

	"github.com/fleshka4/weighted-pool/internal/config"
	"github.com/fleshka4/weighted-pool/internal/infra/bpool"
	"github.com/fleshka4/weighted-pool/internal/logging"
	"github.com/fleshka4/weighted-pool/internal/service"
	transport "github.com/fleshka4/weighted-pool/internal/transport/http"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	logger, err := logging.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logging.New: %v", err)
	}
	logging.RedirectStdLog(logger)

	client, err := bpool.NewClient(cfg.RPCURL, cfg.CallTimeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("bpool.NewClient")
	}

	svc := service.NewQuoteService(client, cfg.ExitFee)

	srv, err := transport.NewServer(svc, &cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("transport.NewServer")
	}

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("srv.ListenAndServe")
	}
}
