package main

import (
	"github.com/thereayou/projectconnect/internal/config"
	"github.com/thereayou/projectconnect/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	NewServer(cfg).Run()
}
