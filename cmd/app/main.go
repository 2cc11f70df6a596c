package main

import (
	"lodgehub/config"
	"lodgehub/di"
	"lodgehub/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	http := di.InitializeService()
	http.Serve()
}
