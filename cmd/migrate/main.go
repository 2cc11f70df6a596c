package main

import (
	"os"

	"lodgehub/config"
	"lodgehub/helper"
	"lodgehub/shared/logger"

	"github.com/rs/zerolog/log"
)

const usage = "usage: migrate up|down|step-up|drop|version|force <version>"

func main() {
	logger.InitLogger()

	if len(os.Args) < 2 {
		log.Fatal().Msg(usage)
	}

	if err := helper.Runner(config.Get(), os.Args[1], os.Args[2:]...); err != nil {
		log.Fatal().Err(err).Msg(usage)
	}
}
