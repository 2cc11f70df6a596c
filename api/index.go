package handler

import (
	"net/http"
	"sync"

	"lodgehub/config"
	"lodgehub/di"
	"lodgehub/shared/logger"
)

var (
	once    sync.Once
	service http.Handler
)

// Handler is the serverless entrypoint. The service graph is built on the first
// invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.Configure(cfg)

		service = di.InitializeService()
	})

	r.RequestURI = r.URL.String()
	service.ServeHTTP(w, r)
}
