package handler

import (
	"net/http"
	"sync"

	"todoapi/config"
	"todoapi/di"
	"todoapi/shared/logger"
	transport "todoapi/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler serves every request through one lazily built server so a warm serverless
// instance keeps its store and connections.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetFormat(cfg)
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
