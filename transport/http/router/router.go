package router

import (
	"net/http"

	"todoapi/config"
	"todoapi/internal/handlers/todo"
	"todoapi/shared/constant"
	"todoapi/shared/failure"
	"todoapi/transport/http/response"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.NotFound(constant.ResponseErrorRouteNotFound))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessageError(w, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
	})

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Todo.Router(routerGroup)
	})

	if r.config.Server.Env != constant.ServerEnvProduction {
		router.Get("/swagger/*", httpSwagger.WrapHandler)
	}
}

func New(domainHandlers DomainHandlers, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		config:         cfg,
	}
}
