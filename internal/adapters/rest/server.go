package rest

import (
	"context"
	"net/http"

	core_port "deals-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	dealsHandlers *DealsHandler,
	filtersHandlers *FilterHandler,
	workshopHandlers *WorkshopHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins: []string{"http://localhost:3000"},

		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},

		AllowCredentials: true,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// роуты для списка и детальной страницы
		r.Get("/deals", dealsHandlers.FindDeals)
		r.Get("/deals/{dealID}", dealsHandlers.GetDealDetails)
		r.Get("/deals/{dealID}/related", dealsHandlers.GetRelatedDeals)

		r.Get("/filters/options", filtersHandlers.GetFilterOptions)
		r.Get("/filters/defaults", filtersHandlers.GetFilterDefaults)
		r.Get("/dictionaries", filtersHandlers.GetDictionaries)

		r.Post("/workshop/messages", workshopHandlers.PostMessage)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
