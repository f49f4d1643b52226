package app

import (
	"context"
	"net/http"

	"mbg-project/internal/handler"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(catalog *handler.CatalogHandler, payments *handler.PaymentHandler, history *handler.HistoryHandler) *Server {
	router := handler.NewRouter(catalog, payments, history)

	return &Server{
		httpServer: &http.Server{
			Handler: router,
		},
	}
}

func (s *Server) Run(addr string) error {
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
