package worker

import (
	"net/http"
	"time"

	"timevalue/src/config"
	"timevalue/src/utils"
	"timevalue/src/worker/controllers"
	"timevalue/src/worker/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router     *chi.Mux
	Handler    *handlers.Handler
	Controller *controllers.Controller
}

func NewServer(db *pgxpool.Pool, cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	controller := controllers.NewController(db, cfg)
	if err := controller.ScheduleDailyScan(logger); err != nil {
		return nil, err
	}

	server := &Server{
		Router:     chi.NewRouter(),
		Handler:    handlers.NewHandler(controller),
		Controller: controller,
	}
	server.InitRoutes(logger)
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes(logger *logrus.Logger) {
	s.Router.Use(utils.RequestLogger(logger))
	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Post("/api/notifications/scan", s.Handler.RunNotificationScan)
}

func NewHTTPServer(server *Server, port string) *http.Server {
	if port == "" {
		port = "8001"
	}
	return &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
